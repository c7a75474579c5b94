package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Analysis AnalysisConfig
	Report   ReportConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AnalysisConfig struct {
	// DemoMode routes every analysis action to the local deterministic
	// heuristics; no model calls are made.
	DemoMode bool
}

type ReportConfig struct {
	OutputPath  string
	Institution string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Analysis: AnalysisConfig{
			DemoMode: getEnvAsBool("DEMO_MODE", false),
		},
		Report: ReportConfig{
			OutputPath:  getEnv("REPORT_OUTPUT_PATH", "./reports"),
			Institution: getEnv("INSTITUTION_NAME", "SCET"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type ReportStorageService interface {
	EnsureOutputDir() error
	ReportFilename(studentName string) string
	SaveReport(studentName string, data []byte) (string, string, error)
}

type reportStorageService struct {
	outputPath string
}

// NewReportStorageService keeps a copy of every generated report under
// the configured output directory.
func NewReportStorageService(outputPath string) ReportStorageService {
	return &reportStorageService{
		outputPath: outputPath,
	}
}

func (s *reportStorageService) EnsureOutputDir() error {
	if err := os.MkdirAll(s.outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create report output directory: %w", err)
	}

	return nil
}

// ReportFilename derives the download filename from the student's
// display name.
func (s *reportStorageService) ReportFilename(studentName string) string {
	name := sanitizeFilename(studentName)
	if name == "" {
		name = "student"
	}
	return fmt.Sprintf("%s_analytics_report.pdf", name)
}

func (s *reportStorageService) SaveReport(studentName string, data []byte) (string, string, error) {
	filename := s.ReportFilename(studentName)
	filePath := filepath.Join(s.outputPath, filename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to save report: %w", err)
	}

	return filename, filePath, nil
}

func sanitizeFilename(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(name))

	return strings.Trim(mapped, "_")
}

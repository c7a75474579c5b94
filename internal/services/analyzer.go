package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"scet/student-analytics/internal/models"
)

const (
	ModeHeuristic = "heuristic"
	ModeModel     = "model"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, session *models.Session, category models.Category, profile models.Profile) (*models.AssessmentRecord, string, error)
}

type analyzerService struct {
	gemini        GeminiService // nil when no credentials are configured
	heuristic     HeuristicService
	promptBuilder *PromptBuilder
	demoMode      bool
}

func NewAnalyzerService(
	gemini GeminiService,
	heuristic HeuristicService,
	demoMode bool,
) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		heuristic:     heuristic,
		promptBuilder: NewPromptBuilder(),
		demoMode:      demoMode,
	}
}

// Analyze runs one analysis action to completion: clamp the profile,
// produce a raw assessment via the heuristic or the model, normalize it,
// and store it in the session's report store keyed by category. On a
// collaborator failure nothing is stored and the diagnostic is returned
// verbatim. Returns the stored record and the mode that produced it.
func (a *analyzerService) Analyze(ctx context.Context, session *models.Session, category models.Category, profile models.Profile) (*models.AssessmentRecord, string, error) {
	clamped := models.ClampProfile(category, profile)

	raw, mode, err := a.assess(ctx, category, clamped)
	if err != nil {
		return nil, mode, err
	}

	record := NormalizeAssessment(category, clamped, raw)
	session.Reports.Put(category, record)

	log.Printf("✅ Stored %s assessment for session %s (tier: %s)\n", category, session.ID, record.TierLabel)
	return &record, mode, nil
}

func (a *analyzerService) assess(ctx context.Context, category models.Category, profile models.Profile) (models.RawAssessment, string, error) {
	if a.demoMode {
		raw, err := a.heuristic.Assess(category, profile)
		return raw, ModeHeuristic, err
	}

	if a.gemini == nil {
		return nil, ModeModel, fmt.Errorf("missing GEMINI_API_KEY: configure model credentials or enable DEMO_MODE")
	}

	taskName, extraInstructions := a.promptBuilder.TaskFor(category)
	prompt := a.promptBuilder.BuildAssessmentPrompt(taskName, profile, extraInstructions)

	log.Printf("🤖 Calling model for task: %s\n", taskName)
	response, err := a.gemini.GenerateText(ctx, prompt, 0.25)
	if err != nil {
		return nil, ModeModel, fmt.Errorf("error calling model: %w", err)
	}

	raw, ok := parseAssessment(response)
	if !ok {
		return nil, ModeModel, fmt.Errorf("could not parse JSON from model response. Raw output:\n\n%s", response)
	}
	return raw, ModeModel, nil
}

// parseAssessment decodes a raw assessment from free-form model text.
// The model is asked not to produce prose around the JSON but sometimes
// does anyway, so this scans for balanced {...} spans and tries them
// rightmost-first, then falls back to parsing the whole payload.
func parseAssessment(text string) (models.RawAssessment, bool) {
	segments := balancedObjects(text)
	for i := len(segments) - 1; i >= 0; i-- {
		var raw models.RawAssessment
		if err := json.Unmarshal([]byte(segments[i]), &raw); err == nil {
			return raw, true
		}
	}

	var raw models.RawAssessment
	if err := json.Unmarshal([]byte(text), &raw); err == nil {
		return raw, true
	}
	return nil, false
}

// balancedObjects returns every top-level balanced {...} span in order
// of appearance. Unclosed braces simply never emit a span.
func balancedObjects(text string) []string {
	var segments []string
	depth := 0
	start := -1

	for i, ch := range text {
		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					segments = append(segments, text[start:i+1])
					start = -1
				}
			}
		}
	}
	return segments
}

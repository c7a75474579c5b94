package models

// RawAssessment is the loosely structured result of a single analysis,
// either produced by the local heuristics or decoded from the model's
// free-form response. Expected keys: risk_level, predicted_score,
// summary, recommendations. None of them is guaranteed to be present or
// well-typed when the result came from the model.
type RawAssessment map[string]interface{}

// AssessmentRecord is the canonical, normalized form stored per
// category. Recommendations is never nil and PredictedScore, when set,
// is always finite.
type AssessmentRecord struct {
	Category        Category `json:"category"`
	Profile         Profile  `json:"profile"`
	TierLabel       string   `json:"tier_label"`
	PredictedScore  *float64 `json:"predicted_score,omitempty"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

package services

import (
	"encoding/json"
	"fmt"

	"scet/student-analytics/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// TaskFor returns the task name and extra instructions for a category.
func (pb *PromptBuilder) TaskFor(category models.Category) (string, string) {
	switch category {
	case models.CategoryDropout:
		return "Student Dropout Risk Prediction",
			"Assess how likely this student is to drop out in the next 1-2 semesters. " +
				"Use 'High', 'Medium', or 'Low' in risk_level."
	case models.CategoryPlacement:
		return "Placement Success & Company Tier Analysis",
			"Based on this profile, estimate the most likely placement outcome. " +
				"Use 'Tier-1', 'Tier-2', 'Tier-3', or 'Not ready' in risk_level."
	case models.CategoryExam:
		return "Final Exam Score Forecasting (with Attendance Credits)",
			"Predict an approximate final exam score out of 100 for this student. " +
				"Consider internal tests, quizzes, lab performance, overall attendance_percent, " +
				"and attendance_credits (marks awarded for high attendance). " +
				"Put the numeric value (0-100) in predicted_score. " +
				"In risk_level, use 'High', 'Medium', or 'Low' to indicate RISK OF FAILING."
	}
	return string(category), ""
}

// BuildAssessmentPrompt creates the prompt for one analysis task. The
// profile is embedded as JSON (map marshaling is key-sorted, so the
// same profile always produces the same prompt).
func (pb *PromptBuilder) BuildAssessmentPrompt(taskName string, profile models.Profile, extraInstructions string) string {
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")

	return fmt.Sprintf(`You are an academic analytics assistant helping college faculty make data-driven decisions.

TASK: %s

STUDENT PROFILE (JSON):
%s

%s

Return your answer as a strict JSON object using this schema:
{
  "risk_level": string,
  "predicted_score": number|null,
  "summary": string,
  "recommendations": [
    "string", "string", "string"
  ]
}

Important: Return ONLY the JSON. No markdown.`,
		taskName, profileJSON, extraInstructions)
}

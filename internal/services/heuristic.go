package services

import (
	"fmt"
	"math"

	"scet/student-analytics/internal/models"
)

// Tier thresholds are institutional policy, grouped here so a policy
// change is a one-line edit.
const (
	dropoutHighScore   = 4
	dropoutMediumScore = 2

	placementTier1Score = 0.8
	placementTier2Score = 0.6
	placementTier3Score = 0.4

	examHighRiskBelow   = 40.0
	examMediumRiskBelow = 60.0
)

type HeuristicService interface {
	Assess(category models.Category, profile models.Profile) (models.RawAssessment, error)
}

type heuristicService struct{}

// NewHeuristicService returns the local deterministic collaborator: a
// fixed formula per category, no network, same output for same profile.
func NewHeuristicService() HeuristicService {
	return &heuristicService{}
}

func (h *heuristicService) Assess(category models.Category, profile models.Profile) (models.RawAssessment, error) {
	switch category {
	case models.CategoryDropout:
		return h.assessDropout(profile), nil
	case models.CategoryPlacement:
		return h.assessPlacement(profile), nil
	case models.CategoryExam:
		return h.assessExam(profile), nil
	}
	return nil, fmt.Errorf("unknown category: %q", category)
}

func (h *heuristicService) assessDropout(profile models.Profile) models.RawAssessment {
	riskScore := 0
	if profile["cgpa"] < 6 {
		riskScore++
	}
	if profile["attendance_percent"] < 75 {
		riskScore++
	}
	if profile["avg_assignment_score_percent"] < 60 {
		riskScore++
	}
	if profile["no_of_academic_warnings"] >= 2 {
		riskScore++
	}
	if profile["active_backlogs"] >= 2 {
		riskScore++
	}

	var level, summary string
	switch {
	case riskScore >= dropoutHighScore:
		level = "High"
		summary = "Student appears at very high risk of dropout based on academics & engagement indicators."
	case riskScore >= dropoutMediumScore:
		level = "Medium"
		summary = "Student is at moderate risk. Timely mentoring and follow-up can prevent escalation."
	default:
		level = "Low"
		summary = "Student currently appears low risk, but should still be monitored periodically."
	}

	return models.RawAssessment{
		"risk_level":      level,
		"predicted_score": float64(riskScore),
		"summary":         summary,
		"recommendations": []string{
			"Schedule a 1:1 mentoring or counselling session.",
			"Share a personalized study roadmap and upcoming assessments.",
			"Monitor attendance and assignment submissions for the next few weeks.",
		},
	}
}

func (h *heuristicService) assessPlacement(profile models.Profile) models.RawAssessment {
	score := 0.4*(profile["cgpa"]/10) +
		0.3*(profile["technical_skill_1_10"]/10) +
		0.2*(profile["communication_skill_1_10"]/10) +
		0.03*math.Min(profile["internships"], 3) +
		0.02*math.Min(profile["major_projects"], 3)

	var level, summary string
	switch {
	case score >= placementTier1Score:
		level = "Tier-1"
		summary = "Strong profile suitable for Tier-1 / Product companies."
	case score >= placementTier2Score:
		level = "Tier-2"
		summary = "Good profile for Tier-2 companies; can push towards Tier-1 with focused prep."
	case score >= placementTier3Score:
		level = "Tier-3"
		summary = "Currently aligned with Tier-3 / service companies; needs improvement for higher tiers."
	default:
		level = "Not ready"
		summary = "Placement readiness appears low; intensive training and real-world projects recommended."
	}

	return models.RawAssessment{
		"risk_level":      level,
		"predicted_score": round2(score),
		"summary":         summary,
		"recommendations": []string{
			"Encourage participation in contests, hackathons, and technical clubs.",
			"Recommend building standout portfolio projects (GitHub + live demos).",
			"Organize mock interviews focusing on problem solving and communication.",
		},
	}
}

func (h *heuristicService) assessExam(profile models.Profile) models.RawAssessment {
	core := (profile["internal_test_1_percent"] +
		profile["internal_test_2_percent"] +
		profile["quiz_average_percent"] +
		profile["lab_performance_percent"]) / 4

	predicted := 0.65*core +
		0.15*profile["attendance_percent"] +
		1.8*profile["class_engagement_1_10"] +
		1.5*profile["attendance_credits"]
	predicted = math.Max(0, math.Min(100, predicted))

	// risk_level indicates risk of failing, not performance
	var level, summary string
	switch {
	case predicted < examHighRiskBelow:
		level = "High"
		summary = "Student at high risk of failing. Strong remedial support is needed."
	case predicted < examMediumRiskBelow:
		level = "Medium"
		summary = "Borderline performance. Extra coaching and continuous assessment will help."
	default:
		level = "Low"
		summary = "Likely to pass comfortably. Encourage attempting higher-order questions."
	}

	return models.RawAssessment{
		"risk_level":      level,
		"predicted_score": round2(predicted),
		"summary":         summary + " Attendance credits have been factored into this prediction.",
		"recommendations": []string{
			"Provide topic-wise revision schedules and quizzes.",
			"Conduct weekly mini-tests to track concept mastery.",
			"Ensure attendance credits are transparently communicated to the student.",
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

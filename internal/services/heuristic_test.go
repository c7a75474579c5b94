package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scet/student-analytics/internal/models"
)

func TestAssessDropoutAllIndicators(t *testing.T) {
	h := NewHeuristicService()

	raw, err := h.Assess(models.CategoryDropout, models.Profile{
		"cgpa":                         5,
		"attendance_percent":           70,
		"avg_assignment_score_percent": 50,
		"no_of_academic_warnings":      2,
		"active_backlogs":              2,
	})
	require.NoError(t, err)

	assert.Equal(t, "High", raw["risk_level"])
	assert.Equal(t, float64(5), raw["predicted_score"])
	assert.NotEmpty(t, raw["summary"])
	assert.Len(t, raw["recommendations"], 3)
}

func TestAssessDropoutTiers(t *testing.T) {
	h := NewHeuristicService()

	// two indicators -> Medium
	raw, err := h.Assess(models.CategoryDropout, models.Profile{
		"cgpa":                         5,
		"attendance_percent":           70,
		"avg_assignment_score_percent": 80,
		"no_of_academic_warnings":      0,
		"active_backlogs":              0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Medium", raw["risk_level"])
	assert.Equal(t, float64(2), raw["predicted_score"])

	// clean profile -> Low
	raw, err = h.Assess(models.CategoryDropout, models.Profile{
		"cgpa":                         8,
		"attendance_percent":           90,
		"avg_assignment_score_percent": 80,
		"no_of_academic_warnings":      0,
		"active_backlogs":              0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Low", raw["risk_level"])
	assert.Equal(t, float64(0), raw["predicted_score"])
}

func TestAssessPlacementTiers(t *testing.T) {
	h := NewHeuristicService()

	tests := []struct {
		name    string
		profile models.Profile
		tier    string
	}{
		{
			"strong profile",
			models.Profile{
				"cgpa": 9.5, "technical_skill_1_10": 10, "communication_skill_1_10": 9,
				"internships": 3, "major_projects": 3,
			},
			"Tier-1",
		},
		{
			"good profile",
			models.Profile{
				"cgpa": 7.5, "technical_skill_1_10": 8, "communication_skill_1_10": 7,
				"internships": 1, "major_projects": 2,
			},
			"Tier-2",
		},
		{
			"weak profile",
			models.Profile{
				"cgpa": 5, "technical_skill_1_10": 4, "communication_skill_1_10": 5,
				"internships": 0, "major_projects": 0,
			},
			"Tier-3",
		},
		{
			"not ready",
			models.Profile{
				"cgpa": 2, "technical_skill_1_10": 1, "communication_skill_1_10": 1,
				"internships": 0, "major_projects": 0,
			},
			"Not ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := h.Assess(models.CategoryPlacement, tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.tier, raw["risk_level"])
		})
	}
}

func TestAssessPlacementInternshipsCapped(t *testing.T) {
	h := NewHeuristicService()

	base := models.Profile{
		"cgpa": 8, "technical_skill_1_10": 8, "communication_skill_1_10": 8,
		"internships": 3, "major_projects": 3,
	}
	capped := base.Clone()
	capped["internships"] = 10
	capped["major_projects"] = 10

	rawBase, err := h.Assess(models.CategoryPlacement, base)
	require.NoError(t, err)
	rawCapped, err := h.Assess(models.CategoryPlacement, capped)
	require.NoError(t, err)

	assert.Equal(t, rawBase["predicted_score"], rawCapped["predicted_score"])
}

func TestAssessExamForecast(t *testing.T) {
	h := NewHeuristicService()

	raw, err := h.Assess(models.CategoryExam, models.Profile{
		"internal_test_1_percent": 65,
		"internal_test_2_percent": 70,
		"quiz_average_percent":    75,
		"lab_performance_percent": 80,
		"attendance_percent":      85,
		"attendance_credits":      2,
		"class_engagement_1_10":   7,
	})
	require.NoError(t, err)

	// core=72.5, predicted=0.65*72.5+0.15*85+1.8*7+1.5*2=75.475
	score, ok := raw["predicted_score"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 75.475, score, 0.01)
	assert.Equal(t, "Low", raw["risk_level"])
	assert.Contains(t, raw["summary"], "Attendance credits")
}

func TestAssessExamRiskTiers(t *testing.T) {
	h := NewHeuristicService()

	// everything at the floor -> predicted clamps to a failing score
	raw, err := h.Assess(models.CategoryExam, models.Profile{
		"internal_test_1_percent": 10,
		"internal_test_2_percent": 10,
		"quiz_average_percent":    10,
		"lab_performance_percent": 10,
		"attendance_percent":      40,
		"attendance_credits":      0,
		"class_engagement_1_10":   1,
	})
	require.NoError(t, err)
	assert.Equal(t, "High", raw["risk_level"])

	raw, err = h.Assess(models.CategoryExam, models.Profile{
		"internal_test_1_percent": 50,
		"internal_test_2_percent": 50,
		"quiz_average_percent":    50,
		"lab_performance_percent": 50,
		"attendance_percent":      70,
		"attendance_credits":      1,
		"class_engagement_1_10":   5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Medium", raw["risk_level"])
}

func TestAssessExamClampedToHundred(t *testing.T) {
	h := NewHeuristicService()

	raw, err := h.Assess(models.CategoryExam, models.Profile{
		"internal_test_1_percent": 100,
		"internal_test_2_percent": 100,
		"quiz_average_percent":    100,
		"lab_performance_percent": 100,
		"attendance_percent":      100,
		"attendance_credits":      10,
		"class_engagement_1_10":   10,
	})
	require.NoError(t, err)

	score, ok := raw["predicted_score"].(float64)
	require.True(t, ok)
	assert.Equal(t, 100.0, score)
}

func TestAssessUnknownCategory(t *testing.T) {
	h := NewHeuristicService()

	_, err := h.Assess(models.Category("attendance"), models.Profile{})
	assert.Error(t, err)
}

func TestAssessIsDeterministic(t *testing.T) {
	h := NewHeuristicService()
	profile := models.Profile{
		"cgpa": 7.5, "technical_skill_1_10": 8, "communication_skill_1_10": 7,
		"internships": 1, "major_projects": 2,
	}

	first, err := h.Assess(models.CategoryPlacement, profile)
	require.NoError(t, err)
	second, err := h.Assess(models.CategoryPlacement, profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scet/student-analytics/internal/models"
)

func TestNormalizeCompleteResult(t *testing.T) {
	profile := models.Profile{"cgpa": 7.5}
	raw := models.RawAssessment{
		"risk_level":      "Medium",
		"predicted_score": 2.0,
		"summary":         "Moderate risk.",
		"recommendations": []interface{}{"Mentoring.", "Follow-up."},
	}

	record := NormalizeAssessment(models.CategoryDropout, profile, raw)

	assert.Equal(t, models.CategoryDropout, record.Category)
	assert.Equal(t, "Medium", record.TierLabel)
	require.NotNil(t, record.PredictedScore)
	assert.Equal(t, 2.0, *record.PredictedScore)
	assert.Equal(t, "Moderate risk.", record.Summary)
	assert.Equal(t, []string{"Mentoring.", "Follow-up."}, record.Recommendations)
}

func TestNormalizeEmptyResult(t *testing.T) {
	record := NormalizeAssessment(models.CategoryExam, models.Profile{}, models.RawAssessment{})

	assert.Equal(t, "N/A", record.TierLabel)
	assert.Nil(t, record.PredictedScore)
	assert.Empty(t, record.Summary)
	require.NotNil(t, record.Recommendations)
	assert.Empty(t, record.Recommendations)
}

func TestNormalizeTierKeyPrecedence(t *testing.T) {
	record := NormalizeAssessment(models.CategoryDropout, models.Profile{}, models.RawAssessment{
		"tier": "Tier-2",
	})
	assert.Equal(t, "Tier-2", record.TierLabel)

	record = NormalizeAssessment(models.CategoryDropout, models.Profile{}, models.RawAssessment{
		"risk_level": "High",
		"tier":       "Tier-2",
	})
	assert.Equal(t, "High", record.TierLabel)

	// non-string tier values still render as a display string
	record = NormalizeAssessment(models.CategoryDropout, models.Profile{}, models.RawAssessment{
		"level": 3.0,
	})
	assert.Equal(t, "3", record.TierLabel)
}

func TestNormalizeRejectsNonFiniteScores(t *testing.T) {
	for _, v := range []interface{}{math.NaN(), math.Inf(1), math.Inf(-1), "87", nil, true} {
		record := NormalizeAssessment(models.CategoryExam, models.Profile{}, models.RawAssessment{
			"predicted_score": v,
		})
		assert.Nil(t, record.PredictedScore, "value %v", v)
	}

	record := NormalizeAssessment(models.CategoryExam, models.Profile{}, models.RawAssessment{
		"predicted_score": 87,
	})
	require.NotNil(t, record.PredictedScore)
	assert.Equal(t, 87.0, *record.PredictedScore)
}

func TestNormalizeMalformedRecommendations(t *testing.T) {
	for _, v := range []interface{}{nil, "do this", 42.0, map[string]interface{}{"a": 1}} {
		record := NormalizeAssessment(models.CategoryDropout, models.Profile{}, models.RawAssessment{
			"recommendations": v,
		})
		require.NotNil(t, record.Recommendations, "value %v", v)
		assert.Empty(t, record.Recommendations, "value %v", v)
	}

	record := NormalizeAssessment(models.CategoryDropout, models.Profile{}, models.RawAssessment{
		"recommendations": []interface{}{"first", 2.0, nil, "last"},
	})
	assert.Equal(t, []string{"first", "2", "last"}, record.Recommendations)
}

func TestNormalizeDoesNotAliasProfile(t *testing.T) {
	profile := models.Profile{"cgpa": 7.5}
	record := NormalizeAssessment(models.CategoryDropout, profile, models.RawAssessment{})

	record.Profile["cgpa"] = 1
	assert.Equal(t, 7.5, profile["cgpa"])
}

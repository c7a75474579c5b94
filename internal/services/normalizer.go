package services

import (
	"fmt"
	"math"

	"scet/student-analytics/internal/models"
)

// tier label keys accepted from a raw result, in precedence order
var tierKeys = []string{"risk_level", "tier", "level"}

// NormalizeAssessment converts a raw assessment into the canonical
// record. It is total over any raw mapping: missing or malformed
// optional fields degrade to safe defaults instead of propagating
// failure, because the raw result may have come from an untrusted
// generation step.
func NormalizeAssessment(category models.Category, profile models.Profile, raw models.RawAssessment) models.AssessmentRecord {
	record := models.AssessmentRecord{
		Category:        category,
		Profile:         profile.Clone(),
		TierLabel:       tierLabel(raw),
		PredictedScore:  finiteNumber(raw["predicted_score"]),
		Summary:         stringValue(raw["summary"]),
		Recommendations: stringSlice(raw["recommendations"]),
	}
	return record
}

func tierLabel(raw models.RawAssessment) string {
	for _, key := range tierKeys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			if s != "" {
				return s
			}
			continue
		}
		return fmt.Sprint(v)
	}
	return "N/A"
}

// finiteNumber passes a numeric value through only when it is finite;
// anything else is stored as absent, not zero.
func finiteNumber(v interface{}) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func stringValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func stringSlice(v interface{}) []string {
	switch items := v.(type) {
	case []string:
		out := make([]string, len(items))
		copy(out, items)
		return out
	case []interface{}:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else if item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	}
	return []string{}
}

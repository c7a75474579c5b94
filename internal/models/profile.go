package models

import (
	"fmt"
	"math"
)

type Category string

const (
	CategoryDropout   Category = "dropout"
	CategoryPlacement Category = "placement"
	CategoryExam      Category = "exam"
)

// Categories returns the three assessment categories in the canonical
// order used by the report, regardless of analysis order.
func Categories() []Category {
	return []Category{CategoryDropout, CategoryPlacement, CategoryExam}
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryDropout, CategoryPlacement, CategoryExam:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Profile is a flat mapping of metric name to scalar value. The shape
// depends on the category; see the field specs below.
type Profile map[string]float64

func (p Profile) Clone() Profile {
	clone := make(Profile, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// Lookup returns the named field and whether it was supplied.
func (p Profile) Lookup(key string) (float64, bool) {
	v, ok := p[key]
	return v, ok
}

type FieldSpec struct {
	Key     string
	Min     float64
	Max     float64
	Integer bool
	Step    float64
}

var profileFields = map[Category][]FieldSpec{
	CategoryDropout: {
		{Key: "cgpa", Min: 0, Max: 10},
		{Key: "attendance_percent", Min: 0, Max: 100},
		{Key: "avg_assignment_score_percent", Min: 0, Max: 100},
		{Key: "no_of_academic_warnings", Min: 0, Max: 10, Integer: true},
		{Key: "current_semester", Min: 1, Max: 8, Integer: true},
		{Key: "active_backlogs", Min: 0, Max: 15, Integer: true},
	},
	CategoryPlacement: {
		{Key: "cgpa", Min: 0, Max: 10},
		{Key: "internships", Min: 0, Max: 10, Integer: true},
		{Key: "major_projects", Min: 0, Max: 10, Integer: true},
		{Key: "hackathons", Min: 0, Max: 20, Integer: true},
		{Key: "communication_skill_1_10", Min: 1, Max: 10, Integer: true},
		{Key: "technical_skill_1_10", Min: 1, Max: 10, Integer: true},
	},
	CategoryExam: {
		{Key: "internal_test_1_percent", Min: 0, Max: 100},
		{Key: "internal_test_2_percent", Min: 0, Max: 100},
		{Key: "quiz_average_percent", Min: 0, Max: 100},
		{Key: "attendance_percent", Min: 0, Max: 100},
		{Key: "lab_performance_percent", Min: 0, Max: 100},
		{Key: "attendance_credits", Min: 0, Max: 10, Step: 0.5},
		{Key: "class_engagement_1_10", Min: 1, Max: 10, Integer: true},
	},
}

// FieldsFor returns the declared field specs for a category.
func FieldsFor(category Category) []FieldSpec {
	return profileFields[category]
}

// ClampProfile applies the UI-enforced ranges defensively on the server
// side: declared fields are clamped into range, integer fields rounded,
// stepped fields snapped to the nearest step. Unknown and non-finite
// fields are dropped.
func ClampProfile(category Category, in Profile) Profile {
	out := make(Profile, len(in))
	for _, spec := range profileFields[category] {
		v, ok := in[spec.Key]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if spec.Integer {
			v = math.Round(v)
		} else if spec.Step > 0 {
			v = math.Round(v/spec.Step) * spec.Step
		}
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		out[spec.Key] = v
	}
	return out
}

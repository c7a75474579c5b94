package services

import (
	"math"
	"strings"

	"scet/student-analytics/internal/models"
)

type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityCaution Severity = "caution"
	SeverityBlocked Severity = "blocked"
)

// AttendancePolicy is the eligibility outcome for an attendance
// percentage under the institutional rules: >=75% eligible, 65-75%
// condonable, below 65% detention.
type AttendancePolicy struct {
	Label    string
	Message  string
	Severity Severity
}

// EvaluateAttendance maps an attendance percentage to its eligibility
// policy. A nil or non-finite percentage yields nil (no policy block);
// the call site may pass an absent field.
func EvaluateAttendance(percent *float64) *AttendancePolicy {
	if percent == nil {
		return nil
	}
	a := *percent
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return nil
	}

	switch {
	case a >= 75:
		return &AttendancePolicy{
			Label: "Eligible (No condonation required)",
			Message: "Attendance is 75% or above in aggregate. Student is eligible to appear " +
				"for the semester end examinations without condonation, as per attendance rules.",
			Severity: SeverityOK,
		}
	case a >= 65:
		return &AttendancePolicy{
			Label: "Shortage 65–75%: Condonation Possible",
			Message: "Attendance is between 65% and 75%. Student is not automatically eligible " +
				"for the end examinations. Shortage of attendance can be condoned by the College " +
				"Academic Committee on genuine grounds with supporting evidence, on payment of " +
				"the prescribed condonation fee.",
			Severity: SeverityCaution,
		}
	default:
		return &AttendancePolicy{
			Label: "Below 65%: Detention (Not Eligible)",
			Message: "Attendance is below 65% in aggregate. The shortage cannot be condoned. " +
				"Student is not eligible to take the end examinations for this semester and is " +
				"liable for detention with re-registration required in a later semester.",
			Severity: SeverityBlocked,
		}
	}
}

// AttendancePolicyFor evaluates the attendance rules for the categories
// that carry an attendance percentage (dropout, exam). Other categories
// and profiles without the field yield nil.
func AttendancePolicyFor(category models.Category, profile models.Profile) *AttendancePolicy {
	if category != models.CategoryDropout && category != models.CategoryExam {
		return nil
	}
	att, ok := profile.Lookup("attendance_percent")
	if !ok {
		return nil
	}
	return EvaluateAttendance(&att)
}

var (
	blockedKeywords = []string{"high", "tier-1", "tier1"}
	cautionKeywords = []string{"medium", "moderate", "tier-2", "tier2"}
)

// ClassifyTier buckets an arbitrary tier label into a display severity.
// Labels may come verbatim from the model, so this is a best-effort
// case-insensitive keyword match over untrusted text, not a strict enum
// parse.
func ClassifyTier(label string) Severity {
	lowered := strings.ToLower(label)
	for _, kw := range blockedKeywords {
		if strings.Contains(lowered, kw) {
			return SeverityBlocked
		}
	}
	for _, kw := range cautionKeywords {
		if strings.Contains(lowered, kw) {
			return SeverityCaution
		}
	}
	return SeverityOK
}

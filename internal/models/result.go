package models

import "time"

type CreateSessionRequest struct {
	StudentName string `json:"student_name" validate:"required"`
	StudentID   string `json:"student_id" validate:"required"`
}

type SessionResponse struct {
	ID          string    `json:"id"`
	StudentName string    `json:"student_name"`
	StudentID   string    `json:"student_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type SessionSnapshotResponse struct {
	ID          string                        `json:"id"`
	StudentName string                        `json:"student_name"`
	StudentID   string                        `json:"student_id"`
	CreatedAt   time.Time                     `json:"created_at"`
	Records     map[Category]AssessmentRecord `json:"records"`
	IsEmpty     bool                          `json:"is_empty"`
}

type AnalyzeRequest struct {
	Profile Profile `json:"profile" validate:"required"`
}

type AnalyzeResponse struct {
	Category Category          `json:"category"`
	Mode     string            `json:"mode"`
	Severity string            `json:"severity"`
	Record   *AssessmentRecord `json:"record"`
	// Attendance is set for the categories that carry an attendance
	// percentage (dropout, exam) and the field was supplied.
	Attendance *AttendanceBlock `json:"attendance,omitempty"`
}

type AttendanceBlock struct {
	Label    string `json:"label"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

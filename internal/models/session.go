package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one interactive dashboard session: the student identity
// plus the report store accumulated by analysis actions. Sessions share
// nothing with each other.
type Session struct {
	ID          uuid.UUID    `json:"id"`
	StudentName string       `json:"student_name"`
	StudentID   string       `json:"student_id"`
	CreatedAt   time.Time    `json:"created_at"`
	Reports     *ReportStore `json:"-"`
}

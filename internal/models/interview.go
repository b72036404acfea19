package models

import "time"

// InterviewStatus is the lifecycle state of an interview session.
// Transitions are forward-only: in_progress -> completed.
type InterviewStatus string

const (
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
)

// Interview represents one user's interview session and its generated
// artifact. Answers accumulate monotonically, keyed by question id.
type Interview struct {
	ID           string          `json:"id" db:"id"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
	Status       InterviewStatus `json:"status" db:"status"`
	Answers      map[int]string  `json:"answers" db:"answers"`
	BusinessPlan *string         `json:"business_plan" db:"business_plan"`
	Email        *string         `json:"email" db:"email"`
	TemplateID   string          `json:"template_id,omitempty" db:"template_id"`
}

// IsCompleted reports whether every question has been answered.
func (i *Interview) IsCompleted() bool {
	return i.Status == StatusCompleted
}

// AnsweredCount returns the number of recorded answers.
func (i *Interview) AnsweredCount() int {
	return len(i.Answers)
}

// HasPlan reports whether a generated document is stored.
func (i *Interview) HasPlan() bool {
	return i.BusinessPlan != nil && *i.BusinessPlan != ""
}

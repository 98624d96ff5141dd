package model

import "time"

// Submission represents a stored contact-form entry.
// Submissions are immutable after creation; the only later operation is
// an explicit admin delete.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubmissionListOptions carries pagination parameters for listing submissions.
// Zero Limit means no limit (return everything, newest first).
type SubmissionListOptions struct {
	Limit  int
	Offset int
}

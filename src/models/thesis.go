package models

import "time"

// Thesis is a submitted thesis. StudentName and SupervisorName are filled by joins.
type Thesis struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	StudentID      int64     `json:"student_id"`
	SupervisorID   int64     `json:"supervisor_id"`
	SubmissionDate Date      `json:"submission_date"`
	Grade          *string   `json:"grade"`
	StudentName    *string   `json:"student_name,omitempty"`
	SupervisorName *string   `json:"supervisor_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ThesisInput is the create/update body. On update a zero StudentID or
// SupervisorID keeps the stored value.
type ThesisInput struct {
	Title          string  `json:"title" yaml:"title"`
	Description    *string `json:"description" yaml:"description"`
	StudentID      int64   `json:"student_id" yaml:"student_id"`
	SupervisorID   int64   `json:"supervisor_id" yaml:"supervisor_id"`
	SubmissionDate string  `json:"submission_date" yaml:"submission_date"`
	Grade          *string `json:"grade" yaml:"grade"`
}

// ThesisFilter selects a subset of theses. Zero fields are ignored.
type ThesisFilter struct {
	Year         int
	From, To     *Date
	SupervisorID int64
	StudentID    int64
	Query        string
}

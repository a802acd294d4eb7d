package models

import "time"

// Student is a thesis author. StudentID is the registration number, not the row id.
type Student struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	StudentID      string    `json:"student_id"`
	DepartmentID   *int64    `json:"department_id"`
	DepartmentName *string   `json:"department_name"`
	EnrollmentYear *int      `json:"enrollment_year"`
	CreatedAt      time.Time `json:"created_at"`
}

// StudentInput is the create/update body
type StudentInput struct {
	Name           string `json:"name" yaml:"name"`
	Email          string `json:"email" yaml:"email"`
	StudentID      string `json:"student_id" yaml:"student_id"`
	DepartmentID   *int64 `json:"department_id" yaml:"department_id"`
	EnrollmentYear *int   `json:"enrollment_year" yaml:"enrollment_year"`
}

package models

import "time"

// Supervisor is a faculty member who supervises theses
type Supervisor struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	DepartmentID   *int64    `json:"department_id"`
	DepartmentName *string   `json:"department_name"`
	Specialization *string   `json:"specialization"`
	CreatedAt      time.Time `json:"created_at"`
}

// SupervisorInput is the create/update body
type SupervisorInput struct {
	Name           string  `json:"name" yaml:"name"`
	Email          string  `json:"email" yaml:"email"`
	DepartmentID   *int64  `json:"department_id" yaml:"department_id"`
	Specialization *string `json:"specialization" yaml:"specialization"`
}

package models

import "time"

// Department groups supervisors and students
type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// DepartmentInput is the create/update body
type DepartmentInput struct {
	Name string `json:"name" yaml:"name"`
}

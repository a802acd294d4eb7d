package services

import (
	"context"
	"strings"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// DepartmentService handles departments
type DepartmentService struct {
	repo repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

// List returns all departments
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError("Department", err)
	}
	return out, nil
}

// Get returns the department with the given id
func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Department", err)
	}
	return d, nil
}

// Create validates and stores a new department
func (s *DepartmentService) Create(ctx context.Context, in models.DepartmentInput) (*models.Department, error) {
	if err := validateDepartment(&in); err != nil {
		return nil, err
	}
	d, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, storeError("Department", err)
	}
	return d, nil
}

// Update validates and renames an existing department
func (s *DepartmentService) Update(ctx context.Context, id int64, in models.DepartmentInput) (*models.Department, error) {
	if err := validateDepartment(&in); err != nil {
		return nil, err
	}
	d, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, storeError("Department", err)
	}
	return d, nil
}

// Delete removes a department; references to it are cleared by the store
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError("Department", err)
	}
	return nil
}

func validateDepartment(in *models.DepartmentInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Validation("Department name is required")
	}
	return nil
}

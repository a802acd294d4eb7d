package services

import (
	"context"
	"strings"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// StudentService handles students
type StudentService struct {
	repo   repositories.StudentRepository
	theses repositories.ThesisRepository
}

// NewStudentService creates a new student service
func NewStudentService(repo repositories.StudentRepository, theses repositories.ThesisRepository) *StudentService {
	return &StudentService{repo: repo, theses: theses}
}

// List returns all students
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError("Student", err)
	}
	return out, nil
}

// Get returns the student with the given id
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Student", err)
	}
	return st, nil
}

// Thesis returns the student's most recent thesis
func (s *StudentService) Thesis(ctx context.Context, id int64) (*models.Thesis, error) {
	list, err := s.theses.List(ctx, models.ThesisFilter{StudentID: id})
	if err != nil {
		return nil, storeError("Thesis", err)
	}
	if len(list) == 0 {
		return nil, NotFound("Thesis not found for this student")
	}
	return &list[0], nil
}

// Create validates and stores a new student
func (s *StudentService) Create(ctx context.Context, in models.StudentInput) (*models.Student, error) {
	if err := validateStudent(&in); err != nil {
		return nil, err
	}
	st, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, storeError("Student", err)
	}
	return st, nil
}

// Update validates and replaces an existing student
func (s *StudentService) Update(ctx context.Context, id int64, in models.StudentInput) (*models.Student, error) {
	if err := validateStudent(&in); err != nil {
		return nil, err
	}
	st, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, storeError("Student", err)
	}
	return st, nil
}

// Delete removes a student and, through the store, their theses
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError("Student", err)
	}
	return nil
}

func validateStudent(in *models.StudentInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.StudentID = strings.TrimSpace(in.StudentID)
	if in.Name == "" || in.Email == "" || in.StudentID == "" {
		return Validation("Name, email, and student ID are required")
	}
	if in.EnrollmentYear != nil && (*in.EnrollmentYear < 1900 || *in.EnrollmentYear > 3000) {
		return Validation("Enrollment year is out of range")
	}
	return nil
}

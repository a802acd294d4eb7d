package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// ThesisService handles theses and their filtered listings
type ThesisService struct {
	repo repositories.ThesisRepository
}

// NewThesisService creates a new thesis service
func NewThesisService(repo repositories.ThesisRepository) *ThesisService {
	return &ThesisService{repo: repo}
}

func (s *ThesisService) list(ctx context.Context, f models.ThesisFilter) ([]models.Thesis, error) {
	out, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, storeError("Thesis", err)
	}
	return out, nil
}

// List returns all theses
func (s *ThesisService) List(ctx context.Context) ([]models.Thesis, error) {
	return s.list(ctx, models.ThesisFilter{})
}

// Get returns the thesis with the given id
func (s *ThesisService) Get(ctx context.Context, id int64) (*models.Thesis, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Thesis", err)
	}
	return t, nil
}

// ByYear lists theses submitted in the given calendar year
func (s *ThesisService) ByYear(ctx context.Context, year string) ([]models.Thesis, error) {
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 || y > 9999 {
		return nil, Validation("Year must be a number")
	}
	return s.list(ctx, models.ThesisFilter{Year: y})
}

// ByDateRange lists theses submitted between start and end inclusive
func (s *ThesisService) ByDateRange(ctx context.Context, start, end string) ([]models.Thesis, error) {
	from, err := models.ParseDate(start)
	if err != nil {
		return nil, Validation("Start date must be formatted as YYYY-MM-DD")
	}
	to, err := models.ParseDate(end)
	if err != nil {
		return nil, Validation("End date must be formatted as YYYY-MM-DD")
	}
	if from.After(to.Time) {
		return nil, Validation("Start date must not be after end date")
	}
	return s.list(ctx, models.ThesisFilter{From: &from, To: &to})
}

// BySupervisor lists the theses supervised by supervisorID
func (s *ThesisService) BySupervisor(ctx context.Context, supervisorID int64) ([]models.Thesis, error) {
	return s.list(ctx, models.ThesisFilter{SupervisorID: supervisorID})
}

// ByStudent lists the theses written by studentID
func (s *ThesisService) ByStudent(ctx context.Context, studentID int64) ([]models.Thesis, error) {
	return s.list(ctx, models.ThesisFilter{StudentID: studentID})
}

// Search matches query against title, student name and supervisor name
func (s *ThesisService) Search(ctx context.Context, query string) ([]models.Thesis, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, Validation("Search query is required")
	}
	return s.list(ctx, models.ThesisFilter{Query: query})
}

// Create validates the required fields and the submission date, then stores the thesis
func (s *ThesisService) Create(ctx context.Context, in models.ThesisInput) (*models.Thesis, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.StudentID == 0 || in.SupervisorID == 0 || strings.TrimSpace(in.SubmissionDate) == "" {
		return nil, Validation("Title, student ID, supervisor ID, and submission date are required")
	}
	date, err := models.ParseDate(in.SubmissionDate)
	if err != nil {
		return nil, Validation("Submission date must be formatted as YYYY-MM-DD")
	}
	t, err := s.repo.Create(ctx, in, date)
	if err != nil {
		return nil, storeError("Thesis", err)
	}
	return t, nil
}

// Update validates title and submission date, then replaces the thesis
func (s *ThesisService) Update(ctx context.Context, id int64, in models.ThesisInput) (*models.Thesis, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || strings.TrimSpace(in.SubmissionDate) == "" {
		return nil, Validation("Title and submission date are required")
	}
	date, err := models.ParseDate(in.SubmissionDate)
	if err != nil {
		return nil, Validation("Submission date must be formatted as YYYY-MM-DD")
	}
	t, err := s.repo.Update(ctx, id, in, date)
	if err != nil {
		return nil, storeError("Thesis", err)
	}
	return t, nil
}

// Delete removes a thesis
func (s *ThesisService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError("Thesis", err)
	}
	return nil
}

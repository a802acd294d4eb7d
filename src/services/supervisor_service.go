package services

import (
	"context"
	"strings"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// SupervisorService handles supervisors and their theses
type SupervisorService struct {
	repo   repositories.SupervisorRepository
	theses repositories.ThesisRepository
}

// NewSupervisorService creates a new supervisor service
func NewSupervisorService(repo repositories.SupervisorRepository, theses repositories.ThesisRepository) *SupervisorService {
	return &SupervisorService{repo: repo, theses: theses}
}

// List returns all supervisors
func (s *SupervisorService) List(ctx context.Context) ([]models.Supervisor, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError("Supervisor", err)
	}
	return out, nil
}

// Get returns the supervisor with the given id
func (s *SupervisorService) Get(ctx context.Context, id int64) (*models.Supervisor, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("Supervisor", err)
	}
	return sup, nil
}

// Theses lists the theses supervised by id
func (s *SupervisorService) Theses(ctx context.Context, id int64) ([]models.Thesis, error) {
	out, err := s.theses.List(ctx, models.ThesisFilter{SupervisorID: id})
	if err != nil {
		return nil, storeError("Thesis", err)
	}
	return out, nil
}

// Create validates and stores a new supervisor
func (s *SupervisorService) Create(ctx context.Context, in models.SupervisorInput) (*models.Supervisor, error) {
	if err := validateSupervisor(&in); err != nil {
		return nil, err
	}
	sup, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, storeError("Supervisor", err)
	}
	return sup, nil
}

// Update validates and replaces an existing supervisor
func (s *SupervisorService) Update(ctx context.Context, id int64, in models.SupervisorInput) (*models.Supervisor, error) {
	if err := validateSupervisor(&in); err != nil {
		return nil, err
	}
	sup, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, storeError("Supervisor", err)
	}
	return sup, nil
}

// Delete removes a supervisor. It fails with a conflict while theses still reference it
func (s *SupervisorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError("Supervisor", err)
	}
	return nil
}

func validateSupervisor(in *models.SupervisorInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" {
		return Validation("Name and email are required")
	}
	return nil
}

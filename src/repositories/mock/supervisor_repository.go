package mock

import (
	"context"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// SupervisorRepository is a mock implementation of repositories.SupervisorRepository
type SupervisorRepository struct {
	ListFunc    func(ctx context.Context) ([]models.Supervisor, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Supervisor, error)
	CreateFunc  func(ctx context.Context, in models.SupervisorInput) (*models.Supervisor, error)
	UpdateFunc  func(ctx context.Context, id int64, in models.SupervisorInput) (*models.Supervisor, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewSupervisorRepository creates a new mock supervisor repository
func NewSupervisorRepository() *SupervisorRepository {
	return &SupervisorRepository{Calls: make(map[string][]interface{})}
}

// List calls ListFunc or returns an empty list
func (m *SupervisorRepository) List(ctx context.Context) ([]models.Supervisor, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Supervisor{}, nil
}

// GetByID calls GetByIDFunc or reports ErrNotFound
func (m *SupervisorRepository) GetByID(ctx context.Context, id int64) (*models.Supervisor, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// Create calls CreateFunc or echoes the input with id 1
func (m *SupervisorRepository) Create(ctx context.Context, in models.SupervisorInput) (*models.Supervisor, error) {
	m.Calls["Create"] = append(m.Calls["Create"], in)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &models.Supervisor{ID: 1, Name: in.Name, Email: in.Email, DepartmentID: in.DepartmentID, Specialization: in.Specialization}, nil
}

// Update calls UpdateFunc or echoes the input
func (m *SupervisorRepository) Update(ctx context.Context, id int64, in models.SupervisorInput) (*models.Supervisor, error) {
	m.Calls["Update"] = append(m.Calls["Update"], []interface{}{id, in})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return &models.Supervisor{ID: id, Name: in.Name, Email: in.Email, DepartmentID: in.DepartmentID, Specialization: in.Specialization}, nil
}

// Delete calls DeleteFunc or succeeds
func (m *SupervisorRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.SupervisorRepository = (*SupervisorRepository)(nil)

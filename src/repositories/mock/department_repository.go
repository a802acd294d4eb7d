package mock

import (
	"context"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// DepartmentRepository is a mock implementation of repositories.DepartmentRepository
type DepartmentRepository struct {
	ListFunc    func(ctx context.Context) ([]models.Department, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Department, error)
	CreateFunc  func(ctx context.Context, in models.DepartmentInput) (*models.Department, error)
	UpdateFunc  func(ctx context.Context, id int64, in models.DepartmentInput) (*models.Department, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewDepartmentRepository creates a new mock department repository
func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{Calls: make(map[string][]interface{})}
}

// List calls ListFunc or returns an empty list
func (m *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Department{}, nil
}

// GetByID calls GetByIDFunc or reports ErrNotFound
func (m *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// Create echoes the input with id 1 unless CreateFunc is set
func (m *DepartmentRepository) Create(ctx context.Context, in models.DepartmentInput) (*models.Department, error) {
	m.Calls["Create"] = append(m.Calls["Create"], in)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &models.Department{ID: 1, Name: in.Name}, nil
}

// Update calls UpdateFunc or echoes the input
func (m *DepartmentRepository) Update(ctx context.Context, id int64, in models.DepartmentInput) (*models.Department, error) {
	m.Calls["Update"] = append(m.Calls["Update"], []interface{}{id, in})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return &models.Department{ID: id, Name: in.Name}, nil
}

// Delete calls DeleteFunc or succeeds
func (m *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.DepartmentRepository = (*DepartmentRepository)(nil)

package mock

import (
	"context"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc        func(ctx context.Context, admin *models.Admin) error
	GetByIDFunc       func(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*models.Admin, error)
	ListFunc          func(ctx context.Context) ([]models.Admin, error)
	UpdateFunc        func(ctx context.Context, id int64, username, email, passwordHash string) (*models.Admin, error)
	DeleteFunc        func(ctx context.Context, id int64) error
	CountFunc         func(ctx context.Context) (int, error)

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

// Create calls CreateFunc or succeeds
func (m *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	m.Calls["Create"] = append(m.Calls["Create"], admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

// GetByID calls GetByIDFunc or reports ErrNotFound
func (m *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// GetByUsername calls GetByUsernameFunc or reports ErrNotFound
func (m *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	m.Calls["GetByUsername"] = append(m.Calls["GetByUsername"], username)
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, repositories.ErrNotFound
}

// List calls ListFunc or returns an empty list
func (m *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Admin{}, nil
}

// Update calls UpdateFunc or reports ErrNotFound
func (m *AdminRepository) Update(ctx context.Context, id int64, username, email, passwordHash string) (*models.Admin, error) {
	m.Calls["Update"] = append(m.Calls["Update"], []interface{}{id, username, email, passwordHash})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, username, email, passwordHash)
	}
	return nil, repositories.ErrNotFound
}

// Delete calls DeleteFunc or succeeds
func (m *AdminRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// Count calls CountFunc or reports zero admins
func (m *AdminRepository) Count(ctx context.Context) (int, error) {
	m.Calls["Count"] = append(m.Calls["Count"], nil)
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)

package mock

import (
	"context"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// StudentRepository is a mock implementation of repositories.StudentRepository
type StudentRepository struct {
	ListFunc    func(ctx context.Context) ([]models.Student, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Student, error)
	CreateFunc  func(ctx context.Context, in models.StudentInput) (*models.Student, error)
	UpdateFunc  func(ctx context.Context, id int64, in models.StudentInput) (*models.Student, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewStudentRepository creates a new mock student repository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{Calls: make(map[string][]interface{})}
}

// List calls ListFunc or returns an empty list
func (m *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Student{}, nil
}

// GetByID calls GetByIDFunc or reports ErrNotFound
func (m *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// Create calls CreateFunc or echoes the input with id 1
func (m *StudentRepository) Create(ctx context.Context, in models.StudentInput) (*models.Student, error) {
	m.Calls["Create"] = append(m.Calls["Create"], in)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &models.Student{ID: 1, Name: in.Name, Email: in.Email, StudentID: in.StudentID, DepartmentID: in.DepartmentID, EnrollmentYear: in.EnrollmentYear}, nil
}

// Update calls UpdateFunc or echoes the input
func (m *StudentRepository) Update(ctx context.Context, id int64, in models.StudentInput) (*models.Student, error) {
	m.Calls["Update"] = append(m.Calls["Update"], []interface{}{id, in})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return &models.Student{ID: id, Name: in.Name, Email: in.Email, StudentID: in.StudentID, DepartmentID: in.DepartmentID, EnrollmentYear: in.EnrollmentYear}, nil
}

// Delete calls DeleteFunc or succeeds
func (m *StudentRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.StudentRepository = (*StudentRepository)(nil)

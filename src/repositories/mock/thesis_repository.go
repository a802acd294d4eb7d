package mock

import (
	"context"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// ThesisRepository is a mock implementation of repositories.ThesisRepository
type ThesisRepository struct {
	ListFunc    func(ctx context.Context, filter models.ThesisFilter) ([]models.Thesis, error)
	GetByIDFunc func(ctx context.Context, id int64) (*models.Thesis, error)
	CreateFunc  func(ctx context.Context, in models.ThesisInput, submission models.Date) (*models.Thesis, error)
	UpdateFunc  func(ctx context.Context, id int64, in models.ThesisInput, submission models.Date) (*models.Thesis, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewThesisRepository creates a new mock thesis repository
func NewThesisRepository() *ThesisRepository {
	return &ThesisRepository{Calls: make(map[string][]interface{})}
}

// List calls ListFunc or returns an empty list
func (m *ThesisRepository) List(ctx context.Context, filter models.ThesisFilter) ([]models.Thesis, error) {
	m.Calls["List"] = append(m.Calls["List"], filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return []models.Thesis{}, nil
}

// GetByID calls GetByIDFunc or reports ErrNotFound
func (m *ThesisRepository) GetByID(ctx context.Context, id int64) (*models.Thesis, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// Create calls CreateFunc or echoes the input with id 1
func (m *ThesisRepository) Create(ctx context.Context, in models.ThesisInput, submission models.Date) (*models.Thesis, error) {
	m.Calls["Create"] = append(m.Calls["Create"], in)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in, submission)
	}
	return &models.Thesis{
		ID: 1, Title: in.Title, Description: in.Description, StudentID: in.StudentID,
		SupervisorID: in.SupervisorID, SubmissionDate: submission, Grade: in.Grade,
	}, nil
}

// Update calls UpdateFunc or echoes the input
func (m *ThesisRepository) Update(ctx context.Context, id int64, in models.ThesisInput, submission models.Date) (*models.Thesis, error) {
	m.Calls["Update"] = append(m.Calls["Update"], []interface{}{id, in})
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in, submission)
	}
	return &models.Thesis{
		ID: id, Title: in.Title, Description: in.Description, StudentID: in.StudentID,
		SupervisorID: in.SupervisorID, SubmissionDate: submission, Grade: in.Grade,
	}, nil
}

// Delete calls DeleteFunc or succeeds
func (m *ThesisRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.ThesisRepository = (*ThesisRepository)(nil)

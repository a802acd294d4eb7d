package repositories

import (
	"context"
	"errors"

	"github.com/khabaroff/thesis-management/src/models"
)

// Store-level errors. Implementations translate driver errors into these so
// services never import the driver.
var (
	// ErrNotFound indicates no row matched the given key
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation
	ErrDuplicate = errors.New("duplicate record")

	// ErrReferenced indicates the row is still referenced by another table
	ErrReferenced = errors.New("record is still referenced")

	// ErrMissingReference indicates a foreign key points at a row that does not exist
	ErrMissingReference = errors.New("referenced record does not exist")
)

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	// Update writes username and email, and the hash when passwordHash is non-empty
	Update(ctx context.Context, id int64, username, email, passwordHash string) (*models.Admin, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// DepartmentRepository defines the interface for department data access
type DepartmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, in models.DepartmentInput) (*models.Department, error)
	Update(ctx context.Context, id int64, in models.DepartmentInput) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

// SupervisorRepository defines the interface for supervisor data access
type SupervisorRepository interface {
	List(ctx context.Context) ([]models.Supervisor, error)
	GetByID(ctx context.Context, id int64) (*models.Supervisor, error)
	Create(ctx context.Context, in models.SupervisorInput) (*models.Supervisor, error)
	Update(ctx context.Context, id int64, in models.SupervisorInput) (*models.Supervisor, error)
	Delete(ctx context.Context, id int64) error
}

// StudentRepository defines the interface for student data access
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, in models.StudentInput) (*models.Student, error)
	Update(ctx context.Context, id int64, in models.StudentInput) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// ThesisRepository defines the interface for thesis data access
type ThesisRepository interface {
	// List returns theses matching filter ordered by submission date, newest first
	List(ctx context.Context, filter models.ThesisFilter) ([]models.Thesis, error)
	GetByID(ctx context.Context, id int64) (*models.Thesis, error)
	Create(ctx context.Context, in models.ThesisInput, submission models.Date) (*models.Thesis, error)
	Update(ctx context.Context, id int64, in models.ThesisInput, submission models.Date) (*models.Thesis, error)
	Delete(ctx context.Context, id int64) error
}

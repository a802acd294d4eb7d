package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

const supervisorSelect = `
	SELECT s.id, s.name, s.email, s.department_id, d.name, s.specialization, s.created_at
	FROM supervisors s
	LEFT JOIN departments d ON s.department_id = d.id`

// SupervisorRepository stores supervisors
type SupervisorRepository struct {
	db DBTX
}

// NewSupervisorRepository creates a new supervisor repository
func NewSupervisorRepository(db DBTX) *SupervisorRepository {
	return &SupervisorRepository{db: db}
}

func scanSupervisor(row pgx.Row) (*models.Supervisor, error) {
	var s models.Supervisor
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.DepartmentID, &s.DepartmentName, &s.Specialization, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all supervisors ordered by name
func (r *SupervisorRepository) List(ctx context.Context) ([]models.Supervisor, error) {
	rows, err := r.db.Query(ctx, supervisorSelect+` ORDER BY s.name, s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Supervisor{}
	for rows.Next() {
		s, err := scanSupervisor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// GetByID returns ErrNotFound when no supervisor has the id
func (r *SupervisorRepository) GetByID(ctx context.Context, id int64) (*models.Supervisor, error) {
	s, err := scanSupervisor(r.db.QueryRow(ctx, supervisorSelect+` WHERE s.id = $1`, id))
	return s, translate(err, repositories.ErrMissingReference)
}

// Create inserts then re-reads the row so department_name is populated
func (r *SupervisorRepository) Create(ctx context.Context, in models.SupervisorInput) (*models.Supervisor, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO supervisors (name, email, department_id, specialization)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		in.Name, in.Email, in.DepartmentID, in.Specialization,
	).Scan(&id)
	if err != nil {
		return nil, translate(err, repositories.ErrMissingReference)
	}
	return r.GetByID(ctx, id)
}

// Update returns ErrNotFound when the id does not exist
func (r *SupervisorRepository) Update(ctx context.Context, id int64, in models.SupervisorInput) (*models.Supervisor, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE supervisors SET name = $2, email = $3, department_id = $4, specialization = $5 WHERE id = $1`,
		id, in.Name, in.Email, in.DepartmentID, in.Specialization,
	)
	if err != nil {
		return nil, translate(err, repositories.ErrMissingReference)
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete returns ErrReferenced while theses still point at the supervisor
func (r *SupervisorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM supervisors WHERE id = $1`, id)
	if err != nil {
		return translate(err, repositories.ErrReferenced)
	}
	return requireAffected(tag)
}

var _ repositories.SupervisorRepository = (*SupervisorRepository)(nil)

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

const adminColumns = `id, username, email, password_hash, created_at`

// AdminRepository stores admins in the admins table
type AdminRepository struct {
	db DBTX
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts admin and sets its ID and CreatedAt
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admins (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		admin.Username, admin.Email, admin.PasswordHash,
	).Scan(&admin.ID, &admin.CreatedAt)
	return translate(err, repositories.ErrMissingReference)
}

// GetByID returns ErrNotFound when no admin has the id
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
	return a, translate(err, repositories.ErrMissingReference)
}

// GetByUsername looks an admin up by its unique username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE username = $1`, username))
	return a, translate(err, repositories.ErrMissingReference)
}

// List returns all admins ordered by id
func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.db.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

// Update returns ErrNotFound when the id does not exist
func (r *AdminRepository) Update(ctx context.Context, id int64, username, email, passwordHash string) (*models.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx,
		`UPDATE admins
		 SET username = $2, email = $3, password_hash = COALESCE(NULLIF($4, ''), password_hash)
		 WHERE id = $1
		 RETURNING `+adminColumns,
		id, username, email, passwordHash,
	))
	return a, translate(err, repositories.ErrMissingReference)
}

// Delete returns ErrNotFound when the id does not exist
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return translate(err, repositories.ErrReferenced)
	}
	return requireAffected(tag)
}

// Count returns the number of admins
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

var _ repositories.AdminRepository = (*AdminRepository)(nil)

package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/khabaroff/thesis-management/src/logging"
	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
)

// AdminService handles admin accounts and login
type AdminService struct {
	repo   repositories.AdminRepository
	hasher *PasswordHasher
	tokens *TokenService
	logger zerolog.Logger

	// dummyHash is compared against when the username is unknown so both
	// failure paths cost one bcrypt comparison
	dummyOnce sync.Once
	dummyHash string
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository, hasher *PasswordHasher, tokens *TokenService) *AdminService {
	return &AdminService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logging.NewLogger("admin_service"),
	}
}

// Login verifies credentials and mints a token
func (s *AdminService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	admin, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		s.hasher.Verify(password, s.timingHash())
		s.logger.Debug().Str("username", username).Str("reason", "admin_not_found").Msg("Login failed")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, Internal("failed to load admin", err)
	}

	if !s.hasher.Verify(password, admin.PasswordHash) {
		s.logger.Debug().Str("username", username).Str("reason", "password_mismatch").Msg("Login failed")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("admin_id", admin.ID).Str("username", admin.Username).Msg("Admin logged in")
	return &models.LoginResponse{Token: token, Admin: admin.Public()}, nil
}

func (s *AdminService) timingHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("timing-equalizer")
	})
	return s.dummyHash
}

// Register creates an admin with a freshly hashed password
func (s *AdminService) Register(ctx context.Context, in models.AdminInput) (*models.AdminPublic, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, Validation("Username, email and password are required")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, Internal("failed to hash password", err)
	}

	admin := &models.Admin{Username: in.Username, Email: in.Email, PasswordHash: hash}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, adminStoreError(err)
	}

	s.logger.Info().Int64("admin_id", admin.ID).Str("username", admin.Username).Msg("Admin registered")
	pub := admin.Public()
	return &pub, nil
}

// Profile returns the account named by a verified token
func (s *AdminService) Profile(ctx context.Context, id int64) (*models.AdminProfile, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, adminStoreError(err)
	}
	p := admin.Profile()
	return &p, nil
}

// List returns every admin without password hashes
func (s *AdminService) List(ctx context.Context) ([]models.AdminProfile, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, Internal("failed to list admins", err)
	}
	out := make([]models.AdminProfile, 0, len(admins))
	for i := range admins {
		out = append(out, admins[i].Profile())
	}
	return out, nil
}

// Update changes username and email, and re-hashes the password when one is given.
// Outstanding tokens stay valid until they expire.
func (s *AdminService) Update(ctx context.Context, id int64, in models.AdminInput) (*models.AdminPublic, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" {
		return nil, Validation("Username and email are required")
	}

	var hash string
	if in.Password != "" {
		h, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, Internal("failed to hash password", err)
		}
		hash = h
	}

	admin, err := s.repo.Update(ctx, id, in.Username, in.Email, hash)
	if err != nil {
		return nil, adminStoreError(err)
	}
	pub := admin.Public()
	return &pub, nil
}

// Delete removes an admin
func (s *AdminService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return adminStoreError(err)
	}
	s.logger.Info().Int64("admin_id", id).Msg("Admin deleted")
	return nil
}

// HasAdmins checks if any admin exists
func (s *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, Internal("failed to count admins", err)
	}
	return n > 0, nil
}

// Exists reports whether an admin with username is stored
func (s *AdminService) Exists(ctx context.Context, username string) (bool, error) {
	_, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return false, nil
	case err != nil:
		return false, Internal("failed to load admin", err)
	}
	return true, nil
}

// EnsureAdmin creates the admin, or resets its email and password when the
// username already exists. created reports which happened.
func (s *AdminService) EnsureAdmin(ctx context.Context, in models.AdminInput) (admin *models.AdminPublic, created bool, err error) {
	if in.Username == "" || in.Password == "" {
		return nil, false, ErrMissingCredentials
	}

	existing, err := s.repo.GetByUsername(ctx, in.Username)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		admin, err = s.Register(ctx, in)
		return admin, err == nil, err
	case err != nil:
		return nil, false, Internal("failed to load admin", err)
	}

	if in.Email == "" {
		in.Email = existing.Email
	}
	admin, err = s.Update(ctx, existing.ID, in)
	return admin, false, err
}

// SeedIfEmpty creates the first admin when there are none. It is a no-op when
// username or password is empty.
func (s *AdminService) SeedIfEmpty(ctx context.Context, in models.AdminInput) (bool, error) {
	if in.Username == "" || in.Password == "" {
		return false, nil
	}
	has, err := s.HasAdmins(ctx)
	if err != nil || has {
		return false, err
	}
	if in.Email == "" {
		in.Email = in.Username + "@localhost"
	}
	if _, err := s.Register(ctx, in); err != nil {
		return false, err
	}
	return true, nil
}

func adminStoreError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrAdminNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return &Error{Kind: KindConflict, Message: ErrUsernameTaken.Message, Err: err}
	default:
		return Internal("admin store failure", err)
	}
}

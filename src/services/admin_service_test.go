package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/repositories"
	"github.com/khabaroff/thesis-management/src/repositories/mock"
)

func newTestAdminService(t *testing.T) (*AdminService, *mock.AdminRepository, *PasswordHasher, *TokenService) {
	t.Helper()
	repo := mock.NewAdminRepository()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService(testSecret)
	return NewAdminService(repo, hasher, tokens), repo, hasher, tokens
}

func seedAdmin(t *testing.T, repo *mock.AdminRepository, hasher *PasswordHasher) *models.Admin {
	t.Helper()
	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	admin := &models.Admin{ID: 1, Username: "admin", Email: "admin@example.com", PasswordHash: hash, CreatedAt: time.Now()}
	repo.GetByUsernameFunc = func(_ context.Context, username string) (*models.Admin, error) {
		if username == admin.Username {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}
	repo.GetByIDFunc = func(_ context.Context, id int64) (*models.Admin, error) {
		if id == admin.ID {
			return admin, nil
		}
		return nil, repositories.ErrNotFound
	}
	return admin
}

func TestAdminService_Login(t *testing.T) {
	svc, repo, hasher, tokens := newTestAdminService(t)
	seedAdmin(t, repo, hasher)
	ctx := context.Background()

	resp, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.AdminPublic{ID: 1, Username: "admin", Email: "admin@example.com"}, resp.Admin)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.ID)
	assert.Equal(t, "admin", claims.Username)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown user looks like a wrong password")

	_, err = svc.Login(ctx, "Admin", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "usernames are case-sensitive")
}

func TestAdminService_LoginValidatesBeforeStore(t *testing.T) {
	svc, repo, _, _ := newTestAdminService(t)

	for _, in := range [][2]string{{"", "x"}, {"admin", ""}, {"", ""}} {
		_, err := svc.Login(context.Background(), in[0], in[1])
		assert.ErrorIs(t, err, ErrMissingCredentials)
	}
	assert.Empty(t, repo.Calls["GetByUsername"])
}

func TestAdminService_LoginStoreFailure(t *testing.T) {
	svc, repo, _, _ := newTestAdminService(t)
	repo.GetByUsernameFunc = func(context.Context, string) (*models.Admin, error) {
		return nil, errors.New("connection refused")
	}

	_, err := svc.Login(context.Background(), "admin", "admin123")
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestAdminService_Register(t *testing.T) {
	svc, repo, hasher, _ := newTestAdminService(t)
	var stored *models.Admin
	repo.CreateFunc = func(_ context.Context, a *models.Admin) error {
		a.ID = 5
		stored = a
		return nil
	}

	pub, err := svc.Register(context.Background(), models.AdminInput{Username: " editor ", Email: "e@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), pub.ID)
	assert.Equal(t, "editor", pub.Username)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)
	assert.True(t, hasher.Verify("s3cret", stored.PasswordHash))

	_, err = svc.Register(context.Background(), models.AdminInput{Username: "x", Email: "", Password: "p"})
	assert.Equal(t, KindValidation, KindOf(err))

	repo.CreateFunc = func(context.Context, *models.Admin) error { return repositories.ErrDuplicate }
	_, err = svc.Register(context.Background(), models.AdminInput{Username: "editor", Email: "e@example.com", Password: "p"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAdminService_Profile(t *testing.T) {
	svc, repo, hasher, _ := newTestAdminService(t)
	seedAdmin(t, repo, hasher)

	p, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", p.Username)
	assert.False(t, p.CreatedAt.IsZero())

	_, err = svc.Profile(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAdminService_UpdateRehashesOnlyWhenGiven(t *testing.T) {
	svc, repo, hasher, _ := newTestAdminService(t)
	var gotHash string
	repo.UpdateFunc = func(_ context.Context, id int64, username, email, hash string) (*models.Admin, error) {
		gotHash = hash
		return &models.Admin{ID: id, Username: username, Email: email}, nil
	}

	_, err := svc.Update(context.Background(), 1, models.AdminInput{Username: "admin", Email: "a@example.com"})
	require.NoError(t, err)
	assert.Empty(t, gotHash)

	_, err = svc.Update(context.Background(), 1, models.AdminInput{Username: "admin", Email: "a@example.com", Password: "new-pass"})
	require.NoError(t, err)
	assert.True(t, hasher.Verify("new-pass", gotHash))

	_, err = svc.Update(context.Background(), 1, models.AdminInput{Username: "", Email: "a@example.com"})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestAdminService_EnsureAdmin(t *testing.T) {
	svc, repo, hasher, _ := newTestAdminService(t)
	admin := seedAdmin(t, repo, hasher)
	repo.UpdateFunc = func(_ context.Context, id int64, username, email, hash string) (*models.Admin, error) {
		admin.Email = email
		admin.PasswordHash = hash
		return admin, nil
	}

	_, created, err := svc.EnsureAdmin(context.Background(), models.AdminInput{Username: "admin", Password: "rotated"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "admin@example.com", admin.Email, "email is kept when not given")
	assert.True(t, hasher.Verify("rotated", admin.PasswordHash))

	_, created, err = svc.EnsureAdmin(context.Background(), models.AdminInput{Username: "second", Email: "s@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, repo.Calls["Create"], 1)
}

func TestAdminService_SeedIfEmpty(t *testing.T) {
	svc, repo, _, _ := newTestAdminService(t)

	created, err := svc.SeedIfEmpty(context.Background(), models.AdminInput{})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, repo.Calls["Count"])

	repo.CountFunc = func(context.Context) (int, error) { return 1, nil }
	created, err = svc.SeedIfEmpty(context.Background(), models.AdminInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.False(t, created)

	repo.CountFunc = func(context.Context) (int, error) { return 0, nil }
	created, err = svc.SeedIfEmpty(context.Background(), models.AdminInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, created)
	stored := repo.Calls["Create"][0].(*models.Admin)
	assert.Equal(t, "admin@localhost", stored.Email)
}

func TestAdminService_Exists(t *testing.T) {
	svc, repo, hasher, _ := newTestAdminService(t)
	seedAdmin(t, repo, hasher)
	ctx := context.Background()

	ok, err := svc.Exists(ctx, " admin ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)

	repo.GetByUsernameFunc = func(context.Context, string) (*models.Admin, error) {
		return nil, errors.New("connection reset")
	}
	_, err = svc.Exists(ctx, "admin")
	assert.Equal(t, KindInternal, KindOf(err))
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/errs"
	"github.com/pairpad/collab-service/internal/repository"
	"github.com/pairpad/collab-service/internal/security"

	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrAlreadyExists
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newAuthService(t *testing.T, users repository.UserRepository) *AuthService {
	t.Helper()
	signer, err := security.NewTokenSigner([]byte("unit-test-secret"), "collab-service", 15*time.Minute, 0, nil)
	require.NoError(t, err)
	return NewAuthService(users, signer, security.BcryptConfig{Cost: 4}, nil)
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := newFakeUserRepo()
	svc := newAuthService(t, users)

	res, err := svc.Signup(ctx, "alice@example.com", "s3cret-pw", "")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.Equal(t, domain.RoleEditor, res.User.Role)

	// token subject resolves back to the created user
	uid, err := svc.UserIDFromAccessToken(res.AccessToken)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, uid)

	login, err := svc.Login(ctx, "alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	require.Equal(t, res.User.ID, login.User.ID)
	require.NotEmpty(t, login.AccessToken)
}

func TestAuthService_MixedCaseEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t, newFakeUserRepo())

	res, err := svc.Signup(ctx, "Alice@Example.com", "s3cret-pw", "")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", res.User.Email)

	// the exact string used at signup must keep working
	login, err := svc.Login(ctx, "Alice@Example.com", "s3cret-pw")
	require.NoError(t, err)
	require.Equal(t, res.User.ID, login.User.ID)

	login, err = svc.Login(ctx, "alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	require.Equal(t, res.User.ID, login.User.ID)

	// casing does not mint a second account
	_, err = svc.Signup(ctx, "ALICE@example.com", "other-pw", "")
	require.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t, newFakeUserRepo())

	_, err := svc.Signup(ctx, "bob@example.com", "s3cret-pw", "reviewer")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "bob@example.com", "other-pw", "")
	require.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestAuthService_SignupInvalidRole(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, newFakeUserRepo())
	_, err := svc.Signup(context.Background(), "eve@example.com", "s3cret-pw", "owner")
	require.ErrorIs(t, err, errs.ErrInvalidRole)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newAuthService(t, newFakeUserRepo())

	_, err := svc.Signup(ctx, "carol@example.com", "s3cret-pw", "")
	require.NoError(t, err)

	// wrong password and unknown email look the same
	_, err = svc.Login(ctx, "carol@example.com", "wrong-pw")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret-pw")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

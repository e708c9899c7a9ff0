package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/errs"
	"github.com/pairpad/collab-service/internal/repository"
	"github.com/pairpad/collab-service/internal/security"

	"github.com/google/uuid"
)

type SignupResult struct {
	User        *domain.User
	AccessToken string
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

type AuthService struct {
	users      repository.UserRepository
	signer     *security.TokenSigner
	passPolicy security.BcryptConfig
	now        func() time.Time
}

func NewAuthService(
	users repository.UserRepository,
	signer *security.TokenSigner,
	passPolicy security.BcryptConfig,
	now func() time.Time,
) *AuthService {
	if now == nil {
		now = time.Now
	}

	return &AuthService{
		users:      users,
		signer:     signer,
		passPolicy: passPolicy,
		now:        now,
	}
}

func (s *AuthService) Signup(ctx context.Context, email, password, role string) (*SignupResult, error) {
	email = domain.NormalizeEmail(email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		slog.Error("auth.signup.existsByEmail failed", slog.Any("err", err))
		return nil, err
	}
	if exists {
		return nil, repository.ErrAlreadyExists
	}

	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(password, &s.passPolicy)
	if err != nil {
		return nil, err
	}

	u, err := domain.NewUser(uuid.NewString(), email, hash, r, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, u); err != nil {
		slog.Error("auth.signup.createUser failed", slog.Any("err", err))
		return nil, err
	}

	token, err := s.signer.Issue(u.ID)
	if err != nil {
		slog.Error("auth.signup.issueToken failed", slog.Any("err", err))
		return nil, err
	}

	return &SignupResult{User: u, AccessToken: token}, nil
}

// Login authenticates by email+password and issues an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		slog.Error("auth.login.getByEmail failed", slog.Any("err", err))
		return nil, err
	}

	if err := security.ComparePassword(u.PasswordHash, password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.signer.Issue(u.ID)
	if err != nil {
		slog.Error("auth.login.issueToken failed", slog.Any("err", err))
		return nil, err
	}

	return &LoginResult{User: u, AccessToken: token}, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) AccessTTL() time.Duration { return s.signer.TTL() }

// UserIDFromAccessToken verifies an access token and returns its subject.
func (s *AuthService) UserIDFromAccessToken(token string) (string, error) {
	claims, err := s.signer.ParseAndValidate(token)
	if err != nil {
		return "", err
	}

	return security.Subject(claims)
}

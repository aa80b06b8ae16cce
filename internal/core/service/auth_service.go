package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shrigondanews/news-api/internal/api/metrics"
	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/ports"
)

// AdminSeed holds the default admin credentials materialized at bootstrap.
// The defaults are literal values; override them before any deployment.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// AuthService implements login, admin-issued user creation, and the
// default-admin bootstrap.
type AuthService struct {
	repo   ports.AuthRepository
	tokens *TokenService
	seed   AdminSeed
	logger zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, tokens *TokenService, seed AdminSeed, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, seed: seed, logger: logger}
}

// Login authenticates by username or email. All failure modes collapse into
// ErrInvalidCredentials so a caller cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if (username == "" && email == "") || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByLogin(ctx, username, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Principal{ID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}

// CreateUser registers a new account. Role defaults to editor.
func (s *AuthService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = domain.RoleEditor
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByLogin(ctx, in.Username, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

// EnsureAdmin materializes the default admin account when no user with the
// seeded username or email exists. Safe to call repeatedly.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.repo.FindByLogin(ctx, s.seed.Username, s.seed.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := HashPassword(s.seed.Password)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Username:     s.seed.Username,
		Email:        s.seed.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, admin); err != nil {
		// Concurrent seeding from another instance is not an error.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("username", admin.Username).Msg("default admin user created")
	return nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"jobify/api/internal/config"
	"jobify/api/internal/ids"
	"jobify/api/internal/models"
	"jobify/api/internal/repository"
	"jobify/api/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
)

// UserStore is the persistence surface the auth flows need. Satisfied by
// *repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	Count(ctx context.Context) (int, error)
}

type AuthService struct {
	users    UserStore
	denyList *security.DenyList
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewAuthService(
	users UserStore,
	denyList *security.DenyList,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		denyList: denyList,
		cfg:      cfg,
		log:      log,
	}
}

func (s *AuthService) hashParams() security.HashParams {
	params := security.DefaultHashParams()
	if s.cfg.Security.HashTime > 0 {
		params.Time = s.cfg.Security.HashTime
	}
	if s.cfg.Security.HashMemory > 0 {
		params.Memory = s.cfg.Security.HashMemory
	}
	if s.cfg.Security.HashThreads > 0 {
		params.Threads = s.cfg.Security.HashThreads
	}
	return params
}

type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
	Location string
}

// Register creates a user account. The very first account in the system is
// promoted to admin; every later one is a plain user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, err
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return models.User{}, err
	}
	role := models.UserRoleUser
	if count == 0 {
		role = models.UserRoleAdmin
	}

	passwordHash, err := security.HashPassword(input.Password, s.hashParams())
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Name:         input.Name,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Location:     input.Location,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := security.IssueSessionToken(s.cfg.Security.JWTSecret, user.ID, user.Role, s.cfg.Security.SessionTTL)
	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}

// Logout revokes the presented token for its remaining lifetime and returns
// the display name of the user logging out.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) (string, error) {
	claims, err := security.ParseSessionToken(tokenStr, s.cfg.Security.JWTSecret)
	if err != nil {
		return "", err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if err := s.denyList.Revoke(ctx, claims.ID, remaining); err != nil {
		return "", err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	return user.Name, nil
}

// EnsureDemoUser creates the shared demo account when one is configured and
// returns its id for the session middleware's read-only flag.
func (s *AuthService) EnsureDemoUser(ctx context.Context) (string, error) {
	demo := s.cfg.Demo
	if demo.Email == "" {
		return "", nil
	}

	email := strings.TrimSpace(strings.ToLower(demo.Email))
	if user, err := s.users.FindByEmail(ctx, email); err == nil {
		return user.ID, nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return "", err
	}

	passwordHash, err := security.HashPassword(demo.Password, s.hashParams())
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           ids.New(),
		Name:         demo.Name,
		LastName:     demo.LastName,
		Email:        email,
		PasswordHash: passwordHash,
		Location:     demo.Location,
		Role:         models.UserRoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("demo user seeded")
	return user.ID, nil
}

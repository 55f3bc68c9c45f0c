package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devhub/internal/auth"
	"devhub/internal/cache"
	apperrors "devhub/internal/errors"
	"devhub/internal/gravatar"
	"devhub/internal/model"
	"devhub/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// AuthService handles registration, login, and identity resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

func userCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// Register creates a new user with a hashed password and a gravatar-derived
// avatar, and returns a signed identity token.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Avatar:       gravatar.URL(email),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Login verifies credentials and returns a signed identity token. Unknown
// email and wrong password produce the same error so callers cannot probe
// which addresses are registered.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// CurrentUser resolves a token identity to the user record, with caching.
// The password hash never leaves the struct's JSON representation.
func (s *authService) CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, userCacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, userCacheKey(id), user, userCacheTTL)
	return user, nil
}

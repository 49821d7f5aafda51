package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Predefined service errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Create creates a new user. Returns ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, user *User) error

	// FindByEmail finds a user by email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID finds a user by their internal ID.
	FindByID(ctx context.Context, id string) (*User, error)
}

// Service provides account operations.
type Service struct {
	userRepo UserRepository
	sessions *SessionService
}

// ServiceConfig holds configuration for the auth service.
type ServiceConfig struct {
	UserRepo UserRepository
	Sessions *SessionService
}

// NewService creates a new auth service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		userRepo: cfg.UserRepo,
		sessions: cfg.Sessions,
	}
}

// Signup registers a new account and returns the created user with a
// session token.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Issue(Session{UserID: user.ID, Name: user.Name})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a session token.
// Unknown email and wrong password produce the same error so callers
// cannot probe for registered addresses.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(Session{UserID: user.ID, Name: user.Name})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile fetches the account for an authenticated session.
func (s *Service) Profile(ctx context.Context, userID string) (*User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

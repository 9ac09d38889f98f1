package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"DOCSHELF_BACK-END/internal/apperr"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/models"
	"DOCSHELF_BACK-END/internal/repository"
)

// Client-facing messages. Login uses one message for every credential failure
// so responses do not reveal which emails are registered.
const (
	MsgEmailTaken         = "Email already registered"
	MsgInvalidCredentials = "Incorrect username or password"
)

// UserStore is the persistence the auth service needs.
type UserStore interface {
	UserLookup
	Create(ctx context.Context, user *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// Service implements registration and login.
type Service struct {
	users  UserStore
	hasher PasswordHasher
	tokens *TokenManager
	log    logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewService creates an auth Service.
func NewService(users UserStore, hasher PasswordHasher, tokens *TokenManager, log logger.Logger) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Register creates an active account and returns its id.
func (s *Service) Register(ctx context.Context, email, password string) (uint, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return 0, apperr.Validation("Email and password are required")
	}

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	if taken {
		return 0, apperr.Conflict(MsgEmailTaken)
	}

	hashed, err := s.hasher.Hash(password)
	if errors.Is(err, ErrPasswordTooLong) {
		return 0, apperr.Validation("Password must be at most 72 bytes")
	}
	if err != nil {
		return 0, apperr.Internal(err)
	}

	user := &models.User{Email: email, HashedPassword: hashed, IsActive: true}
	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration won the race for the unique index
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, apperr.Conflict(MsgEmailTaken)
		}
		return 0, apperr.Internal(err)
	}

	s.log.With(map[string]interface{}{"user_id": user.ID}).Info("User registered")
	return user.ID, nil
}

// Login checks credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	invalid := apperr.Auth(apperr.ReasonInvalidCredentials, MsgInvalidCredentials)

	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repository.ErrNotFound) {
		// pay for one comparison anyway so timing matches a wrong password
		s.hasher.Verify(password, s.dummy())
		return "", invalid
	}
	if err != nil {
		return "", apperr.Internal(err)
	}

	if !s.hasher.Verify(password, user.HashedPassword) || !user.IsActive {
		return "", invalid
	}

	token, _, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		hashed, err := s.hasher.Hash("docshelf-timing-equalizer")
		if err != nil {
			s.log.Error(err, "Failed to prepare dummy password hash")
			return
		}
		s.dummyHash = hashed
	})
	return s.dummyHash
}

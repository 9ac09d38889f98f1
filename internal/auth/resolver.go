package auth

import (
	"context"
	"errors"

	"DOCSHELF_BACK-END/internal/apperr"
	"DOCSHELF_BACK-END/internal/models"
	"DOCSHELF_BACK-END/internal/repository"
)

// UserLookup finds users by email.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// IdentityResolver turns a bearer token into the active user it names.
type IdentityResolver struct {
	tokens *TokenManager
	users  UserLookup
}

// NewIdentityResolver creates an IdentityResolver.
func NewIdentityResolver(tokens *TokenManager, users UserLookup) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users}
}

// Resolve verifies token and loads its subject. A valid token for a user that is
// gone or inactive fails with reason user_not_found.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperr.Auth(apperr.ReasonMissingToken, "Not authenticated")
	}

	email, err := r.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := r.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, apperr.Auth(apperr.ReasonUserNotFound, "user not found")
	case err != nil:
		return nil, apperr.Internal(err)
	case !user.IsActive:
		return nil, apperr.Auth(apperr.ReasonUserNotFound, "user is inactive")
	}
	return user, nil
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"DOCSHELF_BACK-END/internal/apperr"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/models"
	"DOCSHELF_BACK-END/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// Client-facing messages for rejected requests
const (
	MsgNotAuthenticated   = "Not authenticated"
	MsgInvalidCredentials = "Could not validate credentials"
)

// Resolver turns a bearer token into a user.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user stored by Authenticate.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate validates the bearer token on every request and rejects with 401
// before the wrapped handler runs.
func Authenticate(resolver Resolver, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, MsgNotAuthenticated)
				return
			}

			token, ok := BearerToken(authHeader)
			if !ok {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, MsgNotAuthenticated)
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if !apperr.IsKind(err, apperr.KindAuth) {
					log.Error(err, "Identity resolution failed")
					utils.WriteError(w, err)
					return
				}
				log.With(map[string]interface{}{
					"reason": string(apperr.ReasonOf(err)),
					"path":   r.URL.Path,
				}).Debug("Rejected bearer token")
				utils.WriteErrorResponse(w, http.StatusUnauthorized, MsgInvalidCredentials)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

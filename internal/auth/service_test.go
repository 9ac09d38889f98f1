package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"DOCSHELF_BACK-END/internal/apperr"
	"DOCSHELF_BACK-END/internal/database/dbtest"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/repository"
)

// countingHasher records how many comparisons were made.
type countingHasher struct {
	PasswordHasher
	verifies int
}

func (h *countingHasher) Verify(plaintext, hash string) bool {
	h.verifies++
	return h.PasswordHasher.Verify(plaintext, hash)
}

type fixture struct {
	service  *Service
	resolver *IdentityResolver
	users    *repository.UserRepository
	tokens   *TokenManager
	hasher   *countingHasher
	clock    *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := repository.NewUserRepository(dbtest.Open(t).Gorm)
	clock := &fakeClock{now: time.Now()}
	tokens := newTestTokens(clock)
	hasher := &countingHasher{PasswordHasher: NewBcryptHasher(bcrypt.MinCost)}
	return &fixture{
		service:  NewService(users, hasher, tokens, logger.Nop()),
		resolver: NewIdentityResolver(tokens, users),
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		clock:    clock,
	}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.service.Register(ctx, "  ada@example.com ", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, id)

	user, err := f.users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret", user.HashedPassword)
	assert.True(t, strings.HasPrefix(user.HashedPassword, "$2a$"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, "ada@example.com", "one")
	require.NoError(t, err)

	_, err = f.service.Register(ctx, "ada@example.com", "two")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, MsgEmailTaken, apperr.From(err).Detail)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := map[string]struct{ email, password string }{
		"empty email":       {"", "pw"},
		"blank email":       {"   ", "pw"},
		"empty password":    {"ada@example.com", ""},
		"password too long": {"ada@example.com", strings.Repeat("x", MaxPasswordBytes+1)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := f.service.Register(ctx, tt.email, tt.password)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation), "got %v", err)
		})
	}
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)

	token, err := f.service.Login(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)

	subject, err := f.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", subject)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)

	_, wrongPassword := f.service.Login(ctx, "ada@example.com", "guess")

	before := f.hasher.verifies
	_, unknownEmail := f.service.Login(ctx, "nobody@example.com", "guess")
	assert.Equal(t, before+1, f.hasher.verifies, "unknown email must still pay for a hash comparison")

	for _, err := range []error{wrongPassword, unknownEmail} {
		require.Error(t, err)
		appErr := apperr.From(err)
		assert.Equal(t, apperr.KindAuth, appErr.Kind)
		assert.Equal(t, apperr.ReasonInvalidCredentials, appErr.Reason)
		assert.Equal(t, MsgInvalidCredentials, appErr.Detail)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.service.Register(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	require.NoError(t, deactivate(f, id))

	_, err = f.service.Login(ctx, "ada@example.com", "s3cret")
	assert.Equal(t, apperr.ReasonInvalidCredentials, apperr.ReasonOf(err))
}

func TestResolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.service.Register(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	token, err := f.service.Login(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)

	user, err := f.resolver.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	t.Run("missing token", func(t *testing.T) {
		_, err := f.resolver.Resolve(ctx, "")
		assertReason(t, err, apperr.ReasonMissingToken)
	})

	t.Run("unknown subject", func(t *testing.T) {
		ghost, _, err := f.tokens.Issue("ghost@example.com")
		require.NoError(t, err)
		_, err = f.resolver.Resolve(ctx, ghost)
		assertReason(t, err, apperr.ReasonUserNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		saved := f.clock.now
		defer func() { f.clock.now = saved }()
		f.clock.now = saved.Add(f.tokens.TTL() + time.Second)

		_, err := f.resolver.Resolve(ctx, token)
		assertReason(t, err, apperr.ReasonExpired)
	})

	t.Run("inactive user", func(t *testing.T) {
		require.NoError(t, deactivate(f, id))
		_, err := f.resolver.Resolve(ctx, token)
		assertReason(t, err, apperr.ReasonUserNotFound)
	})
}

func deactivate(f *fixture, id uint) error {
	user, err := f.users.GetByID(context.Background(), id)
	if err != nil {
		return err
	}
	return f.users.SetActive(context.Background(), user.ID, false)
}

package service

import (
	"context"
	"testing"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*MockUserRepo, AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("test-secret-that-is-long-enough-0123", 60)
	return userRepo, NewAuthService(userRepo, tokens)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "rae@test.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = "user-1"
			}).
			Return(nil)

		user, token, err := svc.Signup(ctx, "Rae", "rae@test.com", "supersecret", "")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.NotEmpty(t, token)
		// Never store the plaintext.
		assert.NotEqual(t, "supersecret", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
	})

	t.Run("ShortPasswordRejected", func(t *testing.T) {
		_, svc := newAuthFixture()
		_, _, err := svc.Signup(ctx, "Rae", "rae@test.com", "short", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "rae@test.com").Return(&domain.User{ID: "user-1"}, nil)

		_, _, err := svc.Signup(ctx, "Rae", "rae@test.com", "supersecret", "")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	stored := &domain.User{ID: "user-1", Email: "rae@test.com", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "rae@test.com").Return(stored, nil)

		user, token, err := svc.Login(ctx, "rae@test.com", "supersecret")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "rae@test.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "rae@test.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("UnknownEmailLooksLikeBadCredentials", func(t *testing.T) {
		userRepo, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, domain.ErrNotFound)

		_, _, err := svc.Login(ctx, "nobody@test.com", "supersecret")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

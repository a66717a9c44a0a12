package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	byEmail map[string]User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{byEmail: map[string]User{}} }

func (r *memUserRepo) Create(_ context.Context, u User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ User) (string, error) { return "token", nil }

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), staticTokens{})
	ctx := context.Background()

	res, err := svc.Register(ctx, "dana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "token", res.Token)
	assert.NotEqual(t, "s3cret", res.User.PasswordHash)

	_, err = svc.Register(ctx, "dana@example.com", "other")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	logged, err := svc.Login(ctx, "dana@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, logged.User.ID)

	_, err = svc.Login(ctx, "dana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsEmptyInput(t *testing.T) {
	svc := NewAuthService(newMemUserRepo(), staticTokens{})

	_, err := svc.Register(context.Background(), "", "pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

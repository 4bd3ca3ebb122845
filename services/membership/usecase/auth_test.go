package usecase

import (
	"context"
	"testing"
	"time"

	"gameden/domain"
	"gameden/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthRepo struct {
	user *domain.StaffUser
	err  error
}

func (f *fakeAuthRepo) Login(ctx context.Context, data *domain.LoginRequest) (*domain.StaffUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuthRepo) EnsureAdmin(ctx context.Context, email, password string) error {
	return nil
}

func TestLoginUC(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")

	now := time.Now()
	repo := &fakeAuthRepo{user: &domain.StaffUser{
		ID:          1,
		Email:       "admin@gameden.in",
		Role:        "admin",
		ConfirmedAt: &now,
	}}
	uc := NewAuthUseCase(repo, testTimeout)

	resp, err := uc.LoginUC(context.Background(), &domain.LoginRequest{
		Email:    "admin@gameden.in",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin@gameden.in", resp.Email)
	assert.Equal(t, "admin", resp.Role)

	claims, err := middleware.VerifyJWT(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginUCMissingFields(t *testing.T) {
	uc := NewAuthUseCase(&fakeAuthRepo{}, testTimeout)

	_, err := uc.LoginUC(context.Background(), &domain.LoginRequest{Email: "admin@gameden.in"})

	assert.Error(t, err)
}

func TestLoginUCRepoErrors(t *testing.T) {
	for _, sentinel := range []error{domain.ErrInvalidCredentials, domain.ErrEmailNotConfirmed} {
		uc := NewAuthUseCase(&fakeAuthRepo{err: sentinel}, testTimeout)

		_, err := uc.LoginUC(context.Background(), &domain.LoginRequest{
			Email:    "admin@gameden.in",
			Password: "s3cret",
		})

		assert.ErrorIs(t, err, sentinel)
	}
}

package repository

import (
	"context"
	"testing"

	"gameden/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.StaffUser{}))
	return db
}

func TestEnsureAdminAndLogin(t *testing.T) {
	db := setupAuthDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.EnsureAdmin(ctx, "admin@gameden.in", "s3cret"))

	user, err := repo.Login(ctx, &domain.LoginRequest{Email: "admin@gameden.in", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, "admin@gameden.in", user.Email)
	assert.Equal(t, "admin", user.Role)
	assert.NotNil(t, user.ConfirmedAt)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	db := setupAuthDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.EnsureAdmin(ctx, "admin@gameden.in", "s3cret"))
	// a second seed with a different password must not clobber the first
	require.NoError(t, repo.EnsureAdmin(ctx, "admin@gameden.in", "changed"))

	_, err := repo.Login(ctx, &domain.LoginRequest{Email: "admin@gameden.in", Password: "s3cret"})
	assert.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupAuthDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.EnsureAdmin(ctx, "admin@gameden.in", "s3cret"))

	_, err := repo.Login(ctx, &domain.LoginRequest{Email: "admin@gameden.in", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupAuthDB(t)
	repo := NewAuthRepository(db)

	_, err := repo.Login(context.Background(), &domain.LoginRequest{Email: "nobody@gameden.in", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnconfirmedEmail(t *testing.T) {
	db := setupAuthDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := domain.StaffUser{Email: "staff@gameden.in", Password: string(hash), Role: "staff"}
	require.NoError(t, db.WithContext(ctx).Create(&user).Error)

	_, err = repo.Login(ctx, &domain.LoginRequest{Email: "staff@gameden.in", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrEmailNotConfirmed)
}

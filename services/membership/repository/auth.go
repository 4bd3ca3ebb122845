package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameden/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: db,
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.StaffUser, error) {
	var user domain.StaffUser

	err := ar.db.WithContext(ctx).Where("email = ?", data.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("could not look up staff user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if user.ConfirmedAt == nil {
		return nil, domain.ErrEmailNotConfirmed
	}

	return &user, nil
}

// EnsureAdmin seeds the bootstrap account on first start so a fresh
// deployment has someone who can log in. Existing accounts are left
// untouched.
func (ar *authRepository) EnsureAdmin(ctx context.Context, email, password string) error {
	var existing domain.StaffUser
	err := ar.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("could not check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}

	now := time.Now()
	admin := domain.StaffUser{
		Email:       email,
		Password:    string(hash),
		Role:        "admin",
		ConfirmedAt: &now,
	}

	if err := ar.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("could not create admin account: %w", err)
	}

	return nil
}

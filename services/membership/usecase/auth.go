package usecase

import (
	"context"
	"time"

	"gameden/domain"
	"gameden/middleware"

	"github.com/asaskevich/govalidator"
)

type authUC struct {
	authRepo domain.AuthRepo
	TimeOut  time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
		TimeOut:  timeOut,
	}
}

func (aUC *authUC) LoginUC(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if _, err := govalidator.ValidateStruct(data); err != nil {
		return nil, err
	}

	user, err := aUC.authRepo.Login(ctx, data)
	if err != nil {
		return nil, err
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token: token,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

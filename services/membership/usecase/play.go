package usecase

import (
	"context"
	"time"

	"gameden/domain"

	"github.com/google/uuid"
)

type playUC struct {
	playRepo domain.PlayRepo
	TimeOut  time.Duration
}

func NewPlayUseCase(repo domain.PlayRepo, timeOut time.Duration) domain.PlayUseCase {
	return &playUC{
		playRepo: repo,
		TimeOut:  timeOut,
	}
}

// RecordPlayUC defaults the play date to submission time. Backdating is
// allowed, future dates are not; either way the free-play flag follows
// insertion order, not the chosen date.
func (pUC *playUC) RecordPlayUC(ctx context.Context, memberID uuid.UUID, playDate *time.Time) (*domain.PlayHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	now := time.Now()
	date := now
	if playDate != nil {
		if playDate.After(now) {
			return nil, domain.ErrPlayDateInFuture
		}
		date = *playDate
	}

	return pUC.playRepo.RecordPlay(ctx, memberID, date)
}

func (pUC *playUC) GetPlayHistoryUC(ctx context.Context, memberID uuid.UUID) (*[]domain.PlayHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, pUC.TimeOut)
	defer cancel()

	plays, err := pUC.playRepo.GetPlayHistory(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return plays, nil
}

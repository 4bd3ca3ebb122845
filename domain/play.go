package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FreePlayInterval is the membership perk cadence: every 6th recorded
// play is free. The ordinal counts insertion order, not play_date order,
// so backdating a play never changes which play was free.
const FreePlayInterval = 6

type PlayHistory struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	MemberID   uuid.UUID `json:"member_id"`
	PlayDate   time.Time `json:"play_date"`
	IsFreePlay bool      `json:"is_free_play"`
}

func IsFreePlayOrdinal(ordinal int) bool {
	return ordinal > 0 && ordinal%FreePlayInterval == 0
}

// NextPlayOrdinal is the ordinal the member's next play will get.
func NextPlayOrdinal(playCount int) int {
	return playCount + 1
}

// PlaysUntilFree reports how many more plays after the next one are
// needed to reach a free play. 0 means the next play itself is free.
func PlaysUntilFree(playCount int) int {
	next := NextPlayOrdinal(playCount)
	if IsFreePlayOrdinal(next) {
		return 0
	}
	return FreePlayInterval - next%FreePlayInterval
}

// FreePlaysEarned is the number of free plays a member has accumulated
// over playCount recorded plays.
func FreePlaysEarned(playCount int) int {
	return playCount / FreePlayInterval
}

type PlayRepo interface {
	RecordPlay(ctx context.Context, memberID uuid.UUID, playDate time.Time) (*PlayHistory, error)
	GetPlayHistory(ctx context.Context, memberID uuid.UUID) (*[]PlayHistory, error)
	CountPlays(ctx context.Context, memberID uuid.UUID) (int, error)
}

type PlayUseCase interface {
	RecordPlayUC(ctx context.Context, memberID uuid.UUID, playDate *time.Time) (*PlayHistory, error)
	GetPlayHistoryUC(ctx context.Context, memberID uuid.UUID) (*[]PlayHistory, error)
}

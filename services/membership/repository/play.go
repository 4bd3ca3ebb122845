package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameden/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type playRepository struct {
	db *pgxpool.Pool
}

func NewPlayRepository(database *pgxpool.Pool) domain.PlayRepo {
	return &playRepository{
		db: database,
	}
}

// RecordPlay locks the member row for the duration of the count+insert
// so concurrent staff sessions cannot hand out the same ordinal, which
// would miscount the free-play cadence.
func (pr *playRepository) RecordPlay(ctx context.Context, memberID uuid.UUID, playDate time.Time) (*domain.PlayHistory, error) {
	tx, err := pr.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM members WHERE id = $1 FOR UPDATE;`, memberID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("could not lock member: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM play_history WHERE member_id = $1;`, memberID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("could not count plays: %w", err)
	}

	play := &domain.PlayHistory{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		MemberID:   memberID,
		PlayDate:   playDate,
		IsFreePlay: domain.IsFreePlayOrdinal(domain.NextPlayOrdinal(count)),
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO play_history (id, created_at, member_id, play_date, is_free_play)
		VALUES ($1, $2, $3, $4, $5);
	`, play.ID, play.CreatedAt, play.MemberID, play.PlayDate, play.IsFreePlay)
	if err != nil {
		return nil, fmt.Errorf("could not insert play: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("could not commit play: %w", err)
	}

	return play, nil
}

func (pr *playRepository) GetPlayHistory(ctx context.Context, memberID uuid.UUID) (*[]domain.PlayHistory, error) {
	query := `
		SELECT id, created_at, member_id, play_date, is_free_play
		FROM play_history
		WHERE member_id = $1
		ORDER BY play_date DESC;
	`

	rows, err := pr.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("could not get play history: %w", err)
	}
	defer rows.Close()

	var plays []domain.PlayHistory
	for rows.Next() {
		var play domain.PlayHistory
		err := rows.Scan(&play.ID, &play.CreatedAt, &play.MemberID, &play.PlayDate, &play.IsFreePlay)
		if err != nil {
			return nil, fmt.Errorf("could not scan play: %w", err)
		}
		plays = append(plays, play)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &plays, nil
}

func (pr *playRepository) CountPlays(ctx context.Context, memberID uuid.UUID) (int, error) {
	var count int
	err := pr.db.QueryRow(ctx, `SELECT COUNT(*) FROM play_history WHERE member_id = $1;`, memberID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count plays: %w", err)
	}
	return count, nil
}

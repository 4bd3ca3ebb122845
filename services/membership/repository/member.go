package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gameden/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code raised when the card_number
// constraint rejects an insert or update.
const uniqueViolation = "23505"

var memberSortFields = map[string]string{
	"full_name":    "m.full_name",
	"card_number":  "m.card_number",
	"email":        "m.email",
	"created_at":   "m.created_at",
	"validity_end": "m.validity_end",
}

type memberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(database *pgxpool.Pool) domain.MemberRepo {
	return &memberRepository{
		db: database,
	}
}

func isDuplicateCard(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (mr *memberRepository) CreateMember(ctx context.Context, member *domain.Member) error {
	insertQuery := `
		INSERT INTO members (id, created_at, full_name, card_number, phone, email, validity_start, validity_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	member.ID = uuid.New()
	member.CreatedAt = time.Now()

	_, err := mr.db.Exec(ctx, insertQuery,
		member.ID, member.CreatedAt, member.FullName, member.CardNumber,
		member.Phone, member.Email, member.ValidityStart, member.ValidityEnd)
	if err != nil {
		if isDuplicateCard(err) {
			return domain.ErrDuplicateCardNumber
		}
		return fmt.Errorf("could not insert member: %w", err)
	}

	return nil
}

func (mr *memberRepository) GetAllMembers(ctx context.Context, search, sortField, sortDir string) (*[]domain.MemberWithPlayCount, error) {
	orderBy, ok := memberSortFields[sortField]
	if !ok {
		orderBy = "m.created_at"
	}
	direction := "DESC"
	if sortDir == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT m.id, m.created_at, m.full_name, m.card_number, m.phone, m.email,
		       m.validity_start, m.validity_end,
		       COUNT(p.id) AS play_count, MAX(p.play_date) AS last_played
		FROM members m
		LEFT JOIN play_history p ON p.member_id = m.id
		WHERE ($1 = '' OR m.full_name ILIKE $2 OR m.card_number LIKE $2 OR m.phone LIKE $2 OR m.email ILIKE $2)
		GROUP BY m.id
		ORDER BY %s %s;
	`, orderBy, direction)

	rows, err := mr.db.Query(ctx, query, search, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("could not get all members: %w", err)
	}
	defer rows.Close()

	var members []domain.MemberWithPlayCount
	for rows.Next() {
		var member domain.MemberWithPlayCount
		err := rows.Scan(&member.ID, &member.CreatedAt, &member.FullName, &member.CardNumber,
			&member.Phone, &member.Email, &member.ValidityStart, &member.ValidityEnd,
			&member.PlayCount, &member.LastPlayed)
		if err != nil {
			return nil, fmt.Errorf("could not scan member: %w", err)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return &members, nil
}

func (mr *memberRepository) GetMemberByID(ctx context.Context, id uuid.UUID) (*domain.MemberWithPlayCount, error) {
	query := `
		SELECT m.id, m.created_at, m.full_name, m.card_number, m.phone, m.email,
		       m.validity_start, m.validity_end,
		       COUNT(p.id) AS play_count, MAX(p.play_date) AS last_played
		FROM members m
		LEFT JOIN play_history p ON p.member_id = m.id
		WHERE m.id = $1
		GROUP BY m.id;
	`

	var member domain.MemberWithPlayCount
	err := mr.db.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.CreatedAt, &member.FullName, &member.CardNumber,
		&member.Phone, &member.Email, &member.ValidityStart, &member.ValidityEnd,
		&member.PlayCount, &member.LastPlayed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("could not get member: %w", err)
	}

	return &member, nil
}

// UpdateMember writes the editable fields and reloads the row into
// `member`, so callers only ever see the server-confirmed state.
func (mr *memberRepository) UpdateMember(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members
		SET full_name = $1, card_number = $2, phone = $3, email = $4
		WHERE id = $5
		RETURNING id, created_at, full_name, card_number, phone, email, validity_start, validity_end;
	`

	err := mr.db.QueryRow(ctx, query,
		member.FullName, member.CardNumber, member.Phone, member.Email, member.ID).Scan(
		&member.ID, &member.CreatedAt, &member.FullName, &member.CardNumber,
		&member.Phone, &member.Email, &member.ValidityStart, &member.ValidityEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrMemberNotFound
		}
		if isDuplicateCard(err) {
			return domain.ErrDuplicateCardNumber
		}
		return fmt.Errorf("could not update member: %w", err)
	}

	return nil
}

// DeleteMember removes the member's play history first so no orphan row
// survives even without the cascading constraint.
func (mr *memberRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	tx, err := mr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM play_history WHERE member_id = $1;`, id); err != nil {
		return fmt.Errorf("could not delete play history: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM members WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("could not delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return tx.Commit(ctx)
}

func (mr *memberRepository) CardNumberExists(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM members WHERE card_number = $1 AND ($2::uuid IS NULL OR id <> $2) LIMIT 1;`

	var one int
	err := mr.db.QueryRow(ctx, query, cardNumber, excludeID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("could not check card number: %w", err)
	}

	return true, nil
}

func (mr *memberRepository) ResetValidity(ctx context.Context, id uuid.UUID, start, end time.Time) (*domain.Member, error) {
	query := `
		UPDATE members
		SET validity_start = $1, validity_end = $2
		WHERE id = $3
		RETURNING id, created_at, full_name, card_number, phone, email, validity_start, validity_end;
	`

	var member domain.Member
	err := mr.db.QueryRow(ctx, query, start, end, id).Scan(
		&member.ID, &member.CreatedAt, &member.FullName, &member.CardNumber,
		&member.Phone, &member.Email, &member.ValidityStart, &member.ValidityEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("could not reset validity: %w", err)
	}

	return &member, nil
}

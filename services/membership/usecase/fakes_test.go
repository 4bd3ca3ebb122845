package usecase

import (
	"context"
	"time"

	"gameden/domain"

	"github.com/google/uuid"
)

// fakeMemberRepo backs the usecase tests with an in-memory member list.
type fakeMemberRepo struct {
	members    []domain.Member
	takenCards map[string]bool
	createErr  error
	updated    *domain.Member
	deleted    []uuid.UUID
	resetStart time.Time
	resetEnd   time.Time
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{takenCards: map[string]bool{}}
}

func (f *fakeMemberRepo) CreateMember(ctx context.Context, member *domain.Member) error {
	if f.createErr != nil {
		return f.createErr
	}
	member.ID = uuid.New()
	member.CreatedAt = time.Now()
	f.members = append(f.members, *member)
	f.takenCards[member.CardNumber] = true
	return nil
}

func (f *fakeMemberRepo) GetAllMembers(ctx context.Context, search, sortField, sortDir string) (*[]domain.MemberWithPlayCount, error) {
	out := make([]domain.MemberWithPlayCount, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, domain.MemberWithPlayCount{Member: m})
	}
	return &out, nil
}

func (f *fakeMemberRepo) GetMemberByID(ctx context.Context, id uuid.UUID) (*domain.MemberWithPlayCount, error) {
	for _, m := range f.members {
		if m.ID == id {
			return &domain.MemberWithPlayCount{Member: m}, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (f *fakeMemberRepo) UpdateMember(ctx context.Context, member *domain.Member) error {
	f.updated = member
	return nil
}

func (f *fakeMemberRepo) DeleteMember(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMemberRepo) CardNumberExists(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error) {
	if !f.takenCards[cardNumber] {
		return false, nil
	}
	if excludeID != nil {
		for _, m := range f.members {
			if m.CardNumber == cardNumber && m.ID == *excludeID {
				return false, nil
			}
		}
	}
	return true, nil
}

func (f *fakeMemberRepo) ResetValidity(ctx context.Context, id uuid.UUID, start, end time.Time) (*domain.Member, error) {
	f.resetStart, f.resetEnd = start, end
	for i := range f.members {
		if f.members[i].ID == id {
			f.members[i].ValidityStart = start
			f.members[i].ValidityEnd = end
			return &f.members[i], nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

type fakePlayRepo struct {
	recorded  []time.Time
	playCount int
	history   []domain.PlayHistory
}

func (f *fakePlayRepo) RecordPlay(ctx context.Context, memberID uuid.UUID, playDate time.Time) (*domain.PlayHistory, error) {
	f.recorded = append(f.recorded, playDate)
	f.playCount++
	play := domain.PlayHistory{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		MemberID:   memberID,
		PlayDate:   playDate,
		IsFreePlay: domain.IsFreePlayOrdinal(f.playCount),
	}
	f.history = append(f.history, play)
	return &play, nil
}

func (f *fakePlayRepo) GetPlayHistory(ctx context.Context, memberID uuid.UUID) (*[]domain.PlayHistory, error) {
	return &f.history, nil
}

func (f *fakePlayRepo) CountPlays(ctx context.Context, memberID uuid.UUID) (int, error) {
	return f.playCount, nil
}

// fakeSender records outbound messages; linked toggles direct delivery.
type fakeSender struct {
	linked  bool
	sendErr error
	sentTo  []string
}

func (f *fakeSender) Linked() bool { return f.linked }

func (f *fakeSender) SendWhatsApp(ctx context.Context, phone, message string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentTo = append(f.sentTo, phone)
	return nil
}

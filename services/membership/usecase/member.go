package usecase

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"gameden/config"
	"gameden/domain"

	"github.com/google/uuid"
)

type memberUC struct {
	memberRepo domain.MemberRepo
	sender     domain.SenderRepo
	TimeOut    time.Duration
}

func NewMemberUseCase(repo domain.MemberRepo, sender domain.SenderRepo, timeOut time.Duration) domain.MemberUseCase {
	return &memberUC{
		memberRepo: repo,
		sender:     sender,
		TimeOut:    timeOut,
	}
}

// notify composes the wa.me deep link and tries the direct send. Direct
// delivery is best effort: a failure is logged, never bubbled up to the
// member operation that triggered it.
func (mUC *memberUC) notify(ctx context.Context, phone, message string) *domain.WhatsAppNotice {
	notice := &domain.WhatsAppNotice{
		Link: domain.WhatsAppLink(phone, message),
	}

	if !mUC.sender.Linked() {
		return notice
	}

	if err := mUC.sender.SendWhatsApp(ctx, phone, message); err != nil {
		config.GetLogrusInstance().Warnf("Direct WhatsApp send failed, falling back to deep link: %v", err)
		return notice
	}

	notice.Sent = true
	return notice
}

func (mUC *memberUC) CreateMemberUC(ctx context.Context, member *domain.Member) (*domain.WhatsAppNotice, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	member.Normalize()
	if err := member.Validate(); err != nil {
		return nil, err
	}

	member.ValidityStart, member.ValidityEnd = domain.NewValidityWindow(time.Now())

	if err := mUC.memberRepo.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	return mUC.notify(ctx, member.Phone, domain.WelcomeMessage(member)), nil
}

func (mUC *memberUC) GetAllMembersUC(ctx context.Context, search, sortField, sortDir string) (*[]domain.MemberWithPlayCount, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	members, err := mUC.memberRepo.GetAllMembers(ctx, search, sortField, sortDir)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (mUC *memberUC) GetMemberByIDUC(ctx context.Context, id uuid.UUID) (*domain.MemberWithPlayCount, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	member, err := mUC.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (mUC *memberUC) UpdateMemberUC(ctx context.Context, member *domain.Member) error {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	member.Normalize()
	if err := member.Validate(); err != nil {
		return err
	}

	// Advisory probe; the unique constraint remains the final authority
	// at write time.
	exists, err := mUC.memberRepo.CardNumberExists(ctx, member.CardNumber, &member.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateCardNumber
	}

	return mUC.memberRepo.UpdateMember(ctx, member)
}

func (mUC *memberUC) DeleteMemberUC(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	return mUC.memberRepo.DeleteMember(ctx, id)
}

// GenerateCardNumberUC draws uniform 4-digit codes until one is free.
// There is no retry cap; the usecase timeout bounds the loop when the
// code space fills up.
func (mUC *memberUC) GenerateCardNumberUC(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		cardNumber := strconv.Itoa(1000 + rand.Intn(9000))
		exists, err := mUC.memberRepo.CardNumberExists(ctx, cardNumber, nil)
		if err != nil {
			return "", err
		}
		if !exists {
			return cardNumber, nil
		}
	}
}

func (mUC *memberUC) CheckCardNumberUC(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	return mUC.memberRepo.CardNumberExists(ctx, cardNumber, excludeID)
}

func (mUC *memberUC) ResetValidityUC(ctx context.Context, id uuid.UUID) (*domain.Member, *domain.WhatsAppNotice, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	start, end := domain.NewValidityWindow(time.Now())

	member, err := mUC.memberRepo.ResetValidity(ctx, id, start, end)
	if err != nil {
		return nil, nil, err
	}

	notice := mUC.notify(ctx, member.Phone, domain.RenewalMessage(member))
	return member, notice, nil
}

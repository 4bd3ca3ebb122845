package domain

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

// indianPhonePattern mirrors the matches() tag on Member.Phone: optional
// +91/91 prefix, optional leading 0, then ten digits starting with 6-9.
var indianPhonePattern = regexp.MustCompile(`^(\+91[\-\s]?)?[0]?(91)?[6789][0-9]{9}$`)

func ValidIndianPhone(phone string) bool {
	return indianPhonePattern.MatchString(strings.TrimSpace(phone))
}

type Member struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	FullName      string    `json:"full_name" valid:"required~Full name is required"`
	CardNumber    string    `json:"card_number" valid:"required~Card number is required,matches(^[0-9]{4}$)~Card number must be exactly 4 digits"`
	// The backslashes are doubled so the tag value survives
	// StructTag.Get's unquoting and reaches govalidator intact.
	Phone         string    `json:"phone" valid:"required~Phone number is required,matches(^(\\+91[\\-\\s]?)?[0]?(91)?[6789][0-9]{9}$)~Please enter a valid Indian phone number"`
	Email         string    `json:"email" valid:"required~Email is required,matches(^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$)~Please enter a valid email address"`
	ValidityStart time.Time `json:"validity_start"`
	ValidityEnd   time.Time `json:"validity_end"`
}

// MemberWithPlayCount is a member row joined with its play summary.
type MemberWithPlayCount struct {
	Member
	PlayCount  int        `json:"play_count"`
	LastPlayed *time.Time `json:"last_played,omitempty"`
}

// Normalize trims surrounding whitespace so that whitespace-only input
// fails the required checks.
func (m *Member) Normalize() {
	m.FullName = strings.TrimSpace(m.FullName)
	m.CardNumber = strings.TrimSpace(m.CardNumber)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Email = strings.TrimSpace(m.Email)
}

func (m *Member) Validate() error {
	_, err := govalidator.ValidateStruct(m)
	return err
}

// WhatsAppNotice is the outbound side of a member operation: the wa.me
// deep link is always composed, Sent reports whether a linked device
// delivered the message directly.
type WhatsAppNotice struct {
	Link string `json:"link"`
	Sent bool   `json:"sent"`
}

type MemberRepo interface {
	CreateMember(ctx context.Context, member *Member) error
	GetAllMembers(ctx context.Context, search, sortField, sortDir string) (*[]MemberWithPlayCount, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (*MemberWithPlayCount, error)
	UpdateMember(ctx context.Context, member *Member) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
	CardNumberExists(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error)
	ResetValidity(ctx context.Context, id uuid.UUID, start, end time.Time) (*Member, error)
}

type MemberUseCase interface {
	CreateMemberUC(ctx context.Context, member *Member) (*WhatsAppNotice, error)
	GetAllMembersUC(ctx context.Context, search, sortField, sortDir string) (*[]MemberWithPlayCount, error)
	GetMemberByIDUC(ctx context.Context, id uuid.UUID) (*MemberWithPlayCount, error)
	UpdateMemberUC(ctx context.Context, member *Member) error
	DeleteMemberUC(ctx context.Context, id uuid.UUID) error
	GenerateCardNumberUC(ctx context.Context) (string, error)
	CheckCardNumberUC(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error)
	ResetValidityUC(ctx context.Context, id uuid.UUID) (*Member, *WhatsAppNotice, error)
}

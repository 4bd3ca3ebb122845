package domain

import (
	"context"
	"time"
)

// OTPChallenge is a pending phone verification. The code is shown to
// staff, relayed manually over WhatsApp, and typed back by the member;
// there is no server-side binding to the phone beyond this record.
type OTPChallenge struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type OTPUseCase interface {
	IssueUC(ctx context.Context, phone string) (*OTPChallenge, string, error)
	VerifyUC(ctx context.Context, phone, code string) error
}

package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"gameden/domain"
)

// DefaultOTPTTL matches the five minute countdown staff see while they
// relay the code.
const DefaultOTPTTL = 5 * time.Minute

// otpUC keeps pending challenges in memory, keyed by normalized phone.
// The codes are a manual relay aid for a single staff session, not a
// security control, so they do not survive a restart on purpose.
type otpUC struct {
	mu    sync.Mutex
	codes map[string]domain.OTPChallenge
	ttl   time.Duration
}

func NewOTPUseCase(ttl time.Duration) domain.OTPUseCase {
	return &otpUC{
		codes: make(map[string]domain.OTPChallenge),
		ttl:   ttl,
	}
}

// IssueUC generates a fresh 6-digit code for the phone, replacing any
// earlier one, and returns it together with the wa.me deep link staff
// open to relay it.
func (oUC *otpUC) IssueUC(ctx context.Context, phone string) (*domain.OTPChallenge, string, error) {
	phone = strings.TrimSpace(phone)
	if !domain.ValidIndianPhone(phone) {
		return nil, "", fmt.Errorf("please enter a valid Indian phone number")
	}

	challenge := domain.OTPChallenge{
		Phone:     phone,
		Code:      fmt.Sprintf("%06d", 100000+rand.Intn(900000)),
		ExpiresAt: time.Now().Add(oUC.ttl),
	}

	oUC.mu.Lock()
	oUC.codes[domain.NormalizeWhatsAppPhone(phone)] = challenge
	oUC.mu.Unlock()

	link := domain.WhatsAppLink(phone, domain.OTPMessage(challenge.Code, oUC.ttl))
	return &challenge, link, nil
}

func (oUC *otpUC) VerifyUC(ctx context.Context, phone, code string) error {
	key := domain.NormalizeWhatsAppPhone(strings.TrimSpace(phone))

	oUC.mu.Lock()
	defer oUC.mu.Unlock()

	challenge, ok := oUC.codes[key]
	if !ok {
		return domain.ErrOTPNotIssued
	}

	if time.Now().After(challenge.ExpiresAt) {
		delete(oUC.codes, key)
		return domain.ErrOTPExpired
	}

	if strings.TrimSpace(code) != challenge.Code {
		return domain.ErrOTPMismatch
	}

	delete(oUC.codes, key)
	return nil
}

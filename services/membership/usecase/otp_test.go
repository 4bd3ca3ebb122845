package usecase

import (
	"context"
	"testing"
	"time"

	"gameden/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPIssueAndVerify(t *testing.T) {
	uc := NewOTPUseCase(DefaultOTPTTL)

	challenge, link, err := uc.IssueUC(context.Background(), "9876543210")

	require.NoError(t, err)
	assert.Len(t, challenge.Code, 6)
	assert.Contains(t, link, "https://wa.me/919876543210?text=")
	assert.Contains(t, link, challenge.Code)

	// verify accepts a differently-written form of the same phone
	err = uc.VerifyUC(context.Background(), "+91 9876543210", challenge.Code)
	assert.NoError(t, err)

	// codes are single use
	err = uc.VerifyUC(context.Background(), "9876543210", challenge.Code)
	assert.ErrorIs(t, err, domain.ErrOTPNotIssued)
}

func TestOTPIssueRejectsBadPhone(t *testing.T) {
	uc := NewOTPUseCase(DefaultOTPTTL)

	_, _, err := uc.IssueUC(context.Background(), "1234567890")

	assert.Error(t, err)
}

func TestOTPVerifyMismatch(t *testing.T) {
	uc := NewOTPUseCase(DefaultOTPTTL)

	challenge, _, err := uc.IssueUC(context.Background(), "9876543210")
	require.NoError(t, err)

	wrong := "000000"
	if challenge.Code == wrong {
		wrong = "000001"
	}

	err = uc.VerifyUC(context.Background(), "9876543210", wrong)
	assert.ErrorIs(t, err, domain.ErrOTPMismatch)

	// a mismatch does not burn the challenge
	err = uc.VerifyUC(context.Background(), "9876543210", challenge.Code)
	assert.NoError(t, err)
}

func TestOTPVerifyExpired(t *testing.T) {
	uc := NewOTPUseCase(-time.Minute)

	challenge, _, err := uc.IssueUC(context.Background(), "9876543210")
	require.NoError(t, err)

	err = uc.VerifyUC(context.Background(), "9876543210", challenge.Code)
	assert.ErrorIs(t, err, domain.ErrOTPExpired)

	// expiry clears the challenge
	err = uc.VerifyUC(context.Background(), "9876543210", challenge.Code)
	assert.ErrorIs(t, err, domain.ErrOTPNotIssued)
}

func TestOTPReissueReplacesCode(t *testing.T) {
	uc := NewOTPUseCase(DefaultOTPTTL)

	first, _, err := uc.IssueUC(context.Background(), "9876543210")
	require.NoError(t, err)

	var second *domain.OTPChallenge
	for i := 0; i < 20; i++ {
		second, _, err = uc.IssueUC(context.Background(), "9876543210")
		require.NoError(t, err)
		if second.Code != first.Code {
			break
		}
	}
	require.NotEqual(t, first.Code, second.Code)

	err = uc.VerifyUC(context.Background(), "9876543210", first.Code)
	assert.ErrorIs(t, err, domain.ErrOTPMismatch)

	err = uc.VerifyUC(context.Background(), "9876543210", second.Code)
	assert.NoError(t, err)
}

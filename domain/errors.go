package domain

import "errors"

var (
	ErrDuplicateCardNumber = errors.New("card number already in use")
	ErrMemberNotFound      = errors.New("member not found")
	ErrNothingToExport     = errors.New("no members to export")
	ErrPlayDateInFuture    = errors.New("play date cannot be in the future")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")

	ErrOTPNotIssued = errors.New("no verification code issued for this phone")
	ErrOTPExpired   = errors.New("verification code expired")
	ErrOTPMismatch  = errors.New("invalid verification code")

	ErrWhatsAppNotLinked = errors.New("no whatsapp device linked")
)

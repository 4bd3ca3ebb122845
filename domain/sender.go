package domain

import "context"

type SenderRepo interface {
	// SendWhatsApp delivers the message through the linked device.
	// Returns ErrWhatsAppNotLinked when no device is paired.
	SendWhatsApp(ctx context.Context, phone, message string) error
	Linked() bool
}

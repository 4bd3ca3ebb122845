package repository

import (
	"context"
	"fmt"

	"gameden/domain"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
)

type senderRepository struct {
	meowClient *whatsmeow.Client
}

// NewSenderRepository wraps the whatsmeow client. A nil client is valid
// and simply reports itself as not linked, leaving the wa.me deep link
// as the only delivery path.
func NewSenderRepository(meow *whatsmeow.Client) domain.SenderRepo {
	return &senderRepository{
		meowClient: meow,
	}
}

func (sr *senderRepository) Linked() bool {
	return sr.meowClient != nil && sr.meowClient.Store.ID != nil && sr.meowClient.IsLoggedIn()
}

func (sr *senderRepository) SendWhatsApp(ctx context.Context, phone, message string) error {
	if !sr.Linked() {
		return domain.ErrWhatsAppNotLinked
	}

	jid := types.NewJID(domain.NormalizeWhatsAppPhone(phone), types.DefaultUserServer)

	conversationMessage := &waE2E.Message{
		Conversation: &message,
	}

	if _, err := sr.meowClient.SendMessage(ctx, jid, conversationMessage); err != nil {
		return fmt.Errorf("failed to send whatsapp message to %s: %w", phone, err)
	}

	return nil
}

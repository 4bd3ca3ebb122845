package config

import (
	"context"
	"fmt"
	"os"

	// Registers the database/sql driver the whatsmeow session store
	// opens its "postgres" connection with.
	_ "github.com/lib/pq"
	qrcode "github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
)

// WhatsAppEnabled gates direct sending. Without it the app only composes
// wa.me deep links, which is always enough for the manual relay flow.
func WhatsAppEnabled() bool {
	return os.Getenv("WHATSAPP_ENABLED") == "true"
}

// InitMeow boots the whatsmeow client on the same Postgres instance the
// app uses. When no device is linked yet, the pairing QR code is printed
// and written to qrcode.png while the server keeps starting; sends stay
// unavailable until an admin scans it.
func InitMeow(ctx context.Context) (*whatsmeow.Client, error) {
	meowAddress := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))

	container, err := sqlstore.New(ctx, "postgres", meowAddress, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open whatsapp session store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load whatsapp device: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, nil)
	log := GetLogrusInstance()

	if client.Store.ID == nil {
		qrChan, _ := client.GetQRChannel(context.Background())
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect whatsapp client: %w", err)
		}

		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					log.Info("WhatsApp pairing required, scan the QR code below (also written to qrcode.png)")
					fmt.Println(evt.Code)
					if err := qrcode.WriteFile(evt.Code, qrcode.Medium, 256, "qrcode.png"); err != nil {
						log.Warnf("Failed to write pairing QR code image: %v", err)
					}
				} else {
					log.Infof("WhatsApp login event: %s", evt.Event)
				}
			}
		}()

		return client, nil
	}

	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect whatsapp client: %w", err)
	}
	log.Info("WhatsApp client connected")

	return client, nil
}

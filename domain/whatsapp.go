package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// NormalizeWhatsAppPhone reduces a phone number to the 91-prefixed digit
// string wa.me expects: strip every non-digit, then prepend the country
// code unless the digits already carry it.
func NormalizeWhatsAppPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "91") {
		return digits
	}
	return "91" + digits
}

// WhatsAppLink composes the wa.me deep link staff open to relay a
// message manually.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizeWhatsAppPhone(phone), url.QueryEscape(message))
}

func formatMessageDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// WelcomeMessage is the card-details notice sent right after a member is
// created.
func WelcomeMessage(member *Member) string {
	return fmt.Sprintf(`Hi %s,

Welcome to GAME_DEN🎮!

Here are your membership card details:

Name: %s
Card No: %s
Validity: %s to %s

OFFERS FOR MEMBERSHIP CARD HOLDERS:
                * 20%% discount.
                * Play 5 hour's &
                   get 1 time FREE…

TERMS AND CONDITIONS:
        * A purchased card may be used by any player;
however, only up to four (4) players may use the card at the same time.

If you have any questions or need assistance, feel free to reply to this message.

DM for booking 🕹
Instagram:
https://www.instagram.com/game_den__?igsh=MWk5eDhqenE4bGpldg%%3D%%3D&utm_source=qr

Thank you for joining us!
— GAME_DEN🎮!!`,
		member.FullName, member.FullName, member.CardNumber,
		formatMessageDate(member.ValidityStart), formatMessageDate(member.ValidityEnd))
}

// RenewalMessage is the notice sent after a validity reset.
func RenewalMessage(member *Member) string {
	return fmt.Sprintf(`Hi %s,

🎉 GREAT NEWS! Your GAME_DEN membership has been renewed! 🎮

Here are your updated membership details:

Name: %s
Card No: %s
New Validity: %s to %s

MEMBERSHIP BENEFITS CONTINUE:
                * 20%% discount on all games
                * Play 5 times & get 1 time FREE
                * Priority booking access

TERMS AND CONDITIONS:
        * A purchased card may be used by any player;
however, only up to four (4) players may use the card at the same time.

Thank you for renewing your membership with us! 🎮

Ready to game? DM for booking 🕹
Instagram:
https://www.instagram.com/game_den__?igsh=MWk5eDhqenE4bGpldg%%3D%%3D&utm_source=qr

— GAME_DEN Team 🎮!!`,
		member.FullName, member.FullName, member.CardNumber,
		formatMessageDate(member.ValidityStart), formatMessageDate(member.ValidityEnd))
}

// OTPMessage is the verification code staff relay over WhatsApp during
// registration.
func OTPMessage(code string, ttl time.Duration) string {
	return fmt.Sprintf(`Your GameDen verification code is: %s

This code will expire in %d minutes.

Please enter this code on the registration page to complete your membership.

- GameDen Team`, code, int(ttl.Minutes()))
}

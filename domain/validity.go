package domain

import (
	"fmt"
	"math"
	"time"
)

type ValidityStatus string

const (
	StatusActive   ValidityStatus = "active"
	StatusExpiring ValidityStatus = "expiring"
	StatusExpired  ValidityStatus = "expired"
)

// ValidityMonths is the length of a membership window in calendar months.
const ValidityMonths = 6

// ExpiringThresholdDays marks a membership as expiring when 30 or fewer
// days remain. The boundary at exactly 30 days is inclusive.
const ExpiringThresholdDays = 30

// NewValidityWindow returns the window for a membership starting now:
// exactly ValidityMonths calendar months.
func NewValidityWindow(now time.Time) (start, end time.Time) {
	return now, now.AddDate(0, ValidityMonths, 0)
}

// GetValidityStatus derives the membership state from its end time.
// Days remaining round up, so a window ending later today counts as one
// day left. An end time in the past is expired even when the remainder
// rounds to zero.
func GetValidityStatus(validityEnd, now time.Time) (ValidityStatus, int) {
	daysLeft := int(math.Ceil(validityEnd.Sub(now).Hours() / 24))
	switch {
	case validityEnd.Before(now):
		return StatusExpired, daysLeft
	case daysLeft <= ExpiringThresholdDays:
		return StatusExpiring, daysLeft
	default:
		return StatusActive, daysLeft
	}
}

// ValidityStatusText is the badge text shown next to a member.
func ValidityStatusText(validityEnd, now time.Time) string {
	status, daysLeft := GetValidityStatus(validityEnd, now)
	if status == StatusExpired {
		return "Expired"
	}
	return fmt.Sprintf("%d days left", daysLeft)
}

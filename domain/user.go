package domain

import (
	"context"
	"time"
)

// StaffUser is a lounge staff account. ConfirmedAt stays nil until the
// account's email is confirmed, which blocks login.
type StaffUser struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Email       string     `gorm:"type:varchar(255);not null;unique" json:"email" valid:"required~Email is required"`
	Password    string     `gorm:"type:varchar(72);not null" json:"-" valid:"required~Password is required"`
	Role        string     `gorm:"type:varchar(20);not null;default:staff" json:"role"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (StaffUser) TableName() string {
	return "staff_users"
}

type AuthRepo interface {
	Login(ctx context.Context, data *LoginRequest) (*StaffUser, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

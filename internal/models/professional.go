package models

import "time"

type Professional struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	SessionPrice float64 `json:"session_price"`

	ScheduleConfigurationID *string `gorm:"size:36" json:"schedule_configuration_id"`
	CancellationPolicyID    *string `gorm:"size:36" json:"cancellation_policy_id"`

	NotifyByEmail    bool `gorm:"default:true" json:"notify_by_email"`
	NotifyByWhatsApp bool `gorm:"default:false" json:"notify_by_whatsapp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

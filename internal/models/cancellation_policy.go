package models

import "time"

type CancellationPolicy struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ProfessionalID string `gorm:"size:36;uniqueIndex" json:"professional_id"`

	MinHoursBeforeCancellation   int     `json:"min_hours_before_cancellation"`
	MinDaysBeforeNextAppointment int     `json:"min_days_before_next_appointment"`
	CancellationFeePercentage    float64 `json:"cancellation_fee_percentage"`
	AllowReschedule              bool    `gorm:"default:true" json:"allow_reschedule"`
	Description                  string  `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

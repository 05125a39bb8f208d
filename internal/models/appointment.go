package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID string       `gorm:"size:36;index" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	StartDateTime time.Time `gorm:"index" json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`

	RescheduleStart *time.Time `json:"reschedule_start"`
	RescheduleEnd   *time.Time `json:"reschedule_end"`

	Modality string `gorm:"size:20" json:"modality"`
	Status   string `gorm:"size:20;default:'scheduled'" json:"status"`

	AgreedPrice   float64 `json:"agreed_price"`
	PaymentStatus string  `gorm:"size:20;default:'pending'" json:"payment_status"`
	IsPaid        bool    `gorm:"default:false" json:"is_paid"`

	StartedAt      *time.Time `json:"started_at"`
	TotalElapsedMs int64      `json:"total_elapsed_ms"`

	GoogleMeetLink         string `gorm:"size:255" json:"google_meet_link"`
	GoogleCalendarEventID  string `gorm:"size:255;index" json:"google_calendar_event_id"`
	SyncWithGoogleCalendar bool   `gorm:"default:false" json:"sync_with_google_calendar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type ScheduleConfiguration struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ProfessionalID string `gorm:"size:36;uniqueIndex" json:"professional_id"`

	// Comma-separated weekday integers (0-6), e.g. "1,2,3,4,5".
	WorkingDays string `gorm:"size:20" json:"working_days"`

	WorkStart string `gorm:"size:5" json:"work_start"`
	WorkEnd   string `gorm:"size:5" json:"work_end"`

	SessionDurationMinutes int `json:"session_duration_minutes"`
	BufferIntervalMinutes  int `json:"buffer_interval_minutes"`

	// Comma-separated dates in 2006-01-02 form.
	Holidays string `gorm:"type:text" json:"holidays"`

	EnableGoogleMeet       bool `gorm:"default:false" json:"enable_google_meet"`
	SyncWithGoogleCalendar bool `gorm:"default:false" json:"sync_with_google_calendar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

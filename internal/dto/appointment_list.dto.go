package dto

import "time"

type AppointmentListDTO struct {
	ID             string    `json:"id"`
	ClientID       string    `json:"client_id"`
	ProfessionalID string    `json:"professional_id"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status"`
	Modality       string    `json:"modality"`
	AgreedPrice    float64   `json:"agreed_price"`
	IsPaid         bool      `json:"is_paid"`
}

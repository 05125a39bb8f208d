package notification

import "context"

// Notification is the payload handed to a delivery transport. This core
// only builds it; delivery belongs to the sender implementations.
type Notification struct {
	RecipientID  string
	Title        string
	Content      string
	ReminderType string
}

const (
	TypeScheduled = "appointment_scheduled"
	TypeConfirmed = "appointment_confirmed"
	TypeCanceled  = "appointment_canceled"
	TypeReminder  = "appointment_reminder"
)

// Sender delivers a notification over one transport (e-mail, WhatsApp).
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

type SendNotification struct {
	sender Sender
}

func NewSendNotification(sender Sender) *SendNotification {
	return &SendNotification{sender: sender}
}

func (uc *SendNotification) Execute(ctx context.Context, n Notification) error {
	return uc.sender.Send(ctx, n)
}

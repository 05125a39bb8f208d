package notifier

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/MenteSaServices/clinic-scheduler/internal/config"
	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/logging"
	"github.com/MenteSaServices/clinic-scheduler/internal/usecase/notification"
)

// EmailSender delivers notifications over SMTP. The recipient id is
// resolved to an address through the client repository.
type EmailSender struct {
	clients domain.ClientRepository
	dialer  *gomail.Dialer
	from    string
	logger  *logging.Logger
}

func NewEmailSender(cfg *config.Config, clients domain.ClientRepository, logger *logging.Logger) *EmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &EmailSender{
		clients: clients,
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:    cfg.SMTPFrom,
		logger:  logger,
	}
}

func (s *EmailSender) Send(ctx context.Context, n notification.Notification) error {
	client, err := s.clients.FindByID(ctx, n.RecipientID)
	if err != nil || client == nil || client.Email == "" {
		// Clients without e-mail fall back to the WhatsApp channel, which
		// lives outside this service.
		s.logger.Warn("notification skipped, no e-mail on file",
			"recipient_id", n.RecipientID,
			"type", n.ReminderType,
		)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", client.Email)
	m.SetHeader("Subject", n.Title)
	m.SetBody("text/plain", n.Content)

	return s.dialer.DialAndSend(m)
}

// Compile-time check
var _ notification.Sender = (*EmailSender)(nil)

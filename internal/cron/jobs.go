package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"

	domain "github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/logging"
	"github.com/MenteSaServices/clinic-scheduler/internal/timezone"
	"github.com/MenteSaServices/clinic-scheduler/internal/usecase/notification"
)

// ReminderDedup claims the reminder slot for a key. A false return means
// another tick already claimed it.
type ReminderDedup interface {
	SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// RedisDedup backs ReminderDedup with a redis SETNX key, so the claim
// holds across overlapping ticks and across instances.
type RedisDedup struct {
	client *redis.Client
}

func NewRedisDedup(client *redis.Client) *RedisDedup {
	return &RedisDedup{client: client}
}

func (d *RedisDedup) SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return d.client.SetNX(ctx, key, 1, ttl).Result()
}

// Jobs runs the scheduled sweeps: session reminders for confirmed
// appointments starting within the next hour, and cancellation of unpaid
// appointments past the payment deadline.
type Jobs struct {
	appointments domain.Repository
	send         *notification.SendNotification
	dispatcher   *events.Dispatcher
	dedup        ReminderDedup
	logger       *logging.Logger

	paymentTimeout time.Duration
	now            func() time.Time
}

func New(
	appointments domain.Repository,
	send *notification.SendNotification,
	dispatcher *events.Dispatcher,
	dedup ReminderDedup,
	logger *logging.Logger,
	paymentTimeout time.Duration,
) *Jobs {
	if logger == nil {
		logger = logging.Default()
	}
	return &Jobs{
		appointments:   appointments,
		send:           send,
		dispatcher:     dispatcher,
		dedup:          dedup,
		logger:         logger,
		paymentTimeout: paymentTimeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Start registers both sweeps and starts the scheduler.
func (j *Jobs) Start() (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc("* * * * *", j.SendReminders); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc("*/10 * * * *", j.SweepPaymentTimeouts); err != nil {
		return nil, err
	}

	c.Start()
	j.logger.Info("cron jobs started")
	return c, nil
}

// SendReminders notifies clients of confirmed sessions starting in roughly
// one hour. The redis SETNX guard keeps overlapping ticks from sending the
// same reminder twice.
func (j *Jobs) SendReminders() {
	ctx := context.Background()
	now := j.now()

	appointments, err := j.appointments.FindConfirmedStartingBetween(
		ctx,
		now.Add(55*time.Minute),
		now.Add(65*time.Minute),
	)
	if err != nil {
		j.logger.Error("reminder sweep failed", "error", err)
		return
	}

	for _, ap := range appointments {
		key := fmt.Sprintf("reminder:sent:%s", ap.ID())

		ok, err := j.dedup.SetNX(ctx, key, 2*time.Hour)
		if err != nil {
			j.logger.Error("reminder dedup check failed", "appointment_id", ap.ID(), "error", err)
			continue
		}
		if !ok {
			continue
		}

		err = j.send.Execute(ctx, notification.Notification{
			RecipientID:  ap.ClientID(),
			Title:        "Lembrete de sessão",
			Content:      fmt.Sprintf("Sua sessão começa às %s.", ap.EffectiveStart().In(timezone.Location(timezone.DefaultTimezone)).Format("15:04")),
			ReminderType: notification.TypeReminder,
		})
		if err != nil {
			j.logger.Error("reminder delivery failed", "appointment_id", ap.ID(), "error", err)
			continue
		}

		j.logger.Info("reminder sent", "appointment_id", ap.ID())
	}
}

// SweepPaymentTimeouts cancels unpaid scheduled appointments older than the
// configured deadline.
func (j *Jobs) SweepPaymentTimeouts() {
	ctx := context.Background()
	cutoff := j.now().Add(-j.paymentTimeout)

	appointments, err := j.appointments.FindUnpaidScheduledCreatedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("payment timeout sweep failed", "error", err)
		return
	}

	for _, ap := range appointments {
		if err := ap.CancelDueToPaymentTimeout(); err != nil {
			j.logger.Error("payment timeout cancel rejected", "appointment_id", ap.ID(), "error", err)
			continue
		}

		if err := j.appointments.Save(ctx, ap); err != nil {
			j.logger.Error("payment timeout save failed", "appointment_id", ap.ID(), "error", err)
			continue
		}

		j.dispatcher.Dispatch(ctx, ap.PullEvents())

		j.logger.Info("unpaid appointment cancelled", "appointment_id", ap.ID())
	}
}

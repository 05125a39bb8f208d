package events

import (
	"context"
	"fmt"

	"github.com/MenteSaServices/clinic-scheduler/internal/domain/appointment"
	"github.com/MenteSaServices/clinic-scheduler/internal/logging"
)

// Handler reacts to one domain event. Returning an error marks the handler
// failed; it never affects the already-persisted transition.
type Handler func(ctx context.Context, ev appointment.Event) error

// Dispatcher is a process-local registry mapping event names to handlers.
// It is constructed once per process and injected; handlers register at
// startup. Dispatch runs handlers synchronously, in registration order, and
// isolates failures: delivery is at-most-once, best-effort, and
// non-transactional with the aggregate write.
type Dispatcher struct {
	handlers map[string][]Handler
	logger   *logging.Logger
}

func NewDispatcher(logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (d *Dispatcher) Register(eventName string, h Handler) {
	d.handlers[eventName] = append(d.handlers[eventName], h)
}

// Dispatch delivers each event to every handler registered for its name.
// A failing or panicking handler is logged and the remaining handlers still
// run.
func (d *Dispatcher) Dispatch(ctx context.Context, evs []appointment.Event) {
	for _, ev := range evs {
		for _, h := range d.handlers[ev.Name] {
			if err := d.run(ctx, h, ev); err != nil {
				d.logger.Error("event handler failed",
					"event", ev.Name,
					"appointment_id", ev.Appointment.ID(),
					"error", err,
				)
			}
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, h Handler, ev appointment.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, ev)
}

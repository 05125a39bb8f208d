package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/MenteSaServices/clinic-scheduler/internal/audit"
	"github.com/MenteSaServices/clinic-scheduler/internal/config"
	"github.com/MenteSaServices/clinic-scheduler/internal/cron"
	"github.com/MenteSaServices/clinic-scheduler/internal/domain/policy"
	"github.com/MenteSaServices/clinic-scheduler/internal/events"
	"github.com/MenteSaServices/clinic-scheduler/internal/handlers"
	infraNotifier "github.com/MenteSaServices/clinic-scheduler/internal/infra/notifier"
	infraRepo "github.com/MenteSaServices/clinic-scheduler/internal/infra/repository"
	"github.com/MenteSaServices/clinic-scheduler/internal/lock"
	"github.com/MenteSaServices/clinic-scheduler/internal/logging"
	"github.com/MenteSaServices/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/MenteSaServices/clinic-scheduler/internal/usecase/appointment"
	ucCalendar "github.com/MenteSaServices/clinic-scheduler/internal/usecase/calendar"
	ucNotification "github.com/MenteSaServices/clinic-scheduler/internal/usecase/notification"
	ucPolicy "github.com/MenteSaServices/clinic-scheduler/internal/usecase/policy"
	ucSchedule "github.com/MenteSaServices/clinic-scheduler/internal/usecase/schedule"
)

// Deps carries the process-wide collaborators main constructs once.
type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   *logging.Logger
	Calendar ucCalendar.Client
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) *cron.Jobs {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)
	clientRepo := infraRepo.NewClientGormRepository(deps.DB)
	professionalRepo := infraRepo.NewProfessionalGormRepository(deps.DB)
	scheduleRepo := infraRepo.NewScheduleGormRepository(deps.DB)
	policyRepo := infraRepo.NewPolicyGormRepository(deps.DB)

	locks := lock.NewKeyed()
	dispatcher := events.NewDispatcher(deps.Logger)

	// ======================================================
	// EVENT SUBSCRIBERS
	// ======================================================
	sender := infraNotifier.NewEmailSender(cfg, clientRepo, deps.Logger)
	sendNotification := ucNotification.NewSendNotification(sender)

	ucNotification.NewSubscriber(sendNotification).RegisterOn(dispatcher)

	if deps.Calendar != nil {
		ucCalendar.NewSyncAppointment(appointmentRepo, deps.Calendar).RegisterOn(dispatcher)
	}

	audit.New(deps.DB).RegisterOn(dispatcher)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		scheduleRepo,
		locks,
		dispatcher,
		time.Duration(cfg.BookingMinLeadHours)*time.Hour,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		policyRepo,
		policy.NoFee{},
		dispatcher,
		deps.Logger,
	)

	confirmUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		dispatcher,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		policyRepo,
		locks,
		dispatcher,
	)

	lifecycleUC := ucAppointment.NewSessionLifecycle(
		appointmentRepo,
		professionalRepo,
		dispatcher,
	)

	nextUC := ucAppointment.NewScheduleNextAppointment(
		appointmentRepo,
		clientRepo,
		professionalRepo,
		scheduleRepo,
		policyRepo,
		locks,
		dispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, scheduleRepo)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// USE CASES — CONFIGURATION
	// ======================================================
	createScheduleUC := ucSchedule.NewCreateConfiguration(scheduleRepo, professionalRepo)
	editScheduleUC := ucSchedule.NewEditConfiguration(scheduleRepo)

	createPolicyUC := ucPolicy.NewCreatePolicy(policyRepo, professionalRepo)
	editPolicyUC := ucPolicy.NewEditPolicy(policyRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.DB, cfg)
	meHandler := handlers.NewMeHandler(deps.DB)
	clientHandler := handlers.NewClientHandler(deps.DB, listUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		cancelUC,
		confirmUC,
		rescheduleUC,
		lifecycleUC,
		nextUC,
		listUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	scheduleHandler := handlers.NewScheduleHandler(createScheduleUC, editScheduleUC)
	policyHandler := handlers.NewPolicyHandler(createPolicyUC, editPolicyUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC (client-facing; called by the WhatsApp front-end)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.POST("/clients", clientHandler.Create)
			publicAPI.GET("/clients/:id/appointments", clientHandler.ListAppointments)

			publicAPI.GET("/professionals/:id/availability", availabilityHandler.Get)

			publicAPI.POST("/appointments", appointmentHandler.Create)
			publicAPI.POST("/appointments/next", appointmentHandler.ScheduleNext)
			publicAPI.PATCH("/appointments/:id/cancel", appointmentHandler.PublicCancel)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE (professional)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/schedule-configuration", scheduleHandler.Create)
			secured.PATCH("/me/schedule-configuration", scheduleHandler.Edit)

			secured.POST("/me/cancellation-policy", policyHandler.Create)
			secured.PATCH("/me/cancellation-policy", policyHandler.Edit)

			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/me/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/me/appointments/:id/pause", appointmentHandler.Pause)
			secured.PATCH("/me/appointments/:id/resume", appointmentHandler.Resume)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}

	// ======================================================
	// SCHEDULED JOBS
	// ======================================================
	jobs := cron.New(
		appointmentRepo,
		sendNotification,
		dispatcher,
		cron.NewRedisDedup(deps.Redis),
		deps.Logger,
		time.Duration(cfg.PaymentTimeoutHours)*time.Hour,
	)

	return jobs
}

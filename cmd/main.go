package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/confirm_booking"
	createAvailabilityRuleHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/create_availability_rule"
	createBlockedSlotHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/create_blocked_slot"
	createBookingHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/create_booking"
	declineBookingHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/decline_booking"
	deleteAvailabilityRuleHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/delete_availability_rule"
	deleteBlockedSlotHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/delete_blocked_slot"
	getAvailabilityHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/get_booking"
	getCoachBookingsHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/get_coach_bookings"
	getUserBookingsHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/get_user_bookings"
	listBlockedSlotsHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/list_blocked_slots"
	listNotificationsHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/list_notifications"
	markAllNotificationsReadHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/mark_notification_read"
	setAvailabilityRuleHandler "github.com/ninoramishvili/OXY-CoachBooking/internal/api/handlers/set_availability_rule"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/api/middleware"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/config"
	availabilityRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/availability"
	bookingRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/booking"
	notificationRepo "github.com/ninoramishvili/OXY-CoachBooking/internal/infra/storage/notification"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/integrations/coachcatalog"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/jobs"
	availabilityService "github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability"
	bookingsService "github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings"
	notificationsService "github.com/ninoramishvili/OXY-CoachBooking/internal/service/notifications"
	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/schedule"
	createBookingUC "github.com/ninoramishvili/OXY-CoachBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/ninoramishvili/OXY-CoachBooking/internal/usecase/get_available_slots"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/dbmetrics"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/logger"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/metrics"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting OXY-CoachBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// При выключенных метриках collector остается nil, обёртки работают без замеров
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем клиент каталога коучей
	var catalogClient createBookingUC.CoachCatalogClient = coachcatalog.AllowAll{}
	if cfg.CoachCatalog.Enabled {
		catalogClient = coachcatalog.NewClient(
			cfg.CoachCatalog.URL,
			time.Duration(cfg.CoachCatalog.Timeout)*time.Second,
			log,
		)
		log.Info("Coach catalog client initialized (url=%s, timeout=%ds)",
			cfg.CoachCatalog.URL, cfg.CoachCatalog.Timeout)
	} else {
		log.Warn("Coach catalog disabled, coach existence is not checked")
	}

	transitions := metrics.NewTransitionRecorder(metricsCollector, cfg.Metrics.ServiceName)

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	generator := schedule.NewGenerator(availabilityRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		notificationSvc,
		transitions,
		bookingsService.Options{
			DefaultDeclineReason: cfg.Booking.DefaultDeclineReason,
			DefaultCancelReason:  cfg.Booking.DefaultCancelReason,
		},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		generator,
		catalogClient,
		notificationSvc,
		transitions,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		generator,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	declineBooking := declineBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCoachBookings := getCoachBookingsHandler.NewHandler(bookingSvc, log)

	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailabilityRule := createAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	setAvailabilityRule := setAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	deleteAvailabilityRule := deleteAvailabilityRuleHandler.NewHandler(availabilitySvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(availabilitySvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(availabilitySvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(availabilitySvc, log)

	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)

	// Фоновые задачи
	scheduler := jobs.NewScheduler(log)
	if cfg.Jobs.ExpirePendingEnabled {
		expireJob := jobs.NewExpirePendingJob(bookingSvc, log)
		if err := scheduler.Schedule("expire_pending", cfg.Jobs.ExpirePendingSpec, expireJob); err != nil {
			log.Fatal("Failed to schedule jobs: %v", err)
		}
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Слоты коуча на дату; с X-User-ID свои заявки помечаются mine=true
	public.HandleFunc("/coaches/{coachId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание и блокировки коуча
	public.HandleFunc("/coaches/{coachId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	public.HandleFunc("/coaches/{coachId}/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/decline", declineBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для коуча) ---
	protected.HandleFunc("/coaches/{coachId}/bookings", getCoachBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/coaches/{coachId}/availability", createAvailabilityRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coaches/{coachId}/availability/{dayOfWeek:[0-9]+}", setAvailabilityRule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/coaches/{coachId}/availability/{dayOfWeek:[0-9]+}", deleteAvailabilityRule.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/coaches/{coachId}/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/coaches/{coachId}/blocked-slots/{blockedSlotId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	// read-all регистрируется раньше {notificationId}/read
	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{notificationId:[0-9]+}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	scheduler.Start()

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем фоновые задачи
	scheduler.Stop(shutdownCtx)

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}

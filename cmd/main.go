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

	cancelAppointmentHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/get_appointment"
	getCalendarHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/get_calendar"
	getUserAppointmentsHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/get_user_appointments"
	rescheduleAppointmentHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/reschedule_appointment"
	scheduleCourtesyHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/schedule_courtesy"
	updateStatusHandler "github.com/m04kA/CSC-AppointmentService/internal/api/handlers/update_status"
	"github.com/m04kA/CSC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/CSC-AppointmentService/internal/config"
	"github.com/m04kA/CSC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/CSC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/CSC-AppointmentService/internal/infra/subscription"
	notifyServiceClient "github.com/m04kA/CSC-AppointmentService/internal/integrations/notifyservice"
	"github.com/m04kA/CSC-AppointmentService/internal/notifier"
	appointmentsService "github.com/m04kA/CSC-AppointmentService/internal/service/appointments"
	createAppointmentUC "github.com/m04kA/CSC-AppointmentService/internal/usecase/create_appointment"
	getCalendarUC "github.com/m04kA/CSC-AppointmentService/internal/usecase/get_calendar"
	rescheduleAppointmentUC "github.com/m04kA/CSC-AppointmentService/internal/usecase/reschedule_appointment"
	scheduleCourtesyUC "github.com/m04kA/CSC-AppointmentService/internal/usecase/schedule_courtesy"
	"github.com/m04kA/CSC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/CSC-AppointmentService/pkg/logger"
	"github.com/m04kA/CSC-AppointmentService/pkg/metrics"
	"github.com/m04kA/CSC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/CSC-AppointmentService/pkg/txmanager"
)

// TxManager общий интерфейс transaction manager для usecases и сервисов
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting CSC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Клиент сервиса уведомлений
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify service client initialized (url=%s, timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		repository *appointmentRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Правила календаря и детектор конфликтов из конфигурации
	rules := domain.NewCalendarRules(cfg.Scheduling.Holidays, cfg.Scheduling.MaxDailyAppointments)
	detector := domain.NewConflictDetector(cfg.Scheduling.TimeSlotConflictMinutes)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(repository, txMgr, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(repository, rules, detector, txMgr, log)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(repository, rules, detector, txMgr, log)
	scheduleCourtesyUseCase := scheduleCourtesyUC.NewUseCase(repository, txMgr, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(repository, rules, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	scheduleCourtesy := scheduleCourtesyHandler.NewHandler(scheduleCourtesyUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// USER ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание записи (включая courtesy-запрос без слота)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи на другой слот
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// Месячный календарь с состоянием ячеек
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-ID header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth)

	// Смена статуса записи по таблице переходов
	staff.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Назначение слота courtesy-запросу
	staff.HandleFunc("/appointments/{appointmentId}/schedule", scheduleCourtesy.Handle).Methods(http.MethodPatch)

	// Live-подписка на изменения записей + диспетчер уведомлений
	subCtx, subCancel := context.WithCancel(context.Background())
	defer subCancel()

	listener := subscription.NewListener(
		cfg.Database.DSN(),
		repository,
		time.Duration(cfg.Scheduling.PollInterval)*time.Second,
		log,
	)
	var changeNotifier *notifier.Notifier
	if cfg.Metrics.Enabled {
		changeNotifier = notifier.New(notifyClient, metricsCollector, log)
	} else {
		changeNotifier = notifier.New(notifyClient, nil, log)
	}

	go func() {
		if err := listener.Run(subCtx); err != nil && subCtx.Err() == nil {
			log.Error("Subscription listener stopped: %v", err)
		}
	}()
	go changeNotifier.Run(subCtx, listener.Snapshots())
	log.Info("Change notifier started (poll_interval=%ds)", cfg.Scheduling.PollInterval)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	// Останавливаем подписку и уведомления
	subCancel()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

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

	createAppointmentHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/create_appointment"
	createBlockedDateHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/create_blocked_date"
	createServiceHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/create_service"
	createSettingHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/create_setting"
	createWorkingHoursHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/create_working_hours"
	deleteAppointmentHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/delete_appointment"
	deleteBlockedDateHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/delete_blocked_date"
	deleteServiceHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/delete_service"
	deleteSettingHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/delete_setting"
	deleteWorkingHoursHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/delete_working_hours"
	getAppointmentHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/get_availability"
	getDashboardStatsHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/get_dashboard_stats"
	getServiceHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/get_service"
	getSettingHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/get_setting"
	listAppointmentsHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/list_appointments"
	listBlockedDatesHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/list_blocked_dates"
	listServicesHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/list_services"
	listSettingsHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/list_settings"
	listWorkingHoursHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/list_working_hours"
	sendTelegramMessageHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/send_telegram_message"
	updateAppointmentHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/update_appointment"
	updateServiceHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/update_service"
	updateSettingHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/update_setting"
	updateWorkingHoursHandler "github.com/primobarber/PB-BookingService/internal/api/handlers/update_working_hours"
	"github.com/primobarber/PB-BookingService/internal/api/middleware"
	"github.com/primobarber/PB-BookingService/internal/config"
	appointmentRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/service"
	settingRepo "github.com/primobarber/PB-BookingService/internal/infra/storage/setting"
	telegramClient "github.com/primobarber/PB-BookingService/internal/integrations/telegram"
	appointmentsService "github.com/primobarber/PB-BookingService/internal/service/appointments"
	catalogService "github.com/primobarber/PB-BookingService/internal/service/catalog"
	dashboardService "github.com/primobarber/PB-BookingService/internal/service/dashboard"
	scheduleService "github.com/primobarber/PB-BookingService/internal/service/schedule"
	settingsService "github.com/primobarber/PB-BookingService/internal/service/settings"
	createAppointmentUC "github.com/primobarber/PB-BookingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/primobarber/PB-BookingService/internal/usecase/get_availability"
	"github.com/primobarber/PB-BookingService/migrations"
	"github.com/primobarber/PB-BookingService/pkg/dbmetrics"
	"github.com/primobarber/PB-BookingService/pkg/logger"
	"github.com/primobarber/PB-BookingService/pkg/metrics"
	"github.com/primobarber/PB-BookingService/pkg/txmanager"
)

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

	log.Info("Starting PB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Накатываем миграции
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database schema is up to date")

	// Инициализируем телеграм-клиент (без токена работает вхолостую)
	tgClient, err := telegramClient.New(cfg.Telegram.BotToken, log)
	if err != nil {
		log.Fatal("Failed to initialize telegram client: %v", err)
	}

	// Оборачиваем соединение: при выключенных метриках обёртка прозрачна
	wrappedDB := dbmetrics.Wrap(db, metricsCollector, stopMetricsCh)
	if cfg.Metrics.Enabled {
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	settingRepository := settingRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	settingsSvc := settingsService.NewService(settingRepository, log)
	dashboardSvc := dashboardService.NewService(
		appointmentRepository,
		serviceRepository,
		dashboardService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		serviceRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listWorkingHours := listWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createWorkingHours := createWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(scheduleSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(scheduleSvc, log)
	createBlockedDate := createBlockedDateHandler.NewHandler(scheduleSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(scheduleSvc, log)
	listSettings := listSettingsHandler.NewHandler(settingsSvc, log)
	getSetting := getSettingHandler.NewHandler(settingsSvc, log)
	createSetting := createSettingHandler.NewHandler(settingsSvc, log)
	updateSetting := updateSettingHandler.NewHandler(settingsSvc, log)
	deleteSetting := deleteSettingHandler.NewHandler(settingsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(dashboardSvc, log)
	sendTelegramMessage := sendTelegramMessageHandler.NewHandler(tgClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.CORS)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Информация о сервисе
	api.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"PB-BookingService","status":"running"}`))
	}).Methods(http.MethodGet)

	// Health check с проверкой соединения с БД
	api.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(req.Context()); err != nil {
			log.Error("Health check: database ping failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unhealthy"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Доступность слотов
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Записи клиентов
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/services/{id}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

	// Рабочие часы
	api.HandleFunc("/working-hours", listWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours", createWorkingHours.Handle).Methods(http.MethodPost)
	api.HandleFunc("/working-hours/{dayOfWeek}", updateWorkingHours.Handle).Methods(http.MethodPut)
	api.HandleFunc("/working-hours/{dayOfWeek}", deleteWorkingHours.Handle).Methods(http.MethodDelete)

	// Заблокированные даты
	api.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/blocked-dates/{date}", deleteBlockedDate.Handle).Methods(http.MethodDelete)

	// Настройки
	api.HandleFunc("/settings", listSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", createSetting.Handle).Methods(http.MethodPost)
	api.HandleFunc("/settings/{key}", getSetting.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/{key}", updateSetting.Handle).Methods(http.MethodPut)
	api.HandleFunc("/settings/{key}", deleteSetting.Handle).Methods(http.MethodDelete)

	// Дашборд и телеграм
	api.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/telegram/send", sendTelegramMessage.Handle).Methods(http.MethodPost)

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

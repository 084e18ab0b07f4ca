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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/appointments"
	cashRegisterHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cash_register"
	catalogHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/catalog"
	clientsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/clients"
	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	importContactsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/import_contacts"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	cashRegisterService "github.com/m04kA/SMC-SalonService/internal/service/cashregister"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-SalonService/internal/service/clients"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	importContactsUC "github.com/m04kA/SMC-SalonService/internal/usecase/import_contacts"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("SALON_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from %s", configPath)

	schedule, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	log.Info("Schedule: %s-%s every %d min, timezone=%s",
		schedule.Open, schedule.Close, schedule.Granularity(), schedule.Location)

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

	// Обёртка над БД: без метрик работает как обычный *sql.DB
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txMgr, schedule.Location, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	clientSvc := clientsService.NewService(clientRepository, log)
	cashRegisterSvc := cashRegisterService.NewService(appointmentRepository, schedule.Location, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		schedule,
		metricsCollector,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		clientRepository,
		txMgr,
		schedule,
		log,
	)

	importContactsUseCase := importContactsUC.NewUseCase(clientRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, schedule.Location, log)
	appointments := appointmentsHandler.NewHandler(appointmentSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	clients := clientsHandler.NewHandler(clientSvc, log)
	importContacts := importContactsHandler.NewHandler(importContactsUseCase, log)
	cashRegister := cashRegisterHandler.NewHandler(cashRegisterSvc, schedule.Location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RecoveryMiddleware(log), middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Свободное время ---
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", appointments.GetDay).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", appointments.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", appointments.Update).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}", appointments.Delete).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	api.HandleFunc("/services", catalog.List).Methods(http.MethodGet)
	api.HandleFunc("/services", catalog.Create).Methods(http.MethodPost)
	api.HandleFunc("/services/{serviceId}", catalog.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", catalog.Update).Methods(http.MethodPut)
	api.HandleFunc("/services/{serviceId}", catalog.Delete).Methods(http.MethodDelete)

	// --- Клиенты ---
	// /clients/import регистрируется раньше /clients/{clientId}
	api.HandleFunc("/clients/import", importContacts.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", clients.Search).Methods(http.MethodGet)
	api.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", clients.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", clients.Update).Methods(http.MethodPut)
	api.HandleFunc("/clients/{clientId}", clients.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{clientId}/appointments", appointments.GetClientAppointments).Methods(http.MethodGet)

	// --- Касса ---
	api.HandleFunc("/cash-register", cashRegister.Handle).Methods(http.MethodGet)

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

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

	analyticsHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/analytics"
	bookAppointmentHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/book_appointment"
	deleteAppointmentHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/delete_appointment"
	doctorDashboardHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/doctor_dashboard"
	doctorReportHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/doctor_report"
	getAvailableSlotsHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/get_available_slots"
	getSlipHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/get_slip"
	healthHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/list_appointments"
	listCitiesHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/list_cities"
	listDoctorsHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/list_doctors"
	listHospitalsHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/list_hospitals"
	listStatesHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/list_states"
	loginHandler "github.com/m04kA/HMS-AppointmentService/internal/api/handlers/login"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/config"
	"github.com/m04kA/HMS-AppointmentService/internal/infra/directory"
	appointmentRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/appointment"
	userRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/user"
	appointmentsService "github.com/m04kA/HMS-AppointmentService/internal/service/appointments"
	authService "github.com/m04kA/HMS-AppointmentService/internal/service/auth"
	"github.com/m04kA/HMS-AppointmentService/internal/service/slip"
	bookAppointmentUC "github.com/m04kA/HMS-AppointmentService/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/m04kA/HMS-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/HMS-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/HMS-AppointmentService/pkg/logger"
	"github.com/m04kA/HMS-AppointmentService/pkg/metrics"
	"github.com/m04kA/HMS-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-AppointmentService/pkg/txmanager"
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

	log.Info("Starting HMS-AppointmentService...")
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

	// Загружаем справочник госпиталей и сетку слотов
	dirStore, err := directory.Load(cfg.Directory.File)
	if err != nil {
		log.Fatal("Failed to load directory: %v", err)
	}
	log.Info("Directory loaded from %s (%d states, %d slots in template)",
		cfg.Directory.File, len(dirStore.States()), len(dirStore.SlotTemplate()))

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	slipRenderer := slip.NewRenderer()

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		dirStore,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		dirStore,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	listStates := listStatesHandler.NewHandler(dirStore, log)
	listCities := listCitiesHandler.NewHandler(dirStore, log)
	listHospitals := listHospitalsHandler.NewHandler(dirStore, log)
	listDoctors := listDoctorsHandler.NewHandler(dirStore, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	doctorReport := doctorReportHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	doctorDashboard := doctorDashboardHandler.NewHandler(appointmentSvc, log)
	analytics := analyticsHandler.NewHandler(appointmentSvc, log)
	getSlip := getSlipHandler.NewHandler(appointmentSvc, slipRenderer, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Служебные
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Аутентификация
	r.HandleFunc("/login_user", login.Handle).Methods(http.MethodPost)

	// Справочник: штаты, города, госпитали, врачи
	r.HandleFunc("/states", listStates.Handle).Methods(http.MethodGet)
	r.HandleFunc("/cities/{state}", listCities.Handle).Methods(http.MethodGet)
	r.HandleFunc("/hospitals", listHospitals.Handle).Methods(http.MethodPost)
	r.HandleFunc("/doctors/{department}", listDoctors.Handle).Methods(http.MethodGet)

	// Слоты и бронирование
	r.HandleFunc("/available_slots", getAvailableSlots.Handle).Methods(http.MethodPost)
	r.HandleFunc("/book", bookAppointment.Handle).Methods(http.MethodPost)

	// Талон бронирования (ID выдается только при создании)
	r.HandleFunc("/pdf/{id}", getSlip.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// --- Администратор ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/report", doctorReport.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/delete/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/analytics_data", analytics.Handle).Methods(http.MethodGet)

	// --- Врач ---
	protected.HandleFunc("/doctor_dashboard", doctorDashboard.Handle).Methods(http.MethodGet)

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

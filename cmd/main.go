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

	cancelAppointmentHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/create_appointment"
	createProfessionalHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/create_professional"
	createServiceHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/create_service"
	getAvailableSlotsHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/get_available_slots"
	getProfessionalHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/get_professional"
	getServiceHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/get_service"
	listAppointmentsHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/list_appointments"
	listProfessionalsHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/list_services"
	removeProfessionalHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/remove_professional"
	removeServiceHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/remove_service"
	resolveClientHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/resolve_client"
	updateProfessionalHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/update_professional"
	updateServiceHandler "github.com/lucasmrqs/EAS-BookingService/internal/api/handlers/update_service"
	"github.com/lucasmrqs/EAS-BookingService/internal/api/middleware"
	"github.com/lucasmrqs/EAS-BookingService/internal/config"
	appointmentRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/lucasmrqs/EAS-BookingService/internal/infra/storage/client"
	appointmentsService "github.com/lucasmrqs/EAS-BookingService/internal/service/appointments"
	catalogService "github.com/lucasmrqs/EAS-BookingService/internal/service/catalog"
	clientsService "github.com/lucasmrqs/EAS-BookingService/internal/service/clients"
	createAppointmentUC "github.com/lucasmrqs/EAS-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/lucasmrqs/EAS-BookingService/internal/usecase/get_available_slots"
	removeProfessionalUC "github.com/lucasmrqs/EAS-BookingService/internal/usecase/remove_professional"
	removeServiceUC "github.com/lucasmrqs/EAS-BookingService/internal/usecase/remove_service"
	"github.com/lucasmrqs/EAS-BookingService/pkg/dbmetrics"
	"github.com/lucasmrqs/EAS-BookingService/pkg/logger"
	"github.com/lucasmrqs/EAS-BookingService/pkg/metrics"
	"github.com/lucasmrqs/EAS-BookingService/pkg/simpletxmanager"
	"github.com/lucasmrqs/EAS-BookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EAS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager, with or without metrics.
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		appointmentRepository  *appointmentRepo.Repository
		serviceRepository      *catalogRepo.ServiceRepository
		professionalRepository *catalogRepo.ProfessionalRepository
		clientRepository       *clientRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = catalogRepo.NewServiceRepository(wrappedDB)
		professionalRepository = catalogRepo.NewProfessionalRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = catalogRepo.NewServiceRepository(db)
		professionalRepository = catalogRepo.NewProfessionalRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services.
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	clientsSvc := clientsService.NewService(clientRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, professionalRepository, log)

	// Use cases.
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		professionalRepository,
		serviceRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		professionalRepository,
		serviceRepository,
		txMgr,
		log,
	)
	removeServiceUseCase := removeServiceUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		txMgr,
		log,
	)
	removeProfessionalUseCase := removeProfessionalUC.NewUseCase(
		professionalRepository,
		appointmentRepository,
		txMgr,
		log,
	)

	// Handlers.
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	resolveClient := resolveClientHandler.NewHandler(clientsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	removeService := removeServiceHandler.NewHandler(removeServiceUseCase, log)
	listProfessionals := listProfessionalsHandler.NewHandler(catalogSvc, log)
	getProfessional := getProfessionalHandler.NewHandler(catalogSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(catalogSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(catalogSvc, log)
	removeProfessional := removeProfessionalHandler.NewHandler(removeProfessionalUseCase, log)

	// Router.
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}", getProfessional.Handle).Methods(http.MethodGet)

	api.HandleFunc("/clients/resolve", resolveClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", removeService.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{professionalId}", updateProfessional.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}", removeProfessional.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown.
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

	log.Info("Server stopped")
}

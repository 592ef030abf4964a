package main

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/delivery/http/routers"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/app/drivers/messaging"
	"hospital-service/internal/app/drivers/storage"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/auth"
	"hospital-service/internal/app/services/core/billings"
	"hospital-service/internal/app/services/core/dashboard"
	"hospital-service/internal/app/services/core/doctors"
	"hospital-service/internal/app/services/core/lookups"
	medicalRecords "hospital-service/internal/app/services/core/medical_records"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/app/services/core/prescriptions"
	"hospital-service/internal/app/services/core/session"
	"hospital-service/internal/app/services/core/staff"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/app/services/shared/events"
	"hospital-service/internal/app/services/shared/locker"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/app/services/shared/rbac"
	redisRepo "hospital-service/internal/app/services/shared/redis"
	storageSvc "hospital-service/internal/app/services/shared/storage"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

// Version and Tag are overridden at build time through -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig(".")
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	zapLogger.Info("Starting hospital service",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	storage.EnsureBucket(minioClient, internalConfig.Minio.BucketName)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if internalConfig.RabbitMQ.EventsEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
		messaging.DeclareEventExchange(bootstrap.RabbitMQ, internalConfig.RabbitMQ.EventExchange)
	}

	if internalConfig.App.RunMigrationsOnStartup {
		applied, err := database.RunMigrations(postgresDB, migrate.Up)
		if err != nil {
			log.Fatalf("Error executing migration: %v", err)
		}
		zapLogger.Info("Migrations applied", zap.Int("count", applied))
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	zapLogger.Info("Server listening", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, log)
	lockerService := locker.NewLockService(redisRepository, log)
	minioStorage := storageSvc.NewMinioStorage(bootstrap.Minio)
	collector := metrics.NewCollector()

	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.EventExchange, log)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	} else {
		eventPublisher = events.NewNoopEventPublisher(log)
	}
	eventPublisher = metrics.WrapPublisher(eventPublisher, collector)

	enforcer, err := rbac.NewEnforcer(internalConfig.Casbin)
	if err != nil {
		return err
	}

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB, log)
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB, log)
	doctorRepository := doctors.NewDoctorPostgresRepository(bootstrap.PostgresDB, log)
	staffRepository := staff.NewStaffPostgresRepository(bootstrap.PostgresDB, log)
	specializationRepository := lookups.NewSpecializationPostgresRepository(bootstrap.PostgresDB, log)
	departmentRepository := lookups.NewDepartmentPostgresRepository(bootstrap.PostgresDB, log)
	clinicRepository := lookups.NewClinicPostgresRepository(bootstrap.PostgresDB, log)
	appointmentRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB, log)
	medicalRecordRepository := medicalRecords.NewMedicalRecordPostgresRepository(bootstrap.PostgresDB, log)
	prescriptionRepository := prescriptions.NewPrescriptionPostgresRepository(bootstrap.PostgresDB, log)
	billingRepository := billings.NewBillingPostgresRepository(bootstrap.PostgresDB, log)
	dashboardRepository := dashboard.NewDashboardPostgresRepository(bootstrap.PostgresDB, log)

	// Usecases
	lookupTTL := time.Duration(internalConfig.Cache.LookupTTLInMinutes) * time.Minute
	dashboardTTL := time.Duration(internalConfig.Cache.DashboardTTLInSeconds) * time.Second

	authUsecase := auth.NewAuthUsecase(userRepository, patientRepository, doctorRepository, staffRepository, sessionService, internalConfig, log)
	userUsecase := users.NewUserUsecase(userRepository, doctorRepository, staffRepository, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, log)
	staffUsecase := staff.NewStaffUsecase(staffRepository, log)
	specializationUsecase := lookups.NewSpecializationUsecase(specializationRepository, redisRepository, lookupTTL, log)
	departmentUsecase := lookups.NewDepartmentUsecase(departmentRepository, redisRepository, lookupTTL, log)
	clinicUsecase := lookups.NewClinicUsecase(clinicRepository, redisRepository, lookupTTL, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, doctorRepository, patientRepository, eventPublisher, log)
	medicalRecordUsecase := medicalRecords.NewMedicalRecordUsecase(medicalRecordRepository, patientRepository, doctorRepository, minioStorage, internalConfig, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, medicalRecordRepository, patientRepository, doctorRepository, log)
	billingUsecase := billings.NewBillingUsecase(billingRepository, patientRepository, appointmentRepository, eventPublisher, log)
	dashboardUsecase := dashboard.NewDashboardUsecase(dashboardRepository, appointmentRepository, patientRepository, redisRepository, dashboardTTL, log)

	// Workers
	if internalConfig.Worker.NoShowEnabled {
		noShowWorker := appointments.NewNoShowWorker(log, internalConfig, lockerService, appointmentUsecase)
		noShowWorker.Start(context.Background())
		bootstrap.WorkerStop = noShowWorker.Stop
	}

	middlewares := middlewares.NewMiddlewares(log, sessionService, enforcer, collector, internalConfig)

	routers.SetupRoutes(bootstrap.Router, log, internalConfig, middlewares, collector, routers.Controllers{
		Health: controllers.NewHealthController(log, map[string]controllers.Pinger{
			"postgres": bootstrap.PostgresDB,
			"redis":    redisPinger{client: bootstrap.Redis},
		}),
		Auth:           controllers.NewAuthController(log, authUsecase),
		User:           controllers.NewUserController(log, userUsecase),
		Patient:        controllers.NewPatientController(log, patientUsecase),
		Doctor:         controllers.NewDoctorController(log, doctorUsecase, appointmentUsecase),
		Staff:          controllers.NewStaffController(log, staffUsecase),
		Specialization: controllers.NewSpecializationController(log, specializationUsecase),
		Department:     controllers.NewDepartmentController(log, departmentUsecase),
		Clinic:         controllers.NewClinicController(log, clinicUsecase),
		Appointment:    controllers.NewAppointmentController(log, appointmentUsecase),
		MedicalRecord:  controllers.NewMedicalRecordController(log, medicalRecordUsecase),
		Prescription:   controllers.NewPrescriptionController(log, prescriptionUsecase),
		Billing:        controllers.NewBillingController(log, billingUsecase),
		Dashboard:      controllers.NewDashboardController(log, dashboardUsecase),
	})

	return nil
}

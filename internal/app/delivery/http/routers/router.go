package routers

import (
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/shared/metrics"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Controllers struct {
	Health         *controllers.HealthController
	Auth           *controllers.AuthController
	User           *controllers.UserController
	Patient        *controllers.PatientController
	Doctor         *controllers.DoctorController
	Staff          *controllers.StaffController
	Specialization *controllers.SpecializationController
	Department     *controllers.DepartmentController
	Clinic         *controllers.ClinicController
	Appointment    *controllers.AppointmentController
	MedicalRecord  *controllers.MedicalRecordController
	Prescription   *controllers.PrescriptionController
	Billing        *controllers.BillingController
	Dashboard      *controllers.DashboardController
}

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	collector *metrics.Collector,
	ctrls Controllers,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.NotFound(middlewares.NotFound)
	router.MethodNotAllowed(middlewares.MethodNotAllowed)

	if ctrls.Health != nil {
		router.Get("/healthz", ctrls.Health.Check)
	}
	if internalConfig.Metrics.Enabled && collector != nil {
		metricsPath := internalConfig.Metrics.Path
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		router.Method(http.MethodGet, metricsPath, collector.Handler())
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, ctrls.User)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, ctrls.Patient)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, ctrls.Doctor)
			})

			r.Route("/staff", func(r chi.Router) {
				attachStaffRoutes(r, middlewares, ctrls.Staff)
			})

			r.Route("/specializations", func(r chi.Router) {
				attachSpecializationRoutes(r, middlewares, ctrls.Specialization)
			})

			r.Route("/departments", func(r chi.Router) {
				attachDepartmentRoutes(r, middlewares, ctrls.Department)
			})

			r.Route("/clinics", func(r chi.Router) {
				attachClinicRoutes(r, middlewares, ctrls.Clinic)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, ctrls.Appointment)
			})

			r.Route("/medical-records", func(r chi.Router) {
				attachMedicalRecordRoutes(r, middlewares, ctrls.MedicalRecord)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, ctrls.Prescription)
			})

			r.Route("/billings", func(r chi.Router) {
				attachBillingRoutes(r, middlewares, ctrls.Billing)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, ctrls.Dashboard)
			})
		})
	})
}

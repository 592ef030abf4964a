package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Get("/stats", dashboardController.GetStats)
	router.Get("/appointments/today", dashboardController.GetTodayAppointments)
	router.Get("/recent-patients", dashboardController.GetRecentPatients)
	router.Get("/revenue", dashboardController.GetRevenue)
	router.Get("/doctor-performance", dashboardController.GetDoctorPerformance)
}

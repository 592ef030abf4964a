package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", appointmentController.Create)
	router.Get("/", appointmentController.FindAll)
	router.Get("/{appointment_id}", appointmentController.FindByID)
	router.Put("/{appointment_id}", appointmentController.Update)
	router.Put("/{appointment_id}/status", appointmentController.UpdateStatus)
	router.Delete("/{appointment_id}", appointmentController.Cancel)
}

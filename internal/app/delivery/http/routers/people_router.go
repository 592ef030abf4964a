package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", patientController.Create)
	router.Get("/", patientController.FindAll)
	router.Get("/{patient_id}", patientController.FindByID)
	router.Put("/{patient_id}", patientController.Update)
	router.Delete("/{patient_id}", patientController.Delete)
}

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", doctorController.Create)
	router.Get("/", doctorController.FindAll)
	router.Get("/{doctor_id}", doctorController.FindByID)
	router.Get("/{doctor_id}/appointments", doctorController.FindAppointments)
	router.Put("/{doctor_id}", doctorController.Update)
	router.Delete("/{doctor_id}", doctorController.Delete)
}

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", staffController.Create)
	router.Get("/", staffController.FindAll)
	router.Get("/{staff_id}", staffController.FindByID)
	router.Put("/{staff_id}", staffController.Update)
	router.Delete("/{staff_id}", staffController.Delete)
}

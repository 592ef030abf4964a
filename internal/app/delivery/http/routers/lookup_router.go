package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSpecializationRoutes(router chi.Router, middlewares *middlewares.Middlewares, specializationController *controllers.SpecializationController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", specializationController.Create)
	router.Get("/", specializationController.FindAll)
	router.Get("/{specialization_id}", specializationController.FindByID)
	router.Put("/{specialization_id}", specializationController.Update)
	router.Delete("/{specialization_id}", specializationController.Delete)
}

func attachDepartmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, departmentController *controllers.DepartmentController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", departmentController.Create)
	router.Get("/", departmentController.FindAll)
	router.Get("/{department_id}", departmentController.FindByID)
	router.Put("/{department_id}", departmentController.Update)
	router.Delete("/{department_id}", departmentController.Delete)
}

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicController *controllers.ClinicController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", clinicController.Create)
	router.Get("/", clinicController.FindAll)
	router.Get("/{clinic_id}", clinicController.FindByID)
	router.Put("/{clinic_id}", clinicController.Update)
	router.Delete("/{clinic_id}", clinicController.Delete)
}

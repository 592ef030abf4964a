package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBillingRoutes(router chi.Router, middlewares *middlewares.Middlewares, billingController *controllers.BillingController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", billingController.Create)
	router.Get("/", billingController.FindAll)
	router.Get("/patient/{patient_id}", billingController.FindByPatient)
	router.Get("/{billing_id}", billingController.FindByID)
	router.Put("/{billing_id}", billingController.Update)
	router.Post("/{billing_id}/cancel", billingController.Cancel)
	router.Post("/{billing_id}/payments", billingController.RecordPayment)
	router.Get("/{billing_id}/payments", billingController.FindPayments)
}

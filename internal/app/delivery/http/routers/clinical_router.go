package routers

import (
	"hospital-service/internal/app/delivery/http/controllers"
	"hospital-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", medicalRecordController.Create)
	router.Get("/", medicalRecordController.FindAll)
	router.Get("/patient/{patient_id}", medicalRecordController.FindByPatient)
	router.Get("/{record_id}", medicalRecordController.FindByID)
	router.Put("/{record_id}", medicalRecordController.Update)
	router.Delete("/{record_id}", medicalRecordController.Delete)
	router.Post("/{record_id}/attachments", medicalRecordController.UploadAttachment)
	router.Get("/{record_id}/attachments", medicalRecordController.FindAttachments)
}

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.Use(middlewares.Authenticate, middlewares.Authorize)
	router.Post("/", prescriptionController.Create)
	router.Get("/", prescriptionController.FindAll)
	router.Get("/patient/{patient_id}", prescriptionController.FindByPatient)
	router.Get("/{prescription_id}", prescriptionController.FindByID)
	router.Put("/{prescription_id}", prescriptionController.Update)
	router.Delete("/{prescription_id}", prescriptionController.Delete)
}

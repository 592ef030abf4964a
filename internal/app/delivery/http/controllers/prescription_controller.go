package controllers

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		instance := &PrescriptionController{
			Log:                 logger,
			PrescriptionUsecase: prescriptionUsecase,
		}
		prescriptionControllerInstance = instance
	})
	return prescriptionControllerInstance
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreatePrescription)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePrescriptionSuccessMessage, prescription)
}

func (ctrl *PrescriptionController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patientID, err := utils.ParseQueryInt64(r, constvars.URLQueryParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	doctorID, err := utils.ParseQueryInt64(r, constvars.URLQueryParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	filter := models.PrescriptionFilter{
		PatientID:  patientID,
		DoctorID:   doctorID,
		Status:     models.PrescriptionStatus(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamStatus))),
		Pagination: utils.ToModelPagination(pagination),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prescriptions, total, err := ctrl.PrescriptionUsecase.FindAll(ctx, actor, filter)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessMessage, paginationData, prescriptions)
}

func (ctrl *PrescriptionController) FindByPatient(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patientID, err := utils.ParseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prescriptions, total, err := ctrl.PrescriptionUsecase.FindByPatient(ctx, actor, patientID, utils.ToModelPagination(pagination))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessMessage, paginationData, prescriptions)
}

func (ctrl *PrescriptionController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID, err := utils.ParseIDParam(r, constvars.URLParamPrescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.FindByID(ctx, actor, prescriptionID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionSuccessMessage, prescription)
}

func (ctrl *PrescriptionController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID, err := utils.ParseIDParam(r, constvars.URLParamPrescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePrescription)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.Update(ctx, actor, prescriptionID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePrescriptionSuccessMessage, prescription)
}

func (ctrl *PrescriptionController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	prescriptionID, err := utils.ParseIDParam(r, constvars.URLParamPrescriptionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.PrescriptionUsecase.Delete(ctx, actor, prescriptionID); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeletePrescriptionSuccessMessage, nil)
}

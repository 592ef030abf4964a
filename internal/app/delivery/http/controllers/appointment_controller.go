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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		instance := &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
		appointmentControllerInstance = instance
	})
	return appointmentControllerInstance
}

func parseAppointmentFilter(r *http.Request) (models.AppointmentFilter, *requests.Pagination, error) {
	doctorID, err := utils.ParseQueryInt64(r, constvars.URLQueryParamDoctorID)
	if err != nil {
		return models.AppointmentFilter{}, nil, err
	}
	patientID, err := utils.ParseQueryInt64(r, constvars.URLQueryParamPatientID)
	if err != nil {
		return models.AppointmentFilter{}, nil, err
	}

	request := &requests.AppointmentFilter{
		Status:     strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamStatus)),
		Date:       strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamDate)),
		DoctorID:   doctorID,
		PatientID:  patientID,
		Pagination: *utils.BuildPaginationRequest(r),
	}
	if err := validate(request); err != nil {
		return models.AppointmentFilter{}, nil, err
	}

	return models.AppointmentFilter{
		Status:     models.AppointmentStatus(request.Status),
		Date:       request.Date,
		DoctorID:   request.DoctorID,
		PatientID:  request.PatientID,
		Pagination: utils.ToModelPagination(&request.Pagination),
	}, &request.Pagination, nil
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateAppointment)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	filter, pagination, err := parseAppointmentFilter(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointments, total, err := ctrl.AppointmentUsecase.FindAll(ctx, actor, filter)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, paginationData, appointments)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.FindByID(ctx, actor, appointmentID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateAppointment)
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

	appointment, err := ctrl.AppointmentUsecase.Update(ctx, actor, appointmentID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateAppointmentStatus)
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

	appointment, err := ctrl.AppointmentUsecase.UpdateStatus(ctx, actor, appointmentID, models.AppointmentStatus(request.Status))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccessMessage, appointment)
}

// Cancel backs DELETE: appointments are never removed, only moved to Cancelled.
func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.Cancel(ctx, actor, appointmentID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, appointment)
}

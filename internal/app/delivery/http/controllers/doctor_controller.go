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

type DoctorController struct {
	Log                *zap.Logger
	DoctorUsecase      contracts.DoctorUsecase
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, appointmentUsecase contracts.AppointmentUsecase) *DoctorController {
	onceDoctorController.Do(func() {
		instance := &DoctorController{
			Log:                logger,
			DoctorUsecase:      doctorUsecase,
			AppointmentUsecase: appointmentUsecase,
		}
		doctorControllerInstance = instance
	})
	return doctorControllerInstance
}

func (ctrl *DoctorController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateDoctor)
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

	doctor, err := ctrl.DoctorUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, doctor)
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	specializationID, err := utils.ParseQueryInt64(r, constvars.URLParamSpecialization)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	departmentID, err := utils.ParseQueryInt64(r, constvars.URLParamDepartmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	filter := models.DoctorFilter{
		Search:           strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSearch)),
		SpecializationID: specializationID,
		DepartmentID:     departmentID,
		Pagination:       utils.ToModelPagination(pagination),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	doctors, total, err := ctrl.DoctorUsecase.FindAll(ctx, actor, filter)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, paginationData, doctors)
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctorID, err := utils.ParseIDParam(r, constvars.URLParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.FindByID(ctx, actor, doctorID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, doctor)
}

// FindAppointments lists the doctor's schedule, optionally narrowed by date and status.
func (ctrl *DoctorController) FindAppointments(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctorID, err := utils.ParseIDParam(r, constvars.URLParamDoctorID)
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

	appointments, total, err := ctrl.AppointmentUsecase.FindByDoctor(ctx, actor, doctorID, filter)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, paginationData, appointments)
}

func (ctrl *DoctorController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctorID, err := utils.ParseIDParam(r, constvars.URLParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateDoctor)
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

	doctor, err := ctrl.DoctorUsecase.Update(ctx, actor, doctorID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDoctorSuccessMessage, doctor)
}

func (ctrl *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	doctorID, err := utils.ParseIDParam(r, constvars.URLParamDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.DoctorUsecase.Delete(ctx, actor, doctorID); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDoctorSuccessMessage, nil)
}

package controllers

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type ClinicController struct {
	Log           *zap.Logger
	ClinicUsecase contracts.ClinicUsecase
}

var (
	clinicControllerInstance *ClinicController
	onceClinicController     sync.Once
)

func NewClinicController(logger *zap.Logger, clinicUsecase contracts.ClinicUsecase) *ClinicController {
	onceClinicController.Do(func() {
		instance := &ClinicController{
			Log:           logger,
			ClinicUsecase: clinicUsecase,
		}
		clinicControllerInstance = instance
	})
	return clinicControllerInstance
}

func (ctrl *ClinicController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Clinic)
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

	clinic, err := ctrl.ClinicUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateClinicSuccessMessage, clinic)
}

func (ctrl *ClinicController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clinics, err := ctrl.ClinicUsecase.FindAll(ctx, actor)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicsSuccessMessage, clinics)
}

func (ctrl *ClinicController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID, err := utils.ParseIDParam(r, constvars.URLParamClinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clinic, err := ctrl.ClinicUsecase.FindByID(ctx, actor, clinicID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicSuccessMessage, clinic)
}

func (ctrl *ClinicController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID, err := utils.ParseIDParam(r, constvars.URLParamClinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Clinic)
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

	clinic, err := ctrl.ClinicUsecase.Update(ctx, actor, clinicID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateClinicSuccessMessage, clinic)
}

func (ctrl *ClinicController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	clinicID, err := utils.ParseIDParam(r, constvars.URLParamClinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.ClinicUsecase.Delete(ctx, actor, clinicID); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteClinicSuccessMessage, nil)
}

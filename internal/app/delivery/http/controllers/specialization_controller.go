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

type SpecializationController struct {
	Log                   *zap.Logger
	SpecializationUsecase contracts.SpecializationUsecase
}

var (
	specializationControllerInstance *SpecializationController
	onceSpecializationController     sync.Once
)

func NewSpecializationController(logger *zap.Logger, specializationUsecase contracts.SpecializationUsecase) *SpecializationController {
	onceSpecializationController.Do(func() {
		instance := &SpecializationController{
			Log:                   logger,
			SpecializationUsecase: specializationUsecase,
		}
		specializationControllerInstance = instance
	})
	return specializationControllerInstance
}

func (ctrl *SpecializationController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Specialization)
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

	specialization, err := ctrl.SpecializationUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSpecializationSuccessMessage, specialization)
}

func (ctrl *SpecializationController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	specializations, err := ctrl.SpecializationUsecase.FindAll(ctx, actor)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecializationsSuccessMessage, specializations)
}

func (ctrl *SpecializationController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	specializationID, err := utils.ParseIDParam(r, constvars.URLParamSpecialization)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	specialization, err := ctrl.SpecializationUsecase.FindByID(ctx, actor, specializationID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecializationSuccessMessage, specialization)
}

func (ctrl *SpecializationController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	specializationID, err := utils.ParseIDParam(r, constvars.URLParamSpecialization)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Specialization)
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

	specialization, err := ctrl.SpecializationUsecase.Update(ctx, actor, specializationID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSpecializationSuccessMessage, specialization)
}

func (ctrl *SpecializationController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	specializationID, err := utils.ParseIDParam(r, constvars.URLParamSpecialization)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.SpecializationUsecase.Delete(ctx, actor, specializationID); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSpecializationSuccessMessage, nil)
}

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

type DepartmentController struct {
	Log               *zap.Logger
	DepartmentUsecase contracts.DepartmentUsecase
}

var (
	departmentControllerInstance *DepartmentController
	onceDepartmentController     sync.Once
)

func NewDepartmentController(logger *zap.Logger, departmentUsecase contracts.DepartmentUsecase) *DepartmentController {
	onceDepartmentController.Do(func() {
		instance := &DepartmentController{
			Log:               logger,
			DepartmentUsecase: departmentUsecase,
		}
		departmentControllerInstance = instance
	})
	return departmentControllerInstance
}

func (ctrl *DepartmentController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Department)
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

	department, err := ctrl.DepartmentUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDepartmentSuccessMessage, department)
}

func (ctrl *DepartmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	departments, err := ctrl.DepartmentUsecase.FindAll(ctx, actor)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentsSuccessMessage, departments)
}

func (ctrl *DepartmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	departmentID, err := utils.ParseIDParam(r, constvars.URLParamDepartmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	department, err := ctrl.DepartmentUsecase.FindByID(ctx, actor, departmentID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, department)
}

func (ctrl *DepartmentController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	departmentID, err := utils.ParseIDParam(r, constvars.URLParamDepartmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.Department)
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

	department, err := ctrl.DepartmentUsecase.Update(ctx, actor, departmentID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDepartmentSuccessMessage, department)
}

func (ctrl *DepartmentController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	departmentID, err := utils.ParseIDParam(r, constvars.URLParamDepartmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.DepartmentUsecase.Delete(ctx, actor, departmentID); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDepartmentSuccessMessage, nil)
}

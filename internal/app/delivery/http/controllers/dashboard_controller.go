package controllers

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

var (
	dashboardControllerInstance *DashboardController
	onceDashboardController     sync.Once
)

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	onceDashboardController.Do(func() {
		instance := &DashboardController{
			Log:              logger,
			DashboardUsecase: dashboardUsecase,
		}
		dashboardControllerInstance = instance
	})
	return dashboardControllerInstance
}

func (ctrl *DashboardController) GetStats(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stats, err := ctrl.DashboardUsecase.GetStats(ctx, actor)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardStatsSuccessMessage, stats)
}

func (ctrl *DashboardController) GetTodayAppointments(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	appointments, err := ctrl.DashboardUsecase.GetTodayAppointments(ctx, actor)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTodayAppointmentsSuccessMessage, appointments)
}

func (ctrl *DashboardController) GetRecentPatients(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	limit, err := utils.ParseQueryInt(r, constvars.URLQueryParamLimit, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patients, err := ctrl.DashboardUsecase.GetRecentPatients(ctx, actor, limit)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRecentPatientsSuccessMessage, patients)
}

func (ctrl *DashboardController) GetRevenue(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	days, err := utils.ParseQueryInt(r, constvars.URLQueryParamDays, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	revenue, err := ctrl.DashboardUsecase.GetRevenue(ctx, actor, days)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRevenueSuccessMessage, revenue)
}

func (ctrl *DashboardController) GetDoctorPerformance(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	limit, err := utils.ParseQueryInt(r, constvars.URLQueryParamLimit, 0)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	performance, err := ctrl.DashboardUsecase.GetDoctorPerformance(ctx, actor, limit)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorPerformanceSuccessMessage, performance)
}

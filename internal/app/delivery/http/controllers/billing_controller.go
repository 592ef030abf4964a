package controllers

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type BillingController struct {
	Log            *zap.Logger
	BillingUsecase contracts.BillingUsecase
}

var (
	billingControllerInstance *BillingController
	onceBillingController     sync.Once
)

func NewBillingController(logger *zap.Logger, billingUsecase contracts.BillingUsecase) *BillingController {
	onceBillingController.Do(func() {
		instance := &BillingController{
			Log:            logger,
			BillingUsecase: billingUsecase,
		}
		billingControllerInstance = instance
	})
	return billingControllerInstance
}

func (ctrl *BillingController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateBilling)
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

	billing, err := ctrl.BillingUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBillingSuccessMessage, billing)
}

func (ctrl *BillingController) FindAll(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	status := models.BillingStatus(strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamStatus)))
	if status != "" && !status.IsValid() {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(errors.New("unknown billing status"), constvars.URLQueryParamStatus))
		return
	}

	patientID, err := utils.ParseQueryInt64(r, constvars.URLQueryParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	filter := models.BillingFilter{
		Status:     status,
		PatientID:  patientID,
		Pagination: utils.ToModelPagination(pagination),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	billings, total, err := ctrl.BillingUsecase.FindAll(ctx, actor, filter)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetBillingsSuccessMessage, paginationData, billings)
}

func (ctrl *BillingController) FindByPatient(w http.ResponseWriter, r *http.Request) {
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

	billings, total, err := ctrl.BillingUsecase.FindByPatient(ctx, actor, patientID, utils.ToModelPagination(pagination))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetBillingsSuccessMessage, paginationData, billings)
}

func (ctrl *BillingController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	billingID, err := utils.ParseIDParam(r, constvars.URLParamBillingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	billing, err := ctrl.BillingUsecase.FindByID(ctx, actor, billingID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBillingSuccessMessage, billing)
}

func (ctrl *BillingController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	billingID, err := utils.ParseIDParam(r, constvars.URLParamBillingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateBilling)
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

	billing, err := ctrl.BillingUsecase.Update(ctx, actor, billingID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBillingSuccessMessage, billing)
}

func (ctrl *BillingController) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	billingID, err := utils.ParseIDParam(r, constvars.URLParamBillingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	billing, err := ctrl.BillingUsecase.Cancel(ctx, actor, billingID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelBillingSuccessMessage, billing)
}

func (ctrl *BillingController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	billingID, err := utils.ParseIDParam(r, constvars.URLParamBillingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.RecordPayment)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeRecordPaymentRequest(request)
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	payment, billing, err := ctrl.BillingUsecase.RecordPayment(ctx, actor, billingID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	response := responses.PaymentRecorded{
		Payment: *payment,
		Billing: *billing,
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RecordPaymentSuccessMessage, response)
}

func (ctrl *BillingController) FindPayments(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	billingID, err := utils.ParseIDParam(r, constvars.URLParamBillingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	payments, err := ctrl.BillingUsecase.FindPayments(ctx, actor, billingID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPaymentsSuccessMessage, payments)
}

package controllers

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

const multipartMaxMemory = 32 * constvars.MB

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
}

var (
	medicalRecordControllerInstance *MedicalRecordController
	onceMedicalRecordController     sync.Once
)

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase) *MedicalRecordController {
	onceMedicalRecordController.Do(func() {
		instance := &MedicalRecordController{
			Log:                  logger,
			MedicalRecordUsecase: medicalRecordUsecase,
		}
		medicalRecordControllerInstance = instance
	})
	return medicalRecordControllerInstance
}

func (ctrl *MedicalRecordController) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateMedicalRecord)
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

	record, err := ctrl.MedicalRecordUsecase.Create(ctx, actor, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalRecordSuccessMessage, record)
}

func (ctrl *MedicalRecordController) FindAll(w http.ResponseWriter, r *http.Request) {
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
	filter := models.MedicalRecordFilter{
		PatientID:  patientID,
		DoctorID:   doctorID,
		Pagination: utils.ToModelPagination(pagination),
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	records, total, err := ctrl.MedicalRecordUsecase.FindAll(ctx, actor, filter)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccessMessage, paginationData, records)
}

func (ctrl *MedicalRecordController) FindByPatient(w http.ResponseWriter, r *http.Request) {
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

	records, total, err := ctrl.MedicalRecordUsecase.FindByPatient(ctx, actor, patientID, utils.ToModelPagination(pagination))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccessMessage, paginationData, records)
}

func (ctrl *MedicalRecordController) FindByID(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID, err := utils.ParseIDParam(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	record, err := ctrl.MedicalRecordUsecase.FindByID(ctx, actor, recordID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, record)
}

func (ctrl *MedicalRecordController) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID, err := utils.ParseIDParam(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateMedicalRecord)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	record, err := ctrl.MedicalRecordUsecase.Update(ctx, actor, recordID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicalRecordSuccessMessage, record)
}

func (ctrl *MedicalRecordController) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID, err := utils.ParseIDParam(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.MedicalRecordUsecase.Delete(ctx, actor, recordID); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMedicalRecordSuccessMessage, nil)
}

// UploadAttachment expects a multipart form carrying one file under the "file" key.
func (ctrl *MedicalRecordController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID, err := utils.ParseIDParam(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.MultipartFormFileKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.UploadAttachment{
		FileName:    header.Filename,
		ContentType: header.Header.Get(constvars.HeaderContentType),
		Size:        header.Size,
		Content:     content,
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	attachment, err := ctrl.MedicalRecordUsecase.UploadAttachment(ctx, actor, recordID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, attachment)
}

func (ctrl *MedicalRecordController) FindAttachments(w http.ResponseWriter, r *http.Request) {
	actor, err := utils.ActorFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID, err := utils.ParseIDParam(r, constvars.URLParamRecordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	attachments, err := ctrl.MedicalRecordUsecase.FindAttachments(ctx, actor, recordID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttachmentsSuccessMessage, attachments)
}

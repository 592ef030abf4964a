package utils

import (
	"errors"
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildPaginationResponse(total, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	if pageSize > 0 {
		pagination.TotalPages = (total + pageSize - 1) / pageSize
	}

	if page < pagination.TotalPages {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page+1, pageSize)
	}
	if page > 1 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page-1, pageSize)
	}

	return pagination
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	// the status line is already out, an encode failure can only truncate the body
	_ = json.NewEncoder(w).Encode(payload)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// BuildErrorResponse writes err as the error envelope. Anything that is not a CustomError is
// reported as a 500 without leaking its text to the client.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		log.Error("unclassified error reached the response writer", zap.Error(err))
		customErr = exceptions.BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	} else {
		logLevel := log.Warn
		if customErr.StatusCode >= constvars.StatusInternalServerError {
			logLevel = log.Error
		}
		logLevel(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("locations", customErr.Locations),
		)
	}

	response := exceptions.CustomError{
		StatusCode:    customErr.StatusCode,
		Success:       false,
		ClientMessage: customErr.ClientMessage,
	}
	if GetEnvString("APP_ENV", "development") != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}

	writeJSON(w, customErr.StatusCode, response)
}

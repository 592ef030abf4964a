package controllers

import (
	"context"
	"errors"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func validate(request interface{}) error {
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// writeError reports a usecase failure. A blown request deadline becomes a 504.
func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

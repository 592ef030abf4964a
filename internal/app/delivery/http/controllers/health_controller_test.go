package controllers

import (
	"context"
	"errors"
	"hospital-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthController_Check(t *testing.T) {
	up := pingFunc(func(ctx context.Context) error { return nil })
	down := pingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	rec := httptest.NewRecorder()
	NewHealthController(zap.NewNop(), map[string]Pinger{"postgres": up, "redis": up}).
		Check(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	NewHealthController(zap.NewNop(), map[string]Pinger{"postgres": up, "redis": down}).
		Check(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, constvars.StatusServiceUnavailable, rec.Code)
}

package controllers

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

var (
	staffSession   = &models.Session{SessionID: "s-staff", UserID: 2, Role: models.RoleStaff, RefID: 3}
	patientSession = &models.Session{SessionID: "s-patient", UserID: 4, Role: models.RolePatient, RefID: 5}
)

// newRequest builds a request carrying a session and chi url params the way the router would.
func newRequest(method, target string, body io.Reader, session *models.Session, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, "req-test")
	if session != nil {
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
	}
	return req.WithContext(ctx)
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total    int    `json:"total"`
		Page     int    `json:"page"`
		PageSize int    `json:"page_size"`
		NextURL  string `json:"next_url"`
	} `json:"pagination"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

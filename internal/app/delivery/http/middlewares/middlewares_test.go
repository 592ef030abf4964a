package middlewares

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/metrics"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-test-secret"

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	args := m.Called(ctx, user, ttl)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                100,
			RequestBodyLimitInMegabyte: 1,
		},
		JWT:  config.AppJWT{Secret: testSecret},
		Auth: config.AppAuth{LoginRatePerMinute: 60, LoginBurst: 2, LoginBlockTimeInMinute: 5},
	}
}

func testEnforcer(t *testing.T) *casbin.Enforcer {
	m, err := model.NewModelFromString(`
[request_definition]
r = sub, act, obj

[policy_definition]
p = sub, act, obj

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && regexMatch(r.act, p.act) && regexMatch(r.obj, p.obj)
`)
	require.NoError(t, err)
	e, err := casbin.NewEnforcer(m)
	require.NoError(t, err)
	_, err = e.AddPolicy("patient", "^GET$", "^/doctors(/.*)?$")
	require.NoError(t, err)
	return e
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	session := &models.Session{SessionID: "sess-1", UserID: 4, Role: models.RolePatient, RefID: 5}
	token, err := utils.GenerateSessionJWT("sess-1", testSecret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		setupMock  func(*MockSessionService)
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			setupMock:  func(s *MockSessionService) {},
			wantStatus: constvars.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			header:     "Bearer not-a-jwt",
			setupMock:  func(s *MockSessionService) {},
			wantStatus: constvars.StatusUnauthorized,
		},
		{
			name:   "session gone",
			header: "Bearer " + token,
			setupMock: func(s *MockSessionService) {
				s.On("GetSession", mock.Anything, "sess-1").Return(nil, exceptions.ErrInvalidSession(nil))
			},
			wantStatus: constvars.StatusUnauthorized,
		},
		{
			name:   "valid session",
			header: "Bearer " + token,
			setupMock: func(s *MockSessionService) {
				s.On("GetSession", mock.Anything, "sess-1").Return(session, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(MockSessionService)
			tt.setupMock(sessions)
			m := NewMiddlewares(zap.NewNop(), sessions, nil, nil, testConfig())

			var seen *models.Session
			handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = utils.GetSessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.header != "" {
				req.Header.Set(constvars.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, int64(5), seen.RefID)
			}
			sessions.AssertExpectations(t)
		})
	}
}

func TestAuthorize(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, testEnforcer(t), nil, testConfig())
	handler := m.Authorize(http.HandlerFunc(okHandler))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"allowed read", http.MethodGet, "/api/v1/doctors/1", http.StatusOK},
		{"denied write", http.MethodPost, "/api/v1/doctors", constvars.StatusForbidden},
		{"denied resource", http.MethodGet, "/api/v1/medical-records", constvars.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			ctx := context.WithValue(req.Context(), constvars.CONTEXT_SESSION_DATA_KEY, &models.Session{Role: models.RolePatient, RefID: 5})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req.WithContext(ctx))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthorize_WithoutSession(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, testEnforcer(t), nil, testConfig())
	rec := httptest.NewRecorder()
	m.Authorize(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))
	assert.Equal(t, constvars.StatusUnauthorized, rec.Code)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, nil, nil, testConfig())
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestBodyLimit(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, nil, nil, testConfig())
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	body := strings.Repeat("a", constvars.MB+1)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body)))
	assert.Error(t, readErr)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader("{}")))
	assert.NoError(t, readErr)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, nil, nil, testConfig())
	limiter := m.LoginRateLimiter()
	clock := time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }
	handler := limiter.Limit(http.HandlerFunc(okHandler))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.7:5123"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, constvars.StatusTooManyRequests, send())

	clock = clock.Add(2 * time.Minute)
	assert.Equal(t, constvars.StatusTooManyRequests, send())

	clock = clock.Add(4 * time.Minute)
	assert.Equal(t, http.StatusOK, send())
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewMiddlewares(zap.NewNop(), nil, nil, nil, testConfig())
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "client-id-1", seen)
	assert.Equal(t, "client-id-1", rec.Header().Get(constvars.HeaderXRequestID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "client-id-1", seen)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	collector := metrics.NewCollector()
	m := NewMiddlewares(zap.NewNop(), nil, nil, collector, testConfig())

	router := chi.NewRouter()
	router.Use(m.Metrics)
	router.Get("/patients/{patient_id}", okHandler)

	for _, id := range []string{"1", "2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/patients/"+id, nil))
	}

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `endpoint="/patients/{patient_id}"`)
}

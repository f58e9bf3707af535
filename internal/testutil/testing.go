package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"certportal/internal/config"
	"certportal/internal/middlewares"
	"certportal/internal/mocks"
	"certportal/internal/views"
	"certportal/internal/workflow"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext       *middlewares.AppContext
	Request          *http.Request
	Response         *httptest.ResponseRecorder
	MockController   *gomock.Controller
	MockStorage      *mocks.MockStorageProvider
	MockSession      *mocks.MockSessionProvider
	MockCertificates *mocks.MockCertificateProvider
	LogHandler       *TestLogHandler
}

func NewTestContext(t *testing.T) *TestContext {
	return NewTestContextWithURL(t, http.MethodGet, "/")
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	return NewTestContextWithBody(t, method, url, "", nil)
}

// NewTestContextWithBody is NewTestContextWithURL with a request body.
func NewTestContextWithBody(t *testing.T, method, url, contentType string, body io.Reader) *TestContext {
	t.Helper()

	cfg := config.Defaults()

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockStorage := mocks.NewMockStorageProvider(ctrl)
	mockSession := mocks.NewMockSessionProvider(ctrl)
	mockCertificates := mocks.NewMockCertificateProvider(ctrl)

	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:        req.Context(),
		Config:         cfg,
		Logger:         logger,
		SessionManager: mockSession,
		Storage:        mockStorage,
		Certificates:   mockCertificates,
		Views:          renderer,
		Request:        req,
		Response:       rr,
	}

	tc := &TestContext{
		AppContext:       appCtx,
		Request:          req,
		Response:         rr,
		MockController:   ctrl,
		MockStorage:      mockStorage,
		MockSession:      mockSession,
		MockCertificates: mockCertificates,
		LogHandler:       logHandler,
	}
	tc.rebuildTracker()

	return tc
}

func (tc *TestContext) rebuildTracker() {
	tc.AppContext.Tracker = workflow.NewTracker(
		tc.MockStorage,
		tc.MockStorage,
		tc.MockSession,
		tc.AppContext.Logger,
		tc.AppContext.Config.Server.CompanyWebsite,
	)
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.CountByLevel(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d (body %q)", expectedStatus, tc.Response.Code, tc.Response.Body.String())
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertRedirect checks for a redirect to location.
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, location string) {
	t.Helper()
	tc.AssertStatus(t, expectedStatus)
	if got := tc.Response.Header().Get("Location"); got != location {
		t.Errorf("Expected Location %q, got %q", location, got)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// GetJSONResponseArray parses the response body as a JSON array
func (tc *TestContext) GetJSONResponseArray(t *testing.T) []interface{} {
	t.Helper()
	var response []interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON array response: %v", err)
	}
	return response
}

func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertJSONNumber checks a numeric field. JSON numbers decode as float64.
func (tc *TestContext) AssertJSONNumber(t *testing.T, field string, expected float64) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, ok := response[field].(float64)
	if !ok {
		t.Errorf("Expected %s to be a number, got %T", field, response[field])
		return
	}

	if actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actual)
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	tc.rebuildTracker()
	return tc
}

// Helper to add query parameters to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

func (tc *TestContext) WithUserAgent(ua string) *TestContext {
	return tc.WithHeader("User-Agent", ua)
}

// WithURLParam sets a chi route parameter on the request.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	rctx := chi.RouteContext(tc.Request.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
		tc.WithRequest(tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx)))
	}
	rctx.URLParams.Add(key, value)
	return tc
}

// WithRequest allows you to set a custom request (useful for tests that don't use URL constructor)
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

// ExpectBoundSession makes the session report userID as bound for any number of lookups.
func (tc *TestContext) ExpectBoundSession(userID int64) *gomock.Call {
	return tc.MockSession.EXPECT().GetUserID(gomock.Any()).Return(userID, true).AnyTimes()
}

// ExpectUnboundSession makes the session report no binding.
func (tc *TestContext) ExpectUnboundSession() *gomock.Call {
	return tc.MockSession.EXPECT().GetUserID(gomock.Any()).Return(int64(0), false).AnyTimes()
}

// ExpectAudit expects one audit record of kind and accepts any other argument.
func (tc *TestContext) ExpectAudit(userID int64, kind any) *gomock.Call {
	return tc.MockStorage.EXPECT().
		InsertCertificateAction(gomock.Any(), userID, kind, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
}

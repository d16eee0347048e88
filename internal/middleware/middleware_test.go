package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
	}{
		{"not found", apperrors.NewResourceNotFoundError("College not found with ID: 9"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "College not found with ID: 9"},
		{"invalid argument", apperrors.NewInvalidArgumentError("Department must be associated with a valid College ID."), http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Department must be associated with a valid College ID."},
		{"conflict", apperrors.NewConflictError("Student with email a@b.co already exists"), http.StatusConflict, dto.ErrorCodeResourceConflict, "Student with email a@b.co already exists"},
		{"validation", apperrors.NewValidationError(map[string]string{"name": "name is required"}), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Success || body.Error == nil {
				t.Fatalf("expected an error envelope, got %s", w.Body.String())
			}
			if body.Error.Code != tt.wantCode || body.Error.Message != tt.wantMsg {
				t.Errorf("unexpected error detail: %+v", body.Error)
			}
		})
	}
}

func TestHandleAPIError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", nil)

	HandleAPIError(c, apperrors.NewValidationError(map[string]string{"email": "email must be a valid email address"}))

	var body struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Error.Details["email"] != "email must be a valid email address" {
		t.Errorf("unexpected details: %v", body.Error.Details)
	}
}

type batchItem struct {
	Name string `json:"name" binding:"required,min=2"`
}

func TestBindBatch_IndexesFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`[{"name":"ok"},{"name":"x"}]`))

	var items []batchItem
	err := BindBatch(c, &items)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("expected a CustomError, got %T", err)
	}
	if _, ok := ce.Details["[1].name"]; !ok || len(ce.Details) != 1 {
		t.Errorf("expected only [1].name to fail, got %v", ce.Details)
	}
}

func TestBindBatch_RejectsNonArray(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"name":"ok"}`))

	var items []batchItem
	if err := BindBatch(c, &items); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRequestIDAndMetrics(t *testing.T) {
	m := NewMetrics()
	r := gin.New()
	r.Use(RequestID(), m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDKey, "abc-123")
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDKey); got != "abc-123" {
		t.Errorf("expected request id to be echoed, got %q", got)
	}
	if n := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/ping", "200")); n != 1 {
		t.Errorf("expected one observed request, got %v", n)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "campus_http_requests_total") {
		t.Error("expected metrics output to contain the request counter")
	}
}

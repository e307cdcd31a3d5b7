package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sgdesh/bank-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type sampleRequest struct {
	Mobile string          `validate:"required,mobile"`
	Amount decimal.Decimal `validate:"gt=0"`
	Kind   string          `validate:"required,oneof=CREDIT DEBIT"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name     string
		req      sampleRequest
		expected []string
	}{
		{"valid", sampleRequest{"0123456789", decimal.NewFromInt(1), "CREDIT"}, nil},
		{"short mobile", sampleRequest{"12345", decimal.NewFromInt(1), "DEBIT"}, []string{"mobile"}},
		{"letters in mobile", sampleRequest{"12345abcde", decimal.NewFromInt(1), "DEBIT"}, []string{"mobile"}},
		{"zero amount", sampleRequest{"0123456789", decimal.Zero, "DEBIT"}, []string{"gt"}},
		{"fractional amount", sampleRequest{"0123456789", decimal.RequireFromString("0.01"), "CREDIT"}, nil},
		{"bad kind", sampleRequest{"0123456789", decimal.NewFromInt(1), "LOAN"}, []string{"oneof"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRequest(tt.req)
			var tags []string
			for _, e := range errs {
				tags = append(tags, e.Type)
			}
			if fmt.Sprint(tags) != fmt.Sprint(tt.expected) {
				t.Errorf("[%s] expected %v got %v", tt.name, tt.expected, tags)
			}
		})
	}
}

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"not found", models.ErrAccountNotFound, http.StatusNotFound, `{"error":"Bank account not found"}`},
		{"validation", models.ErrInvalidMobileNumber, http.StatusBadRequest, `{"error":"` + models.ErrInvalidMobileNumber.Message + `"}`},
		{"conflict", models.ErrDuplicateCustomer, http.StatusConflict, `{"error":"Email address or mobile number already exists"}`},
		{"wrapped conflict", fmt.Errorf("create: %w", models.ErrCustomerHasAccounts), http.StatusConflict, ""},
		{"internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			RespondWithServiceError(c, tt.err)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d", tt.name, tt.expectedStatus, w.Code)
			}
			if tt.expectedBody != "" && w.Body.String() != tt.expectedBody {
				t.Errorf("[%s] expected body %s got %s", tt.name, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestRecoveryAnswersGeneric500(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError || w.Body.String() != "Internal Server Error" {
		t.Errorf("expected generic 500, got %d %q", w.Code, w.Body.String())
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://bank.example.com"}))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://bank.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://bank.example.com" {
		t.Errorf("expected origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for unknown origin, got %d", w.Code)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase"
	"repair_hub/pkg"

	"github.com/gin-gonic/gin"
)

var testSession = entities.Session{
	ID:           "sess-1",
	FirmID:       "Nihalelectronics",
	FirmName:     "Nihal Electronics",
	PartitionKey: "Nihalelectronics",
	IssuedAt:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	ExpiresAt:    time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC),
}

// authedRouter mounts routes behind a stub that injects testSession.
func authedRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(sessionContextKey, testSession)
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidQuantity, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrRepairJobNotFound, http.StatusNotFound, "REPAIR_JOB_NOT_FOUND"},
		{usecase.ErrStockItemNotFound, http.StatusNotFound, "STOCK_ITEM_NOT_FOUND"},
		{usecase.ErrTagNotFound, http.StatusNotFound, "TAG_NOT_FOUND"},
		{usecase.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{usecase.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{usecase.ErrNoTagDetected, http.StatusUnprocessableEntity, "NO_TAG_DETECTED"},
		{fmt.Errorf("%w: webcam busy", usecase.ErrCameraUnavailable), http.StatusServiceUnavailable, "CAMERA_UNAVAILABLE"},
		{fmt.Errorf("%w: upload photo: timeout", usecase.ErrBackend), http.StatusBadGateway, "BACKEND_ERROR"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		appErr := mapError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("mapError(%v) = %d %s, want %d %s", tc.err, appErr.HTTPStatus, appErr.Code, tc.status, tc.code)
		}
	}
}

func TestMapError_ValidationMessageNamesField(t *testing.T) {
	appErr := mapError(usecase.ErrInvalidBatchSize)
	if appErr.Message != "tag batch size must be between 1 and 500" {
		t.Fatalf("unexpected message: %q", appErr.Message)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"Bearer":       "",
		"BEARER x.y.z": "x.y.z",
	}
	for in, want := range cases {
		if got := bearerToken(in); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCurrentSession_MissingIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/v1/dashboard", func(c *gin.Context) {
		if _, ok := currentSession(c); ok {
			t.Fatalf("expected no session")
		}
	})

	w := doJSON(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

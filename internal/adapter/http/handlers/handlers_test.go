package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"registro_inpi/internal/adapter/http/middleware"
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase"
	"registro_inpi/pkg"

	"github.com/gin-gonic/gin"
)

var (
	testUser  = entities.Identity{UserID: "u-1", Email: "u-1@example.com", Role: entities.RoleUser}
	testAdmin = entities.Identity{UserID: "adm-1", Email: "adm@example.com", Role: entities.RoleAdmin}
)

// newRouter returns a router that authenticates every request as id.
func newRouter(id entities.Identity) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, id)
		c.Next()
	})
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestMapUseCaseError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidSearchTerm, http.StatusBadRequest, "VALIDATION_ERROR"},
		{usecase.ErrIllegalTransition, http.StatusBadRequest, "VALIDATION_ERROR"},
		{usecase.ErrNotRecordOwner, http.StatusForbidden, "FORBIDDEN"},
		{usecase.ErrAdminOnly, http.StatusForbidden, "FORBIDDEN"},
		{usecase.ErrProcessNotFound, http.StatusNotFound, "PROCESS_NOT_FOUND"},
		{usecase.ErrBillingNotFound, http.StatusNotFound, "BILLING_NOT_FOUND"},
		{usecase.ErrProfileNotFound, http.StatusNotFound, "PROFILE_NOT_FOUND"},
		{usecase.ErrAlreadyPaid, http.StatusConflict, "BILLING_ALREADY_PAID"},
		{usecase.ErrConcurrentTransition, http.StatusConflict, "PROCESS_STATUS_CONFLICT"},
		{usecase.ErrProfileAlreadyExists, http.StatusConflict, "PROFILE_EXISTS"},
		{&usecase.StoreError{Op: "put", Err: errors.New("boom")}, http.StatusInternalServerError, "INTERNAL_ERROR"},
		{usecase.ErrPaymentDeclined, http.StatusBadGateway, "PAYMENT_DECLINED"},
		{fmt.Errorf("%w: payment gateway: %w", usecase.ErrUpstream, context.DeadlineExceeded), http.StatusBadGateway, "UPSTREAM_ERROR"},
		{usecase.ErrGatewayNotConfigured, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{errors.New("unclassified"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapUseCaseError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("%v: expected %d %s, got %d %s", tc.err, tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
		}
	}

	if msg := mapUseCaseError(usecase.ErrInvalidSearchTerm).Message; msg != "search term is required" {
		t.Fatalf("unexpected validation message: %q", msg)
	}
	if msg := mapUseCaseError(&usecase.StoreError{Op: "put", Err: errors.New("secret dsn")}).Message; msg != "An internal error occurred" {
		t.Fatalf("store cause leaked: %q", msg)
	}
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		r := gin.New()
		r.GET("/ping", NewHealthHandler(stubPinger{}).Ping)
		if w := doJSON(r, http.MethodGet, "/ping", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("ready", func(t *testing.T) {
		r := gin.New()
		r.GET("/health/ready", NewHealthHandler(stubPinger{}).Ready)
		if w := doJSON(r, http.MethodGet, "/health/ready", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store down", func(t *testing.T) {
		r := gin.New()
		r.GET("/health/ready", NewHealthHandler(stubPinger{err: errors.New("unreachable")}).Ready)
		if w := doJSON(r, http.MethodGet, "/health/ready", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCaller_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/billing", NewBillingHandler(nil).ListBilling)

	w := doJSON(r, http.MethodGet, "/billing", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != "UNAUTHENTICATED" {
		t.Fatalf("unexpected code: %s", body.Code)
	}
}

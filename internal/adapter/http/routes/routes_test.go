package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"registro_inpi/internal/infrastructure/config"
	"registro_inpi/internal/infrastructure/identity"
	"registro_inpi/internal/infrastructure/payments"
	"registro_inpi/internal/infrastructure/registry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerSecret = "router-test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	provider, err := identity.NewHMACProvider(routerSecret, "", "admin")
	require.NoError(t, err)
	return NewRouter(Dependencies{
		Stores:         MemoryStores(),
		Identity:       provider,
		Gateway:        payments.NewSimulatedGateway(0),
		Registry:       registry.NewCachedProvider(registry.NewStubProvider(), 16, time.Minute),
		GatewayTimeout: time.Second,
	})
}

func bearer(t *testing.T, sub, role string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(routerSecret))
	require.NoError(t, err)
	return "Bearer " + tok
}

func call(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestRouter_OpsEndpoints(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/v1/ping", "", "").Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/health/ready", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/v1/billing", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/v1/billing", "Bearer nope", "").Code)

	metrics := call(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "inpi_http_requests_total")
}

func TestRouter_LedgerFlow(t *testing.T) {
	r := newTestRouter(t)
	user := bearer(t, "u-1", "")
	admin := bearer(t, "adm-1", "admin")

	w := call(r, http.MethodPost, "/v1/profile", user, `{"full_name":"Maria Silva","document_type":"CPF","document_number":"123.456.789-09"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "12345678909", decode(t, w)["document_number"])
	assert.Equal(t, http.StatusConflict, call(r, http.MethodPost, "/v1/profile", user, `{"full_name":"Maria Silva","document_type":"CPF","document_number":"12345678909"}`).Code)

	// consultation and its charge
	w = call(r, http.MethodPost, "/v1/consultations", user, `{"search_term":"Acme","search_type":"trademark"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	run := decode(t, w)
	billing := run["billing"].(map[string]any)
	assert.Equal(t, "pending", billing["status"])
	recordID := billing["id"].(string)

	other := bearer(t, "u-2", "")
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodPost, "/v1/billing/"+recordID+"/pay", other, `{"payment_method":"pix"}`).Code)

	w = call(r, http.MethodPost, "/v1/billing/"+recordID+"/pay", user, `{"payment_method":"pix"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	paid := decode(t, w)
	assert.Equal(t, "paid", paid["status"])
	assert.True(t, strings.HasPrefix(paid["invoice_number"].(string), "INV-"))

	w = call(r, http.MethodPost, "/v1/billing/"+recordID+"/pay", user, `{"payment_method":"pix"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// registration process lifecycle
	w = call(r, http.MethodPost, "/v1/processes", user, `{"process_type":"trademark","title":"Acme"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	processID := decode(t, w)["process"].(map[string]any)["id"].(string)

	w = call(r, http.MethodPatch, "/v1/processes/"+processID+"/status", user, `{"status":"submitted","process_number":"BR512026000001"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusForbidden, call(r, http.MethodPatch, "/v1/processes/"+processID+"/status", user, `{"status":"under_review"}`).Code)
	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPatch, "/v1/processes/"+processID+"/status", admin, `{"status":"published"}`).Code)
	require.Equal(t, http.StatusOK, call(r, http.MethodPatch, "/v1/processes/"+processID+"/status", admin, `{"status":"under_review"}`).Code)

	w = call(r, http.MethodGet, "/v1/processes/"+processID+"/history", user, "")
	require.Equal(t, http.StatusOK, w.Code)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 3)
	assert.Equal(t, "draft", history[0]["new_status"])
	assert.Equal(t, "under_review", history[2]["new_status"])

	assert.Equal(t, http.StatusForbidden, call(r, http.MethodGet, "/v1/processes/"+processID, other, "").Code)

	// billing dashboard
	w = call(r, http.MethodGet, "/v1/billing/report", user, "")
	require.Equal(t, http.StatusOK, w.Code)
	report := decode(t, w)
	assert.EqualValues(t, 2, report["record_count"])

	// admin console
	assert.Equal(t, http.StatusForbidden, call(r, http.MethodGet, "/v1/admin/overview", user, "").Code)
	w = call(r, http.MethodGet, "/v1/admin/overview", admin, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	overview := decode(t, w)
	assert.EqualValues(t, 1, overview["total_users"])
	assert.EqualValues(t, 1, overview["total_consultations"])
	assert.EqualValues(t, 1, overview["total_processes"])
	assert.EqualValues(t, 1, overview["active_processes"])
	assert.EqualValues(t, 1, overview["pending_payments"])

	w = call(r, http.MethodGet, "/v1/admin/activity?limit=1", admin, "")
	require.Equal(t, http.StatusOK, w.Code)
	var activity []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activity))
	require.Len(t, activity, 1)
	assert.Equal(t, "Acme", activity[0]["process_title"])
}

func TestOpenStores_Memory(t *testing.T) {
	stores, closeFn, err := OpenStores(context.Background(), config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.NoError(t, stores.Ready.Ping(context.Background()))

	_, _, err = OpenStores(context.Background(), config.Config{StoreDriver: "sqlite"})
	assert.Error(t, err)
}

func TestNewIdentityProvider(t *testing.T) {
	_, err := newIdentityProvider(context.Background(), config.Config{})
	assert.Error(t, err)

	p, err := newIdentityProvider(context.Background(), config.Config{JWTSecret: "s", AdminRole: "admin"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}

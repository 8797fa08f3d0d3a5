package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"
	mock_interfaces "registro_inpi/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(provider interfaces.IIdentityProvider, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{Auth(provider)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := IdentityFromContext(c)
		c.String(http.StatusOK, id.UserID)
	})
	r.GET("/v1/me", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		r := newAuthRouter(provider)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		r := newAuthRouter(provider)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		provider.EXPECT().Authenticate(gomock.Any(), "bad").Return(entities.Identity{}, interfaces.ErrUnauthenticated)
		r := newAuthRouter(provider)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
		provider.EXPECT().Authenticate(gomock.Any(), "good").Return(entities.Identity{UserID: "u-1", Role: entities.RoleUser}, nil)
		r := newAuthRouter(provider)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "bearer   good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "u-1" {
			t.Fatalf("expected 200 u-1, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		role entities.Role
		want int
	}{
		{"user", entities.RoleUser, http.StatusForbidden},
		{"admin", entities.RoleAdmin, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock_interfaces.NewMockIIdentityProvider(ctrl)
			provider.EXPECT().Authenticate(gomock.Any(), "tok").Return(entities.Identity{UserID: "u-1", Role: tc.role}, nil)
			r := newAuthRouter(provider, RequireAdmin())

			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			req.Header.Set("Authorization", "Bearer tok")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("no identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/v1/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/v1/processes/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/processes/:id", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"p-1", "p-2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/processes/"+id, nil))
	}
	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Fatalf("expected both requests under the route template, got %v", got)
	}
}

func TestIdentityFromContext_Empty(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := IdentityFromContext(c); ok {
		t.Fatalf("expected no identity")
	}
	SetIdentity(c, entities.Identity{})
	if _, ok := IdentityFromContext(c); ok {
		t.Fatalf("expected identity without user id to be rejected")
	}
}

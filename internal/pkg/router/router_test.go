package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/greenlegacy/greenlegacy/internal/pkg/clock"
	"github.com/greenlegacy/greenlegacy/internal/pkg/config"
	"github.com/greenlegacy/greenlegacy/internal/pkg/goerror"
	"github.com/greenlegacy/greenlegacy/internal/pkg/instrument"
	"github.com/greenlegacy/greenlegacy/internal/pkg/jwt"
	"github.com/greenlegacy/greenlegacy/internal/pkg/uid"
)

func newTestRouter(t *testing.T) (*Router, jwt.JWT) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  maintenance:\n    endpoints: []\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "greenlegacy-test",
		TTLByRole: map[string]time.Duration{jwt.RoleAdmin: time.Hour, jwt.RoleSupporter: time.Hour},
		Clock:     clock.New(),
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("build jwt: %v", err)
	}

	r := NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        signer,
		Instrument: instrument.NewNoop(),
	})

	return r, signer
}

func doRequest(t *testing.T, r *Router, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body.Message
}

func TestRouter(t *testing.T) {

	t.Run("Welcome", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)

		// Act
		rec := doRequest(t, r, http.MethodGet, "/", "")

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := decodeMessage(t, rec); got != "Welcome to Green Legacy API" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("NotFound", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)

		// Act
		rec := doRequest(t, r, http.MethodGet, "/nope", "")

		// Assert
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("PublicEndpointSkipsAuthentication", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)
		r.POST("/api/v1/account/login", func(_ *Request) (any, error) {
			return map[string]string{"ok": "yes"}, nil
		})

		// Act
		rec := doRequest(t, r, http.MethodPost, "/api/v1/account/login", "")

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("ProtectedWithoutToken", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)
		r.GET("/api/v1/account/me", func(_ *Request) (any, error) {
			return nil, nil
		})

		// Act
		rec := doRequest(t, r, http.MethodGet, "/api/v1/account/me", "")

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if got := decodeMessage(t, rec); got != "Authentication required" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("ProtectedWithBadToken", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)
		r.GET("/api/v1/account/me", func(_ *Request) (any, error) {
			return nil, nil
		})

		// Act
		rec := doRequest(t, r, http.MethodGet, "/api/v1/account/me", "not-a-token")

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if got := decodeMessage(t, rec); got != "Invalid or expired token" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("ProtectedWithToken", func(t *testing.T) {

		// Arrange
		r, signer := newTestRouter(t)
		r.GET("/api/v1/account/me", func(req *Request) (any, error) {
			claims := jwt.GetAuth(req.Context())
			if claims == nil {
				t.Fatalf("expected claims on the request context")
			}
			return map[string]string{"email": claims.Email}, nil
		})
		token, err := signer.Generate("donor@example.com", jwt.RoleSupporter)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		// Act
		rec := doRequest(t, r, http.MethodGet, "/api/v1/account/me", token)

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("BusinessErrorEnvelope", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)
		r.POST("/api/v1/account/login", func(_ *Request) (any, error) {
			return nil, goerror.NewBusiness("Invalid email or password", goerror.CodeUnauthorized)
		})

		// Act
		rec := doRequest(t, r, http.MethodPost, "/api/v1/account/login", "")

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if got := decodeMessage(t, rec); got != "Invalid email or password" {
			t.Fatalf("unexpected message %q", got)
		}
	})
}

func TestAdminOnly(t *testing.T) {

	t.Run("SupporterRejected", func(t *testing.T) {

		// Arrange
		r, signer := newTestRouter(t)
		r.GET("/api/v1/admin/stats", func(_ *Request) (any, error) {
			return map[string]int{"trees": 1}, nil
		}, AdminOnly)
		token, err := signer.Generate("donor@example.com", jwt.RoleSupporter)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		// Act
		rec := doRequest(t, r, http.MethodGet, "/api/v1/admin/stats", token)

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if got := decodeMessage(t, rec); got != "Admin access required" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("AdminAllowed", func(t *testing.T) {

		// Arrange
		r, signer := newTestRouter(t)
		r.GET("/api/v1/admin/stats", func(_ *Request) (any, error) {
			return map[string]int{"trees": 1}, nil
		}, AdminOnly)
		token, err := signer.Generate("admin@greenlegacy.org", jwt.RoleAdmin)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		// Act
		rec := doRequest(t, r, http.MethodGet, "/api/v1/admin/stats", token)

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

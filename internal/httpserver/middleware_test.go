package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, env := doRequest(t, router, http.MethodGet, "/auth/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env.Status != "error" {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}

func TestAuthRequiredRejectsMalformedHeader(t *testing.T) {
	router := newTestRouter(defaultDeps())

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRequiredRejectsUnknownToken(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodGet, "/auth/me", "garbage", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRequiredAcceptsValidToken(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, env := doRequest(t, router, http.MethodGet, "/auth/me", customerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Fatalf("expected success envelope, got %+v", env)
	}
}

func TestCustomerCannotManageProducts(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, env := doRequest(t, router, http.MethodPost, "/products", customerToken,
		`{"name":"Mug","priceCents":1250,"stock":5,"categoryId":"c1"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Status != "error" {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}

func TestAdminCanManageProducts(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodPost, "/products", adminToken,
		`{"name":"Mug","priceCents":1250,"stock":5,"categoryId":"c1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminCannotUseCart(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodGet, "/cart", adminToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

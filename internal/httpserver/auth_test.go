package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront-api/internal/domain"
	authsvc "storefront-api/internal/service/auth"
)

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	auth := &stubAuth{}
	deps := defaultDeps()
	deps.AuthSvc = auth
	router := newTestRouter(deps)

	rec, env := doRequest(t, router, http.MethodPost, "/auth/register", "",
		`{"email":"new@example.com","password":"longenough"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var data struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("expected a token in the register response")
	}
	if data.User.Email != "new@example.com" {
		t.Fatalf("unexpected user %+v", data.User)
	}
	if auth.loginCalls != 0 {
		t.Fatalf("register must issue its token directly, saw %d login calls", auth.loginCalls)
	}
}

func TestRegisterRejectsBadBody(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodPost, "/auth/register", "", `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	deps := defaultDeps()
	deps.AuthSvc = &stubAuth{registerErr: domain.ErrAlreadyExists}
	router := newTestRouter(deps)

	rec, _ := doRequest(t, router, http.MethodPost, "/auth/register", "",
		`{"email":"dup@example.com","password":"longenough"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterValidationIs400(t *testing.T) {
	deps := defaultDeps()
	deps.AuthSvc = &stubAuth{registerErr: domain.Validationf("invalid email format")}
	router := newTestRouter(deps)

	rec, env := doRequest(t, router, http.MethodPost, "/auth/register", "",
		`{"email":"bad","password":"longenough"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Message != "invalid email format" {
		t.Fatalf("expected validation message, got %q", env.Message)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	deps := defaultDeps()
	deps.AuthSvc = &stubAuth{loginErr: authsvc.ErrInvalidCredentials}
	router := newTestRouter(deps)

	rec, _ := doRequest(t, router, http.MethodPost, "/auth/login", "",
		`{"email":"who@example.com","password":"wrongpass"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	deps := defaultDeps()
	deps.AuthSvc = &stubAuth{loginErr: authsvc.ErrAccountDeactivated}
	router := newTestRouter(deps)

	rec, _ := doRequest(t, router, http.MethodPost, "/auth/login", "",
		`{"email":"gone@example.com","password":"longenough"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUpdatePasswordWrongCurrentIs401(t *testing.T) {
	deps := defaultDeps()
	deps.AuthSvc = &stubAuth{passwordErr: authsvc.ErrInvalidCredentials}
	router := newTestRouter(deps)

	rec, _ := doRequest(t, router, http.MethodPut, "/auth/me/password", customerToken,
		`{"currentPassword":"wrongpass1","newPassword":"nextpass12"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdatePasswordMissingFields(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodPut, "/auth/me/password", customerToken,
		`{"newPassword":"nextpass12"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdatePassword(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodPut, "/auth/me/password", customerToken,
		`{"currentPassword":"rightpass1","newPassword":"nextpass12"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeactivateMe(t *testing.T) {
	auth := &stubAuth{}
	deps := defaultDeps()
	deps.AuthSvc = auth
	router := newTestRouter(deps)

	rec, _ := doRequest(t, router, http.MethodPost, "/auth/me/deactivate", customerToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if auth.deactivatedID != "cust-1" {
		t.Fatalf("expected caller's own account deactivated, got %q", auth.deactivatedID)
	}
}

func TestLoginMissingFields(t *testing.T) {
	router := newTestRouter(defaultDeps())

	rec, _ := doRequest(t, router, http.MethodPost, "/auth/login", "", `{"email":"a@b.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

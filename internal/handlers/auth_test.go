package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"copiloto/internal/auth"
)

func TestLoginIssuesToken(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"hunter22"}`))
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	claims, err := auth.ParseToken("secret", resp["token"])
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.Actor != "operator" {
		t.Fatalf("unexpected actor: %q", claims.Actor)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"wrong"}`))
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestLoginRejectsBadPayload(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("not json"))
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

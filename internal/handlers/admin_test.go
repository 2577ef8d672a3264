package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"copiloto/internal/auth"
	"copiloto/internal/models"
	"copiloto/internal/store"

	"github.com/shopspring/decimal"
)

func operatorToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("secret", "operator", time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func TestAdminRoutesRequireToken(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAdminListUsers(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{
		listFn: func(context.Context) ([]store.UserTotals, error) {
			return []store.UserTotals{{
				ID:      1,
				ChatID:  "42",
				Income:  decimal.NewFromInt(1500),
				Expense: decimal.NewFromInt(500),
			}}, nil
		},
	}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+operatorToken(t))
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"chat_id":"42"`) || !strings.Contains(body, `"balance":"1000"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestAdminListMovementsPassesPaging(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{
		listFn: func(_ context.Context, userID int64, limit, offset int) ([]models.Movement, error) {
			if userID != 7 || limit != 5 || offset != 2 {
				t.Fatalf("unexpected args: user=%d limit=%d offset=%d", userID, limit, offset)
			}
			return []models.Movement{{ID: "mov-1", UserID: 7, Kind: models.KindExpense}}, nil
		},
	}, stubDebtStore{}, stubDispatcher{}, &stubSender{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/7/movements?limit=5&offset=2", nil)
	req.Header.Set("Authorization", "Bearer "+operatorToken(t))
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "mov-1") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestAdminListMovementsRejectsBadID(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/abc/movements", nil)
	req.Header.Set("Authorization", "Bearer "+operatorToken(t))
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAdminListDebts(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{
		listFn: func(_ context.Context, userID int64) ([]models.Debt, error) {
			if userID != 7 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return []models.Debt{{ID: "debt-1", Name: "VISA", Balance: decimal.NewFromInt(250000)}}, nil
		},
	}, stubDispatcher{}, &stubSender{})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users/7/debts", nil)
	req.Header.Set("Authorization", "Bearer "+operatorToken(t))
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "VISA") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

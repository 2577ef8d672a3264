package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"copiloto/internal/bot"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestWebhookAlive(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "alive") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestWebhookDispatchesAndReplies(t *testing.T) {
	sender := &stubSender{}
	h := newTestHandler(testConfig(), stubUserStore{
		resolveFn: func(_ context.Context, chatID string) (int64, error) {
			if chatID != "42" {
				t.Fatalf("unexpected chat id: %q", chatID)
			}
			return 7, nil
		},
	}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{
		handleFn: func(_ context.Context, text string, userID int64) string {
			if text != "/start" || userID != 7 {
				t.Fatalf("unexpected dispatch: %q user %d", text, userID)
			}
			return "hola!"
		},
	}, sender)

	body := `{"message":{"chat":{"id":42},"text":" /start "}}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one outbound message, got %d", len(sender.sent))
	}
	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("unexpected chattable: %#v", sender.sent[0])
	}
	if msg.ChatID != 42 || msg.Text != "hola!" {
		t.Fatalf("unexpected message: %#v", msg)
	}
	if msg.ParseMode != tgbotapi.ModeMarkdown {
		t.Fatalf("expected Markdown parse mode, got %q", msg.ParseMode)
	}
}

func TestWebhookIgnoresUpdatesWithoutText(t *testing.T) {
	sender := &stubSender{}
	h := newTestHandler(testConfig(), stubUserStore{
		resolveFn: func(context.Context, string) (int64, error) {
			t.Fatalf("resolve should not be called")
			return 0, nil
		},
	}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, sender)

	for _, body := range []string{`{}`, `{"message":{"chat":{"id":42}}}`} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
		h.Routes().ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", body, rr.Code)
		}
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no outbound messages, got %d", len(sender.sent))
	}
}

func TestWebhookRejectsBadPayload(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("not json"))
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestWebhookSecretToken(t *testing.T) {
	cfg := testConfig()
	cfg.WebhookSecret = "s3cret"
	sender := &stubSender{}
	h := newTestHandler(cfg, stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{
		handleFn: func(context.Context, string, int64) string { return "ok" },
	}, sender)

	body := `{"message":{"chat":{"id":42},"text":"/start"}}`

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without secret, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s3cret")
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with secret, got %d", rr.Code)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one outbound message, got %d", len(sender.sent))
	}
}

func TestWebhookAcksWhenUserResolutionFails(t *testing.T) {
	sender := &stubSender{}
	h := newTestHandler(testConfig(), stubUserStore{
		resolveFn: func(context.Context, string) (int64, error) {
			return 0, errors.New("connection refused")
		},
	}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{
		handleFn: func(context.Context, string, int64) string {
			t.Fatalf("dispatcher should not run without a user")
			return ""
		},
	}, sender)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"message":{"chat":{"id":42},"text":"/resumen"}}`))
	h.Routes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected apology message, got %d", len(sender.sent))
	}
	msg := sender.sent[0].(tgbotapi.MessageConfig)
	if msg.Text != bot.StorageFailureReply {
		t.Fatalf("unexpected reply: %q", msg.Text)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(testConfig(), stubUserStore{}, stubMovementStore{}, stubDebtStore{}, stubDispatcher{}, &stubSender{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "true") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

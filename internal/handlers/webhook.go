package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"copiloto/internal/bot"
	"copiloto/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

func (h *Handler) WebhookAlive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "webhook": "alive"})
}

// Webhook handles one Telegram update. Every accepted update is
// acknowledged with 200 no matter what happened downstream, so the
// provider does not re-deliver it.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	if h.cfg.WebhookSecret != "" && r.Header.Get(secretTokenHeader) != h.cfg.WebhookSecret {
		respondError(w, http.StatusUnauthorized, "invalid webhook secret")
		return
	}
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if update.Message == nil || update.Message.Chat == nil || update.Message.Text == "" {
		respondJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)
	userID, err := h.users.ResolveOrCreate(r.Context(), strconv.FormatInt(chatID, 10))
	if err != nil {
		log.Printf("resolve user for chat %d: %v", chatID, err)
		telegram.Reply(h.sender, chatID, bot.StorageFailureReply)
		respondJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	reply := h.dispatcher.Handle(r.Context(), text, userID)
	telegram.Reply(h.sender, chatID, reply)
	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

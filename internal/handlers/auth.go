package handlers

import (
	"encoding/json"
	"net/http"

	"copiloto/internal/auth"
)

type loginRequest struct {
	Password string `json:"password"`
}

// Login authenticates the bot operator against the configured password
// and issues the bearer token the /admin routes require.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if !auth.CheckPassword(h.adminHash, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := auth.GenerateToken(h.cfg.JWTSecret, "operator", h.cfg.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

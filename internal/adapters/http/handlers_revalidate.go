package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// handleRevalidate handles POST /api/revalidate, the webhook the content
// source calls after a publish. A verified call drops every cached query so
// the next render refetches. The signature covers the raw body; the body is
// read before any parsing.
func handleRevalidate(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("revalidate_panic", "panic", rec)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error revalidating"})
		}
	}()

	if webhookSecret == "" {
		slog.Warn("revalidate_rejected", "reason", "no secret configured")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid signature"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Error revalidating"})
		return
	}

	if err := verifySignature(webhookSecret, r.Header.Get(signatureHeader), body); err != nil {
		slog.Warn("revalidate_rejected", "reason", "bad signature")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid signature"})
		return
	}

	var payload any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			payload = string(body)
		}
	}

	cmsClient.InvalidateAll()
	slog.Info("content_revalidated")

	writeJSON(w, http.StatusOK, map[string]any{
		"revalidated": true,
		"now":         timeNow().UnixMilli(),
		"body":        payload,
	})
}

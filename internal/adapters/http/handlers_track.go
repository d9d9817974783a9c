package web

import (
	"errors"
	"net/http"

	domain "bigrock/internal/domain/analytics"
)

// handleTrack handles POST /api/track, the endpoint the site's own scripts
// report interactions to. Without analytics consent the request succeeds but
// records nothing, so the client never needs to special-case consent state.
func handleTrack(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Kind     string `json:"kind"`
		Path     string `json:"path"`
		Action   string `json:"action"`
		Category string `json:"category"`
		Label    string `json:"label"`
		Value    int    `json:"value"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	c := readConsent(r)
	gate.Init(c)

	var err error
	switch domain.Kind(input.Kind) {
	case domain.KindPageView:
		err = gate.TrackPageView(r.Context(), c, input.Path)
	case domain.KindEvent:
		err = gate.TrackEvent(r.Context(), c, input.Action, input.Category, input.Label, input.Value)
	default:
		http.Error(w, "unknown kind", http.StatusBadRequest)
		return
	}
	if err != nil {
		if errors.Is(err, domain.ErrMissingPath) || errors.Is(err, domain.ErrMissingAction) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

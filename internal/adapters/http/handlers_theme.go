package web

import (
	"net/http"
	"strings"

	"bigrock/internal/domain/theme"
)

// handleSetTheme handles POST /theme. An unknown theme name falls back to the
// default rather than erroring; the picker only offers valid names anyway.
func handleSetTheme(w http.ResponseWriter, r *http.Request) {
	name := ""
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var input struct {
			Theme string `json:"theme"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		name = input.Theme
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		name = r.FormValue("theme")
	}

	setThemeCookie(w, r, theme.Parse(name))

	if isHTMLRequest(r) {
		redirectBack(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

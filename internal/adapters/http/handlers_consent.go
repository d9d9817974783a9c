package web

import (
	"net/http"
	"strings"
)

// Consent handlers commit a choice, persist it in the consent cookie, and
// send the visitor back to the page they were on. Grants flow through the
// shared broadcaster so the analytics gate initializes immediately.

// handleConsentAcceptAll handles POST /consent/accept-all
func handleConsentAcceptAll(w http.ResponseWriter, r *http.Request) {
	ctrl := consentController(r)
	ctrl.MarkReady()
	ctrl.AcceptAll()
	setConsentCookie(w, r, ctrl.State())

	if isHTMLRequest(r) {
		redirectBack(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleConsentEssential handles POST /consent/essential
func handleConsentEssential(w http.ResponseWriter, r *http.Request) {
	ctrl := consentController(r)
	ctrl.MarkReady()
	ctrl.AcceptEssential()
	setConsentCookie(w, r, ctrl.State())

	if isHTMLRequest(r) {
		redirectBack(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleConsentSettings handles POST /consent/settings, the settings modal's
// save action. The analytics toggle arrives as a form checkbox or a JSON body.
func handleConsentSettings(w http.ResponseWriter, r *http.Request) {
	analyticsEnabled := false
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var input struct {
			Analytics bool `json:"analytics"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		analyticsEnabled = input.Analytics
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		analyticsEnabled = r.FormValue("analytics") == "on" || r.FormValue("analytics") == "true"
	}

	ctrl := consentController(r)
	ctrl.MarkReady()
	ctrl.SaveSettings(analyticsEnabled)
	setConsentCookie(w, r, ctrl.State())

	if isHTMLRequest(r) {
		redirectBack(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"bigrock/internal/domain/consent"
	"bigrock/internal/domain/theme"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// htmlSanitizer strips anything dangerous from HTML that arrives pre-rendered
// from the content source.
var htmlSanitizer = bluemonday.UGCPolicy()

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// isSecureRequest reports whether the request arrived over HTTPS, directly or
// via a forwarding proxy.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

// consentController builds the per-request consent controller from the
// visitor's cookie. The shared broadcaster lets a grant reach the analytics
// gate; readiness is marked by the caller once the cookie has been observed.
func consentController(r *http.Request) *consent.Controller {
	value := ""
	if cookie, err := r.Cookie(consent.CookieName); err == nil {
		value = cookie.Value
	}
	return consent.NewController(value, consentBroadcaster)
}

func readConsent(r *http.Request) consent.Type {
	cookie, err := r.Cookie(consent.CookieName)
	if err != nil {
		return consent.TypeUnset
	}
	return consent.Parse(cookie.Value)
}

// setConsentCookie persists the choice for a year. SameSite=Lax keeps the
// cookie off cross-site subrequests; Secure is set whenever the request
// itself arrived over HTTPS.
func setConsentCookie(w http.ResponseWriter, r *http.Request, t consent.Type) {
	http.SetCookie(w, &http.Cookie{
		Name:     consent.CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   consent.CookieMaxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   isSecureRequest(r),
	})
}

func readTheme(r *http.Request) theme.Theme {
	cookie, err := r.Cookie(theme.CookieName)
	if err != nil {
		return theme.Default
	}
	return theme.Parse(cookie.Value)
}

func setThemeCookie(w http.ResponseWriter, r *http.Request, t theme.Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     theme.CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   theme.CookieMaxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   isSecureRequest(r),
	})
}

// redirectBack sends the visitor to the page the form was submitted from.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if ref := r.Header.Get("Referer"); ref != "" && strings.HasPrefix(ref, "/") {
		target = ref
	} else if ref != "" {
		// Same-origin absolute referers keep their path
		if idx := strings.Index(ref, "://"); idx > 0 {
			if slash := strings.IndexByte(ref[idx+3:], '/'); slash >= 0 {
				target = ref[idx+3+slash:]
			}
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	ctrl := consentController(r)
	ctrl.MarkReady()
	activeTheme := readTheme(r)

	if data == nil {
		data = map[string]any{}
	}
	data["Theme"] = string(activeTheme)
	data["ThemeOptions"] = theme.All()
	data["ShowBanner"] = ctrl.ShowBanner()
	data["ScrollLocked"] = ctrl.ScrollLocked()
	data["ConsentState"] = string(ctrl.State())
	data["AnalyticsAllowed"] = ctrl.State().AllowsAnalytics()

	funcMap := template.FuncMap{
		"csrfToken":      func() string { return csrf.Token(r) },
		"renderMarkdown": renderMarkdown,
		"safeHTML": func(html string) template.HTML {
			return template.HTML(htmlSanitizer.Sanitize(html))
		},
		"themeLabel": func(t theme.Theme) string { return t.Label() },
		"add":        func(a, b int) int { return a + b },
		"year":       func() int { return timeNow().Year() },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

package web

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bigrock/internal/domain/content"
)

// handlePage handles GET /{slug} for content-managed pages (legal, cookies,
// about). An unknown slug renders the not-found page.
func handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	page, err := cmsClient.GetPageBySlug(ctx, slug)
	if err != nil {
		internalError(w, err)
		return
	}
	if page == nil {
		renderNotFound(w, r)
		return
	}

	var body template.HTML
	switch {
	case page.BodyHTML != "":
		body = template.HTML(htmlSanitizer.Sanitize(page.BodyHTML))
	default:
		body = renderMarkdown(page.Body)
	}

	siteSettings, err := cmsClient.GetSiteSettings(ctx)
	if err != nil {
		slog.Warn("site_settings_fetch_failed", "error", err.Error())
	}
	site := content.MergeSite(siteSettings)

	if err := gate.TrackPageView(ctx, readConsent(r), "/"+page.Slug); err != nil {
		slog.Warn("track_page_view_failed", "error", err.Error())
	}

	renderTemplate(w, r, "page.html", map[string]any{
		"Title":           page.Title,
		"MetaDescription": page.MetaDescription,
		"Site":            site,
		"Page":            page,
		"Body":            body,
	})
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	site := content.MergeSite(nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	renderTemplate(w, r, "notfound.html", map[string]any{
		"Title":           "Page not found",
		"MetaDescription": "",
		"Site":            site,
	})
}

package web

import (
	"log/slog"
	"net/http"
	"sync"

	"bigrock/internal/domain/content"
)

// handleHome handles GET / and renders the landing page.
// Content fetches run in parallel and fail independently; a section whose
// fetch failed renders from built-in copy instead of taking the page down.
func handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		wg      sync.WaitGroup
		landing *content.LandingData
		site    *content.SiteSettings
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data, err := cmsClient.GetLandingPageData(ctx)
		if err != nil {
			slog.Warn("landing_fetch_failed", "error", err.Error())
			return
		}
		landing = data
	}()
	go func() {
		defer wg.Done()
		settings, err := cmsClient.GetSiteSettings(ctx)
		if err != nil {
			slog.Warn("site_settings_fetch_failed", "error", err.Error())
			return
		}
		site = settings
	}()
	wg.Wait()

	view := content.MergeLanding(landing, site)

	if !gate.Initialized() {
		gate.Init(readConsent(r))
	}
	if err := gate.TrackPageView(ctx, readConsent(r), "/"); err != nil {
		slog.Warn("track_page_view_failed", "error", err.Error())
	}

	renderTemplate(w, r, "home.html", map[string]any{
		"Title":           view.Site.SiteName,
		"MetaDescription": view.Site.Tagline,
		"Site":            view.Site,
		"Landing":         view,
		"ContactSent":     r.URL.Query().Get("contact") == "sent",
	})
}

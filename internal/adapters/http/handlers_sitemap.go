package web

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"strings"
)

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// handleSitemap handles GET /sitemap.xml, listing the landing page and every
// published content page.
func handleSitemap(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(siteBaseURL, "/")
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: base + "/"}},
	}

	slugs, err := cmsClient.GetAllPageSlugs(r.Context())
	if err != nil {
		slog.Warn("sitemap_slugs_failed", "error", err.Error())
	}
	for _, slug := range slugs {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/" + slug})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		slog.Error("sitemap_encode_failed", "error", err.Error())
	}
}

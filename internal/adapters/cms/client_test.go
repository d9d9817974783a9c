package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// fakeSource is a minimal stand-in for the hosted query API. It records
// incoming requests and serves canned results keyed by query substring.
type fakeSource struct {
	mu       chan struct{}
	requests []*url.URL
	results  map[string]string // query substring -> raw result JSON
	status   int
}

func newFakeSource() *fakeSource {
	return &fakeSource{mu: make(chan struct{}, 1), results: map[string]string{}}
}

func (f *fakeSource) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu <- struct{}{}
		f.requests = append(f.requests, r.URL)
		<-f.mu

		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}
		query := r.URL.Query().Get("query")
		for needle, result := range f.results {
			if strings.Contains(query, needle) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"result":` + result + `}`))
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":null}`))
	}
}

func newTestClient(t *testing.T, src *fakeSource) *Client {
	t.Helper()
	server := httptest.NewServer(src.handler())
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL, CacheTTL: time.Minute})
}

// TestGetHero_DecodesProjection tests a single-document fetch.
func TestGetHero_DecodesProjection(t *testing.T) {
	src := newFakeSource()
	src.results[`_id == "hero"`] = `{"headline":"Ship hours, not spreadsheets","stats":[{"value":"1","label":"One"}]}`
	c := newTestClient(t, src)

	hero, err := c.GetHero(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero == nil || hero.Headline != "Ship hours, not spreadsheets" {
		t.Fatalf("bad hero: %+v", hero)
	}
	if len(hero.Stats) != 1 || hero.Stats[0].Label != "One" {
		t.Errorf("stats did not decode: %+v", hero.Stats)
	}
}

// TestGetHero_AbsentDocument tests that a null result is absence, not error.
func TestGetHero_AbsentDocument(t *testing.T) {
	c := newTestClient(t, newFakeSource())
	hero, err := c.GetHero(context.Background())
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if hero != nil {
		t.Errorf("got %+v, want nil for absent document", hero)
	}
}

// TestGetPageBySlug_Parametrized tests that the slug travels as a $slug
// parameter and never appears inside the query text.
func TestGetPageBySlug_Parametrized(t *testing.T) {
	src := newFakeSource()
	src.results[`slug.current == $slug`] = `{"title":"Privacy","slug":"privacy-policy","content":"Body"}`
	c := newTestClient(t, src)

	hostile := `privacy"] || *[_type == "secret`
	if _, err := c.GetPageBySlug(context.Background(), hostile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(src.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(src.requests))
	}
	values := src.requests[0].Query()
	if strings.Contains(values.Get("query"), "secret") {
		t.Error("slug was interpolated into the query text")
	}
	var decoded string
	if err := json.Unmarshal([]byte(values.Get("$slug")), &decoded); err != nil {
		t.Fatalf("$slug is not JSON-encoded: %v", err)
	}
	if decoded != hostile {
		t.Errorf("got %q, want the raw slug passed as a parameter", decoded)
	}
}

// TestGetPageBySlug_Missing tests the absent-result contract.
func TestGetPageBySlug_Missing(t *testing.T) {
	c := newTestClient(t, newFakeSource())
	page, err := c.GetPageBySlug(context.Background(), "no-such-page")
	if err != nil {
		t.Fatalf("missing slug must not be an error, got %v", err)
	}
	if page != nil {
		t.Errorf("got %+v, want nil", page)
	}
}

// TestQueryCache_HitAndInvalidate tests the TTL cache and whole-site
// invalidation used by the revalidation webhook.
func TestQueryCache_HitAndInvalidate(t *testing.T) {
	src := newFakeSource()
	src.results[`_id == "hero"`] = `{"headline":"v1"}`
	c := newTestClient(t, src)
	ctx := context.Background()

	if _, err := c.GetHero(ctx); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := c.GetHero(ctx); err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if len(src.requests) != 1 {
		t.Fatalf("cache miss: got %d requests, want 1", len(src.requests))
	}

	c.InvalidateAll()
	src.results[`_id == "hero"`] = `{"headline":"v2"}`
	hero, err := c.GetHero(ctx)
	if err != nil {
		t.Fatalf("post-invalidate fetch: %v", err)
	}
	if hero.Headline != "v2" {
		t.Errorf("got %q, want fresh content after invalidation", hero.Headline)
	}
	if len(src.requests) != 2 {
		t.Errorf("got %d requests, want 2 after invalidation", len(src.requests))
	}
}

// TestGetLandingPageData_Batched tests that the composite query is a single
// request covering every section.
func TestGetLandingPageData_Batched(t *testing.T) {
	src := newFakeSource()
	src.results[`"hero":`] = `{
		"hero": {"headline": "H"},
		"features": [{"_id": "f1", "title": "F"}],
		"pricingTiers": [{"name": "Starter", "price": "$9"}],
		"faqs": [{"question": "Q", "answer": "A"}],
		"settings": {"pricingTitle": "Plans"}
	}`
	c := newTestClient(t, src)

	data, err := c.GetLandingPageData(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(src.requests) != 1 {
		t.Fatalf("composite fetch must be one request, got %d", len(src.requests))
	}
	if data.Hero == nil || data.Hero.Headline != "H" {
		t.Errorf("hero missing from batch: %+v", data.Hero)
	}
	if len(data.Features) != 1 || len(data.PricingTiers) != 1 || len(data.FAQs) != 1 {
		t.Errorf("sections missing from batch: %+v", data)
	}
	if data.Settings == nil || data.Settings.PricingTitle != "Plans" {
		t.Errorf("settings missing from batch: %+v", data.Settings)
	}
}

// TestQuery_ServerErrorSurfaces tests that transport failures are real errors
// (callers degrade them to nil at the render site).
func TestQuery_ServerErrorSurfaces(t *testing.T) {
	src := newFakeSource()
	src.status = http.StatusInternalServerError
	c := newTestClient(t, src)

	if _, err := c.GetFeatures(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}

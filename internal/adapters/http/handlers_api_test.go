package web

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"bigrock/internal/adapters/cms"
	"bigrock/internal/adapters/storage"
	analyticsStore "bigrock/internal/adapters/storage/analytics"
	contactStore "bigrock/internal/adapters/storage/contact"
	"bigrock/internal/application/tracking"
	"bigrock/internal/domain/consent"
)

// newTestServer wires the full router against an in-memory database and a
// fallback-only content client rooted at the repository content directory.
// JSON surfaces are CSRF-exempt; tests that render HTML first chdir to the
// module root so the relative template paths resolve.
func newTestServer(t *testing.T) (*httptest.Server, *Stores) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatal(err)
	}

	s := &Stores{
		AnalyticsStore: analyticsStore.NewSQLiteStore(db),
		ContactStore:   contactStore.NewSQLiteStore(db),
	}

	RateLimitPerSecond = 1000
	SetWebhookSecret("test-secret")
	SetEmailSender(nil, "", "")

	b := consent.NewBroadcaster()
	g := tracking.NewGate(s.AnalyticsStore)
	g.SetupConsentListener(b, consent.TypeUnset)

	handler := NewRouter(t.TempDir(), s, cms.New(cms.Config{ContentDir: "content"}), g, b)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, s
}

func jsonRequest(t *testing.T, method, url, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TestConsentAcceptAll_SetsCookie tests the grant path and cookie attributes.
func TestConsentAcceptAll_SetsCookie(t *testing.T) {
	server, _ := newTestServer(t)

	resp := jsonRequest(t, "POST", server.URL+"/consent/accept-all", "{}")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cookie := findCookie(resp, consent.CookieName)
	if cookie == nil {
		t.Fatal("consent cookie not set")
	}
	if cookie.Value != string(consent.TypeAll) {
		t.Errorf("value = %q, want %q", cookie.Value, consent.TypeAll)
	}
	if cookie.MaxAge != consent.CookieMaxAge {
		t.Errorf("max-age = %d, want one year", cookie.MaxAge)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("samesite = %v, want Lax", cookie.SameSite)
	}
	if cookie.Secure {
		t.Error("Secure set on a plain HTTP response")
	}
}

// TestConsentEssential_SetsCookie tests the decline path.
func TestConsentEssential_SetsCookie(t *testing.T) {
	server, _ := newTestServer(t)

	resp := jsonRequest(t, "POST", server.URL+"/consent/essential", "{}")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	cookie := findCookie(resp, consent.CookieName)
	if cookie == nil || cookie.Value != string(consent.TypeEssential) {
		t.Fatalf("cookie = %+v, want essential", cookie)
	}
}

// TestConsentSettings_CommitsToggle tests the settings save in both positions.
func TestConsentSettings_CommitsToggle(t *testing.T) {
	server, _ := newTestServer(t)

	resp := jsonRequest(t, "POST", server.URL+"/consent/settings", `{"analytics":true}`)
	if c := findCookie(resp, consent.CookieName); c == nil || c.Value != string(consent.TypeAll) {
		t.Fatalf("analytics on: cookie = %+v", c)
	}

	resp = jsonRequest(t, "POST", server.URL+"/consent/settings", `{"analytics":false}`)
	if c := findCookie(resp, consent.CookieName); c == nil || c.Value != string(consent.TypeEssential) {
		t.Fatalf("analytics off: cookie = %+v", c)
	}
}

// TestConsentSettings_CharsetContentType tests that a JSON body with a
// charset parameter still takes the JSON branch and commits the toggle.
func TestConsentSettings_CharsetContentType(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest("POST", server.URL+"/consent/settings",
		strings.NewReader(`{"analytics":true}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if c := findCookie(resp, consent.CookieName); c == nil || c.Value != string(consent.TypeAll) {
		t.Fatalf("cookie = %+v, want all", c)
	}
}

// TestSetTheme_CharsetContentType tests the same for the theme endpoint.
func TestSetTheme_CharsetContentType(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest("POST", server.URL+"/theme",
		strings.NewReader(`{"theme":"light"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if c := findCookie(resp, "theme"); c == nil || c.Value != "light" {
		t.Fatalf("cookie = %+v, want light", c)
	}
}

// TestSetTheme_RoundTrip tests theme persistence and invalid-name fallback.
func TestSetTheme_RoundTrip(t *testing.T) {
	server, _ := newTestServer(t)

	resp := jsonRequest(t, "POST", server.URL+"/theme", `{"theme":"mint-dark"}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if c := findCookie(resp, "theme"); c == nil || c.Value != "mint-dark" {
		t.Fatalf("cookie = %+v, want mint-dark", c)
	}

	resp = jsonRequest(t, "POST", server.URL+"/theme", `{"theme":"hotdog-stand"}`)
	if c := findCookie(resp, "theme"); c == nil || c.Value != "dark" {
		t.Fatalf("invalid theme cookie = %+v, want default dark", c)
	}
}

// TestTrack_RequiresConsent tests that events only persist with "all" consent.
func TestTrack_RequiresConsent(t *testing.T) {
	server, s := newTestServer(t)
	body := `{"kind":"page_view","path":"/pricing"}`

	// No cookie: accepted but dropped
	resp := jsonRequest(t, "POST", server.URL+"/api/track", body)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("unset status = %d", resp.StatusCode)
	}
	// Essential: accepted but dropped
	resp = jsonRequest(t, "POST", server.URL+"/api/track", body,
		&http.Cookie{Name: consent.CookieName, Value: "essential"})
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("essential status = %d", resp.StatusCode)
	}

	count, err := s.AnalyticsStore.CountSince(context.Background(), time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("events stored without consent: %d", count)
	}

	// All: persisted
	resp = jsonRequest(t, "POST", server.URL+"/api/track", body,
		&http.Cookie{Name: consent.CookieName, Value: "all"})
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("all status = %d", resp.StatusCode)
	}
	events, err := s.AnalyticsStore.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Path != "/pricing" {
		t.Fatalf("events = %+v, want one page view of /pricing", events)
	}
}

// TestTrack_RejectsBadInput tests kind and field validation.
func TestTrack_RejectsBadInput(t *testing.T) {
	server, _ := newTestServer(t)
	all := &http.Cookie{Name: consent.CookieName, Value: "all"}

	if resp := jsonRequest(t, "POST", server.URL+"/api/track", `{"kind":"nonsense"}`, all); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown kind status = %d", resp.StatusCode)
	}
	if resp := jsonRequest(t, "POST", server.URL+"/api/track", `{"kind":"page_view"}`, all); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing path status = %d", resp.StatusCode)
	}
	if resp := jsonRequest(t, "POST", server.URL+"/api/track", `{"kind":"event","bogus":1}`, all); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown field status = %d", resp.StatusCode)
	}
}

// TestContact_StoresRequest tests the demo-request flow over JSON.
func TestContact_StoresRequest(t *testing.T) {
	server, s := newTestServer(t)

	resp := jsonRequest(t, "POST", server.URL+"/api/contact",
		`{"name":"Ana","email":"ana@example.com","company":"Acme","message":"We need timesheets."}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	saved, err := s.ContactStore.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(saved) != 1 {
		t.Fatalf("saved = %d requests, want 1", len(saved))
	}
	if saved[0].Name != "Ana" || saved[0].Email != "ana@example.com" {
		t.Errorf("saved = %+v", saved[0])
	}
}

// TestContact_RejectsInvalid tests field validation surfaces as 400.
func TestContact_RejectsInvalid(t *testing.T) {
	server, s := newTestServer(t)

	resp := jsonRequest(t, "POST", server.URL+"/api/contact",
		`{"name":"Ana","email":"not-an-email","message":"hi"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	saved, err := s.ContactStore.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(saved) != 0 {
		t.Fatalf("invalid request was stored: %+v", saved)
	}
}

// TestRevalidate_Signature tests the webhook's accept and reject paths.
func TestRevalidate_Signature(t *testing.T) {
	server, _ := newTestServer(t)
	body := `{"_type":"feature","_id":"f1"}`

	// Missing signature
	resp := jsonRequest(t, "POST", server.URL+"/api/revalidate", body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no signature status = %d", resp.StatusCode)
	}

	// Wrong secret
	req, _ := http.NewRequest("POST", server.URL+"/api/revalidate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signatureHeader, signPayload("wrong-secret", time.Now().UnixMilli(), []byte(body)))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong secret status = %d", resp.StatusCode)
	}

	// Valid signature
	req, _ = http.NewRequest("POST", server.URL+"/api/revalidate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signatureHeader, signPayload("test-secret", time.Now().UnixMilli(), []byte(body)))
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("valid signature status = %d", resp2.StatusCode)
	}

	var out struct {
		Revalidated bool  `json:"revalidated"`
		Now         int64 `json:"now"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !out.Revalidated {
		t.Error("revalidated = false")
	}
	if out.Now == 0 {
		t.Error("now missing from response")
	}
}

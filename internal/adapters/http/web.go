package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"bigrock/internal/adapters/cms"
	"bigrock/internal/adapters/email"
	"bigrock/internal/adapters/http/middleware"
	analyticsStore "bigrock/internal/adapters/storage/analytics"
	contactStore "bigrock/internal/adapters/storage/contact"
	"bigrock/internal/application/tracking"
	"bigrock/internal/domain/consent"
)

// Stores holds all storage dependencies.
type Stores struct {
	AnalyticsStore analyticsStore.Store
	ContactStore   contactStore.Store
}

// loadCSRFKey reads the CSRF secret from BIGROCK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("BIGROCK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("BIGROCK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("BIGROCK_ENV") == "production" {
		log.Fatal("BIGROCK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (CSRF tokens won't survive restart). Set BIGROCK_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewRouter)
var stores *Stores

// Global content client (set by NewRouter)
var cmsClient *cms.Client

// Global consent-gated analytics pipeline (set by NewRouter)
var gate *tracking.Gate

// Global consent grant broadcaster, shared by every per-request controller
// (set by NewRouter)
var consentBroadcaster *consent.Broadcaster

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var contactRecipient string

// Webhook shared secret (set by SetWebhookSecret)
var webhookSecret string

// Canonical site URL for sitemap entries (set by SetBaseURL)
var siteBaseURL = "http://localhost:8080"

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, recipient string) {
	emailSender = sender
	emailFromAddress = from
	contactRecipient = recipient
}

// SetWebhookSecret sets the shared secret the revalidation endpoint
// verifies signatures against. An empty secret disables the endpoint.
func SetWebhookSecret(secret string) {
	webhookSecret = secret
}

// SetBaseURL sets the canonical site URL used in the sitemap.
func SetBaseURL(base string) {
	if base != "" {
		siteBaseURL = base
	}
}

// NewRouter wires HTTP handlers for the site.
func NewRouter(staticDir string, s *Stores, client *cms.Client, g *tracking.Gate, b *consent.Broadcaster) http.Handler {
	stores = s
	cmsClient = client
	gate = g
	consentBroadcaster = b

	r := chi.NewRouter()

	r.Get("/", handleHome)
	r.Get("/sitemap.xml", handleSitemap)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Post("/consent/accept-all", handleConsentAcceptAll)
	r.Post("/consent/essential", handleConsentEssential)
	r.Post("/consent/settings", handleConsentSettings)
	r.Post("/theme", handleSetTheme)

	r.Post("/api/track", handleTrack)
	r.Post("/api/contact", handleContact)
	r.Post("/api/revalidate", handleRevalidate)

	// Content-managed pages catch everything else
	r.Get("/{slug}", handlePage)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Logger -> CSRF -> SecurityHeaders -> RateLimit -> Router
	return middleware.Chain(r,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.RequestLogger,
	)
}

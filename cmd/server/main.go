package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"bigrock/internal/adapters/cms"
	emailPkg "bigrock/internal/adapters/email"
	web "bigrock/internal/adapters/http"
	"bigrock/internal/adapters/storage"
	analyticsStore "bigrock/internal/adapters/storage/analytics"
	contactStore "bigrock/internal/adapters/storage/contact"
	"bigrock/internal/application/tracking"
	"bigrock/internal/domain/consent"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Initialize database with WAL mode, foreign keys, and busy timeout
	dbPath := envOrDefault("BIGROCK_DB", "bigrock.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	stores := &web.Stores{
		AnalyticsStore: analyticsStore.NewSQLiteStore(db),
		ContactStore:   contactStore.NewSQLiteStore(db),
	}

	// Content client: hosted source when configured, local fallback otherwise
	cmsClient := cms.New(cms.Config{
		ProjectID:  os.Getenv("BIGROCK_SANITY_PROJECT_ID"),
		Dataset:    envOrDefault("BIGROCK_SANITY_DATASET", "production"),
		APIVersion: os.Getenv("BIGROCK_SANITY_API_VERSION"),
		Token:      os.Getenv("BIGROCK_SANITY_TOKEN"),
		ContentDir: envOrDefault("BIGROCK_CONTENT_DIR", "content"),
	})
	if cmsClient.Remote() {
		log.Println("Content source configured (hosted)")
	} else {
		log.Println("Content source configured (local fallback only — set BIGROCK_SANITY_PROJECT_ID for hosted content)")
	}
	stopWatch, err := cmsClient.WatchContentDir()
	if err != nil {
		log.Fatalf("failed to watch content directory: %v", err)
	}
	defer stopWatch()

	// Configure email sender
	resendKey := os.Getenv("BIGROCK_RESEND_KEY")
	emailFrom := envOrDefault("BIGROCK_EMAIL_FROM", "TS@BigRock <noreply@ts.bigrock.example>")
	contactTo := envOrDefault("BIGROCK_CONTACT_TO", "sales@ts.bigrock.example")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), emailFrom, contactTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), emailFrom, contactTo)
		if os.Getenv("BIGROCK_ENV") == "production" {
			log.Println("WARNING: BIGROCK_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set BIGROCK_RESEND_KEY for real delivery)")
		}
	}

	// Revalidation webhook secret
	webhookSecret := os.Getenv("BIGROCK_WEBHOOK_SECRET")
	if webhookSecret == "" && os.Getenv("BIGROCK_ENV") == "production" {
		log.Println("WARNING: BIGROCK_WEBHOOK_SECRET is not set — the revalidation endpoint rejects all calls")
	}
	web.SetWebhookSecret(webhookSecret)
	web.SetBaseURL(os.Getenv("BIGROCK_BASE_URL"))

	// Consent-gated analytics: the gate subscribes to grant notifications so
	// it initializes the moment any visitor accepts analytics.
	broadcaster := consent.NewBroadcaster()
	gate := tracking.NewGate(stores.AnalyticsStore)
	gate.SetupConsentListener(broadcaster, consent.TypeUnset)

	mux := web.NewRouter("static", stores, cmsClient, gate, broadcaster)

	addr := envOrDefault("BIGROCK_ADDR", ":8080")
	log.Printf("TS@BigRock %s starting on %s (env=%s)", version, addr, envOrDefault("BIGROCK_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

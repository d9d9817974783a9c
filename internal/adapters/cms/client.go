package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound marks a document that does not exist in the content source.
var ErrNotFound = errors.New("cms: not found")

// Config holds the connection settings for the hosted content source.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string // optional read token for private datasets
	BaseURL    string // overrides the derived URL, used by tests
	ContentDir string // local fallback directory for generic pages
	CacheTTL   time.Duration
}

// Client issues read-only queries against the content source. Every query
// requests a fixed, named field projection; results are cached in memory
// until the TTL expires or the revalidation webhook invalidates everything.
type Client struct {
	baseURL    string
	token      string
	http       *http.Client
	cache      *resultCache
	contentDir string
}

// New creates a client. An empty ProjectID (and BaseURL) leaves the client
// in fallback-only mode: remote queries report absence and generic pages are
// served from the local content directory.
func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" && cfg.ProjectID != "" {
		version := cfg.APIVersion
		if version == "" {
			version = "2024-01-01"
		}
		dataset := cfg.Dataset
		if dataset == "" {
			dataset = "production"
		}
		base = fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s", cfg.ProjectID, version, dataset)
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Client{
		baseURL:    base,
		token:      cfg.Token,
		http:       &http.Client{Timeout: 10 * time.Second},
		cache:      newResultCache(ttl),
		contentDir: cfg.ContentDir,
	}
}

// Remote reports whether a hosted content source is configured.
func (c *Client) Remote() bool {
	return c.baseURL != ""
}

// InvalidateAll drops every cached query result. Called by the revalidation
// webhook and the local content watcher. Safe to call concurrently;
// concurrent invalidations converge to the same empty-cache state.
func (c *Client) InvalidateAll() {
	c.cache.invalidateAll()
}

// query runs one GROQ query and decodes the "result" envelope field into out.
// Parameters are passed via the API's $-prefixed query parameters,
// JSON-encoded, never interpolated into the query text.
func (c *Client) query(ctx context.Context, groq string, params map[string]string, out any) error {
	if c.baseURL == "" {
		return ErrNotFound
	}

	cacheKey := groq
	for k, v := range params {
		cacheKey += "|" + k + "=" + v
	}
	raw, ok := c.cache.get(cacheKey)
	if !ok {
		fetched, err := c.fetch(ctx, groq, params)
		if err != nil {
			return err
		}
		c.cache.put(cacheKey, fetched)
		raw = fetched
	}

	if string(raw) == "null" {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cms: decode result: %w", err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, groq string, params map[string]string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("query", groq)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("cms: encode param %s: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: query request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("cms: query status %d", resp.StatusCode)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("cms: decode envelope: %w", err)
	}
	if len(envelope.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return envelope.Result, nil
}

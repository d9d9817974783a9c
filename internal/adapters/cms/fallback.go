package cms

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bigrock/internal/domain/content"
)

// Local fallback pages live under <contentDir>/pages/<slug>.md as markdown
// with a YAML front matter block. They keep legal pages reachable when the
// hosted content source is down or not configured.

type pageFrontMatter struct {
	Title           string `yaml:"title"`
	MetaDescription string `yaml:"meta_description"`
}

func (c *Client) pagesDir() string {
	if strings.TrimSpace(c.contentDir) == "" {
		return ""
	}
	return filepath.Join(c.contentDir, "pages")
}

func (c *Client) fallbackPage(slug string) (*content.Page, error) {
	dir := c.pagesDir()
	if dir == "" {
		return nil, ErrNotFound
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(filepath.Join(dir, slug+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	front, body := splitFrontMatter(string(data))
	fm := pageFrontMatter{}
	if strings.TrimSpace(front) != "" {
		if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
			return nil, err
		}
	}
	title := fm.Title
	if title == "" {
		title = titleFromSlug(slug)
	}
	return &content.Page{
		Title:           title,
		Slug:            slug,
		MetaDescription: fm.MetaDescription,
		Body:            strings.TrimSpace(body),
	}, nil
}

func (c *Client) fallbackPageSlugs() ([]string, error) {
	dir := c.pagesDir()
	if dir == "" {
		return nil, ErrNotFound
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	slugs := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".md"))
	}
	return slugs, nil
}

// sanitizeSlug keeps slugs to lowercase letters, digits and hyphens so a
// crafted slug can never escape the pages directory.
func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	var b strings.Builder
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// splitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body. Files without front matter are all body.
func splitFrontMatter(raw string) (front, body string) {
	trimmed := strings.TrimPrefix(raw, "\uFEFF")
	if !strings.HasPrefix(trimmed, "---") {
		return "", raw
	}
	rest := trimmed[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", raw
	}
	front = rest[:idx]
	body = rest[idx+4:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && strings.TrimSpace(body[:nl]) == "" {
		body = body[nl+1:]
	}
	return front, body
}

package cms

import (
	"context"
	"errors"

	"bigrock/internal/domain/content"
)

// Fixed field projections, one per content kind. Queries never embed caller
// input; the slug lookup is parametrized via $slug.
const (
	heroQuery = `*[_id == "hero"][0]{headline, subheadline, ctaPrimary, ctaSecondary, stats}`

	featuresQuery = `*[_type == "feature"] | order(order asc){_id, title, description, icon}`

	howItWorksQuery = `*[_type == "howItWorks"] | order(stepNumber asc){_id, stepNumber, title, description, icon}`

	pricingQuery = `*[_type == "pricingTier"] | order(order asc){_id, name, price, description, features, ctaText, ctaLink, isPopular}`

	testimonialsQuery = `*[_type == "testimonial"] | order(order asc){_id, quote, author, role, company, "avatar": avatar.asset->url}`

	faqsQuery = `*[_type == "faq"] | order(order asc){_id, question, answer, category}`

	landingSettingsQuery = `*[_id == "landingPage"][0]{featuresTitle, featuresSubtitle, howItWorksTitle, pricingTitle, pricingSubtitle, testimonialsTitle, faqTitle, ctaTitle, ctaDescription, ctaButtonText, ctaButtonLink, showTestimonials}`

	siteSettingsQuery = `*[_type == "siteSettings"][0]{siteName, tagline, "logo": logo.asset->url, contact, socialLinks[]{_key, platform, url}, "footerSections": footer.footerSections}`

	landingDataQuery = `{
		"hero": ` + heroQuery + `,
		"features": ` + featuresQuery + `,
		"howItWorks": ` + howItWorksQuery + `,
		"pricingTiers": ` + pricingQuery + `,
		"testimonials": ` + testimonialsQuery + `,
		"faqs": ` + faqsQuery + `,
		"settings": ` + landingSettingsQuery + `,
		"siteSettings": ` + siteSettingsQuery + `
	}`

	pageBySlugQuery = `*[_type == "page" && slug.current == $slug][0]{title, "slug": slug.current, metaDescription, content}`

	allPageSlugsQuery = `*[_type == "page" && defined(slug.current)]{"slug": slug.current}`
)

// GetHero fetches the hero document. Absence is reported as (nil, nil).
func (c *Client) GetHero(ctx context.Context) (*content.Hero, error) {
	var hero content.Hero
	if err := c.query(ctx, heroQuery, nil, &hero); err != nil {
		return nil, absentOr(err)
	}
	return &hero, nil
}

// GetFeatures fetches the ordered feature list.
func (c *Client) GetFeatures(ctx context.Context) ([]content.Feature, error) {
	var out []content.Feature
	if err := c.query(ctx, featuresQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return out, nil
}

// GetHowItWorks fetches the ordered step list.
func (c *Client) GetHowItWorks(ctx context.Context) ([]content.Step, error) {
	var out []content.Step
	if err := c.query(ctx, howItWorksQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return out, nil
}

// GetPricingTiers fetches the ordered pricing tiers.
func (c *Client) GetPricingTiers(ctx context.Context) ([]content.PricingTier, error) {
	var out []content.PricingTier
	if err := c.query(ctx, pricingQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return out, nil
}

// GetTestimonials fetches the ordered testimonials.
func (c *Client) GetTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	var out []content.Testimonial
	if err := c.query(ctx, testimonialsQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return out, nil
}

// GetFAQs fetches the ordered FAQ entries.
func (c *Client) GetFAQs(ctx context.Context) ([]content.FAQ, error) {
	var out []content.FAQ
	if err := c.query(ctx, faqsQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return out, nil
}

// GetLandingSettings fetches the landing page's editor-managed settings.
func (c *Client) GetLandingSettings(ctx context.Context) (*content.LandingSettings, error) {
	var out content.LandingSettings
	if err := c.query(ctx, landingSettingsQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return &out, nil
}

// GetSiteSettings fetches site-wide branding and footer content.
func (c *Client) GetSiteSettings(ctx context.Context) (*content.SiteSettings, error) {
	var out content.SiteSettings
	if err := c.query(ctx, siteSettingsQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return &out, nil
}

// GetLandingPageData fetches everything the landing page needs as a single
// batched request.
func (c *Client) GetLandingPageData(ctx context.Context) (*content.LandingData, error) {
	var out content.LandingData
	if err := c.query(ctx, landingDataQuery, nil, &out); err != nil {
		return nil, absentOr(err)
	}
	return &out, nil
}

// GetPageBySlug fetches a generic page. The slug travels as a query
// parameter, never spliced into the query text, so no slug value can alter
// the query. When the hosted source is unavailable or has no such page, the
// local fallback directory is consulted. Absence is (nil, nil).
func (c *Client) GetPageBySlug(ctx context.Context, slug string) (*content.Page, error) {
	var page content.Page
	err := c.query(ctx, pageBySlugQuery, map[string]string{"slug": slug}, &page)
	if err == nil {
		return &page, nil
	}
	if fallback, fbErr := c.fallbackPage(slug); fbErr == nil {
		return fallback, nil
	}
	return nil, absentOr(err)
}

// GetAllPageSlugs lists every published page slug, for the sitemap.
func (c *Client) GetAllPageSlugs(ctx context.Context) ([]string, error) {
	var rows []struct {
		Slug string `json:"slug"`
	}
	err := c.query(ctx, allPageSlugsQuery, nil, &rows)
	if err != nil && !errors.Is(err, ErrNotFound) {
		if local, fbErr := c.fallbackPageSlugs(); fbErr == nil {
			return local, nil
		}
		return nil, err
	}
	slugs := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Slug != "" {
			slugs = append(slugs, row.Slug)
		}
	}
	if len(slugs) == 0 {
		if local, fbErr := c.fallbackPageSlugs(); fbErr == nil {
			return local, nil
		}
	}
	return slugs, nil
}

// absentOr maps ErrNotFound to a nil result and passes real failures through.
func absentOr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

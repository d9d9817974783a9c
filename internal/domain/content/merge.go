package content

// LandingView is the fully populated view model the landing templates render.
// Merging with defaults happens exactly once, here, so no template code path
// needs defensive nil checks.
type LandingView struct {
	Hero             Hero
	Features         []Feature
	HowItWorks       []Step
	PricingTiers     []PricingTier
	Testimonials     []Testimonial
	FAQs             []FAQ
	Settings         LandingSettings
	Site             SiteView
	ShowTestimonials bool
}

// SiteView is the defaulted site-wide branding used by every page.
type SiteView struct {
	SiteName       string
	Tagline        string
	LogoURL        string
	Contact        Contact
	SocialLinks    []SocialLink
	FooterSections []FooterSection
}

// MergeLanding combines fetched landing data with built-in defaults.
// PRE: data and site may be nil (fetch failure degrades to full defaults)
// POST: every field of the returned view is populated; missing sections use
// the built-in copy, present sections pass through unchanged
func MergeLanding(data *LandingData, site *SiteSettings) LandingView {
	if data == nil {
		data = &LandingData{}
	}
	if site == nil {
		site = data.SiteSettings
	}

	settings := defaultLandingSettings()
	show := true
	if data.Settings != nil {
		settings = mergeSettings(*data.Settings)
		if data.Settings.ShowTestimonials != nil {
			show = *data.Settings.ShowTestimonials
		}
	}

	view := LandingView{
		Hero:             mergeHero(data.Hero),
		Features:         data.Features,
		HowItWorks:       data.HowItWorks,
		PricingTiers:     data.PricingTiers,
		Testimonials:     data.Testimonials,
		FAQs:             data.FAQs,
		Settings:         settings,
		Site:             MergeSite(site),
		ShowTestimonials: show,
	}
	if len(view.Features) == 0 {
		view.Features = defaultFeatures()
	}
	if len(view.HowItWorks) == 0 {
		view.HowItWorks = defaultSteps()
	}
	if len(view.PricingTiers) == 0 {
		view.PricingTiers = defaultPricingTiers()
	}
	if len(view.Testimonials) == 0 {
		view.Testimonials = defaultTestimonials()
	}
	if len(view.FAQs) == 0 {
		view.FAQs = defaultFAQs()
	}
	return view
}

// MergeSite combines fetched site settings with built-in defaults.
func MergeSite(site *SiteSettings) SiteView {
	view := SiteView{
		SiteName:       DefaultSiteName,
		Tagline:        DefaultTagline,
		Contact:        defaultContact(),
		FooterSections: defaultFooterSections(),
	}
	if site == nil {
		return view
	}
	if site.SiteName != "" {
		view.SiteName = site.SiteName
	}
	if site.Tagline != "" {
		view.Tagline = site.Tagline
	}
	view.LogoURL = site.LogoURL
	if site.Contact != nil {
		view.Contact = *site.Contact
	}
	view.SocialLinks = site.SocialLinks
	if len(site.FooterSections) > 0 {
		view.FooterSections = site.FooterSections
	}
	return view
}

func mergeHero(h *Hero) Hero {
	merged := defaultHero()
	if h == nil {
		return merged
	}
	if h.Headline != "" {
		merged.Headline = h.Headline
	}
	if h.Subheadline != "" {
		merged.Subheadline = h.Subheadline
	}
	if h.CTAPrimary != nil && h.CTAPrimary.Text != "" {
		merged.CTAPrimary = h.CTAPrimary
	}
	if h.CTASecondary != nil && h.CTASecondary.Text != "" {
		merged.CTASecondary = h.CTASecondary
	}
	if len(h.Stats) > 0 {
		merged.Stats = h.Stats
	}
	return merged
}

func mergeSettings(s LandingSettings) LandingSettings {
	merged := defaultLandingSettings()
	if s.FeaturesTitle != "" {
		merged.FeaturesTitle = s.FeaturesTitle
	}
	if s.FeaturesSubtitle != "" {
		merged.FeaturesSubtitle = s.FeaturesSubtitle
	}
	if s.HowItWorksTitle != "" {
		merged.HowItWorksTitle = s.HowItWorksTitle
	}
	if s.PricingTitle != "" {
		merged.PricingTitle = s.PricingTitle
	}
	if s.PricingSubtitle != "" {
		merged.PricingSubtitle = s.PricingSubtitle
	}
	if s.TestimonialsTitle != "" {
		merged.TestimonialsTitle = s.TestimonialsTitle
	}
	if s.FAQTitle != "" {
		merged.FAQTitle = s.FAQTitle
	}
	if s.CTATitle != "" {
		merged.CTATitle = s.CTATitle
	}
	if s.CTADescription != "" {
		merged.CTADescription = s.CTADescription
	}
	if s.CTAButtonText != "" {
		merged.CTAButtonText = s.CTAButtonText
	}
	if s.CTAButtonLink != "" {
		merged.CTAButtonLink = s.CTAButtonLink
	}
	return merged
}

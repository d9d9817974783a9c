package content

// CMS document shapes consumed by the site. All of these are read-only from
// this application's perspective; any field may be absent and renderers are
// fed defaulted copies via the View types in merge.go.

// CTAButton is a call-to-action label/target pair.
type CTAButton struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Stat is a headline metric shown under the hero.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Hero is the landing page's hero section document.
type Hero struct {
	Headline     string     `json:"headline"`
	Subheadline  string     `json:"subheadline"`
	CTAPrimary   *CTAButton `json:"ctaPrimary"`
	CTASecondary *CTAButton `json:"ctaSecondary"`
	Stats        []Stat     `json:"stats"`
}

// Feature is one product capability card.
type Feature struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Step is one numbered "how it works" entry.
type Step struct {
	ID          string `json:"_id"`
	StepNumber  int    `json:"stepNumber"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PricingTier is one pricing plan card.
type PricingTier struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTAText     string   `json:"ctaText"`
	CTALink     string   `json:"ctaLink"`
	IsPopular   bool     `json:"isPopular"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	ID      string `json:"_id"`
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Avatar  string `json:"avatar"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	ID       string `json:"_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// LandingSettings holds editor-managed section titles and CTA copy.
type LandingSettings struct {
	FeaturesTitle     string `json:"featuresTitle"`
	FeaturesSubtitle  string `json:"featuresSubtitle"`
	HowItWorksTitle   string `json:"howItWorksTitle"`
	PricingTitle      string `json:"pricingTitle"`
	PricingSubtitle   string `json:"pricingSubtitle"`
	TestimonialsTitle string `json:"testimonialsTitle"`
	FAQTitle          string `json:"faqTitle"`
	CTATitle          string `json:"ctaTitle"`
	CTADescription    string `json:"ctaDescription"`
	CTAButtonText     string `json:"ctaButtonText"`
	CTAButtonLink     string `json:"ctaButtonLink"`
	ShowTestimonials  *bool  `json:"showTestimonials"`
}

// SocialLink is one footer social icon.
type SocialLink struct {
	Key      string `json:"_key"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Contact holds the footer contact block.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// FooterLink is one link inside a footer column.
type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// FooterSection is one footer column of links.
type FooterSection struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

// SiteSettings holds site-wide branding and footer content.
type SiteSettings struct {
	SiteName       string          `json:"siteName"`
	Tagline        string          `json:"tagline"`
	LogoURL        string          `json:"logo"`
	Contact        *Contact        `json:"contact"`
	SocialLinks    []SocialLink    `json:"socialLinks"`
	FooterSections []FooterSection `json:"footerSections"`
}

// Page is a generic content-managed page (legal, cookies, about...).
// Body is markdown; BodyHTML is sanitized pre-rendered HTML, used when the
// source provides rich text directly.
type Page struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	MetaDescription string `json:"metaDescription"`
	Body            string `json:"content"`
	BodyHTML        string `json:"contentHtml"`
}

// LandingData is the composite result of the single batched landing query.
type LandingData struct {
	Hero         *Hero            `json:"hero"`
	Features     []Feature        `json:"features"`
	HowItWorks   []Step           `json:"howItWorks"`
	PricingTiers []PricingTier    `json:"pricingTiers"`
	Testimonials []Testimonial    `json:"testimonials"`
	FAQs         []FAQ            `json:"faqs"`
	Settings     *LandingSettings `json:"settings"`
	SiteSettings *SiteSettings    `json:"siteSettings"`
}

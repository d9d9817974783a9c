package content

// Built-in copy used whenever the CMS is unreachable or a document/field is
// missing. The site must always render a complete page, never an empty one.

// DefaultSiteName is the product name shown in navigation and the footer.
const DefaultSiteName = "TS@BigRock"

// DefaultTagline is shown under the logo in the footer.
const DefaultTagline = "Professional Timesheet Management"

func defaultHero() Hero {
	return Hero{
		Headline:     "The Timesheet App Your Team Will Actually Use",
		Subheadline:  "Stop wrestling with spreadsheets. Track time, manage approvals, and streamline your entire workforce with our intuitive, professional solution.",
		CTAPrimary:   &CTAButton{Text: "Start Free Trial", Link: "#"},
		CTASecondary: &CTAButton{Text: "Watch Demo", Link: "#"},
		Stats: []Stat{
			{Value: "500+", Label: "Companies"},
			{Value: "10K+", Label: "Active Users"},
			{Value: "99.9%", Label: "Uptime"},
		},
	}
}

func defaultFeatures() []Feature {
	return []Feature{
		{Title: "One-Click Time Entry", Description: "Log hours instantly with our streamlined interface. No more hunting through menus.", Icon: "clock"},
		{Title: "Team Management", Description: "Organize teams, set permissions, and manage approvals all in one place.", Icon: "users"},
		{Title: "Real-Time Analytics", Description: "Get instant insights into team productivity with beautiful dashboards.", Icon: "bar-chart"},
		{Title: "Enterprise Security", Description: "Bank-level encryption and compliance with SOC 2, GDPR, and HIPAA.", Icon: "shield"},
		{Title: "Mobile Ready", Description: "Track time on the go with our native iOS and Android apps.", Icon: "smartphone"},
		{Title: "Lightning Fast", Description: "Built for speed. No lag, no waiting. Just pure productivity.", Icon: "zap"},
	}
}

func defaultSteps() []Step {
	return []Step{
		{StepNumber: 1, Title: "Create Your Team", Description: "Set up your workspace in minutes. Invite team members and organize them into projects.", Icon: "user-plus"},
		{StepNumber: 2, Title: "Track Time", Description: "Team members log their hours with just one click. It really is that simple.", Icon: "clock"},
		{StepNumber: 3, Title: "Review & Approve", Description: "Managers review submissions and approve with a single click. No paperwork needed.", Icon: "check-circle"},
		{StepNumber: 4, Title: "Analyze & Export", Description: "Generate reports, analyze trends, and export data for payroll or invoicing.", Icon: "bar-chart"},
	}
}

func defaultPricingTiers() []PricingTier {
	return []PricingTier{
		{
			Name:        "Starter",
			Price:       "$9",
			Description: "Perfect for small teams getting started",
			Features:    []string{"Up to 10 users", "Basic time tracking", "Weekly reports", "Email support"},
			CTAText:     "Start Free Trial",
		},
		{
			Name:        "Professional",
			Price:       "$29",
			Description: "For growing teams that need more power",
			Features:    []string{"Up to 50 users", "Advanced analytics", "Custom reports", "Priority support", "API access", "Integrations"},
			CTAText:     "Start Free Trial",
			IsPopular:   true,
		},
		{
			Name:        "Enterprise",
			Price:       "Custom",
			Description: "For large organizations with custom needs",
			Features:    []string{"Unlimited users", "Dedicated account manager", "Custom integrations", "SLA guarantee", "On-premise option", "Advanced security"},
			CTAText:     "Contact Sales",
		},
	}
}

func defaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			Quote:   "TS@BigRock transformed how we track time. What used to take hours now takes minutes. Our team actually enjoys logging their hours now!",
			Author:  "Sarah Chen",
			Role:    "Engineering Manager",
			Company: "TechCorp",
		},
		{
			Quote:   "The approval workflow is seamless. I can review and approve my entire team's timesheets in under 5 minutes. Game changer for our operations.",
			Author:  "Michael Rodriguez",
			Role:    "Operations Director",
			Company: "InnovateCo",
		},
		{
			Quote:   "Finally, a timesheet app that doesn't feel like a chore. The mobile app is particularly fantastic - I can log time from anywhere.",
			Author:  "Emily Watson",
			Role:    "Project Lead",
			Company: "DesignStudio",
		},
	}
}

func defaultFAQs() []FAQ {
	return []FAQ{
		{
			Question: "How does the free trial work?",
			Answer:   "You get full access to all Professional features for 14 days. No credit card required. At the end of your trial, you can choose a plan that fits your needs or continue with our free Starter tier.",
		},
		{
			Question: "Can I change plans later?",
			Answer:   "Absolutely! You can upgrade or downgrade your plan at any time. Changes take effect immediately, and we'll prorate any billing adjustments.",
		},
		{
			Question: "Is my data secure?",
			Answer:   "Security is our top priority. We use bank-level AES-256 encryption, are SOC 2 certified, and fully compliant with GDPR and HIPAA regulations. Your data is backed up across multiple geographic locations.",
		},
		{
			Question: "Do you offer integrations?",
			Answer:   "Yes! We integrate with popular tools including Slack, Microsoft Teams, Jira, Asana, QuickBooks, and many more. Our API also allows you to build custom integrations.",
		},
		{
			Question: "What kind of support do you offer?",
			Answer:   "All plans include email support. Professional and Enterprise plans include priority support with faster response times. Enterprise customers also get a dedicated account manager.",
		},
	}
}

func defaultLandingSettings() LandingSettings {
	return LandingSettings{
		FeaturesTitle:     "Everything You Need",
		FeaturesSubtitle:  "Powerful features that make time tracking effortless for teams of all sizes.",
		HowItWorksTitle:   "How It Works",
		PricingTitle:      "Simple, Transparent Pricing",
		PricingSubtitle:   "No hidden fees. No surprises. Choose the plan that fits your team.",
		TestimonialsTitle: "Loved by Teams Worldwide",
		FAQTitle:          "Frequently Asked Questions",
		CTATitle:          "Ready to Transform Your Time Tracking?",
		CTADescription:    "Join thousands of teams who have already made the switch. Start your free trial today and see the difference.",
		CTAButtonText:     "Start Free Trial",
		CTAButtonLink:     "#",
	}
}

func defaultContact() Contact {
	return Contact{
		Email: "hello@bigrock.com",
		Phone: "+1 (555) 123-4567",
	}
}

func defaultFooterSections() []FooterSection {
	return []FooterSection{
		{Title: "Product", Links: []FooterLink{
			{Label: "Features", URL: "#features"},
			{Label: "Pricing", URL: "#pricing"},
		}},
		{Title: "Company", Links: []FooterLink{
			{Label: "About", URL: "#"},
			{Label: "Contact", URL: "#"},
		}},
		{Title: "Legal", Links: []FooterLink{
			{Label: "Privacy", URL: "/privacy-policy"},
			{Label: "Terms", URL: "/terms"},
			{Label: "Cookies", URL: "/cookies"},
		}},
	}
}

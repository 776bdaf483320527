package components

import "pondpatrol-web/internal/domain"

var (
	leftNavLinks = []domain.NavLink{
		{Label: "Home", Href: "#home"},
		{Label: "Product", Href: "#product"},
	}
	rightNavLinks = []domain.NavLink{
		{Label: "About Us", Href: "#about"},
		{Label: "Contact Us", Href: "#contact"},
	}
)

// NavLinks returns every header link in order
func NavLinks() []domain.NavLink {
	all := make([]domain.NavLink, 0, len(leftNavLinks)+len(rightNavLinks))
	all = append(all, leftNavLinks...)
	return append(all, rightNavLinks...)
}

var problemStats = []domain.ProblemStat{
	{Impact: "15–30%", Title: "Annual Yield Loss", Description: "Stolen directly from ponds by cormorants, herons, and egrets daily."},
	{Impact: "₹50k+", Title: "Labor Costs", Description: "Wasted annually on manual, unpredictable, and ineffective deterrence methods."},
}

var coreFeatures = []domain.Feature{
	{Icon: "lucide--scan-eye", Title: "AI Vision System", Description: "Advanced computer vision with real-time bird detection and species identification using trained neural networks."},
	{Icon: "lucide--sun", Title: "24/7 Autonomous Operation", Description: "Solar-powered systems operate independently without human supervision, providing uninterrupted protection day and night."},
	{Icon: "lucide--radar", Title: "Smart Response System", Description: "Adaptive deterrence mechanisms that adjust intensity based on threat level and bird behavior patterns."},
}

var specStats = []domain.SpecStat{
	{Value: "40k", Title: "m² Coverage per Unit", CountTo: 40, Suffix: "k"},
	{Value: "360°", Title: "Threat Detection"},
	{Value: "Zero", Title: "Emissions"},
	{Value: "IP67", Title: "Marine-Grade Protection"},
}

var comparisonRows = []domain.ComparisonRow{
	{Feature: "Coverage Hours", Human: "8-10 hours", AI: "24 hours"},
	{Feature: "Response Time", Human: "Minutes", AI: "Seconds"},
	{Feature: "Pond Coverage", Human: "Partial", AI: "Complete"},
	{Feature: "Habituation Risk", Human: "High", AI: "Zero"},
	{Feature: "Weather Issues", Human: "Yes", AI: "No"},
	{Feature: "Consistency", Human: "Variable", AI: "Constant"},
}

var pricingTiers = []domain.PricingTier{
	{
		Name:        "Smart Protection",
		Price:       "Custom Quote",
		Description: "Wired power system with shore-based inverter battery.",
		Features:    []string{"Basic Coverage", "Shore Power", "Manual Control"},
	},
	{
		Name:        "Standard",
		Price:       "₹1,50,000",
		Description: "Covers 200m × 200m pond (≈10 acres).",
		Features:    []string{"Full Coverage", "Solar Power", "AI Auto-Response", "Mobile App"},
		Highlighted: true,
	},
	{
		Name:        "Large Farms",
		Price:       "Custom Quote",
		Description: "Dual autonomous boats with auto-charging dock.",
		Features:    []string{"24/7 Deployment", "Dual Units", "Premium Support", "Advanced Analytics"},
	},
}

var contactChannels = []domain.ContactChannel{
	{Icon: "lucide--phone", Title: "Call Us", Detail: "+91-XXXX-XXXX-XX", Note: "Available 9 AM - 6 PM IST"},
	{Icon: "lucide--mail", Title: "Email", Detail: "contact@pondpatrol.in", Note: "Response within 24 hours"},
	{Icon: "lucide--globe", Title: "Live Demo", Detail: "AquaEx Lucknow 2026", Note: "See it in action"},
}

var footerColumns = []domain.LinkColumn{
	{Title: "Product", Links: []domain.NavLink{
		{Label: "Features", Href: "#product"},
		{Label: "Performance", Href: "#about"},
		{Label: "How It Works", Href: "#product"},
	}},
	{Title: "Company", Links: []domain.NavLink{
		{Label: "About Us", Href: "#about"},
		{Label: "Contact", Href: "#contact"},
	}},
	{Title: "Resources", Links: []domain.NavLink{
		{Label: "Documentation", Href: "#"},
		{Label: "Support", Href: "#contact"},
	}},
	{Title: "Legal", Links: []domain.NavLink{
		{Label: "Privacy", Href: "#"},
		{Label: "Terms of Service", Href: "#"},
		{Label: "Cookie Policy", Href: "#"},
	}},
}

var socialLinks = []domain.SocialLink{
	{Name: "LinkedIn", Href: "#", Icon: "simple-icons--linkedin"},
	{Name: "X (Twitter)", Href: "#", Icon: "simple-icons--x"},
	{Name: "Facebook", Href: "#", Icon: "simple-icons--facebook"},
	{Name: "Instagram", Href: "#", Icon: "simple-icons--instagram"},
}

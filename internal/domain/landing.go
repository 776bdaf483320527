package domain

// NavLink is an in-page anchor in the header or footer
type NavLink struct {
	Label string
	Href  string
}

// ProblemStat is a loss figure on the problem section
type ProblemStat struct {
	Impact      string
	Title       string
	Description string
}

// Feature is one core technology card
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// SpecStat is a headline number on the technical specs section.
// CountTo > 0 marks the value as animated (count-up) with Suffix appended.
type SpecStat struct {
	Value   string
	Title   string
	CountTo int
	Suffix  string
}

// ComparisonRow compares manual labour with the autonomous unit
type ComparisonRow struct {
	Feature string
	Human   string
	AI      string
}

type PricingTier struct {
	Name        string
	Price       string
	Description string
	Features    []string
	Highlighted bool
}

type LinkColumn struct {
	Title string
	Links []NavLink
}

type SocialLink struct {
	Name string
	Href string
	Icon string
}

// ContactChannel is a "Get in Touch" entry next to the contact form
type ContactChannel struct {
	Icon   string
	Title  string
	Detail string
	Note   string
}

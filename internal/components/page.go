package components

import (
	g "maragu.dev/gomponents"
)

// LandingView is the state of one landing page render
type LandingView struct {
	Page       PageConfig
	Contact    ContactView
	Newsletter NewsletterState
}

// LandingPage composes the seven sections in page order
func LandingPage(v LandingView) g.Node {
	return Layout(v.Page,
		Navigation(),
		Hero(),
		ProblemSpace(),
		CoreFeatures(),
		TechnicalSpecs(),
		ContactForm(v.Contact),
		PageFooter(v.Newsletter),
	)
}

package components

import (
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/reveal"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Newsletter form outcomes, carried back in the ?newsletter= query after the redirect
const (
	NewsletterSubscribed = "subscribed"
	NewsletterInvalid    = "invalid"
)

type NewsletterState struct {
	CSRFToken string
	Status    string
}

func (s NewsletterState) message() string {
	switch s.Status {
	case NewsletterSubscribed:
		return "Thanks for subscribing!"
	case NewsletterInvalid:
		return "Please enter a valid email"
	}
	return ""
}

func PageFooter(n NewsletterState) g.Node {
	return Footer(
		Class("reveal-section bg-navy text-white"),
		reveal.Attrs(reveal.FooterThreshold),
		footerCTA(),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-16 grid lg:grid-cols-6 gap-12"),
			Fade("lg:col-span-2 flex flex-col gap-6",
				Logo("h-16"),
				P(Class("text-white/70"), g.Text("Advanced autonomous AI-powered bird deterrence for modern aquaculture.")),
				newsletterForm(n),
			),
			each(footerColumns, func(i int, c domain.LinkColumn) g.Node {
				return Fade("", reveal.Delay(100*(i+1)), linkColumn(c))
			}),
		),
		Div(
			Class("border-t border-white/10"),
			Div(
				Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-6 flex flex-col md:flex-row items-center justify-between gap-4"),
				P(Class("text-sm text-white/60"), g.Text("© 2026 Pond Patrol by Brave Ventures. All rights reserved.")),
				Div(
					Class("flex items-center gap-4"),
					g.Group(g.Map(socialLinks, func(s domain.SocialLink) g.Node {
						return A(
							Href(s.Href),
							Class("text-white/60 hover:text-gold transition-colors"),
							g.Attr("aria-label", s.Name),
							Icon(s.Icon, "size-5", ""),
						)
					})),
				),
			),
		),
	)
}

func footerCTA() g.Node {
	return Div(
		Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-20 text-center border-b border-white/10"),
		Fade("",
			H2(
				Class("text-3xl md:text-5xl font-bold text-balance"),
				g.Text("No Sleep. No Breaks."), Br(),
				Span(Class("text-gold"), g.Text("No Bird Attacks.")),
			),
		),
		Fade("", reveal.Delay(100),
			P(Class("mt-6 text-white/70 max-w-2xl mx-auto"), g.Text("Join leading aquaculture operators who trust Pond Patrol to protect their yield 24/7.")),
		),
		Fade("mt-10 flex flex-col sm:flex-row justify-center gap-4", reveal.Delay(200),
			A(Href("#contact"), Class("px-8 py-4 rounded-full bg-gold text-navy font-semibold hover:shadow-lg transition-all"), g.Text("Start Your Free Trial")),
			A(Href("#contact"), Class("px-8 py-4 rounded-full border-2 border-white font-semibold hover:bg-white hover:text-navy transition-all"), g.Text("Schedule Demo")),
		),
	)
}

func newsletterForm(n NewsletterState) g.Node {
	msg := n.message()
	return g.El("form",
		ID("newsletter"),
		Class("flex flex-col gap-2"),
		g.Attr("method", "post"),
		g.Attr("action", "/newsletter"),
		g.Attr("novalidate"),
		Input(Type("hidden"), Name(CSRFField), Value(n.CSRFToken)),
		Div(
			Class("flex gap-2"),
			Label(g.Attr("for", "newsletter-email"), Class("sr-only"), g.Text("Email address")),
			Input(
				ID("newsletter-email"),
				Type("email"),
				Name("email"),
				Placeholder("Your email"),
				Class("flex-1 rounded-full bg-white/10 border border-white/20 px-4 py-2 text-white placeholder:text-white/50"),
			),
			Button(Type("submit"), Class("px-6 py-2 rounded-full bg-gold text-navy font-semibold"), g.Text("Subscribe")),
		),
		g.If(msg != "",
			P(
				Class("text-sm text-white/80"),
				g.Attr("role", "status"),
				g.Attr("data-newsletter-status", n.Status),
				g.Text(msg),
			),
		),
	)
}

func linkColumn(c domain.LinkColumn) g.Node {
	return Div(
		H4(Class("text-sm font-bold uppercase tracking-wider text-gold"), g.Text(c.Title)),
		Ul(
			Class("mt-4 flex flex-col gap-3"),
			g.Group(g.Map(c.Links, func(l domain.NavLink) g.Node {
				return Li(A(Href(l.Href), Class("text-white/70 hover:text-white transition-colors"), g.Text(l.Label)))
			})),
		),
	)
}

package components

import (
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/reveal"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TechnicalSpecs carries the spec stats, the human vs AI comparison and pricing
func TechnicalSpecs() g.Node {
	return Section(
		ID("specs"),
		Class("reveal-section py-24 bg-navy text-white"),
		reveal.Attrs(reveal.TechnicalSpecsThreshold),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-16"),
				Fade("", H3(Class("text-3xl md:text-4xl font-bold text-balance"), g.Text("Smart Birds Meet Smarter Technology."))),
				Fade("", reveal.Delay(100),
					P(Class("mt-4 text-white/70 max-w-2xl mx-auto"), g.Text("Engineered for Indian aquaculture conditions and global reliability standards.")),
				),
			),
			Div(
				Class("grid grid-cols-2 lg:grid-cols-4 gap-8"),
				each(specStats, func(i int, s domain.SpecStat) g.Node {
					return Fade("text-center", reveal.Delay(100*(i+1)), specStat(s))
				}),
			),
			comparisonTable(),
			pricing(),
		),
	)
}

// specStat renders the final value so the figure is correct without JS. An
// animated stat restarts from zero when the script runs the count-up.
func specStat(s domain.SpecStat) g.Node {
	var value g.Node
	if s.CountTo > 0 {
		cu := reveal.CoverageCountUp
		cu.Target = float64(s.CountTo)
		value = P(
			Class("text-4xl md:text-5xl font-bold text-gold"),
			Span(Class("count-up"), cu.Attrs(), g.Text(itoa(s.CountTo))),
			g.Text(s.Suffix),
		)
	} else {
		value = P(Class("text-4xl md:text-5xl font-bold text-gold"), g.Text(s.Value))
	}
	return Div(
		value,
		P(Class("mt-2 text-sm uppercase tracking-wider text-white/70"), g.Text(s.Title)),
	)
}

func comparisonTable() g.Node {
	return Div(
		Class("mt-24"),
		Fade("", H3(Class("text-2xl md:text-3xl font-bold text-center mb-10"), g.Text("Humans Get Tired. AI Gets Results."))),
		Fade("overflow-x-auto", reveal.Delay(150),
			Table(
				Class("w-full max-w-3xl mx-auto text-left border-collapse"),
				THead(
					Tr(
						Class("border-b border-white/20"),
						Th(Class("py-4 px-4 font-semibold"), g.Text("Feature")),
						Th(Class("py-4 px-4 font-semibold text-white/70"), g.Text("Manual Labor")),
						Th(Class("py-4 px-4 font-semibold text-gold"), g.Text("Pond Patrol AI")),
					),
				),
				TBody(
					g.Group(g.Map(comparisonRows, func(r domain.ComparisonRow) g.Node {
						return Tr(
							Class("border-b border-white/10"),
							Td(Class("py-4 px-4"), g.Text(r.Feature)),
							Td(Class("py-4 px-4 text-white/70"), g.Text(r.Human)),
							Td(Class("py-4 px-4 text-gold font-semibold"), g.Text(r.AI)),
						)
					})),
				),
			),
		),
	)
}

func pricing() g.Node {
	return Div(
		Class("mt-24"),
		Fade("", H3(Class("text-2xl md:text-3xl font-bold text-center mb-10"), g.Text("Scalability & Pricing Options"))),
		Div(
			Class("grid md:grid-cols-3 gap-8"),
			each(pricingTiers, func(i int, t domain.PricingTier) g.Node {
				return Fade("h-full", reveal.Delay(150*(i+1)), pricingCard(t))
			}),
		),
	)
}

func pricingCard(t domain.PricingTier) g.Node {
	card := "relative h-full flex flex-col rounded-2xl p-8 border border-white/15 bg-white/5"
	if t.Highlighted {
		card = "relative h-full flex flex-col rounded-2xl p-8 border-2 border-gold bg-white text-navy"
	}
	return Div(
		Class(card),
		g.If(t.Highlighted,
			Span(
				Class("absolute -top-3 left-1/2 -translate-x-1/2 px-4 py-1 rounded-full bg-gold text-navy text-xs font-bold uppercase"),
				g.Text("Most Popular"),
			),
		),
		H4(Class("text-xl font-semibold"), g.Text(t.Name)),
		P(Class("mt-4 text-3xl font-bold"), g.Text(t.Price)),
		P(Class("mt-3 text-sm opacity-80"), g.Text(t.Description)),
		Ul(
			Class("mt-6 flex flex-col gap-3 flex-1"),
			g.Group(g.Map(t.Features, func(f string) g.Node {
				return Li(Class("flex items-center gap-2"), Icon("lucide--check", "size-4 text-gold", ""), g.Text(f))
			})),
		),
		A(
			Href("#contact"),
			Class(classes(
				"mt-8 block py-3 rounded-full font-semibold text-center transition-all",
				pricingButton(t.Highlighted),
			)),
			g.Text("Get Started"),
		),
	)
}

func pricingButton(highlighted bool) string {
	if highlighted {
		return "bg-gold text-navy hover:shadow-lg"
	}
	return "border border-white/40 text-white hover:bg-white hover:text-navy"
}

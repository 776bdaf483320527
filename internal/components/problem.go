package components

import (
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/reveal"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ProblemSpace is the "real cost" section, anchored as #product
func ProblemSpace() g.Node {
	return Section(
		ID("product"),
		Class("reveal-section py-24 bg-slate-50"),
		reveal.Attrs(reveal.ProblemSpaceThreshold),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-16 flex flex-col items-center gap-4"),
				Fade("", Eyebrow("The Real Cost")),
				Fade("", reveal.Delay(100),
					H3(Class("text-3xl md:text-4xl font-bold text-navy text-balance"), g.Text("Predatory Birds Are Devouring Your Profits")),
				),
			),
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center"),
				Div(
					Class("flex flex-col gap-6"),
					each(problemStats, func(i int, s domain.ProblemStat) g.Node {
						return Fade("", reveal.Delay(150*(i+1)), problemCard(s))
					}),
					Fade("", reveal.Delay(450),
						Figure(
							Class("border-l-4 border-gold pl-6 py-2"),
							BlockQuote(
								Class("text-xl italic text-navy"),
								g.Text("“In aquaculture, 24/7 protection isn't luxury. It's survival.”"),
							),
							FigCaption(Class("mt-3 text-sm text-gray-500"), g.Text("Industry Leading Fish Farm Operator")),
						),
					),
				),
				Fade("relative", reveal.Delay(200),
					Figure(
						Img(
							Src("/static/images/birds_attacking_pond.png"),
							Alt("Birds preying on a fish pond"),
							Class("w-full h-auto rounded-3xl object-cover"),
						),
						FigCaption(Class("mt-4 text-center text-sm font-semibold text-navy"), g.Text("The Silent Threat to Your Aquaculture")),
					),
				),
			),
		),
	)
}

func problemCard(s domain.ProblemStat) g.Node {
	return Div(
		Class("bg-white rounded-2xl p-8 shadow-sm border border-gray-100"),
		P(Class("text-4xl font-bold text-gold"), g.Text(s.Impact)),
		H4(Class("mt-2 text-lg font-semibold text-navy"), g.Text(s.Title)),
		P(Class("mt-2 text-gray-600"), g.Text(s.Description)),
	)
}

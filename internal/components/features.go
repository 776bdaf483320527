package components

import (
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/reveal"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type workStep struct {
	Step  string
	Title string
	Body  string
}

var howItWorks = []workStep{
	{"01", "Monitor", "Cameras scan the whole pond surface around the clock."},
	{"02", "Predict", "The AI classifies approaching birds and estimates landing intent."},
	{"03", "Respond", "The boat moves and deters before the bird reaches the water."},
}

// CoreFeatures is anchored as #about
func CoreFeatures() g.Node {
	return Section(
		ID("about"),
		Class("reveal-section py-24 bg-white"),
		reveal.Attrs(reveal.CoreFeaturesThreshold),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-16 flex flex-col items-center gap-4"),
				Fade("", Eyebrow("Core Technology")),
				Fade("", reveal.Delay(100),
					H3(Class("text-3xl md:text-4xl font-bold text-navy text-balance"), g.Text("Intelligent protection engineered for scale.")),
				),
			),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				each(coreFeatures, func(i int, f domain.Feature) g.Node {
					return Fade("", reveal.Delay(150*(i+1)), featureCard(f))
				}),
			),
			Div(
				Class("mt-24 text-center"),
				Fade("", reveal.Delay(200),
					H3(Class("text-2xl md:text-3xl font-bold text-navy"), g.Text("How Pond Patrol Works")),
					P(Class("mt-4 text-gray-600 max-w-2xl mx-auto"), g.Text("A three-stage process that monitors, predicts, and responds in real-time to bird threats.")),
				),
				Ol(
					Class("mt-12 grid md:grid-cols-3 gap-8 text-left"),
					each(howItWorks, func(i int, s workStep) g.Node {
						return Li(
							Class("reveal-item rounded-2xl border border-gray-100 p-6"),
							reveal.Delay(250+100*i),
							Span(Class("text-sm font-bold text-gold"), g.Text(s.Step)),
							H4(Class("mt-2 text-lg font-semibold text-navy"), g.Text(s.Title)),
							P(Class("mt-2 text-gray-600"), g.Text(s.Body)),
						)
					}),
				),
			),
		),
	)
}

func featureCard(f domain.Feature) g.Node {
	return Div(
		Class("h-full bg-slate-50 rounded-2xl p-8 hover:shadow-lg transition-shadow"),
		Div(
			Class("size-14 rounded-xl bg-navy text-gold flex items-center justify-center mb-6"),
			Icon(f.Icon, "size-7", ""),
		),
		H4(Class("text-xl font-semibold text-navy"), g.Text(f.Title)),
		P(Class("mt-3 text-gray-600 leading-relaxed"), g.Text(f.Description)),
	)
}

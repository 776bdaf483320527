package components

import (
	"pondpatrol-web/internal/reveal"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		ID("home"),
		Class("reveal-section relative min-h-screen flex items-center pt-32 pb-16 bg-white"),
		reveal.Attrs(reveal.HeroThreshold),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 w-full grid lg:grid-cols-2 gap-12 items-center"),
			Div(
				Class("flex flex-col gap-8"),
				Fade("", Eyebrow("Intelligent Aquaculture Protection")),
				Fade("", reveal.Delay(100),
					H1(
						Class("text-4xl md:text-5xl lg:text-6xl font-bold text-navy leading-tight text-balance"),
						g.Text("Stop Birds Before They Land, Not After They Feed"),
					),
				),
				Fade("", reveal.Delay(200),
					P(
						Class("text-lg text-gray-600 leading-relaxed max-w-xl"),
						g.Text("24/7 autonomous AI bird deterrence that prevents predation before it happens. Protect your biomass, maximize your profits, eliminate labor dependency."),
					),
				),
				Fade("flex flex-col sm:flex-row gap-4", reveal.Delay(300),
					A(
						Href("#product"),
						Class("px-8 py-4 rounded-full bg-gold text-navy font-semibold text-center hover:shadow-lg transition-all"),
						g.Text("Discover Pond Patrol"),
					),
					A(
						Href("#about"),
						Class("px-8 py-4 rounded-full border-2 border-navy text-navy font-semibold text-center hover:bg-navy hover:text-white transition-all"),
						g.Text("Learn More"),
					),
				),
			),
			Fade("relative", reveal.Delay(200),
				Img(
					Src("/static/images/pond_patrol_boat_image.png"),
					Alt("Pond Patrol autonomous boat on a fish pond"),
					Class("w-full h-auto rounded-3xl object-cover"),
				),
			),
		),
	)
}

package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	ThemeColor  string
	// AssetVersion busts caches of /static files
	AssetVersion string
}

const (
	defaultTitle       = "Pond Patrol - Autonomous AI Bird Deterrence for Fish Farms"
	defaultDescription = "Intelligent aquaculture protection with autonomous AI-powered bird deterrence. Secure your yield 24/7."
	brandNavy          = "#0A2342"
)

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}
	if config.ThemeColor == "" {
		config.ThemeColor = brandNavy
	}
	version := ""
	if config.AssetVersion != "" {
		version = "?v=" + config.AssetVersion
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1, maximum-scale=5")),
				Meta(Name("theme-color"), Content(config.ThemeColor)),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("keywords"), Content("fish farming, bird deterrence, aquaculture, AI technology, predation prevention")),
				Meta(Name("author"), Content("Brave Ventures")),

				Link(Rel("icon"), Href("/static/images/icon-light-32x32.png"), g.Attr("media", "(prefers-color-scheme: light)")),
				Link(Rel("icon"), Href("/static/images/icon-dark-32x32.png"), g.Attr("media", "(prefers-color-scheme: dark)")),
				Link(Rel("apple-touch-icon"), Href("/static/images/apple-icon.png")),

				Link(Rel("stylesheet"), Href("/static/site.css"+version)),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js"), g.Attr("defer")),
			),
			Body(
				Class("font-sans antialiased text-foreground"),
				Main(
					Class("min-h-screen overflow-hidden"),
					g.Group(content),
				),
				Script(Type("module"), Src("/static/site.js"+version)),
			),
		),
	})
}

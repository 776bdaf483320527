package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Logo is the brand mark linking back to the top of the page
func Logo(size string) g.Node {
	return Img(
		Src("/static/images/pond_patrol_logo.png"),
		Alt("Pond Patrol Logo"),
		Class(size+" w-auto object-contain"),
	)
}

// Icon renders an iconify glyph. Names use the "set--name" form, e.g. "lucide--phone".
func Icon(name, classes, ariaLabel string) g.Node {
	cls := "iconify inline-block"
	if classes != "" {
		cls += " " + classes
	}
	if ariaLabel != "" {
		return Span(
			Class(cls),
			g.Attr("data-icon", strings.Replace(name, "--", ":", 1)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class(cls),
		g.Attr("data-icon", strings.Replace(name, "--", ":", 1)),
		g.Attr("aria-hidden", "true"),
	)
}

// Eyebrow is the small gold uppercase heading above section titles
func Eyebrow(text string) g.Node {
	return H2(Class("text-sm font-bold text-gold tracking-widest uppercase"), g.Text(text))
}

// Fade wraps children in a block that transitions in when its section reveals
func Fade(extra string, children ...g.Node) g.Node {
	cls := "reveal-item"
	if extra != "" {
		cls += " " + extra
	}
	return Div(Class(cls), g.Group(children))
}

// classes joins the non-empty class names
func classes(names ...string) string {
	var parts []string
	for _, n := range names {
		if n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// each is g.Map with the element index, used for staggered reveal delays
func each[T any](ts []T, cb func(int, T) g.Node) g.Node {
	nodes := make([]g.Node, 0, len(ts))
	for i, t := range ts {
		nodes = append(nodes, cb(i, t))
	}
	return g.Group(nodes)
}

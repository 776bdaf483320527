package components

import (
	"pondpatrol-web/internal/domain"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// scrollThreshold is the scroll offset (px) after which the header turns solid
const scrollThreshold = 10

// Navigation is the fixed header: split link bar around the logo flap, plus a
// checkbox-driven drawer on small screens.
func Navigation() g.Node {
	return g.Group([]g.Node{
		Nav(
			ID("site-nav"),
			Class("site-nav fixed top-6 left-1/2 -translate-x-1/2 z-50 w-[92%] max-w-4xl"),
			g.Attr("role", "navigation"),
			g.Attr("aria-label", "Main navigation"),
			g.Attr("data-scrolled", "false"),
			g.Attr("data-scroll-threshold", itoa(scrollThreshold)),

			Div(
				Class("relative flex items-start justify-center"),
				Div(Class("nav-pill absolute top-0 left-0 right-0 h-[44px] rounded-full border")),

				navLinkGroup("justify-end pr-14", leftNavLinks),

				Div(
					Class("relative z-20 flex-shrink-0 -mt-6"),
					A(
						Href("#home"),
						Class("nav-flap block bg-white border border-gray-200 rounded-b-2xl p-3"),
						g.Attr("aria-label", "Pond Patrol, back to top"),
						Logo("h-20"),
					),
				),

				navLinkGroup("pl-14", rightNavLinks),

				Label(
					g.Attr("for", "nav-drawer"),
					Class("md:hidden absolute right-4 top-2.5 text-navy z-10 p-1 rounded-md cursor-pointer"),
					g.Attr("aria-label", "Open navigation menu"),
					Icon("lucide--menu", "size-5", ""),
				),
			),
		),
		mobileDrawer(),
	})
}

func navLinkGroup(extra string, links []domain.NavLink) g.Node {
	return Div(
		Class(classes("hidden md:flex items-center gap-8 flex-1 relative z-10 h-[44px]", extra)),
		g.Group(g.Map(links, func(l domain.NavLink) g.Node {
			return A(
				Href(l.Href),
				Class("text-xs font-semibold tracking-widest text-navy uppercase hover:text-gold transition-colors duration-300"),
				g.Text(l.Label),
			)
		})),
	)
}

// mobileDrawer works without JS: the checkbox holds the open state, the script
// only locks body scroll and closes the drawer after a link is followed.
func mobileDrawer() g.Node {
	return Div(
		Class("nav-drawer md:hidden"),
		Input(ID("nav-drawer"), Type("checkbox"), Class("nav-drawer-toggle sr-only"), g.Attr("aria-hidden", "true")),
		Div(
			Class("nav-drawer-panel fixed inset-0 z-[100]"),
			Label(g.Attr("for", "nav-drawer"), Class("nav-drawer-backdrop absolute inset-0 bg-navy/40"), g.Attr("aria-hidden", "true")),
			Div(
				Class("absolute right-0 top-0 h-full w-72 bg-white p-8 flex flex-col"),
				g.Attr("role", "dialog"),
				g.Attr("aria-modal", "true"),
				g.Attr("aria-label", "Navigation menu"),
				Label(
					g.Attr("for", "nav-drawer"),
					Class("self-end mb-8 p-1 text-gray-500 hover:text-navy rounded-md cursor-pointer"),
					g.Attr("aria-label", "Close navigation menu"),
					Icon("lucide--x", "size-6", ""),
				),
				Div(
					Class("flex flex-col gap-6"),
					g.Group(g.Map(NavLinks(), func(l domain.NavLink) g.Node {
						return A(
							Href(l.Href),
							Class("nav-drawer-link text-lg font-semibold text-navy hover:text-gold uppercase tracking-wide"),
							g.Text(l.Label),
						)
					})),
				),
				Div(
					Class("mt-auto pt-8 border-t border-gray-100"),
					A(
						Href("#contact"),
						Class("nav-drawer-link block w-full py-3 rounded-full bg-gold text-navy font-semibold text-center"),
						g.Text("Get in Touch"),
					),
				),
			),
		),
	)
}

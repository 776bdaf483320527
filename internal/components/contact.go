package components

import (
	"strconv"
	"time"

	"pondpatrol-web/internal/domain"
	"pondpatrol-web/internal/form"
	"pondpatrol-web/internal/reveal"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CSRFField is the hidden form field carrying the double-submit token
const CSRFField = "csrf_token"

// ContactView is everything the contact section needs to render
type ContactView struct {
	Form      form.Snapshot
	CSRFToken string
	// ResetAfter tells the script when to reload the thank-you panel
	ResetAfter time.Duration
}

// ContactForm is anchored as #contact. It posts as a plain HTML form; the
// script only adds live error clearing and the thank-you reload.
func ContactForm(v ContactView) g.Node {
	return Section(
		ID("contact"),
		Class("reveal-section py-24 bg-slate-50"),
		reveal.Attrs(reveal.ContactFormThreshold),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("text-center mb-16"),
				Fade("", H3(Class("text-3xl md:text-4xl font-bold text-navy text-balance"), g.Text("Ready to Protect Your Profits?"))),
				Fade("", reveal.Delay(100),
					P(
						Class("mt-4 text-gray-600 max-w-2xl mx-auto"),
						g.Text("Schedule your free consultation and see how Pond Patrol can revolutionize your fish farming operation"),
					),
				),
			),
			Div(
				Class("grid lg:grid-cols-5 gap-12"),
				Fade("lg:col-span-2 flex flex-col gap-6", reveal.Delay(150),
					g.Group(g.Map(contactChannels, channel)),
					P(Class("mt-4 text-2xl font-bold text-navy"), g.Text("Stop Feeding Birds Your Profits")),
				),
				Fade("lg:col-span-3", reveal.Delay(250),
					g.If(v.Form.Submitted(), thankYou(v.ResetAfter)),
					g.If(!v.Form.Submitted(), contactFields(v)),
				),
			),
		),
	)
}

func channel(c domain.ContactChannel) g.Node {
	return Div(
		Class("flex items-start gap-4"),
		Div(
			Class("size-12 shrink-0 rounded-xl bg-navy text-gold flex items-center justify-center"),
			Icon(c.Icon, "size-6", ""),
		),
		Div(
			H4(Class("font-semibold text-navy"), g.Text(c.Title)),
			P(Class("text-gray-700"), g.Text(c.Detail)),
			P(Class("text-sm text-gray-500"), g.Text(c.Note)),
		),
	)
}

func thankYou(resetAfter time.Duration) g.Node {
	return Div(
		ID("contact-thanks"),
		Class("bg-white rounded-2xl p-12 shadow-sm text-center"),
		g.Attr("role", "status"),
		g.If(resetAfter > 0, g.Attr("data-reset-after", strconv.FormatInt(resetAfter.Milliseconds(), 10))),
		Icon("lucide--circle-check", "size-16 text-gold", ""),
		H3(Class("mt-6 text-2xl font-bold text-navy"), g.Text("Thank You!")),
		P(
			Class("mt-4 text-gray-600"),
			g.Text("Your message has been received. We'll contact you within 24 hours to schedule your free consultation."),
		),
	)
}

func contactFields(v ContactView) g.Node {
	vals, errs := v.Form.Values, v.Form.Errors
	return g.El("form",
		ID("contact-form"),
		Class("bg-white rounded-2xl p-8 shadow-sm flex flex-col gap-6"),
		g.Attr("method", "post"),
		g.Attr("action", "/contact"),
		g.Attr("novalidate"),
		g.Attr("data-edit-url", "/contact/edit"),
		Input(Type("hidden"), Name(CSRFField), Value(v.CSRFToken)),

		Div(
			Class("grid md:grid-cols-2 gap-6"),
			textField(domain.FieldName, "Full Name", "text", "name", vals.Name, errs),
			textField(domain.FieldEmail, "Email Address", "email", "email", vals.Email, errs),
		),
		Div(
			Class("grid md:grid-cols-2 gap-6"),
			textField(domain.FieldPhone, "Phone Number (10 digits)", "tel", "tel", vals.Phone, errs),
			farmSizeField(vals.FarmSize, errs),
		),
		field(domain.FieldMessage, "Message", errs,
			Textarea(
				append(controlAttrs(domain.FieldMessage, errs),
					g.Attr("rows", "4"),
					Placeholder("Tell us about your ponds and the birds you see"),
					g.Text(vals.Message),
				)...,
			),
		),

		Button(
			Type("submit"),
			Class("w-full py-4 rounded-full bg-gold text-navy font-semibold hover:shadow-lg transition-all"),
			g.Text("Schedule Free Consultation"),
		),
		P(Class("text-center text-sm text-gray-500"), g.Text("We'll contact you within 24 hours to confirm your consultation slot")),
	)
}

func textField(name, label, kind, autocomplete, value string, errs domain.ValidationErrors) g.Node {
	return field(name, label, errs,
		Input(append(controlAttrs(name, errs),
			Type(kind),
			Value(value),
			g.Attr("autocomplete", autocomplete),
		)...),
	)
}

func farmSizeField(selected string, errs domain.ValidationErrors) g.Node {
	return field(domain.FieldFarmSize, "Pond/Farm Size", errs,
		Select(append(controlAttrs(domain.FieldFarmSize, errs),
			Option(Value(""), g.Text("Select your farm size"), g.If(selected == "", g.Attr("selected"))),
			g.Group(g.Map(domain.FarmSizes, func(s domain.FarmSize) g.Node {
				return Option(
					Value(string(s)),
					g.If(string(s) == selected, g.Attr("selected")),
					g.Text(s.Label()),
				)
			})),
		)...),
	)
}

// field wraps a control with its label and, when set, its error message
func field(name, label string, errs domain.ValidationErrors, control g.Node) g.Node {
	msg, invalid := errs[name]
	return Div(
		Class("flex flex-col gap-2"),
		g.Attr("data-field", name),
		Label(g.Attr("for", "contact-"+name), Class("text-sm font-semibold text-navy"), g.Text(label)),
		control,
		P(
			ID("contact-"+name+"-error"),
			Class("field-error text-sm text-red-600"),
			g.Attr("data-error-for", name),
			g.If(!invalid, g.Attr("hidden")),
			g.Text(msg),
		),
	)
}

func controlAttrs(name string, errs domain.ValidationErrors) []g.Node {
	_, invalid := errs[name]
	cls := "w-full rounded-lg border px-4 py-3 focus:outline-none focus:ring-2 focus:ring-gold"
	if invalid {
		cls += " border-red-500"
	} else {
		cls += " border-gray-300"
	}
	return []g.Node{
		ID("contact-" + name),
		Name(name),
		Class(cls),
		g.Attr("aria-describedby", "contact-"+name+"-error"),
		g.If(invalid, g.Attr("aria-invalid", "true")),
	}
}

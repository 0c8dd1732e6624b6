package gallery

import (
	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
)

const (
	daisyCSS    = "https://cdn.jsdelivr.net/npm/daisyui@5"
	tailwindJS  = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
	doctypeHTML = "<!DOCTYPE html>"
)

// PageProps configures Page.
type PageProps struct {
	Title     string
	Theme     string
	Version   string
	Specimens []Specimen
}

// Page renders a complete HTML document listing the specimens.
func Page(p PageProps) templ.Component {
	sections := make([]templ.Component, 0, len(p.Specimens))
	for _, s := range p.Specimens {
		sections = append(sections, Section(s))
	}

	return Document(p.Title, p.Theme,
		ui.Element("header", ui.Attrs{ui.A("class", "navbar bg-base-200 px-6")},
			ui.Element("h1", ui.Attrs{ui.A("class", "text-xl font-bold")}, ui.Text(p.Title)),
			ui.When(p.Version != "", ui.Element("span", ui.Attrs{ui.A("class", "badge badge-ghost ml-2")}, ui.Text(p.Version))),
		),
		ui.Element("main", ui.Attrs{ui.A("class", "container mx-auto grid gap-6 p-6")}, sections...),
	)
}

// Section renders one specimen inside a card. The card id is the specimen name.
func Section(s Specimen) templ.Component {
	return ui.Element("section", ui.Attrs{
		ui.A("id", s.Name),
		ui.A("class", "card bg-base-100 shadow-sm"),
	},
		ui.Element("div", ui.Attrs{ui.A("class", "card-body")},
			ui.Element("h2", ui.Attrs{ui.A("class", "card-title")},
				ui.Element("a", ui.Attrs{ui.A("href", "/components/"+s.Name)}, ui.Text(s.Title)),
			),
			ui.When(s.Caption != "", ui.Element("p", ui.Attrs{ui.A("class", "text-sm opacity-70")}, ui.HTML(s.Caption))),
			ui.Element("div", ui.Attrs{ui.A("class", "specimen")}, s.Component),
		),
	)
}

// Document wraps body in an HTML5 document that loads daisyUI and Tailwind.
func Document(title, theme string, body ...templ.Component) templ.Component {
	return ui.Group(
		templ.Raw(doctypeHTML),
		ui.Element("html", ui.Attrs{ui.A("lang", "en"), ui.Opt("data-theme", theme)},
			ui.Element("head", nil,
				ui.Void("meta", ui.Attrs{ui.A("charset", "utf-8")}),
				ui.Void("meta", ui.Attrs{ui.A("name", "viewport"), ui.A("content", "width=device-width, initial-scale=1")}),
				ui.Element("title", nil, ui.Text(title)),
				ui.Void("link", ui.Attrs{ui.A("href", daisyCSS), ui.A("rel", "stylesheet"), ui.A("type", "text/css")}),
				ui.Element("script", ui.Attrs{ui.A("src", tailwindJS)}),
			),
			ui.Element("body", ui.Attrs{ui.A("class", "min-h-screen bg-base-200")}, body...),
		),
	)
}

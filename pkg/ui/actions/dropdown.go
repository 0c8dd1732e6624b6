package actions

import (
	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
)

const (
	dropdownTriggerClass = "btn m-1"
	dropdownContentClass = "dropdown-content menu bg-base-100 rounded-box z-1 w-52 p-2 shadow-sm"
	defaultDropdownLabel = "Click"
)

// DropDownProps configures DropDown.
type DropDownProps struct {
	// Label is the trigger text, "Click" when empty.
	Label   string
	Content templ.Component
	Class   string
	// Hover opens the menu on hover as well as on focus.
	Hover bool
	// Caret draws a caret after the label when there is no suffix icon.
	Caret     bool
	Direction Direction

	PrefixImageSrc string
	SuffixImageSrc string
}

// DropDown renders a focus-driven daisyUI dropdown: a trigger and a menu list holding Content.
func DropDown(p DropDownProps) templ.Component {
	hover := ""
	if p.Hover {
		hover = "dropdown-hover"
	}

	label := p.Label
	if label == "" {
		label = defaultDropdownLabel
	}

	var prefix, suffix templ.Component
	if p.PrefixImageSrc != "" {
		prefix = ui.Void("img", ui.Attrs{ui.A("src", p.PrefixImageSrc), ui.A("class", "mr-2"), ui.A("width", "16")})
	}
	switch {
	case p.SuffixImageSrc != "":
		suffix = ui.Void("img", ui.Attrs{ui.A("src", p.SuffixImageSrc), ui.A("class", "ml-2"), ui.A("width", "12")})
	case p.Caret:
		suffix = ui.Element("div", ui.Attrs{ui.A("class", "dropdown-caret")})
	}

	trigger := ui.Element("div", ui.Attrs{
		ui.A("tabindex", "0"),
		ui.A("role", "button"),
		ui.A("class", dropdownTriggerClass),
	}, prefix, ui.Text(label), suffix)

	content := ui.Element("ul", ui.Attrs{
		ui.A("tabindex", "0"),
		ui.A("class", dropdownContentClass),
	}, p.Content)

	// Class and hover sit between padding blanks: "dropdown  x dropdown-hover  dropdown-start".
	return ui.Element("div", ui.Attrs{
		ui.A("class", ui.Classes("dropdown", "", p.Class, hover, "", p.Direction.Class())),
	}, trigger, content)
}

// DropDownLinkProps configures DropDownLink.
type DropDownLinkProps struct {
	Href    string
	Target  string
	Class   string
	Content templ.Component
	// PopoverTarget, when set, is carried as data-target so the item can open a modal.
	PopoverTarget string
}

// DropDownLink renders a menu entry for DropDown.
func DropDownLink(p DropDownLinkProps) templ.Component {
	attrs := ui.Attrs{ui.A("class", ui.Classes("dropdown-item", p.Class))}
	if p.PopoverTarget != "" {
		attrs = append(attrs, ui.A("data-target", p.PopoverTarget))
	}
	attrs = append(attrs, ui.Opt("target", p.Target), ui.A("href", p.Href))

	return ui.Element("li", nil, ui.Element("a", attrs, p.Content))
}

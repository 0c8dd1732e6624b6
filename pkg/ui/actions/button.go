// Package actions renders the interactive daisyUI widgets: buttons, dropdowns and modals.
package actions

import (
	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
)

// ButtonProps configures Button. Only Content is expected; everything else has a default.
type ButtonProps struct {
	Content  templ.Component
	ID       string
	Disabled bool
	// DisabledText is exposed as data-disabled-text for host scripts and tooltips.
	DisabledText string
	Class        string
	// Href and Target only apply when Kind is KindLink.
	Href   string
	Target string

	PrefixImageSrc string
	SuffixImageSrc string

	// PopoverTarget is emitted as data-target; daisyUI modals do not react to the popover attribute.
	PopoverTarget       string
	PopoverTargetAction string

	Kind  ButtonKind
	Size  ButtonSize
	Color ButtonColor
	Shape ButtonShape
	Style ButtonStyle
}

// Button renders a daisyUI button, or an anchor styled as one when Kind is KindLink.
func Button(p ButtonProps) templ.Component {
	class := ui.Classes("btn", p.Class, p.Color.Class(), p.Size.Class(), p.Shape.Class(), p.Style.Class())
	children := []templ.Component{icon(p.PrefixImageSrc), p.Content, icon(p.SuffixImageSrc)}

	if p.Kind == KindLink {
		return ui.Element("a", ui.Attrs{
			ui.A("class", class),
			ui.Opt("id", p.ID),
			ui.Opt("href", p.Href),
			ui.Opt("target", p.Target),
		}, children...)
	}

	return ui.Element("button", ui.Attrs{
		ui.A("class", class),
		ui.Opt("id", p.ID),
		ui.Flag("disabled", p.Disabled),
		ui.Opt("data-target", p.PopoverTarget),
		ui.Opt("data-target-action", p.PopoverTargetAction),
		ui.A("type", p.Kind.Type()),
		ui.Opt("data-disabled-text", p.DisabledText),
	}, children...)
}

func icon(src string) templ.Component {
	if src == "" {
		return nil
	}
	return ui.Void("img", ui.Attrs{ui.A("src", src), ui.A("width", "16")})
}

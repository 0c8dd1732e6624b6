package actions

import (
	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
)

// ModalProps configures Modal. The zero value renders a checkbox-controlled modal.
type ModalProps struct {
	// TriggerID ties the opener to the modal. Each variant has its own default.
	TriggerID string
	// SubmitAction, when set, wraps the box content in a POST form targeting it.
	SubmitAction string
	Class        string
	// Color styles the opener. Nil leaves it a plain btn.
	Color   *ButtonColor
	Variant DialogVariant

	Title      string
	OpenLabel  string
	CloseLabel string
	// Content replaces the default paragraph inside the modal box.
	Content templ.Component
}

type modalDefaults struct {
	id, title, body, close string
}

var modalVariantDefaults = map[DialogVariant]modalDefaults{
	DialogNative:   {id: "my_modal_2", title: "Hello!", body: "Press ESC key or click outside to close", close: "close"},
	DialogCheckbox: {id: "my_modal_7", title: "Title", body: "content .....", close: "Close"},
	DialogAnchor:   {id: "my_modal_8", title: "Title", body: "This modal works with anchor links", close: "Yal!"},
}

// There are three ways to drive a daisyUI modal and Modal emits exactly one of them:
//
//  1. DialogNative: a <dialog> element, opened by host script calling showModal(),
//     closed with Esc or the backdrop form.
//  2. DialogCheckbox: a hidden checkbox holds the state and two labels toggle it.
//  3. DialogAnchor: an anchor sets the URL fragment and the modal shows while it matches.
//
// Modal renders the markup only; the state lives in the host document.
func Modal(p ModalProps) templ.Component {
	switch p.Variant {
	case DialogNative:
		return nativeModal(p)
	case DialogAnchor:
		return anchorModal(p)
	default:
		return checkboxModal(p)
	}
}

func (p ModalProps) resolve() (ModalProps, modalDefaults) {
	d, ok := modalVariantDefaults[p.Variant]
	if !ok {
		d = modalVariantDefaults[DialogCheckbox]
	}
	if p.TriggerID == "" {
		p.TriggerID = d.id
	}
	if p.Title == "" {
		p.Title = d.title
	}
	if p.OpenLabel == "" {
		p.OpenLabel = "Open"
	}
	if p.CloseLabel == "" {
		p.CloseLabel = d.close
	}
	return p, d
}

func (p ModalProps) openerClass() string {
	if p.Color == nil {
		return "btn"
	}
	return ui.Classes("btn", p.Color.Class())
}

func (p ModalProps) box(d modalDefaults, extra ...templ.Component) templ.Component {
	body := p.Content
	if body == nil {
		body = ui.Element("p", ui.Attrs{ui.A("class", "py-4")}, ui.Text(d.body))
	}

	children := append([]templ.Component{
		ui.Element("h3", ui.Attrs{ui.A("class", "text-lg font-bold")}, ui.Text(p.Title)),
		body,
	}, extra...)

	inner := ui.Group(children...)
	if p.SubmitAction != "" {
		inner = ui.Element("form", ui.Attrs{ui.A("action", p.SubmitAction), ui.A("method", "post")}, inner)
	}
	return ui.Element("div", ui.Attrs{ui.A("class", "modal-box")}, inner)
}

func nativeModal(p ModalProps) templ.Component {
	p, d := p.resolve()
	return ui.Element("dialog", ui.Attrs{
		ui.A("id", p.TriggerID),
		ui.A("class", ui.Classes("modal", p.Class)),
	},
		p.box(d),
		ui.Element("form", ui.Attrs{ui.A("method", "dialog"), ui.A("class", "modal-backdrop")},
			ui.Element("button", nil, ui.Text(p.CloseLabel)),
		),
	)
}

func checkboxModal(p ModalProps) templ.Component {
	p, d := p.resolve()
	return ui.Group(
		ui.Element("label", ui.Attrs{
			ui.A("for", p.TriggerID),
			ui.A("class", p.openerClass()),
		}, ui.Text(p.OpenLabel)),
		ui.Void("input", ui.Attrs{
			ui.A("type", "checkbox"),
			ui.A("class", "modal-toggle"),
			ui.A("id", p.TriggerID),
		}),
		ui.Element("div", ui.Attrs{
			ui.A("role", "dialog"),
			ui.A("class", ui.Classes("modal", p.Class)),
		},
			p.box(d),
			ui.Element("label", ui.Attrs{ui.A("for", p.TriggerID), ui.A("class", "modal-backdrop")}, ui.Text(p.CloseLabel)),
		),
	)
}

func anchorModal(p ModalProps) templ.Component {
	p, d := p.resolve()
	closer := ui.Element("div", ui.Attrs{ui.A("class", "modal-action")},
		ui.Element("a", ui.Attrs{ui.A("href", "#"), ui.A("class", "btn")}, ui.Text(p.CloseLabel)),
	)
	return ui.Group(
		ui.Element("a", ui.Attrs{
			ui.A("href", "#"+p.TriggerID),
			ui.A("class", p.openerClass()),
		}, ui.Text(p.OpenLabel)),
		ui.Element("div", ui.Attrs{
			ui.A("role", "dialog"),
			ui.A("class", ui.Classes("modal", p.Class)),
			ui.A("id", p.TriggerID),
		}, p.box(d, closer)),
	)
}

// ModalBodyProps configures ModalBody.
type ModalBodyProps struct {
	Class   string
	Content templ.Component
}

// ModalBody wraps content in a modal-box.
func ModalBody(p ModalBodyProps) templ.Component {
	return ui.Element("div", ui.Attrs{ui.A("class", ui.Classes("modal-box", p.Class))}, p.Content)
}

// ModalActionProps configures ModalAction.
type ModalActionProps struct {
	Class   string
	Content templ.Component
}

// ModalAction wraps content in a modal-action row.
func ModalAction(p ModalActionProps) templ.Component {
	return ui.Element("div", ui.Attrs{ui.A("class", ui.Classes("modal-action", p.Class))}, p.Content)
}

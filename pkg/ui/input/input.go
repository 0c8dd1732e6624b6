// Package input renders daisyUI form controls.
package input

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
)

// Props configures Input.
type Props struct {
	Name        string
	ID          string
	Class       string
	Placeholder string
	Value       string
	Disabled    bool
	Required    bool
	Type        Type
	Size        Size
}

// Input renders a text-like <input>.
func Input(p Props) templ.Component {
	return ui.Void("input", ui.Attrs{
		ui.A("type", p.Type.Attr()),
		ui.A("class", ui.Classes("input", p.Class, p.Size.Class())),
		ui.A("name", p.Name),
		ui.Opt("id", p.ID),
		ui.Opt("placeholder", p.Placeholder),
		ui.Opt("value", p.Value),
		ui.Flag("disabled", p.Disabled),
		ui.Flag("required", p.Required),
	})
}

// CheckboxProps configures Checkbox.
type CheckboxProps struct {
	Name     string
	ID       string
	Class    string
	Checked  bool
	Disabled bool
}

// Checkbox renders a daisyUI checkbox.
func Checkbox(p CheckboxProps) templ.Component {
	return ui.Void("input", ui.Attrs{
		ui.A("type", "checkbox"),
		ui.A("class", ui.Classes("checkbox", p.Class)),
		ui.A("name", p.Name),
		ui.Opt("id", p.ID),
		ui.Flag("checked", p.Checked),
		ui.Flag("disabled", p.Disabled),
	})
}

// TextAreaProps configures TextArea. Rows is omitted when zero.
type TextAreaProps struct {
	Name        string
	ID          string
	Class       string
	Placeholder string
	Value       string
	Rows        int
}

// TextArea renders a <textarea> holding Value as escaped text.
func TextArea(p TextAreaProps) templ.Component {
	rows := ""
	if p.Rows > 0 {
		rows = strconv.Itoa(p.Rows)
	}
	return ui.Element("textarea", ui.Attrs{
		ui.A("class", ui.Classes("textarea", p.Class)),
		ui.A("name", p.Name),
		ui.Opt("id", p.ID),
		ui.Opt("placeholder", p.Placeholder),
		ui.Opt("rows", rows),
	}, ui.Text(p.Value))
}

// FileInputProps configures FileInput.
type FileInputProps struct {
	Name     string
	ID       string
	Class    string
	Accept   string
	Multiple bool
}

// FileInput renders a file picker.
func FileInput(p FileInputProps) templ.Component {
	return ui.Void("input", ui.Attrs{
		ui.A("type", "file"),
		ui.A("class", ui.Classes("file-input", p.Class)),
		ui.A("name", p.Name),
		ui.Opt("id", p.ID),
		ui.Opt("accept", p.Accept),
		ui.Flag("multiple", p.Multiple),
	})
}

// FieldsetProps configures Fieldset.
type FieldsetProps struct {
	Legend  string
	Class   string
	Content templ.Component
}

// Fieldset groups controls under an optional legend.
func Fieldset(p FieldsetProps) templ.Component {
	var legend templ.Component
	if p.Legend != "" {
		legend = ui.Element("legend", ui.Attrs{ui.A("class", "fieldset-legend")}, ui.Text(p.Legend))
	}
	return ui.Element("fieldset", ui.Attrs{ui.A("class", ui.Classes("fieldset", p.Class))}, legend, p.Content)
}

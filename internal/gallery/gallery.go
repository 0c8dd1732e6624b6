// Package gallery assembles live specimens of every widget into a browsable page.
package gallery

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
	"github.com/bnema/daisy/pkg/ui/actions"
	"github.com/bnema/daisy/pkg/ui/feedback"
	"github.com/bnema/daisy/pkg/ui/input"
)

// externalLinkIcon is inlined so the gallery needs no static file route.
const externalLinkIcon = "data:image/svg+xml,%3Csvg%20xmlns=%27http://www.w3.org/2000/svg%27%20viewBox=%270%200%2016%2016%27%3E" +
	"%3Cpath%20d=%27M9%202h5v5M14%202L7%209M12%209v5H2V4h5%27%20fill=%27none%27%20stroke=%27currentColor%27%20stroke-width=%271.5%27/%3E%3C/svg%3E"

// Specimen is one rendered example.
type Specimen struct {
	Name  string
	Title string
	// Caption is HTML. It goes through the UGC sanitizer before rendering.
	Caption   string
	Component templ.Component
}

// Catalog returns the specimens in display order.
func Catalog() []Specimen {
	specimens := []Specimen{
		{
			Name:  "button",
			Title: "Button",
			Component: actions.Button(actions.ButtonProps{
				Content: ui.Text("Hello"),
				Class:   "test",
				Color:   actions.ColorPrimary,
				Size:    actions.SizeLarge,
				ID:      "id",
			}),
		},
		{
			Name:  "button-link",
			Title: "Button rendered as a link",
			Component: actions.Button(actions.ButtonProps{
				Content:        ui.Text("Documentation"),
				Kind:           actions.KindLink,
				Href:           "https://daisyui.com",
				Target:         "_blank",
				Style:          actions.StyleOutline,
				SuffixImageSrc: externalLinkIcon,
			}),
		},
		{
			Name:  "button-disabled",
			Title: "Disabled submit button",
			Component: actions.Button(actions.ButtonProps{
				Content:      ui.Text("Save"),
				Kind:         actions.KindSubmit,
				Disabled:     true,
				DisabledText: "Nothing to save",
				Color:        actions.ColorSuccess,
			}),
		},
		{
			Name:      "button-colors",
			Title:     "Button colors",
			Component: buttonColors(),
		},
		{
			Name:  "dropdown",
			Title: "Dropdown",
			Component: actions.DropDown(actions.DropDownProps{
				Label:     "Account",
				Hover:     true,
				Caret:     true,
				Direction: actions.DirectionEnd,
				Content: ui.Group(
					actions.DropDownLink(actions.DropDownLinkProps{Href: "#profile", Content: ui.Text("Profile")}),
					actions.DropDownLink(actions.DropDownLinkProps{Href: "#my_modal_8", PopoverTarget: "my_modal_8", Content: ui.Text("Sign out")}),
				),
			}),
		},
	}

	for _, v := range actions.DialogVariants() {
		variant := actions.ParseDialogVariant(v.Name)
		specimens = append(specimens, Specimen{
			Name:      "modal-" + strings.ToLower(v.Name),
			Title:     "Modal (" + v.Name + ")",
			Caption:   "Driven by the host document through <em>" + variant.Mechanism() + "</em>.",
			Component: actions.Modal(actions.ModalProps{Variant: variant}),
		})
	}

	return append(specimens,
		Specimen{
			Name:  "loading",
			Title: "Loading",
			Component: ui.Group(
				feedback.Loading(feedback.LoadingProps{}),
				feedback.Loading(feedback.LoadingProps{Style: feedback.LoadingDots, Color: feedback.LoadingPrimary, Size: feedback.LoadingSizeLarge}),
				feedback.Loading(feedback.LoadingProps{Style: feedback.LoadingRing, Color: feedback.LoadingAccent}),
			),
		},
		Specimen{
			Name:  "progress",
			Title: "Progress",
			Component: ui.Group(
				feedback.Progress(feedback.ProgressProps{Color: feedback.ProgressPrimary, Value: 40, Max: 100}),
				feedback.RadialProgress(feedback.ProgressProps{Value: 70}),
			),
		},
		Specimen{
			Name:  "form",
			Title: "Form controls",
			Component: input.Fieldset(input.FieldsetProps{
				Legend: "Sign up",
				Content: ui.Group(
					input.Input(input.Props{Name: "email", Type: input.TypeEmail, Placeholder: "you@example.com", Required: true}),
					input.Input(input.Props{Name: "password", Type: input.TypePassword}),
					input.TextArea(input.TextAreaProps{Name: "bio", Rows: 3, Placeholder: "About you"}),
					input.FileInput(input.FileInputProps{Name: "avatar", Accept: "image/*"}),
					input.Checkbox(input.CheckboxProps{Name: "tos", ID: "tos"}),
				),
			}),
		},
	)
}

// Find returns the specimen with the given name.
func Find(name string) (Specimen, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return Specimen{}, false
}

func buttonColors() templ.Component {
	var buttons []templ.Component
	for _, v := range actions.ButtonColorVariants() {
		buttons = append(buttons, actions.Button(actions.ButtonProps{
			Content: ui.Text(v.Name),
			Color:   actions.ParseButtonColor(v.Name),
		}))
	}
	return ui.Element("div", ui.Attrs{ui.A("class", "flex flex-wrap gap-2")}, buttons...)
}

package actions

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/daisy/pkg/ui"
)

func TestModalNative(t *testing.T) {
	got := render(t, Modal(ModalProps{Variant: DialogNative}))

	want := `<dialog id="my_modal_2" class="modal ">` +
		`<div class="modal-box"><h3 class="text-lg font-bold">Hello!</h3><p class="py-4">Press ESC key or click outside to close</p></div>` +
		`<form method="dialog" class="modal-backdrop"><button>close</button></form>` +
		`</dialog>`
	assert.Equal(t, want, got)
}

func TestModalCheckbox(t *testing.T) {
	got := render(t, Modal(ModalProps{Variant: DialogCheckbox}))

	want := `<label for="my_modal_7" class="btn">Open</label>` +
		`<input type="checkbox" class="modal-toggle" id="my_modal_7">` +
		`<div role="dialog" class="modal ">` +
		`<div class="modal-box"><h3 class="text-lg font-bold">Title</h3><p class="py-4">content .....</p></div>` +
		`<label for="my_modal_7" class="modal-backdrop">Close</label>` +
		`</div>`
	assert.Equal(t, want, got)
}

func TestModalAnchor(t *testing.T) {
	got := render(t, Modal(ModalProps{Variant: DialogAnchor}))

	want := `<a href="#my_modal_8" class="btn">Open</a>` +
		`<div role="dialog" class="modal " id="my_modal_8">` +
		`<div class="modal-box"><h3 class="text-lg font-bold">Title</h3><p class="py-4">This modal works with anchor links</p>` +
		`<div class="modal-action"><a href="#" class="btn">Yal!</a></div></div>` +
		`</div>`
	assert.Equal(t, want, got)
}

func TestModalDefaultsToCheckbox(t *testing.T) {
	assert.Equal(t, render(t, Modal(ModalProps{Variant: DialogCheckbox})), render(t, Modal(ModalProps{})))
	assert.Equal(t, render(t, Modal(ModalProps{Variant: DialogCheckbox})), render(t, Modal(ModalProps{Variant: DialogVariant(7)})))
}

func TestModalDispatchIsExclusive(t *testing.T) {
	tests := []struct {
		variant     DialogVariant
		dialogs     int
		toggles     int
		fragmentRef int
	}{
		{DialogNative, 1, 0, 0},
		{DialogCheckbox, 0, 1, 0},
		{DialogAnchor, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			doc := parse(t, render(t, Modal(ModalProps{Variant: tt.variant, TriggerID: "m"})))
			assert.Equal(t, tt.dialogs, doc.Find("dialog").Length())
			assert.Equal(t, tt.toggles, doc.Find("input.modal-toggle").Length())
			assert.Equal(t, tt.fragmentRef, doc.Find(`a[href="#m"]`).Length())
			assert.Equal(t, 1, doc.Find(".modal-box").Length())
		})
	}
}

func TestModalCustomContent(t *testing.T) {
	danger := ColorError
	got := render(t, Modal(ModalProps{
		Variant:      DialogCheckbox,
		TriggerID:    "confirm",
		Class:        "modal-bottom",
		Color:        &danger,
		Title:        "Delete?",
		OpenLabel:    "Delete",
		CloseLabel:   "Cancel",
		SubmitAction: "/items/1/delete",
		Content:      ui.Text("This cannot be undone."),
	}))

	doc := parse(t, got)
	class, _ := doc.Find("label.btn").Attr("class")
	assert.Equal(t, "btn btn-error", class)
	assert.Equal(t, "Delete", doc.Find("label.btn").Text())

	form := doc.Find(".modal-box > form")
	action, _ := form.Attr("action")
	method, _ := form.Attr("method")
	assert.Equal(t, "/items/1/delete", action)
	assert.Equal(t, "post", method)
	assert.Equal(t, "Delete?", form.Find("h3").Text())
	assert.Contains(t, form.Text(), "This cannot be undone.")
	assert.Equal(t, 0, doc.Find("p.py-4").Length())

	modalClass, _ := doc.Find("div[role=dialog]").Attr("class")
	assert.Equal(t, "modal modal-bottom", modalClass)
	assert.Equal(t, "Cancel", doc.Find("label.modal-backdrop").Text())
}

func TestModalOpenerColor(t *testing.T) {
	info, neutral := ColorInfo, ColorNeutral

	got := render(t, Modal(ModalProps{Variant: DialogAnchor, Color: &info}))
	assert.Contains(t, got, `<a href="#my_modal_8" class="btn btn-info">Open</a>`)

	got = render(t, Modal(ModalProps{Variant: DialogCheckbox, Color: &neutral}))
	assert.Contains(t, got, `<label for="my_modal_7" class="btn btn-neutral">Open</label>`)

	got = render(t, Modal(ModalProps{Variant: DialogCheckbox}))
	assert.Contains(t, got, `<label for="my_modal_7" class="btn">Open</label>`)
}

func TestDialogVariantMechanism(t *testing.T) {
	assert.Equal(t, "checkbox checked state", DialogCheckbox.Mechanism())
	assert.Equal(t, "dialog showModal/close", DialogNative.Mechanism())
	assert.Equal(t, "URL fragment match", DialogAnchor.Mechanism())
	assert.Equal(t, DialogAnchor, ParseDialogVariant("anchor"))
	assert.Equal(t, DialogCheckbox, ParseDialogVariant("unknown"))
}

func TestModalBodyAndAction(t *testing.T) {
	assert.Equal(t, `<div class="modal-box wide">hi</div>`, render(t, ModalBody(ModalBodyProps{Class: "wide", Content: ui.Text("hi")})))
	assert.Equal(t, `<div class="modal-action ">ok</div>`, render(t, ModalAction(ModalActionProps{Content: ui.Text("ok")})))
}

func TestWidgetsRenderIdentically(t *testing.T) {
	info := ColorInfo
	build := map[string]func() templ.Component{
		"button": func() templ.Component {
			return Button(ButtonProps{Content: ui.Text("Hello"), Class: "test", Color: ColorPrimary, Size: SizeLarge, ID: "id", PrefixImageSrc: "/a.svg"})
		},
		"link": func() templ.Component {
			return Button(ButtonProps{Content: ui.Text("Docs"), Kind: KindLink, Href: "/docs", Target: "_blank"})
		},
		"dropdown": func() templ.Component {
			return DropDown(DropDownProps{Class: "x", Hover: true, Caret: true, Direction: DirectionEnd,
				Content: DropDownLink(DropDownLinkProps{Href: "#", PopoverTarget: "m", Content: ui.Text("Open")})})
		},
		"modal-native":   func() templ.Component { return Modal(ModalProps{Variant: DialogNative}) },
		"modal-checkbox": func() templ.Component { return Modal(ModalProps{Variant: DialogCheckbox, Color: &info}) },
		"modal-anchor":   func() templ.Component { return Modal(ModalProps{Variant: DialogAnchor, SubmitAction: "/x"}) },
	}

	for name, newComponent := range build {
		t.Run(name, func(t *testing.T) {
			c := newComponent()
			first := render(t, c)
			assert.Equal(t, first, render(t, c), "same component rendered twice")
			assert.Equal(t, first, render(t, newComponent()), "same props built twice")
		})
	}
}

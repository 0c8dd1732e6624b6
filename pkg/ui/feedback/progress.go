package feedback

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
)

const radialProgressClass = "radial-progress bg-primary text-primary-content border-primary border-4"

// ProgressProps configures Progress and RadialProgress. Value and Max are
// written as given; nothing checks Value against Max.
type ProgressProps struct {
	ID    string
	Class string
	Color ProgressColor
	Value int
	Max   int
}

// Progress renders a native <progress> bar.
func Progress(p ProgressProps) templ.Component {
	return ui.Element("progress", ui.Attrs{
		ui.Opt("id", p.ID),
		ui.A("class", ui.Classes("progress", p.Class, p.Color.Class())),
		ui.A("value", strconv.Itoa(p.Value)),
		ui.A("max", strconv.Itoa(p.Max)),
	})
}

// RadialProgress renders a circular progress with the percentage as text.
// Color is ignored; the radial style uses the primary palette.
func RadialProgress(p ProgressProps) templ.Component {
	value := strconv.Itoa(p.Value)
	class := radialProgressClass
	if p.Class != "" {
		class = ui.Classes(class, p.Class)
	}
	return ui.Element("div", ui.Attrs{
		ui.Opt("id", p.ID),
		ui.A("class", class),
		ui.A("style", "--value:"+value+";"),
		ui.A("aria-valuenow", value),
		ui.A("role", "progressbar"),
	}, ui.Text(value+"%"))
}

// Package feedback renders loading indicators and progress bars.
package feedback

import (
	"github.com/a-h/templ"

	"github.com/bnema/daisy/pkg/ui"
)

// LoadingProps configures Loading.
type LoadingProps struct {
	ID    string
	Class string
	Size  LoadingSize
	Style LoadingStyle
	Color LoadingColor
}

// Loading renders an empty span animated by the loading classes.
func Loading(p LoadingProps) templ.Component {
	return ui.Element("span", ui.Attrs{
		ui.Opt("id", p.ID),
		ui.A("class", ui.Classes("loading", p.Class, p.Size.Class(), p.Style.Class(), p.Color.Class())),
	})
}

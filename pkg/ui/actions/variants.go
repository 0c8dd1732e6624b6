package actions

import "github.com/bnema/daisy/pkg/ui"

// ButtonColor selects the button color modifier.
type ButtonColor int

const (
	ColorNeutral ButtonColor = iota
	ColorPrimary
	ColorSecondary
	ColorAccent
	ColorInfo
	ColorSuccess
	ColorWarning
	ColorError
	buttonColorCount
)

var buttonColors = ui.NewVariants(buttonColorCount,
	ui.Entry{Name: "Neutral", Token: "btn-neutral"},
	ui.Entry{Name: "Primary", Token: "btn-primary"},
	ui.Entry{Name: "Secondary", Token: "btn-secondary"},
	ui.Entry{Name: "Accent", Token: "btn-accent"},
	ui.Entry{Name: "Info", Token: "btn-info"},
	ui.Entry{Name: "Success", Token: "btn-success"},
	ui.Entry{Name: "Warning", Token: "btn-warning"},
	ui.Entry{Name: "Error", Token: "btn-error"},
)

func (c ButtonColor) Class() string  { return buttonColors.Class(c) }
func (c ButtonColor) String() string { return buttonColors.Name(c) }

// ParseButtonColor resolves a variant name, falling back to ColorNeutral.
func ParseButtonColor(name string) ButtonColor { return buttonColors.Parse(name) }

// ButtonColorVariants lists the color table.
func ButtonColorVariants() []ui.Entry { return buttonColors.Entries() }

// ButtonKind selects between an anchor and a <button>, and the button's type attribute.
type ButtonKind int

const (
	KindButton ButtonKind = iota
	KindSubmit
	KindReset
	// KindLink renders an anchor. Used as a type attribute it reads "button".
	KindLink
	buttonKindCount
)

var buttonKinds = ui.NewVariants(buttonKindCount,
	ui.Entry{Name: "Button", Token: "button"},
	ui.Entry{Name: "Submit", Token: "submit"},
	ui.Entry{Name: "Reset", Token: "reset"},
	ui.Entry{Name: "Link", Token: "button"},
)

// Type returns the value of the type attribute for a <button>.
func (k ButtonKind) Type() string   { return buttonKinds.Class(k) }
func (k ButtonKind) String() string { return buttonKinds.Name(k) }

func ParseButtonKind(name string) ButtonKind { return buttonKinds.Parse(name) }

func ButtonKindVariants() []ui.Entry { return buttonKinds.Entries() }

// ButtonSize selects the button size modifier. SizeDefault and SizeSmall share btn-sm.
type ButtonSize int

const (
	SizeDefault ButtonSize = iota
	SizeSmall
	SizeExtraSmall
	SizeLarge
	SizeMedium
	buttonSizeCount
)

var buttonSizes = ui.NewVariants(buttonSizeCount,
	ui.Entry{Name: "Default", Token: "btn-sm"},
	ui.Entry{Name: "Small", Token: "btn-sm"},
	ui.Entry{Name: "ExtraSmall", Token: "btn-xs"},
	ui.Entry{Name: "Large", Token: "btn-lg"},
	ui.Entry{Name: "Medium", Token: "btn-md"},
)

func (s ButtonSize) Class() string  { return buttonSizes.Class(s) }
func (s ButtonSize) String() string { return buttonSizes.Name(s) }

func ParseButtonSize(name string) ButtonSize { return buttonSizes.Parse(name) }

func ButtonSizeVariants() []ui.Entry { return buttonSizes.Entries() }

// ButtonShape selects the button shape modifier.
type ButtonShape int

const (
	ShapeNone ButtonShape = iota
	ShapeCircle
	ShapeSquare
	buttonShapeCount
)

var buttonShapes = ui.NewVariants(buttonShapeCount,
	ui.Entry{Name: "None", Token: ""},
	ui.Entry{Name: "Circle", Token: "btn-circle"},
	ui.Entry{Name: "Square", Token: "btn-square"},
)

func (s ButtonShape) Class() string  { return buttonShapes.Class(s) }
func (s ButtonShape) String() string { return buttonShapes.Name(s) }

func ParseButtonShape(name string) ButtonShape { return buttonShapes.Parse(name) }

func ButtonShapeVariants() []ui.Entry { return buttonShapes.Entries() }

// ButtonStyle selects the emphasis modifier.
type ButtonStyle int

const (
	StyleNone ButtonStyle = iota
	StyleOutline
	StyleDash
	StyleSoft
	StyleGhost
	StyleLink
	buttonStyleCount
)

var buttonStyles = ui.NewVariants(buttonStyleCount,
	ui.Entry{Name: "None", Token: ""},
	ui.Entry{Name: "Outline", Token: "btn-outline"},
	ui.Entry{Name: "Dash", Token: "btn-dash"},
	ui.Entry{Name: "Soft", Token: "btn-soft"},
	ui.Entry{Name: "Ghost", Token: "btn-ghost"},
	ui.Entry{Name: "Link", Token: "btn-link"},
)

func (s ButtonStyle) Class() string  { return buttonStyles.Class(s) }
func (s ButtonStyle) String() string { return buttonStyles.Name(s) }

func ParseButtonStyle(name string) ButtonStyle { return buttonStyles.Parse(name) }

func ButtonStyleVariants() []ui.Entry { return buttonStyles.Entries() }

// Direction is where a dropdown opens. DirectionNone opens at the bottom.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionStart
	DirectionCenter
	DirectionEnd
	DirectionTop
	DirectionBottom
	DirectionLeft
	DirectionRight
	directionCount
)

var directions = ui.NewVariants(directionCount,
	ui.Entry{Name: "None", Token: "dropdown-bottom"},
	ui.Entry{Name: "Start", Token: "dropdown-start"},
	ui.Entry{Name: "Center", Token: "dropdown-center"},
	ui.Entry{Name: "End", Token: "dropdown-end"},
	ui.Entry{Name: "Top", Token: "dropdown-top"},
	ui.Entry{Name: "Bottom", Token: "dropdown-bottom"},
	ui.Entry{Name: "Left", Token: "dropdown-left"},
	ui.Entry{Name: "Right", Token: "dropdown-right"},
)

func (d Direction) Class() string  { return directions.Class(d) }
func (d Direction) String() string { return directions.Name(d) }

func ParseDirection(name string) Direction { return directions.Parse(name) }

func DirectionVariants() []ui.Entry { return directions.Entries() }

// DialogVariant picks how a modal is opened and closed. The mechanism itself
// lives in the host document; Modal only emits the matching markup.
type DialogVariant int

const (
	// DialogCheckbox toggles through a hidden checkbox and two labels.
	DialogCheckbox DialogVariant = iota
	// DialogNative is a <dialog> opened with showModal() by host script.
	DialogNative
	// DialogAnchor is shown while the URL fragment matches the modal id.
	DialogAnchor
	dialogVariantCount
)

// The token column holds the host mechanism each variant relies on.
var dialogVariants = ui.NewVariants(dialogVariantCount,
	ui.Entry{Name: "Checkbox", Token: "checkbox checked state"},
	ui.Entry{Name: "Native", Token: "dialog showModal/close"},
	ui.Entry{Name: "Anchor", Token: "URL fragment match"},
)

func (v DialogVariant) String() string { return dialogVariants.Name(v) }

// Mechanism names the host document behaviour the variant depends on.
func (v DialogVariant) Mechanism() string { return dialogVariants.Class(v) }

func ParseDialogVariant(name string) DialogVariant { return dialogVariants.Parse(name) }

func DialogVariants() []ui.Entry { return dialogVariants.Entries() }

package input

import "github.com/bnema/daisy/pkg/ui"

// Size selects the control size.
type Size int

const (
	SizeDefault Size = iota
	SizeExtraSmall
	SizeSmall
	SizeMedium
	SizeLarge
	sizeCount
)

var sizes = ui.NewVariants(sizeCount,
	ui.Entry{Name: "Default", Token: "input-md"},
	ui.Entry{Name: "ExtraSmall", Token: "input-xs"},
	ui.Entry{Name: "Small", Token: "input-sm"},
	ui.Entry{Name: "Medium", Token: "input-md"},
	ui.Entry{Name: "Large", Token: "input-lg"},
)

func (s Size) Class() string  { return sizes.Class(s) }
func (s Size) String() string { return sizes.Name(s) }

func ParseSize(name string) Size { return sizes.Parse(name) }

func SizeVariants() []ui.Entry { return sizes.Entries() }

// Type is the type attribute of a text-like input.
type Type int

const (
	TypeText Type = iota
	TypePassword
	TypeEmail
	TypeNumber
	TypeSearch
	TypeTel
	TypeURL
	TypeDate
	typeCount
)

var types = ui.NewVariants(typeCount,
	ui.Entry{Name: "Text", Token: "text"},
	ui.Entry{Name: "Password", Token: "password"},
	ui.Entry{Name: "Email", Token: "email"},
	ui.Entry{Name: "Number", Token: "number"},
	ui.Entry{Name: "Search", Token: "search"},
	ui.Entry{Name: "Tel", Token: "tel"},
	ui.Entry{Name: "URL", Token: "url"},
	ui.Entry{Name: "Date", Token: "date"},
)

func (t Type) Attr() string   { return types.Class(t) }
func (t Type) String() string { return types.Name(t) }

func ParseType(name string) Type { return types.Parse(name) }

func TypeVariants() []ui.Entry { return types.Entries() }

package feedback

import "github.com/bnema/daisy/pkg/ui"

// LoadingSize selects the loading indicator size.
type LoadingSize int

const (
	LoadingSizeDefault LoadingSize = iota
	LoadingSizeSmall
	LoadingSizeExtraSmall
	LoadingSizeLarge
	LoadingSizeMedium
	loadingSizeCount
)

// The Default token keeps its capital L; it does not match any daisyUI class.
var loadingSizes = ui.NewVariants(loadingSizeCount,
	ui.Entry{Name: "Default", Token: "Loading-sm"},
	ui.Entry{Name: "Small", Token: "loading-sm"},
	ui.Entry{Name: "ExtraSmall", Token: "loading-xs"},
	ui.Entry{Name: "Large", Token: "loading-lg"},
	ui.Entry{Name: "Medium", Token: "loading-md"},
)

func (s LoadingSize) Class() string  { return loadingSizes.Class(s) }
func (s LoadingSize) String() string { return loadingSizes.Name(s) }

func ParseLoadingSize(name string) LoadingSize { return loadingSizes.Parse(name) }

func LoadingSizeVariants() []ui.Entry { return loadingSizes.Entries() }

// LoadingStyle selects the animation. LoadingStyleDefault is a spinner.
type LoadingStyle int

const (
	LoadingStyleDefault LoadingStyle = iota
	LoadingSpinner
	LoadingDots
	LoadingRing
	LoadingBall
	LoadingBars
	LoadingInfinity
	loadingStyleCount
)

var loadingStyles = ui.NewVariants(loadingStyleCount,
	ui.Entry{Name: "Default", Token: "loading-spinner"},
	ui.Entry{Name: "Spinner", Token: "loading-spinner"},
	ui.Entry{Name: "Dots", Token: "loading-dots"},
	ui.Entry{Name: "Ring", Token: "loading-ring"},
	ui.Entry{Name: "Ball", Token: "loading-ball"},
	ui.Entry{Name: "Bars", Token: "loading-bars"},
	ui.Entry{Name: "Infinity", Token: "loading-infinity"},
)

func (s LoadingStyle) Class() string  { return loadingStyles.Class(s) }
func (s LoadingStyle) String() string { return loadingStyles.Name(s) }

func ParseLoadingStyle(name string) LoadingStyle { return loadingStyles.Parse(name) }

func LoadingStyleVariants() []ui.Entry { return loadingStyles.Entries() }

// LoadingColor selects the text color of the indicator.
type LoadingColor int

const (
	LoadingColorDefault LoadingColor = iota
	LoadingNeutral
	LoadingPrimary
	LoadingSecondary
	LoadingAccent
	LoadingInfo
	LoadingSuccess
	LoadingWarning
	LoadingError
	loadingColorCount
)

var loadingColors = ui.NewVariants(loadingColorCount,
	ui.Entry{Name: "Default", Token: "text-neutral"},
	ui.Entry{Name: "Neutral", Token: "text-neutral"},
	ui.Entry{Name: "Primary", Token: "text-primary"},
	ui.Entry{Name: "Secondary", Token: "text-secondary"},
	ui.Entry{Name: "Accent", Token: "text-accent"},
	ui.Entry{Name: "Info", Token: "text-info"},
	ui.Entry{Name: "Success", Token: "text-success"},
	// Kept as shipped; the catalog flags it.
	ui.Entry{Name: "Warning", Token: "text-waring"},
	ui.Entry{Name: "Error", Token: "text-error"},
)

func (c LoadingColor) Class() string  { return loadingColors.Class(c) }
func (c LoadingColor) String() string { return loadingColors.Name(c) }

func ParseLoadingColor(name string) LoadingColor { return loadingColors.Parse(name) }

func LoadingColorVariants() []ui.Entry { return loadingColors.Entries() }

// ProgressColor selects the progress bar color.
type ProgressColor int

const (
	ProgressDefault ProgressColor = iota
	ProgressNeutral
	ProgressPrimary
	ProgressSecondary
	ProgressAccent
	ProgressInfo
	ProgressSuccess
	ProgressWarning
	ProgressError
	progressColorCount
)

var progressColors = ui.NewVariants(progressColorCount,
	ui.Entry{Name: "Default", Token: "progress-neutral"},
	ui.Entry{Name: "Neutral", Token: "progress-neutral"},
	ui.Entry{Name: "Primary", Token: "progress-primary"},
	ui.Entry{Name: "Secondary", Token: "progress-secondary"},
	ui.Entry{Name: "Accent", Token: "progress-accent"},
	ui.Entry{Name: "Info", Token: "progress-info"},
	ui.Entry{Name: "Success", Token: "progress-success"},
	ui.Entry{Name: "Warning", Token: "progress-warning"},
	ui.Entry{Name: "Error", Token: "progress-error"},
)

func (c ProgressColor) Class() string  { return progressColors.Class(c) }
func (c ProgressColor) String() string { return progressColors.Name(c) }

func ParseProgressColor(name string) ProgressColor { return progressColors.Parse(name) }

func ProgressColorVariants() []ui.Entry { return progressColors.Entries() }

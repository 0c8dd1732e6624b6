package feedback

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/daisy/pkg/ui"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	out, err := ui.Render(context.Background(), c)
	require.NoError(t, err)
	return out
}

func TestLoadingDefaults(t *testing.T) {
	assert.Equal(t, `<span class="loading  Loading-sm loading-spinner text-neutral"></span>`, render(t, Loading(LoadingProps{})))
}

func TestLoading(t *testing.T) {
	got := render(t, Loading(LoadingProps{
		ID:    "busy",
		Class: "mx-auto",
		Size:  LoadingSizeLarge,
		Style: LoadingDots,
		Color: LoadingPrimary,
	}))
	assert.Equal(t, `<span id="busy" class="loading mx-auto loading-lg loading-dots text-primary"></span>`, got)
}

func TestLoadingTokens(t *testing.T) {
	sizes := map[LoadingSize]string{
		LoadingSizeDefault:    "Loading-sm",
		LoadingSizeSmall:      "loading-sm",
		LoadingSizeExtraSmall: "loading-xs",
		LoadingSizeLarge:      "loading-lg",
		LoadingSizeMedium:     "loading-md",
	}
	for s, want := range sizes {
		assert.Equal(t, want, s.Class(), s.String())
	}

	styles := map[LoadingStyle]string{
		LoadingStyleDefault: "loading-spinner",
		LoadingSpinner:      "loading-spinner",
		LoadingDots:         "loading-dots",
		LoadingRing:         "loading-ring",
		LoadingBall:         "loading-ball",
		LoadingBars:         "loading-bars",
		LoadingInfinity:     "loading-infinity",
	}
	for s, want := range styles {
		assert.Equal(t, want, s.Class(), s.String())
	}

	colors := map[LoadingColor]string{
		LoadingColorDefault: "text-neutral",
		LoadingNeutral:      "text-neutral",
		LoadingPrimary:      "text-primary",
		LoadingSecondary:    "text-secondary",
		LoadingAccent:       "text-accent",
		LoadingInfo:         "text-info",
		LoadingSuccess:      "text-success",
		LoadingWarning:      "text-waring",
		LoadingError:        "text-error",
	}
	for c, want := range colors {
		assert.Equal(t, want, c.Class(), c.String())
	}
}

func TestProgress(t *testing.T) {
	got := render(t, Progress(ProgressProps{Color: ProgressSuccess, Value: 40, Max: 100}))
	assert.Equal(t, `<progress class="progress  progress-success" value="40" max="100"></progress>`, got)
}

func TestProgressDoesNotClamp(t *testing.T) {
	got := render(t, Progress(ProgressProps{ID: "p", Value: 150, Max: 100}))
	assert.Equal(t, `<progress id="p" class="progress  progress-neutral" value="150" max="100"></progress>`, got)

	got = render(t, Progress(ProgressProps{Value: -5}))
	assert.Contains(t, got, `value="-5" max="0"`)
}

func TestProgressColorTokens(t *testing.T) {
	colors := map[ProgressColor]string{
		ProgressDefault:   "progress-neutral",
		ProgressNeutral:   "progress-neutral",
		ProgressPrimary:   "progress-primary",
		ProgressSecondary: "progress-secondary",
		ProgressAccent:    "progress-accent",
		ProgressInfo:      "progress-info",
		ProgressSuccess:   "progress-success",
		ProgressWarning:   "progress-warning",
		ProgressError:     "progress-error",
	}
	for c, want := range colors {
		assert.Equal(t, want, c.Class(), c.String())
	}
}

func TestRadialProgress(t *testing.T) {
	got := render(t, RadialProgress(ProgressProps{Value: 70, Color: ProgressError}))
	assert.Equal(t, `<div class="radial-progress bg-primary text-primary-content border-primary border-4" style="--value:70;" aria-valuenow="70" role="progressbar">70%</div>`, got)

	got = render(t, RadialProgress(ProgressProps{ID: "r", Class: "text-xs", Value: 5}))
	assert.Equal(t, `<div id="r" class="radial-progress bg-primary text-primary-content border-primary border-4 text-xs" style="--value:5;" aria-valuenow="5" role="progressbar">5%</div>`, got)
}

func TestParseFeedbackVariants(t *testing.T) {
	assert.Equal(t, LoadingRing, ParseLoadingStyle("ring"))
	assert.Equal(t, LoadingSizeDefault, ParseLoadingSize("huge"))
	assert.Equal(t, LoadingWarning, ParseLoadingColor("warning"))
	assert.Equal(t, ProgressInfo, ParseProgressColor("Info"))
}

func TestFeedbackRendersIdentically(t *testing.T) {
	build := map[string]func() templ.Component{
		"loading": func() templ.Component {
			return Loading(LoadingProps{ID: "busy", Size: LoadingSizeLarge, Style: LoadingDots, Color: LoadingPrimary})
		},
		"loading-default": func() templ.Component { return Loading(LoadingProps{}) },
		"progress":        func() templ.Component { return Progress(ProgressProps{Color: ProgressPrimary, Value: 40, Max: 100}) },
		"radial":          func() templ.Component { return RadialProgress(ProgressProps{Value: 70}) },
	}

	for name, newComponent := range build {
		t.Run(name, func(t *testing.T) {
			c := newComponent()
			first := render(t, c)
			assert.Equal(t, first, render(t, c))
			assert.Equal(t, first, render(t, newComponent()))
		})
	}
}

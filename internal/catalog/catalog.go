// Package catalog lists every variant table shipped by the widget packages and
// reports the oddities found in them.
package catalog

import (
	"sort"
	"strings"

	"github.com/bnema/daisy/pkg/ui"
	"github.com/bnema/daisy/pkg/ui/actions"
	"github.com/bnema/daisy/pkg/ui/feedback"
	"github.com/bnema/daisy/pkg/ui/input"
)

// Enumeration is one closed variant table.
type Enumeration struct {
	Package string
	Type    string
	// Prefix every token of a CSS enumeration is expected to start with.
	// Empty for enumerations that are not class tokens.
	Prefix  string
	Entries []ui.Entry
}

// Collision is a token produced by more than one variant of the same enumeration.
type Collision struct {
	Enumeration string
	Token       string
	Variants    []string
}

// Finding is a token that breaks its enumeration's naming convention.
type Finding struct {
	Enumeration string
	Variant     string
	Token       string
	Reason      string
}

// Enumerations returns every table, in a stable order.
func Enumerations() []Enumeration {
	return []Enumeration{
		{Package: "actions", Type: "ButtonColor", Prefix: "btn-", Entries: actions.ButtonColorVariants()},
		{Package: "actions", Type: "ButtonKind", Entries: actions.ButtonKindVariants()},
		{Package: "actions", Type: "ButtonSize", Prefix: "btn-", Entries: actions.ButtonSizeVariants()},
		{Package: "actions", Type: "ButtonShape", Prefix: "btn-", Entries: actions.ButtonShapeVariants()},
		{Package: "actions", Type: "ButtonStyle", Prefix: "btn-", Entries: actions.ButtonStyleVariants()},
		{Package: "actions", Type: "Direction", Prefix: "dropdown-", Entries: actions.DirectionVariants()},
		{Package: "actions", Type: "DialogVariant", Entries: actions.DialogVariants()},
		{Package: "feedback", Type: "LoadingSize", Prefix: "loading-", Entries: feedback.LoadingSizeVariants()},
		{Package: "feedback", Type: "LoadingStyle", Prefix: "loading-", Entries: feedback.LoadingStyleVariants()},
		{Package: "feedback", Type: "LoadingColor", Prefix: "text-", Entries: feedback.LoadingColorVariants()},
		{Package: "feedback", Type: "ProgressColor", Prefix: "progress-", Entries: feedback.ProgressColorVariants()},
		{Package: "input", Type: "Size", Prefix: "input-", Entries: input.SizeVariants()},
		{Package: "input", Type: "Type", Entries: input.TypeVariants()},
	}
}

// Name returns the qualified enumeration name, e.g. actions.ButtonSize.
func (e Enumeration) Name() string {
	return e.Package + "." + e.Type
}

// Collisions reports tokens shared by several variants. Some are deliberate
// aliases (a Default next to the variant it stands for), others may not be.
func Collisions(enums []Enumeration) []Collision {
	var out []Collision
	for _, e := range enums {
		byToken := map[string][]string{}
		var order []string
		for _, entry := range e.Entries {
			if _, seen := byToken[entry.Token]; !seen {
				order = append(order, entry.Token)
			}
			byToken[entry.Token] = append(byToken[entry.Token], entry.Name)
		}
		for _, token := range order {
			if names := byToken[token]; len(names) > 1 {
				out = append(out, Collision{Enumeration: e.Name(), Token: token, Variants: names})
			}
		}
	}
	return out
}

// Suspicious reports tokens that do not start with the enumeration prefix or
// are not lower case. Empty tokens are the "no modifier" mapping and are fine.
func Suspicious(enums []Enumeration) []Finding {
	var out []Finding
	for _, e := range enums {
		if e.Prefix == "" {
			continue
		}
		for _, entry := range e.Entries {
			switch {
			case entry.Token == "":
			case entry.Token != strings.ToLower(entry.Token):
				out = append(out, Finding{Enumeration: e.Name(), Variant: entry.Name, Token: entry.Token, Reason: "not lower case"})
			case !strings.HasPrefix(entry.Token, e.Prefix):
				out = append(out, Finding{Enumeration: e.Name(), Variant: entry.Name, Token: entry.Token, Reason: "missing prefix " + e.Prefix})
			case !knownSuffix(e, entry):
				out = append(out, Finding{Enumeration: e.Name(), Variant: entry.Name, Token: entry.Token, Reason: "suffix does not match variant name"})
			}
		}
	}
	return out
}

// knownSuffix checks color tokens against their variant name, where the two are
// expected to agree (text-primary for Primary). Defaults are skipped.
func knownSuffix(e Enumeration, entry ui.Entry) bool {
	if !strings.HasSuffix(e.Type, "Color") || entry.Name == "Default" {
		return true
	}
	return strings.TrimPrefix(entry.Token, e.Prefix) == strings.ToLower(entry.Name)
}

// Tokens returns every distinct non-empty class token, sorted. Useful as a
// safelist for CSS purging.
func Tokens(enums []Enumeration) []string {
	seen := map[string]struct{}{}
	for _, e := range enums {
		if e.Prefix == "" {
			continue
		}
		for _, entry := range e.Entries {
			if entry.Token != "" {
				seen[entry.Token] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for token := range seen {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

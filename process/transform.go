package process

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transform is a pure mapping from one string to another.
// Implementations must be stateless and safe for concurrent use.
type Transform interface {
	// Apply returns the transformed string.
	Apply(s string) string
	// Name identifies the transform in processor descriptions and table files.
	Name() string
}

// Func adapts a plain function to the Transform interface.
// Its name is "func"; use Named to give it a registry name.
type Func func(string) string

// Apply calls f.
func (f Func) Apply(s string) string { return f(s) }

// Name returns "func".
func (Func) Name() string { return "func" }

type namedTransform struct {
	name string
	fn   func(string) string
}

func (t namedTransform) Apply(s string) string { return t.fn(s) }
func (t namedTransform) Name() string          { return t.name }

// Named returns a Transform with the given name.
func Named(name string, fn func(string) string) Transform {
	return namedTransform{name: name, fn: fn}
}

// Chain returns a new transform applying first, then second.
// Neither argument is modified.
func Chain(first, second Transform) Transform {
	return namedTransform{
		name: first.Name() + "+" + second.Name(),
		fn: func(s string) string {
			return second.Apply(first.Apply(s))
		},
	}
}

// Built-in transforms.
var (
	Identity      = Named("identity", func(s string) string { return s })
	ToLowerCase   = Named("lower", strings.ToLower)
	RightStrip    = Named("rstrip", func(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) })
	LeftStrip     = Named("lstrip", func(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) })
	TrimSpace     = Named("trim", strings.TrimSpace)
	CollapseSpace = Named("collapse-space", collapseSpace)
	CaseFold      = Named("fold", caseFold)
	StripAccents  = Named("strip-accents", stripAccents)
)

// collapseSpace replaces every run of whitespace with a single ASCII space.
// Leading and trailing runs are collapsed too, not removed.
func collapseSpace(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	inSpace := false

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}

			inSpace = true

			continue
		}

		inSpace = false

		b.WriteRune(r)
	}

	return b.String()
}

// caseFold applies full Unicode case folding ("Straße" and "STRASSE" fold equal).
// A Caser keeps state, so one is created per call.
func caseFold(s string) string {
	return cases.Fold().String(s)
}

// stripAccents decomposes, drops nonspacing marks and recomposes.
// The chain keeps state, so one is created per call.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}

	return result
}

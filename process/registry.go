package process

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownTransform is returned when a transform name is not registered.
var ErrUnknownTransform = errors.New("unknown transform")

var registry = map[string]Transform{}

func init() {
	for _, t := range []Transform{
		Identity,
		ToLowerCase,
		RightStrip,
		LeftStrip,
		TrimSpace,
		CollapseSpace,
		CaseFold,
		StripAccents,
		Ident,
	} {
		registry[t.Name()] = t
	}
}

// Lookup returns the built-in transform registered under name.
// Names are matched case-insensitively.
func Lookup(name string) (Transform, bool) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Parse builds a processor from transform names, in order.
// "identity" entries are skipped since they do not change the result.
func Parse(names []string) (Processor, error) {
	var p Processor

	for _, name := range names {
		t, ok := Lookup(name)
		if !ok {
			return Processor{}, fmt.Errorf("%w %q (known: %s)",
				ErrUnknownTransform, name, strings.Join(KnownNames(), ", "))
		}

		if t.Name() == Identity.Name() {
			continue
		}

		p = p.Compose(t)
	}

	return p, nil
}

// KnownNames returns the registered transform names, sorted.
func KnownNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

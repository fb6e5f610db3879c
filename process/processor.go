package process

import (
	"slices"
	"strings"
)

// Processor is an ordered pipeline of transforms.
// The zero value is the identity processor.
type Processor struct {
	steps []Transform
}

// New creates a processor applying steps in order.
func New(steps ...Transform) Processor {
	return Processor{steps: slices.Clone(steps)}
}

// Compose returns a new processor that applies p and then t.
// The receiver is left untouched.
func (p Processor) Compose(t Transform) Processor {
	steps := make([]Transform, 0, len(p.steps)+1)
	steps = append(steps, p.steps...)
	steps = append(steps, t)

	return Processor{steps: steps}
}

// Then returns a new processor that applies p and then every step of other.
func (p Processor) Then(other Processor) Processor {
	steps := make([]Transform, 0, len(p.steps)+len(other.steps))
	steps = append(steps, p.steps...)
	steps = append(steps, other.steps...)

	return Processor{steps: steps}
}

// Lower appends lowercasing.
func (p Processor) Lower() Processor { return p.Compose(ToLowerCase) }

// RStrip appends trailing whitespace removal.
func (p Processor) RStrip() Processor { return p.Compose(RightStrip) }

// Trim appends leading and trailing whitespace removal.
func (p Processor) Trim() Processor { return p.Compose(TrimSpace) }

// Fold appends Unicode case folding.
func (p Processor) Fold() Processor { return p.Compose(CaseFold) }

// StripAccents appends accent removal.
func (p Processor) StripAccents() Processor { return p.Compose(StripAccents) }

// CollapseSpace appends whitespace run collapsing.
func (p Processor) CollapseSpace() Processor { return p.Compose(CollapseSpace) }

// Apply runs s through every step, first registered first.
func (p Processor) Apply(s string) string {
	for _, t := range p.steps {
		s = t.Apply(s)
	}

	return s
}

// ApplyEach applies the processor to every element and returns a new slice.
// It is meant for callers normalizing a whole column before their own bulk lookup.
func (p Processor) ApplyEach(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = p.Apply(s)
	}

	return out
}

// Len returns the number of steps.
func (p Processor) Len() int { return len(p.steps) }

// IsIdentity reports whether the processor has no steps.
func (p Processor) IsIdentity() bool { return p.Len() == 0 }

// Names returns the step names in application order.
func (p Processor) Names() []string {
	names := make([]string, len(p.steps))
	for i, t := range p.steps {
		names[i] = t.Name()
	}

	return names
}

// String describes the pipeline, e.g. "lower|rstrip".
func (p Processor) String() string {
	if p.IsIdentity() {
		return Identity.Name()
	}

	return strings.Join(p.Names(), "|")
}

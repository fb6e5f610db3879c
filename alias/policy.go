package alias

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=PolicyKind -linecomment -output=policykind_string.go

// PolicyKind selects what happens when an input has no entry.
type PolicyKind int

const (
	PolicyPassthrough PolicyKind = iota // passthrough
	PolicySentinel                      // sentinel
	PolicyRaise                         // raise

	// policyKindTotal is the number of defined kinds.
	policyKindTotal = int(iota)
)

// ParsePolicyKind parses the textual form of a PolicyKind ("passthrough",
// "sentinel" or "raise").
func ParsePolicyKind(s string) (PolicyKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for k := range PolicyKind(policyKindTotal) {
		if k.String() == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("invalid missing policy %q: must be one of passthrough, sentinel, raise", s)
}

// MissingPolicy is the outcome for inputs that are not in the lookup table.
// The zero value is Passthrough.
type MissingPolicy struct {
	kind  PolicyKind
	value string
}

// Passthrough returns misses unchanged.
func Passthrough() MissingPolicy {
	return MissingPolicy{kind: PolicyPassthrough}
}

// Sentinel returns v for every miss.
func Sentinel(v string) MissingPolicy {
	return MissingPolicy{kind: PolicySentinel, value: v}
}

// Raise fails every miss with a *NotFoundError.
func Raise() MissingPolicy {
	return MissingPolicy{kind: PolicyRaise}
}

// Kind returns the policy kind.
func (p MissingPolicy) Kind() PolicyKind { return p.kind }

// Value returns the sentinel value. ok is false for other kinds.
func (p MissingPolicy) Value() (v string, ok bool) {
	if p.kind != PolicySentinel {
		return "", false
	}

	return p.value, true
}

func (p MissingPolicy) String() string {
	if p.kind == PolicySentinel {
		return fmt.Sprintf("sentinel(%q)", p.value)
	}

	return p.kind.String()
}

// miss produces the result for an input with no entry.
func (p MissingPolicy) miss(input, indexName string) (string, error) {
	switch p.kind {
	case PolicySentinel:
		return p.value, nil
	case PolicyRaise:
		return "", &NotFoundError{Input: input, IndexName: indexName}
	default:
		return input, nil
	}
}

package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Diagnostics holds all findings from a table check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Representative identifies the group this relates to (if any).
	Representative string
	// Alias identifies the raw alias this relates to (if any).
	Alias string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, representative, alias string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, representative, alias))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, representative, alias string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, representative, alias))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, representative, alias string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, representative, alias))
}

func newDiagnostic(severity Severity, code, message, representative, alias string) Diagnostic {
	return Diagnostic{
		Severity:       severity,
		Code:           code,
		Message:        message,
		Representative: representative,
		Alias:          alias,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns every diagnostic, errors first, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	return all
}

// Codes returns the codes of all diagnostics in All order.
func (d *Diagnostics) Codes() []string {
	all := d.All()

	codes := make([]string, len(all))
	for i, diag := range all {
		codes[i] = diag.Code
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string, e.g.
// `[The Netherlands] "NL": [ALS003] alias also listed under "Holland"`.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Representative != "" {
		prefix = append(prefix, "["+d.Representative+"]")
	}

	if d.Alias != "" {
		prefix = append(prefix, strconv.Quote(d.Alias))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Codes of the findings reported by the check pass.
const (
	CodeMalformedRow    = "malformed_row"
	CodeMissingOwner    = "missing_owner"
	CodeDuplicateName   = "duplicate_name"
	CodeUnmappedSymbol  = "unmapped_symbol"
	CodeUnreadableTable = "unreadable_table"
)

// Diagnostics holds all findings of a check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Resource is the table the finding relates to (if any).
	Resource string
	// Line is the 1-based row line (0 when not row-specific).
	Line int
}

// Severity is the importance of a diagnostic.
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
func (d *Diagnostics) AddError(code, message, resource string, line int) {
	d.Errors = append(d.Errors, Diagnostic{SeverityError, code, message, resource, line})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, resource string, line int) {
	d.Warnings = append(d.Warnings, Diagnostic{SeverityWarning, code, message, resource, line})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, resource string, line int) {
	d.Infos = append(d.Infos, Diagnostic{SeverityInfo, code, message, resource, line})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends other's findings to d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Count returns the number of findings with the given code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there
// are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string such as
// "fields.csv:12: [missing_owner] owner class "abc" not found".
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] %s", d.Code, d.Message)

	switch {
	case d.Resource != "" && d.Line > 0:
		return fmt.Sprintf("%s:%d: %s", d.Resource, d.Line, msg)
	case d.Resource != "":
		return d.Resource + ": " + msg
	default:
		return msg
	}
}

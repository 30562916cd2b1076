package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"branchgen/internal/common"
)

// Diagnostics holds all diagnostic information from checking a table.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Literal identifies which literal key this relates to (if any).
	Literal string
	// Field identifies which table field this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
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
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(sev Severity, code, message, literal, field string) *Diagnostic {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Literal:  literal,
		Field:    field,
	}

	var list *[]Diagnostic

	switch sev {
	case SeverityError:
		list = &d.Errors
	case SeverityWarning:
		list = &d.Warnings
	default:
		list = &d.Infos
	}

	*list = append(*list, diag)

	return &(*list)[len(*list)-1]
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, literal, field string) *Diagnostic {
	return d.add(SeverityError, code, message, literal, field)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, literal, field string) *Diagnostic {
	return d.add(SeverityWarning, code, message, literal, field)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, literal, field string) *Diagnostic {
	return d.add(SeverityInfo, code, message, literal, field)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
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

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	if d.Literal != "" {
		prefix = append(prefix, fmt.Sprintf("%q", d.Literal))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

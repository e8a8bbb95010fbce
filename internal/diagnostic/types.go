package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeUnsupportedServiceType = "unsupported-service-type"
	CodeUnparsableDate         = "unparsable-date"
	CodeInvalidAssociation     = "invalid-association"
)

// Diagnostics holds all diagnostic information from one pass.
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
	// ServiceType is the CRS or canonical type of the affected service (if any).
	ServiceType string
	// ServiceIndex is the 1-based position of the affected service, 0 for the booking.
	ServiceIndex int
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
func (d *Diagnostics) AddError(code, message, serviceType string, serviceIndex int) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, serviceType, serviceIndex))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, serviceType string, serviceIndex int) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, serviceType, serviceIndex))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, serviceType string, serviceIndex int) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, serviceType, serviceIndex))
}

func newDiagnostic(sev Severity, code, message, serviceType string, serviceIndex int) Diagnostic {
	return Diagnostic{
		Severity:     sev,
		Code:         code,
		Message:      message,
		ServiceType:  serviceType,
		ServiceIndex: serviceIndex,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasCode returns true if any diagnostic carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				return true
			}
		}
	}

	return false
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
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

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.ServiceIndex > 0 {
		prefix = append(prefix, fmt.Sprintf("service %d", d.ServiceIndex))
	}

	if d.ServiceType != "" {
		prefix = append(prefix, "["+d.ServiceType+"]")
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

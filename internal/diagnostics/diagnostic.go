// Package diagnostics defines the (location, kind, message) diagnostic sink
// the constant folder reports through. The folder never writes to
// stdout/stderr directly; every failure and the one warning kind go through
// a Sink.
package diagnostics

import (
	"fmt"

	"github.com/dmforge/constfold/internal/token"
)

// Kind classifies a diagnostic as a string enum, naming one entry of the
// fold-phase failure taxonomy.
type Kind string

const (
	KindCyclicReference               Kind = "cyclic-reference"
	KindNonConstVariable              Kind = "non-const-variable"
	KindNonStaticVariable             Kind = "non-static-variable"
	KindUnknownVariable               Kind = "unknown-variable"
	KindUnknownTypepath               Kind = "unknown-typepath"
	KindNonConstantUnary              Kind = "non-constant-unary"
	KindNonConstantBinary             Kind = "non-constant-binary"
	KindNonConstantFunctionCall       Kind = "non-constant-function-call"
	KindNonConstantNewExpression      Kind = "non-constant-new-expression"
	KindNonConstantExpressionFollower Kind = "non-constant-expression-followers"
	KindNonConstantAugmentedAssignment Kind = "non-constant-augmented-assignment"
	KindMalformedRgbCall              Kind = "malformed-rgb-call"
	KindIdentUsedAsListKey            Kind = "ident-used-as-list-key"
)

// Severity distinguishes a hard failure from the single warning kind.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one reported failure or warning, always carrying the
// offending source location.
type Diagnostic struct {
	Message  string
	Pos      token.Position
	Kind     Kind
	Severity Severity
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped like any other Go error.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s at %s", d.Kind, d.Message, d.Pos)
}

// Sink is where the folder reports diagnostics. The driver's sink
// typically just appends; a language-server consumer might instead push
// them straight into a per-file diagnostic list.
type Sink interface {
	Report(d *Diagnostic)
}

// SliceSink accumulates diagnostics in memory, in report order.
type SliceSink struct {
	Diagnostics []*Diagnostic
}

// Report appends d.
func (s *SliceSink) Report(d *Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}

// Errors returns only the error-severity diagnostics.
func (s *SliceSink) Errors() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range s.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the warning-severity diagnostics.
func (s *SliceSink) Warnings() []*Diagnostic {
	var out []*Diagnostic
	for _, d := range s.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

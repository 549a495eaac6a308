package diagnostics

import (
	"fmt"

	"github.com/dmforge/constfold/internal/token"
)

// NewCyclicReference reports a slot re-entered while already being
// evaluated.
func NewCyclicReference(pos token.Position, name string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindCyclicReference,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s participates in a cyclic reference", name),
	}
}

// NewNonConstVariable reports a reference to a variable whose declaration
// is not marked compile-time constant.
func NewNonConstVariable(pos token.Position, name string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonConstVariable,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s is not declared const", name),
	}
}

// NewNonStaticVariable reports a field-through-null resolution that landed
// on a per-instance variable where a static one was required.
func NewNonStaticVariable(pos token.Position, name string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonStaticVariable,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s is not a static variable", name),
	}
}

// NewUnknownVariable reports an identifier with no declaration anywhere up
// the parent chain.
func NewUnknownVariable(pos token.Position, name string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindUnknownVariable,
		Severity: SeverityError,
		Message:  fmt.Sprintf("undefined var %s", name),
	}
}

// NewUnknownTypepath reports a field-through-null type hint naming a class
// that does not exist in the tree.
func NewUnknownTypepath(pos token.Position, path string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindUnknownTypepath,
		Severity: SeverityError,
		Message:  fmt.Sprintf("undefined type %s", path),
	}
}

// NewNonConstantUnary reports a unary operator applied to a non-primitive
// operand.
func NewNonConstantUnary(pos token.Position, op, operandKind string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonConstantUnary,
		Severity: SeverityError,
		Message:  fmt.Sprintf("non-constant unary operation %s%s", op, operandKind),
	}
}

// NewNonConstantBinary reports a binary operator applied to operands that
// don't support it, naming both operand kinds.
func NewNonConstantBinary(pos token.Position, lhsKind, op, rhsKind string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonConstantBinary,
		Severity: SeverityError,
		Message:  fmt.Sprintf("non-constant binary operation %s %s %s", lhsKind, op, rhsKind),
	}
}

// NewNonConstantFunctionCall reports a call to a name outside the foldable
// builtin whitelist.
func NewNonConstantFunctionCall(pos token.Position, name string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonConstantFunctionCall,
		Severity: SeverityError,
		Message:  fmt.Sprintf("non-constant function call %s()", name),
	}
}

// NewNonConstantNewExpression reports a `new` literal whose type cannot be
// folded (a bare identifier type).
func NewNonConstantNewExpression(pos token.Position) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonConstantNewExpression,
		Severity: SeverityError,
		Message:  "non-constant new expression",
	}
}

// NewNonConstantExpressionFollower reports a postfix follow applied to an
// operand/follow combination the folder doesn't support, naming both sides.
func NewNonConstantExpressionFollower(pos token.Position, operandKind, follow string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonConstantExpressionFollower,
		Severity: SeverityError,
		Message:  fmt.Sprintf("non-constant expression followers: %s%s", operandKind, follow),
	}
}

// NewNonConstantAugmentedAssignment reports an assignment expression, which
// is never constant-evaluable.
func NewNonConstantAugmentedAssignment(pos token.Position) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindNonConstantAugmentedAssignment,
		Severity: SeverityError,
		Message:  "non-constant augmented assignment",
	}
}

// NewMalformedRgbCall reports an rgb() call with the wrong arity or a
// non-integer argument.
func NewMalformedRgbCall(pos token.Position, reason string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindMalformedRgbCall,
		Severity: SeverityError,
		Message:  "malformed rgb() call: " + reason,
	}
}

// NewIdentUsedAsListKey is the single warning kind: a bare identifier used
// as a list key is accepted but silently treated as its name string.
func NewIdentUsedAsListKey(pos token.Position, name string) *Diagnostic {
	return &Diagnostic{
		Pos:      pos,
		Kind:     KindIdentUsedAsListKey,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%s used as list key, treated as text", name),
	}
}

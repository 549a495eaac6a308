package ast

import (
	"strconv"
	"strings"

	"github.com/dmforge/constfold/internal/token"
)

// Term is the innermost shape of an expression: a literal, an identifier, a
// list/prefab/new literal, or a call.
type Term interface {
	Pos() token.Position
	String() string
	termNode()
}

// ListElement is one `key` or `key = value` entry of a list literal. Value
// is nil when the entry stands alone (set semantics).
type ListElement struct {
	Key   Expression
	Value Expression
}

// NullTerm is the literal `null`.
type NullTerm struct {
	Token token.Position
}

func (t *NullTerm) Pos() token.Position { return t.Token }
func (*NullTerm) termNode()             {}
func (*NullTerm) String() string        { return "null" }

// NewTerm is `new Type(Args...)`. Args is nil when no argument list (not
// even empty parens) was written.
type NewTerm struct {
	Type  NewType
	Args  []Expression
	Token token.Position
}

func (t *NewTerm) Pos() token.Position { return t.Token }
func (*NewTerm) termNode()             {}
func (t *NewTerm) String() string {
	var sb strings.Builder
	sb.WriteString("new")
	sb.WriteString(t.Type.String())
	if t.Args != nil {
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// ListTerm is `list(elements...)`.
type ListTerm struct {
	Elements []ListElement
	Token    token.Position
}

func (t *ListTerm) Pos() token.Position { return t.Token }
func (*ListTerm) termNode()             {}
func (t *ListTerm) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		if e.Value != nil {
			parts[i] = e.Key.String() + " = " + e.Value.String()
		} else {
			parts[i] = e.Key.String()
		}
	}
	return "list(" + strings.Join(parts, ", ") + ")"
}

// CallTerm is `name(args...)` — an unscoped global/builtin call.
type CallTerm struct {
	Name  string
	Args  []Expression
	Token token.Position
}

func (t *CallTerm) Pos() token.Position { return t.Token }
func (*CallTerm) termNode()             {}
func (t *CallTerm) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	return t.Name + "(" + strings.Join(args, ", ") + ")"
}

// PrefabTerm is a bare prefab literal used as a term, e.g. `/obj/item`.
type PrefabTerm struct {
	Prefab *Prefab
	Token  token.Position
}

func (t *PrefabTerm) Pos() token.Position { return t.Token }
func (*PrefabTerm) termNode()             {}
func (t *PrefabTerm) String() string      { return t.Prefab.String() }

// IdentTerm is a bare identifier reference.
type IdentTerm struct {
	Name  string
	Token token.Position
}

func (t *IdentTerm) Pos() token.Position { return t.Token }
func (*IdentTerm) termNode()             {}
func (t *IdentTerm) String() string      { return t.Name }

// StringTerm is a string literal.
type StringTerm struct {
	Value string
	Token token.Position
}

func (t *StringTerm) Pos() token.Position { return t.Token }
func (*StringTerm) termNode()             {}
func (t *StringTerm) String() string      { return strconv.Quote(t.Value) }

// ResourceTerm is a resource-path literal, e.g. 'icons/mob.dmi'.
type ResourceTerm struct {
	Value string
	Token token.Position
}

func (t *ResourceTerm) Pos() token.Position { return t.Token }
func (*ResourceTerm) termNode()             {}
func (t *ResourceTerm) String() string      { return "'" + t.Value + "'" }

// IntTerm is an integer literal.
type IntTerm struct {
	Token token.Position
	Value int32
}

func (t *IntTerm) Pos() token.Position { return t.Token }
func (*IntTerm) termNode()             {}
func (t *IntTerm) String() string      { return strconv.FormatInt(int64(t.Value), 10) }

// FloatTerm is a floating-point literal.
type FloatTerm struct {
	Token token.Position
	Value float32
}

func (t *FloatTerm) Pos() token.Position { return t.Token }
func (*FloatTerm) termNode()             {}
func (t *FloatTerm) String() string      { return strconv.FormatFloat(float64(t.Value), 'g', -1, 32) }

// ExprTerm is a parenthesized sub-expression used as a term: `(expr)`.
type ExprTerm struct {
	Inner Expression
	Token token.Position
}

func (t *ExprTerm) Pos() token.Position { return t.Token }
func (*ExprTerm) termNode()             {}
func (t *ExprTerm) String() string      { return "(" + t.Inner.String() + ")" }

// Package constant defines the reduced constant value model: the algebraic
// description of a fully-folded initializer, plus the coercion and indexing
// helpers downstream phases need.
package constant

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dmforge/constfold/internal/ast"
)

// Kind names a Constant's concrete shape, for quick dispatch and for error
// messages that need to name an operand's kind.
type Kind string

const (
	KindNull     Kind = "null"
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindResource Kind = "resource"
	KindList     Kind = "list"
	KindPrefab   Kind = "prefab"
	KindNew      Kind = "new"
	KindCall     Kind = "call"
)

// Constant is a fully-reduced initializer value. Concrete kinds are small
// structs implementing this interface rather than one tagged union struct.
type Constant interface {
	Kind() Kind
	String() string
}

// Null is the literal `null`, optionally carrying the declared type path it
// was hinted with — used to resolve field-through-null access.
type Null struct {
	TypeHint ast.TypePath
	HasHint  bool
}

func (Null) Kind() Kind   { return KindNull }
func (Null) String() string { return "null" }

// NewNull builds a typeless null.
func NewNull() Null { return Null{} }

// NewHintedNull builds a null carrying a declared type path.
func NewHintedNull(hint ast.TypePath) Null {
	return Null{TypeHint: hint, HasHint: true}
}

// Int is a reduced 32-bit integer literal.
type Int struct {
	Value int32
}

func (Int) Kind() Kind      { return KindInt }
func (c Int) String() string { return strconv.FormatInt(int64(c.Value), 10) }

// Float is a reduced single-precision float literal; exact IEEE semantics
// beyond single precision are not promised.
type Float struct {
	Value float32
}

func (Float) Kind() Kind { return KindFloat }
func (c Float) String() string {
	return strconv.FormatFloat(float64(c.Value), 'g', -1, 32)
}

// String is a reduced string literal, NFC-normalized on construction so
// equal-looking strings always compare equal regardless of source encoding.
type String struct {
	Value string
}

// NewString normalizes s to NFC before wrapping it.
func NewString(s string) String {
	return String{Value: norm.NFC.String(s)}
}

func (String) Kind() Kind      { return KindString }
func (c String) String() string { return strconv.Quote(c.Value) }

// Resource is a reduced resource-path literal (e.g. an icon file path),
// distinct from String even though both carry a plain string payload.
type Resource struct {
	Value string
}

func (Resource) Kind() Kind      { return KindResource }
func (c Resource) String() string { return "'" + c.Value + "'" }

// Entry is one (key, value?) pair of a List. Value is nil when the key
// stands alone (set semantics).
type Entry struct {
	Key   Constant
	Value Constant
}

// List is an associative, insertion-ordered sequence of (key, value?)
// pairs. Keys need not be unique.
type List struct {
	Elements []Entry
}

func (List) Kind() Kind { return KindList }
func (c List) String() string {
	parts := make([]string, len(c.Elements))
	for i, e := range c.Elements {
		if e.Value != nil {
			parts[i] = e.Key.String() + " = " + e.Value.String()
		} else {
			parts[i] = e.Key.String()
		}
	}
	return "list(" + strings.Join(parts, ", ") + ")"
}

// ContainsKey reports whether key appears as some element's key.
func (c List) ContainsKey(key Constant) bool {
	for _, e := range c.Elements {
		if Equal(e.Key, key) {
			return true
		}
	}
	return false
}

// Index looks up a list element by key: by position for an Int key, by
// equality otherwise.
func (c List) Index(key Constant) (Constant, bool) {
	if i, ok := key.(Int); ok {
		if int(i.Value) < 0 || int(i.Value) >= len(c.Elements) {
			return nil, false
		}
		return c.Elements[i.Value].Key, true
	}
	return c.find(key)
}

func (c List) find(key Constant) (Constant, bool) {
	for _, e := range c.Elements {
		if Equal(e.Key, key) {
			if e.Value == nil {
				return nil, false
			}
			return e.Value, true
		}
	}
	return nil, false
}

// Var is one override inside a reduced Prefab.
type Var struct {
	Value Constant
	Name  string
}

// Prefab is a type reference decorated with reduced field overrides,
// preserving their source order.
type Prefab struct {
	Path ast.TypePath
	Vars []Var
}

func (Prefab) Kind() Kind { return KindPrefab }
func (c Prefab) String() string {
	if len(c.Vars) == 0 {
		return c.Path.String()
	}
	parts := make([]string, len(c.Vars))
	for i, v := range c.Vars {
		parts[i] = v.Name + " = " + v.Value.String()
	}
	return c.Path.String() + "{" + strings.Join(parts, "; ") + "}"
}

// NewRef describes the type operand of a deferred New literal: either
// implicit (driven by the enclosing declaration's type hint) or an explicit
// reduced prefab.
type NewRef struct {
	Prefab  *Prefab
	Implicit bool
}

func (r NewRef) String() string {
	if r.Implicit || r.Prefab == nil {
		return ""
	}
	return r.Prefab.String()
}

// New is a deferred construction literal: preserved verbatim rather than
// actually constructed at fold time.
type New struct {
	Type    NewRef
	Args    []Constant
	HasArgs bool
}

func (New) Kind() Kind { return KindNew }
func (c New) String() string {
	var sb strings.Builder
	sb.WriteString("new")
	sb.WriteString(c.Type.String())
	if c.HasArgs {
		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = a.String()
		}
		sb.WriteString("(")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// Foldable names a whitelisted builtin that folds its arguments but is
// preserved symbolically as a residual call rather than evaluated further.
type Foldable string

const (
	FnMatrix  Foldable = "matrix"
	FnNewlist Foldable = "newlist"
	FnIcon    Foldable = "icon"
)

// Call is a residual call to one of the whitelisted constructors, its
// arguments already reduced.
type Call struct {
	Fn   Foldable
	Args []Constant
}

func (Call) Kind() Kind { return KindCall }
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return string(c.Fn) + "(" + strings.Join(args, ", ") + ")"
}

package ast

import (
	"strings"

	"github.com/dmforge/constfold/internal/token"
)

// Follow is a postfix operation chained onto a term: field access, indexing
// or a call. The folder only ever accepts Field applied to a type-hinted
// null; every other combination fails.
type Follow interface {
	Pos() token.Position
	String() string
	followNode()
}

// FieldFollow is `.Name`.
type FieldFollow struct {
	Name  string
	Token token.Position
}

func (f *FieldFollow) Pos() token.Position { return f.Token }
func (*FieldFollow) followNode()           {}
func (f *FieldFollow) String() string      { return "." + f.Name }

// IndexFollow is `[Index]`.
type IndexFollow struct {
	Index Expression
	Token token.Position
}

func (f *IndexFollow) Pos() token.Position { return f.Token }
func (*IndexFollow) followNode()           {}
func (f *IndexFollow) String() string      { return "[" + f.Index.String() + "]" }

// CallFollow is `.Name(Args...)`.
type CallFollow struct {
	Name  string
	Args  []Expression
	Token token.Position
}

func (f *CallFollow) Pos() token.Position { return f.Token }
func (*CallFollow) followNode()           {}
func (f *CallFollow) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return "." + f.Name + "(" + strings.Join(args, ", ") + ")"
}

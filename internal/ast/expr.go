package ast

import (
	"strings"

	"github.com/dmforge/constfold/internal/token"
)

// Expression is any node the folder can reduce to a constant (or reject).
type Expression interface {
	Pos() token.Position
	String() string
	expressionNode()
}

// BaseExpr applies a chain of Follows and then a chain of unary operators
// to a single Term: `unary... term follow...`.
type BaseExpr struct {
	Term   Term
	Unary  []UnaryOp
	Follow []Follow
	Token  token.Position
}

func (e *BaseExpr) Pos() token.Position { return e.Token }
func (*BaseExpr) expressionNode()       {}
func (e *BaseExpr) String() string {
	var sb strings.Builder
	for _, u := range e.Unary {
		sb.WriteString(u.String())
	}
	sb.WriteString(e.Term.String())
	for _, f := range e.Follow {
		sb.WriteString(f.String())
	}
	return sb.String()
}

// BinaryExpr is `lhs op rhs`.
type BinaryExpr struct {
	LHS   Expression
	RHS   Expression
	Op    BinaryOp
	Token token.Position
}

func (e *BinaryExpr) Pos() token.Position { return e.Token }
func (*BinaryExpr) expressionNode()       {}
func (e *BinaryExpr) String() string {
	return e.LHS.String() + " " + e.Op.String() + " " + e.RHS.String()
}

// AssignExpr is an augmented-assignment expression (`x += 1`, `x = y`, ...).
// It is never constant-evaluable; the folder rejects it unconditionally.
type AssignExpr struct {
	LHS   Expression
	RHS   Expression
	Op    AssignOp
	Token token.Position
}

func (e *AssignExpr) Pos() token.Position { return e.Token }
func (*AssignExpr) expressionNode()       {}
func (e *AssignExpr) String() string {
	return e.LHS.String() + " " + e.Op.String() + " " + e.RHS.String()
}

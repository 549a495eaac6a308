package constfold

import (
	"fmt"
	"strings"

	"github.com/dmforge/constfold/internal/ast"
	"github.com/dmforge/constfold/internal/constant"
	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/objtree"
	"github.com/dmforge/constfold/internal/token"
)

// foldExpr reduces expr to a Constant in the scope of ty, propagating hint
// into the places that accept one.
func (fl *Folder) foldExpr(ty *objtree.Class, expr ast.Expression, hint ast.TypePath) (constant.Constant, error) {
	switch e := expr.(type) {
	case *ast.AssignExpr:
		return nil, diagnostics.NewNonConstantAugmentedAssignment(e.Pos())

	case *ast.BinaryExpr:
		lhs, err := fl.foldExpr(ty, e.LHS, nil)
		if err != nil {
			return nil, err
		}
		rhs, err := fl.foldExpr(ty, e.RHS, nil)
		if err != nil {
			return nil, err
		}
		return fl.foldBinary(e.Op, lhs, rhs, e.Pos())

	case *ast.BaseExpr:
		termHint := hint
		if len(e.Unary) != 0 || len(e.Follow) != 0 {
			termHint = nil
		}
		value, err := fl.foldTerm(ty, e.Term, termHint)
		if err != nil {
			return nil, err
		}
		for _, flw := range e.Follow {
			value, err = fl.applyFollow(ty, value, flw)
			if err != nil {
				return nil, err
			}
		}
		for i := len(e.Unary) - 1; i >= 0; i-- {
			value, err = fl.applyUnary(e.Unary[i], value, e.Pos())
			if err != nil {
				return nil, err
			}
		}
		return value, nil

	default:
		panic(fmt.Sprintf("constfold: unhandled expression type %T", expr))
	}
}

// foldTerm reduces a single term, given the type hint in effect for it.
func (fl *Folder) foldTerm(ty *objtree.Class, term ast.Term, hint ast.TypePath) (constant.Constant, error) {
	switch t := term.(type) {
	case *ast.NullTerm:
		return nullForHint(hint), nil

	case *ast.NewTerm:
		return fl.foldNewTerm(ty, t)

	case *ast.ListTerm:
		return fl.foldListTerm(ty, t, hint)

	case *ast.CallTerm:
		return fl.foldCallTerm(ty, t)

	case *ast.PrefabTerm:
		return fl.foldPrefab(ty, t.Prefab)

	case *ast.IdentTerm:
		if t.Name == "null" {
			return nullForHint(hint), nil
		}
		value, _, err := fl.recursiveLookup(ty, t.Name, false, t.Pos())
		return value, err

	case *ast.StringTerm:
		return constant.NewString(t.Value), nil

	case *ast.ResourceTerm:
		return constant.Resource{Value: t.Value}, nil

	case *ast.IntTerm:
		return constant.Int{Value: t.Value}, nil

	case *ast.FloatTerm:
		return constant.Float{Value: t.Value}, nil

	case *ast.ExprTerm:
		return fl.foldExpr(ty, t.Inner, hint)

	default:
		panic(fmt.Sprintf("constfold: unhandled term type %T", term))
	}
}

func (fl *Folder) foldNewTerm(ty *objtree.Class, t *ast.NewTerm) (constant.Constant, error) {
	var ref constant.NewRef
	switch nt := t.Type.(type) {
	case ast.ImplicitNewType:
		ref = constant.NewRef{Implicit: true}
	case ast.PrefabNewType:
		p, err := fl.foldPrefab(ty, nt.Prefab)
		if err != nil {
			return nil, err
		}
		ref = constant.NewRef{Prefab: &p}
	case ast.IdentNewType:
		return nil, diagnostics.NewNonConstantNewExpression(t.Pos())
	default:
		panic(fmt.Sprintf("constfold: unhandled new-type type %T", t.Type))
	}

	result := constant.New{Type: ref, HasArgs: t.Args != nil}
	if t.Args != nil {
		args := make([]constant.Constant, len(t.Args))
		for i, a := range t.Args {
			v, err := fl.foldExpr(ty, a, nil)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		result.Args = args
	}
	return result, nil
}

func (fl *Folder) foldListTerm(ty *objtree.Class, t *ast.ListTerm, hint ast.TypePath) (constant.Constant, error) {
	var elemHint ast.TypePath
	if hint.HasHead("list") {
		elemHint = hint.Tail()
	}

	entries := make([]constant.Entry, 0, len(t.Elements))
	for _, el := range t.Elements {
		if el.Value != nil {
			var key constant.Constant
			if name, ok := bareIdent(el.Key); ok {
				fl.sink.Report(diagnostics.NewIdentUsedAsListKey(el.Key.Pos(), name))
				key = constant.NewString(name)
			} else {
				k, err := fl.foldExpr(ty, el.Key, elemHint)
				if err != nil {
					return nil, err
				}
				key = k
			}
			value, err := fl.foldExpr(ty, el.Value, elemHint)
			if err != nil {
				return nil, err
			}
			entries = append(entries, constant.Entry{Key: key, Value: value})
			continue
		}

		key, err := fl.foldExpr(ty, el.Key, elemHint)
		if err != nil {
			return nil, err
		}
		entries = append(entries, constant.Entry{Key: key})
	}
	return constant.List{Elements: entries}, nil
}

// bareIdent reports whether e is nothing but a plain identifier term — no
// unary ops, no follows — and if so returns its name.
func bareIdent(e ast.Expression) (string, bool) {
	be, ok := e.(*ast.BaseExpr)
	if !ok || len(be.Unary) != 0 || len(be.Follow) != 0 {
		return "", false
	}
	id, ok := be.Term.(*ast.IdentTerm)
	if !ok {
		return "", false
	}
	return id.Name, true
}

func (fl *Folder) foldCallTerm(ty *objtree.Class, t *ast.CallTerm) (constant.Constant, error) {
	switch t.Name {
	case "matrix":
		return fl.foldSymbolicCall(ty, constant.FnMatrix, t.Args)
	case "newlist":
		return fl.foldSymbolicCall(ty, constant.FnNewlist, t.Args)
	case "icon":
		return fl.foldSymbolicCall(ty, constant.FnIcon, t.Args)
	case "rgb":
		return fl.foldRgb(ty, t.Args, t.Pos())
	default:
		return nil, diagnostics.NewNonConstantFunctionCall(t.Pos(), t.Name)
	}
}

func (fl *Folder) foldSymbolicCall(ty *objtree.Class, fn constant.Foldable, rawArgs []ast.Expression) (constant.Constant, error) {
	args := make([]constant.Constant, len(rawArgs))
	for i, a := range rawArgs {
		v, err := fl.foldExpr(ty, a, nil)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return constant.Call{Fn: fn, Args: args}, nil
}

func (fl *Folder) foldRgb(ty *objtree.Class, rawArgs []ast.Expression, pos token.Position) (constant.Constant, error) {
	if len(rawArgs) != 3 && len(rawArgs) != 4 {
		return nil, diagnostics.NewMalformedRgbCall(pos, fmt.Sprintf("expected 3 or 4 arguments, got %d", len(rawArgs)))
	}

	var sb strings.Builder
	sb.WriteByte('#')
	for _, a := range rawArgs {
		v, err := fl.foldExpr(ty, a, nil)
		if err != nil {
			return nil, err
		}
		i, ok := v.(constant.Int)
		if !ok {
			return nil, diagnostics.NewMalformedRgbCall(pos, "non-integer argument")
		}
		clamped := i.Value
		if clamped < 0 {
			clamped = 0
		} else if clamped > 255 {
			clamped = 255
		}
		fmt.Fprintf(&sb, "%02x", clamped)
	}
	return constant.NewString(sb.String()), nil
}

func (fl *Folder) foldPrefab(ty *objtree.Class, p *ast.Prefab) (constant.Constant, error) {
	vars := make([]constant.Var, 0, len(p.Vars))
	for _, v := range p.Vars {
		value, err := fl.foldExpr(ty, v.Value, nil)
		if err != nil {
			return nil, err
		}
		vars = append(vars, constant.Var{Name: v.Name, Value: value})
	}
	return constant.Prefab{Path: p.Path, Vars: vars}, nil
}

// applyFollow applies one postfix follow to an already-reduced value. The
// only follow the folder accepts is Field on a type-hinted Null.
func (fl *Folder) applyFollow(ty *objtree.Class, value constant.Constant, flw ast.Follow) (constant.Constant, error) {
	field, ok := flw.(*ast.FieldFollow)
	if !ok {
		return nil, diagnostics.NewNonConstantExpressionFollower(flw.Pos(), kindOf(value), flw.String())
	}

	null, ok := value.(constant.Null)
	if !ok || !null.HasHint {
		return nil, diagnostics.NewNonConstantExpressionFollower(flw.Pos(), kindOf(value), flw.String())
	}

	path := null.TypeHint.Join()
	target, ok := fl.tree.NodeByPath(path)
	if !ok {
		return nil, diagnostics.NewUnknownTypepath(field.Pos(), path)
	}

	resolved, _, err := fl.recursiveLookup(target, field.Name, true, field.Pos())
	return resolved, err
}

func (fl *Folder) applyUnary(op ast.UnaryOp, value constant.Constant, pos token.Position) (constant.Constant, error) {
	switch op {
	case ast.UnaryNeg:
		switch v := value.(type) {
		case constant.Int:
			return constant.Int{Value: -v.Value}, nil
		case constant.Float:
			return constant.Float{Value: -v.Value}, nil
		}
	case ast.UnaryBitNot:
		if v, ok := value.(constant.Int); ok {
			return constant.Int{Value: ^v.Value}, nil
		}
	case ast.UnaryNot:
		if v, ok := value.(constant.Int); ok {
			if v.Value == 0 {
				return constant.Int{Value: 1}, nil
			}
			return constant.Int{Value: 0}, nil
		}
	}
	return nil, diagnostics.NewNonConstantUnary(pos, op.String(), kindOf(value))
}

func (fl *Folder) foldBinary(op ast.BinaryOp, lhs, rhs constant.Constant, pos token.Position) (constant.Constant, error) {
	if op == ast.BinaryAdd {
		if ls, ok := lhs.(constant.String); ok {
			if rs, ok := rhs.(constant.String); ok {
				return constant.NewString(ls.Value + rs.Value), nil
			}
		}
	}

	switch op {
	case ast.BinaryAdd, ast.BinarySub, ast.BinaryMul, ast.BinaryDiv:
		li, lIsInt := lhs.(constant.Int)
		lf, lIsFloat := lhs.(constant.Float)
		ri, rIsInt := rhs.(constant.Int)
		rf, rIsFloat := rhs.(constant.Float)
		if !(lIsInt || lIsFloat) || !(rIsInt || rIsFloat) {
			return nil, diagnostics.NewNonConstantBinary(pos, kindOf(lhs), op.String(), kindOf(rhs))
		}
		if lIsFloat || rIsFloat {
			a, b := lf.Value, rf.Value
			if lIsInt {
				a = float32(li.Value)
			}
			if rIsInt {
				b = float32(ri.Value)
			}
			return constant.Float{Value: applyFloatOp(op, a, b)}, nil
		}
		return constant.Int{Value: applyIntOp(op, li.Value, ri.Value)}, nil

	case ast.BinaryBitOr, ast.BinaryBitAnd, ast.BinaryLShift, ast.BinaryRShift:
		li, lok := lhs.(constant.Int)
		ri, rok := rhs.(constant.Int)
		if !lok || !rok {
			return nil, diagnostics.NewNonConstantBinary(pos, kindOf(lhs), op.String(), kindOf(rhs))
		}
		return constant.Int{Value: applyBitOp(op, li.Value, ri.Value)}, nil

	default:
		// BinaryOr and anything else are never folded.
		return nil, diagnostics.NewNonConstantBinary(pos, kindOf(lhs), op.String(), kindOf(rhs))
	}
}

func applyFloatOp(op ast.BinaryOp, a, b float32) float32 {
	switch op {
	case ast.BinaryAdd:
		return a + b
	case ast.BinarySub:
		return a - b
	case ast.BinaryMul:
		return a * b
	case ast.BinaryDiv:
		return a / b
	default:
		panic("constfold: applyFloatOp called with non-numeric op")
	}
}

func applyIntOp(op ast.BinaryOp, a, b int32) int32 {
	switch op {
	case ast.BinaryAdd:
		return a + b
	case ast.BinarySub:
		return a - b
	case ast.BinaryMul:
		return a * b
	case ast.BinaryDiv:
		return a / b
	default:
		panic("constfold: applyIntOp called with non-numeric op")
	}
}

func applyBitOp(op ast.BinaryOp, a, b int32) int32 {
	switch op {
	case ast.BinaryBitOr:
		return a | b
	case ast.BinaryBitAnd:
		return a & b
	case ast.BinaryLShift:
		return a << uint32(b)
	case ast.BinaryRShift:
		return a >> uint32(b)
	default:
		panic("constfold: applyBitOp called with non-bitwise op")
	}
}

func kindOf(c constant.Constant) string {
	return string(c.Kind())
}

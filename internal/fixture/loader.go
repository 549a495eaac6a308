package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/dmforge/constfold/internal/ast"
	"github.com/dmforge/constfold/internal/objtree"
	"github.com/dmforge/constfold/internal/token"
)

// LoadFile reads and decodes the fixture at path into a class tree.
func LoadFile(path string) (*objtree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return Load(data)
}

// Load decodes a fixture document and builds the class tree it describes.
func Load(data []byte) (*objtree.Tree, error) {
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}

	tree := objtree.NewTree()
	for _, cd := range doc.Classes {
		var parent *objtree.Class
		if cd.Parent != "" {
			p, ok := tree.NodeByPath(cd.Parent)
			if !ok {
				return nil, fmt.Errorf("fixture: class %s names parent %s before it is defined", cd.Path, cd.Parent)
			}
			parent = p
		}

		class := tree.AddClass(cd.Path, parent)
		for _, vd := range cd.Vars {
			if err := declareVar(class, cd.Path, vd); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

func declareVar(class *objtree.Class, classPath string, vd VarDoc) error {
	pos := token.Position{Line: vd.Line, Column: vd.Column}

	var expr ast.Expression
	if vd.Expr != nil {
		e, err := buildExpr(vd.Expr, pos)
		if err != nil {
			return fmt.Errorf("fixture: %s.%s: %w", classPath, vd.Name, err)
		}
		expr = e
	}

	decl := &objtree.Declaration{
		DeclaredPath:     ast.NewTypePath(vd.TypeHint...),
		IsStatic:         vd.Static,
		IsConstEvaluable: vd.Const,
	}
	slot := &objtree.VariableSlot{Expression: expr, Location: pos}
	class.DeclareVar(vd.Name, decl, slot)
	return nil
}

// buildExpr translates one ExprDoc node into the corresponding ast shape.
// Every term-shaped case is wrapped in a bare *ast.BaseExpr; Unary adds its
// operator to the operand's *ast.BaseExpr; Binary/Assign build their own
// Expression kinds directly.
func buildExpr(d *ExprDoc, pos token.Position) (ast.Expression, error) {
	switch {
	case d.Null:
		return wrapTerm(&ast.NullTerm{Token: pos}, pos), nil

	case d.Int != nil:
		return wrapTerm(&ast.IntTerm{Token: pos, Value: *d.Int}, pos), nil

	case d.Float != nil:
		return wrapTerm(&ast.FloatTerm{Token: pos, Value: *d.Float}, pos), nil

	case d.String != nil:
		return wrapTerm(&ast.StringTerm{Token: pos, Value: *d.String}, pos), nil

	case d.Resource != nil:
		return wrapTerm(&ast.ResourceTerm{Token: pos, Value: *d.Resource}, pos), nil

	case d.Ident != nil:
		return wrapTerm(&ast.IdentTerm{Token: pos, Name: *d.Ident}, pos), nil

	case d.Unary != nil:
		return buildUnary(d.Unary, pos)

	case d.Binary != nil:
		lhs, err := buildExpr(d.Binary.LHS, pos)
		if err != nil {
			return nil, err
		}
		rhs, err := buildExpr(d.Binary.RHS, pos)
		if err != nil {
			return nil, err
		}
		op, err := parseBinaryOp(d.Binary.Op)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{LHS: lhs, RHS: rhs, Op: op, Token: pos}, nil

	case d.Assign != nil:
		lhs, err := buildExpr(d.Assign.LHS, pos)
		if err != nil {
			return nil, err
		}
		rhs, err := buildExpr(d.Assign.RHS, pos)
		if err != nil {
			return nil, err
		}
		op, err := parseAssignOp(d.Assign.Op)
		if err != nil {
			return nil, err
		}
		return &ast.AssignExpr{LHS: lhs, RHS: rhs, Op: op, Token: pos}, nil

	case d.Call != nil:
		args, err := buildArgs(d.Call.Args, pos)
		if err != nil {
			return nil, err
		}
		return wrapTerm(&ast.CallTerm{Name: d.Call.Name, Args: args, Token: pos}, pos), nil

	case d.Prefab != nil:
		p, err := buildPrefab(d.Prefab, pos)
		if err != nil {
			return nil, err
		}
		return wrapTerm(&ast.PrefabTerm{Prefab: p, Token: pos}, pos), nil

	case d.New != nil:
		return buildNew(d.New, pos)

	case d.Field != nil:
		return buildField(d.Field, pos)

	case d.Paren != nil:
		inner, err := buildExpr(d.Paren, pos)
		if err != nil {
			return nil, err
		}
		return wrapTerm(&ast.ExprTerm{Inner: inner, Token: pos}, pos), nil

	case d.List != nil:
		return buildList(d.List, pos)

	default:
		return nil, fmt.Errorf("empty expression node at %s", pos)
	}
}

func wrapTerm(t ast.Term, pos token.Position) *ast.BaseExpr {
	return &ast.BaseExpr{Term: t, Token: pos}
}

func buildUnary(u *UnaryDoc, pos token.Position) (ast.Expression, error) {
	operand, err := buildExpr(u.Operand, pos)
	if err != nil {
		return nil, err
	}
	op, err := parseUnaryOp(u.Op)
	if err != nil {
		return nil, err
	}
	if be, ok := operand.(*ast.BaseExpr); ok && len(be.Follow) == 0 {
		be.Unary = append([]ast.UnaryOp{op}, be.Unary...)
		return be, nil
	}
	return &ast.BaseExpr{Term: &ast.ExprTerm{Inner: operand, Token: pos}, Unary: []ast.UnaryOp{op}, Token: pos}, nil
}

func buildField(f *FieldDoc, pos token.Position) (ast.Expression, error) {
	base, err := buildExpr(f.Base, pos)
	if err != nil {
		return nil, err
	}
	be, ok := base.(*ast.BaseExpr)
	if !ok {
		be = &ast.BaseExpr{Term: &ast.ExprTerm{Inner: base, Token: pos}, Token: pos}
	}
	be.Follow = append(be.Follow, &ast.FieldFollow{Name: f.Name, Token: pos})
	return be, nil
}

func buildList(elems []ListElemDoc, pos token.Position) (ast.Expression, error) {
	built := make([]ast.ListElement, len(elems))
	for i, le := range elems {
		key, err := buildExpr(&le.Key, pos)
		if err != nil {
			return nil, err
		}
		var value ast.Expression
		if le.Value != nil {
			value, err = buildExpr(le.Value, pos)
			if err != nil {
				return nil, err
			}
		}
		built[i] = ast.ListElement{Key: key, Value: value}
	}
	return wrapTerm(&ast.ListTerm{Elements: built, Token: pos}, pos), nil
}

func buildNew(n *NewDoc, pos token.Position) (ast.Expression, error) {
	var nt ast.NewType
	switch {
	case n.Prefab != nil:
		p, err := buildPrefab(n.Prefab, pos)
		if err != nil {
			return nil, err
		}
		nt = ast.PrefabNewType{Prefab: p}
	case n.Ident != "":
		nt = ast.IdentNewType{Name: n.Ident}
	default:
		nt = ast.ImplicitNewType{}
	}

	var args []ast.Expression
	if n.Args != nil {
		a, err := buildArgs(n.Args, pos)
		if err != nil {
			return nil, err
		}
		args = a
	}
	return wrapTerm(&ast.NewTerm{Type: nt, Args: args, Token: pos}, pos), nil
}

func buildPrefab(p *PrefabDoc, pos token.Position) (*ast.Prefab, error) {
	vars := make([]ast.PrefabVar, len(p.Vars))
	for i, v := range p.Vars {
		value, err := buildExpr(&v.Value, pos)
		if err != nil {
			return nil, err
		}
		vars[i] = ast.PrefabVar{Name: v.Name, Value: value}
	}
	return &ast.Prefab{Path: ast.NewTypePath(p.Path...), Vars: vars, Token: pos}, nil
}

func buildArgs(docs []ExprDoc, pos token.Position) ([]ast.Expression, error) {
	args := make([]ast.Expression, len(docs))
	for i := range docs {
		a, err := buildExpr(&docs[i], pos)
		if err != nil {
			return nil, err
		}
		args[i] = a
	}
	return args, nil
}

func parseUnaryOp(s string) (ast.UnaryOp, error) {
	switch s {
	case "neg":
		return ast.UnaryNeg, nil
	case "bitnot":
		return ast.UnaryBitNot, nil
	case "not":
		return ast.UnaryNot, nil
	default:
		return 0, fmt.Errorf("unknown unary op %q", s)
	}
}

func parseBinaryOp(s string) (ast.BinaryOp, error) {
	switch s {
	case "add":
		return ast.BinaryAdd, nil
	case "sub":
		return ast.BinarySub, nil
	case "mul":
		return ast.BinaryMul, nil
	case "div":
		return ast.BinaryDiv, nil
	case "bitor":
		return ast.BinaryBitOr, nil
	case "bitand":
		return ast.BinaryBitAnd, nil
	case "lshift":
		return ast.BinaryLShift, nil
	case "rshift":
		return ast.BinaryRShift, nil
	case "or":
		return ast.BinaryOr, nil
	default:
		return 0, fmt.Errorf("unknown binary op %q", s)
	}
}

func parseAssignOp(s string) (ast.AssignOp, error) {
	switch s {
	case "assign", "=":
		return ast.AssignPlain, nil
	case "add", "+=":
		return ast.AssignAdd, nil
	case "sub", "-=":
		return ast.AssignSub, nil
	case "mul", "*=":
		return ast.AssignMul, nil
	case "div", "/=":
		return ast.AssignDiv, nil
	default:
		return 0, fmt.Errorf("unknown assign op %q", s)
	}
}

package refs

import (
	"github.com/dmforge/constfold/internal/ast"
	"github.com/dmforge/constfold/internal/objtree"
)

// staticTypeKind distinguishes the three shapes a StaticType can take.
type staticTypeKind int

const (
	typeNone staticTypeKind = iota
	typeExact
	typeList
)

// StaticType is the type estimate the walker threads through an
// expression, propagated without ever evaluating it — including through
// BinaryOr, which the constant folder rejects outright but this walker
// still type-propagates.
type StaticType struct {
	Type *objtree.Class
	Keys *StaticType
	kind staticTypeKind
}

var noneType = StaticType{kind: typeNone}

func exactType(c *objtree.Class) StaticType {
	if c == nil {
		return noneType
	}
	return StaticType{kind: typeExact, Type: c}
}

func listType(list *objtree.Class, keys StaticType) StaticType {
	return StaticType{kind: typeList, Type: list, Keys: &keys}
}

// BasicType collapses a StaticType to the single class it names, if any:
// an exact type names itself, a list names /list, and None names nothing.
func (s StaticType) BasicType() *objtree.Class {
	switch s.kind {
	case typeExact:
		return s.Type
	case typeList:
		return s.Type
	default:
		return nil
	}
}

// walker is the per-initializer visitor. It carries the class the
// initializer belongs to (used to resolve unscoped identifiers)
// and the shared Table every visited reference is recorded into.
type walker struct {
	tab  *Table
	tree *objtree.Tree
	ty   *objtree.Class
}

func newWalk(tab *Table, tree *objtree.Tree, ty *objtree.Class) *walker {
	return &walker{tab: tab, tree: tree, ty: ty}
}

// staticTypeOf turns a declared type path into a StaticType, recursing
// into "list"'s element-type segment.
func (w *walker) staticTypeOf(path ast.TypePath) StaticType {
	if path.IsEmpty() {
		return noneType
	}
	if path.HasHead("list") {
		listClass, _ := w.tree.NodeByPath("/list")
		return listType(listClass, w.staticTypeOf(path.Tail()))
	}
	if c, ok := w.tree.NodeByPath(path.Join()); ok {
		return exactType(c)
	}
	return noneType
}

func (w *walker) visitExpression(expr ast.Expression, hint StaticType) StaticType {
	switch e := expr.(type) {
	case *ast.BaseExpr:
		baseHint := hint
		if len(e.Unary) != 0 || len(e.Follow) != 0 {
			baseHint = noneType
		}
		ty := w.visitTerm(e.Term, baseHint)
		for _, f := range e.Follow {
			ty = w.visitFollow(ty, f)
		}
		// A unary operator's result carries no static type: any unary op
		// makes the expression's type None.
		if len(e.Unary) != 0 {
			return noneType
		}
		return ty

	case *ast.BinaryExpr:
		if e.Op == ast.BinaryOr {
			w.visitExpression(e.LHS, hint)
			w.visitExpression(e.RHS, hint)
			return noneType
		}
		w.visitExpression(e.LHS, noneType)
		w.visitExpression(e.RHS, noneType)
		return noneType

	case *ast.AssignExpr:
		lhsTy := w.visitExpression(e.LHS, noneType)
		return w.visitExpression(e.RHS, exactType(lhsTy.BasicType()))

	default:
		return noneType
	}
}

func (w *walker) visitTerm(term ast.Term, hint StaticType) StaticType {
	switch t := term.(type) {
	case *ast.ExprTerm:
		return w.visitExpression(t.Inner, hint)

	case *ast.NewTerm:
		var ty StaticType
		switch nt := t.Type.(type) {
		case ast.ImplicitNewType:
			ty = hint
		case ast.PrefabNewType:
			ty = exactType(w.visitPrefab(nt.Prefab))
		default:
			ty = noneType
		}
		for _, a := range t.Args {
			w.visitExpression(a, noneType)
		}
		return ty

	case *ast.ListTerm:
		listClass, _ := w.tree.NodeByPath("/list")
		for _, el := range t.Elements {
			w.visitExpression(el.Key, noneType)
			if el.Value != nil {
				w.visitExpression(el.Value, noneType)
			}
		}
		return listType(listClass, noneType)

	case *ast.PrefabTerm:
		w.visitPrefab(t.Prefab)
		return noneType

	case *ast.CallTerm:
		for _, a := range t.Args {
			w.visitExpression(a, noneType)
		}
		return noneType

	case *ast.IdentTerm:
		decl, ok := w.tree.DeclarationOf(w.ty, t.Name)
		if !ok {
			return noneType
		}
		w.tab.use(symbolOf(decl), t.Pos())
		return w.staticTypeOf(decl.DeclaredPath)

	default:
		// Null/String/Resource/Int/Float literals carry no declaration to
		// reference.
		return noneType
	}
}

// visitPrefab registers a use of every override name the prefab's path can
// resolve a declaration for, and returns the path's class if found.
func (w *walker) visitPrefab(p *ast.Prefab) *objtree.Class {
	target, ok := w.tree.NodeByPath(p.Path.Join())
	if !ok {
		return nil
	}
	for _, v := range p.Vars {
		if decl, ok := w.tree.DeclarationOf(target, v.Name); ok {
			w.tab.use(symbolOf(decl), p.Pos())
		}
		w.visitExpression(v.Value, noneType)
	}
	return target
}

// visitFollow handles a postfix follow: Index propagates a list's key
// type, Field resolves and records a use of the named declaration on the
// left-hand side's basic type, anything else yields None.
func (w *walker) visitFollow(lhs StaticType, follow ast.Follow) StaticType {
	switch f := follow.(type) {
	case *ast.IndexFollow:
		w.visitExpression(f.Index, noneType)
		if lhs.kind == typeList && lhs.Keys != nil {
			return *lhs.Keys
		}
		return noneType

	case *ast.FieldFollow:
		base := lhs.BasicType()
		if base == nil {
			return noneType
		}
		decl, ok := w.tree.DeclarationOf(base, f.Name)
		if !ok {
			return noneType
		}
		w.tab.use(symbolOf(decl), f.Pos())
		return w.staticTypeOf(decl.DeclaredPath)

	case *ast.CallFollow:
		for _, a := range f.Args {
			w.visitExpression(a, noneType)
		}
		return noneType

	default:
		return noneType
	}
}

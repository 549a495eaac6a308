package fixture

import (
	"testing"

	"github.com/dmforge/constfold/internal/ast"
)

func TestLoad_SimpleHierarchy(t *testing.T) {
	doc := []byte(`
classes:
  - path: /datum
    vars:
      - name: x
        const: true
        expr:
          int: 5
  - path: /datum/thing
    parent: /datum
    vars:
      - name: y
        const: true
        expr:
          binary:
            op: add
            lhs: { ident: x }
            rhs: { int: 1 }
`)
	tree, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	root, ok := tree.NodeByPath("/datum")
	if !ok {
		t.Fatal("expected /datum to exist")
	}
	child, ok := tree.NodeByPath("/datum/thing")
	if !ok {
		t.Fatal("expected /datum/thing to exist")
	}
	if child.Parent != root {
		t.Fatal("expected /datum/thing's parent to be /datum")
	}

	decl, ok := tree.DeclarationOf(root, "x")
	if !ok || !decl.IsConstEvaluable {
		t.Fatal("expected x to be const-evaluable")
	}
}

func TestLoad_UnknownParentFails(t *testing.T) {
	doc := []byte(`
classes:
  - path: /datum/thing
    parent: /datum
`)
	if _, err := Load(doc); err == nil {
		t.Fatal("expected an error for a parent referenced before definition")
	}
}

func TestLoad_NestedExpressionShapes(t *testing.T) {
	doc := []byte(`
classes:
  - path: /obj
    vars:
      - name: color
        const: true
        expr:
          call:
            name: rgb
            args:
              - { int: 255 }
              - { int: 0 }
              - { int: 0 }
      - name: things
        const: true
        type_hint: [list]
        expr:
          list:
            - key: { int: 1 }
            - key: { string: "a" }
              value: { int: 2 }
      - name: neg
        const: true
        expr:
          unary:
            op: neg
            operand: { int: 3 }
`)
	tree, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	obj, _ := tree.NodeByPath("/obj")
	for _, name := range []string{"color", "things", "neg"} {
		if _, ok := tree.SlotOfMut(obj, name); !ok {
			t.Fatalf("expected slot for %s", name)
		}
	}
}

func TestLoad_NewWithNoArgsVsExplicitEmptyArgs(t *testing.T) {
	doc := []byte(`
classes:
  - path: /obj
    vars:
      - name: bare
        const: true
        expr:
          new: {}
      - name: called
        const: true
        expr:
          new:
            args: []
`)
	tree, err := Load(doc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	obj, _ := tree.NodeByPath("/obj")

	bareSlot, _ := tree.SlotOfMut(obj, "bare")
	calledSlot, _ := tree.SlotOfMut(obj, "called")

	bareNew := bareSlot.Expression.(*ast.BaseExpr).Term.(*ast.NewTerm)
	if bareNew.Args != nil {
		t.Fatal("expected bare `new` to have nil Args")
	}

	calledNew := calledSlot.Expression.(*ast.BaseExpr).Term.(*ast.NewTerm)
	if calledNew.Args == nil || len(calledNew.Args) != 0 {
		t.Fatal("expected `new(args: [])` to have a non-nil, empty Args")
	}
}

package constfold_test

import (
	"testing"

	"github.com/dmforge/constfold/internal/constant"
	"github.com/dmforge/constfold/internal/fixture"
	"github.com/dmforge/constfold/pkg/constfold"
)

func TestEvaluate_NoErrorsOnCleanTree(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /datum
    vars:
      - name: x
        const: true
        expr: { int: 42 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	diags, err := constfold.Evaluate(tree)
	if err != nil {
		t.Fatalf("Evaluate: unexpected error %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}

	cls, _ := tree.NodeByPath("/datum")
	slot, _ := tree.SlotOfMut(cls, "x")
	if slot.Constant != (constant.Int{Value: 42}) {
		t.Fatalf("expected x to fold to 42, got %v", slot.Constant)
	}
}

func TestEvaluate_ErrorReturnedOnDiagnosticError(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: x
        const: true
        expr: { ident: nope }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	diags, err := constfold.Evaluate(tree)
	if err == nil {
		t.Fatal("expected a non-nil error for an unresolved identifier")
	}
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", diags)
	}
}

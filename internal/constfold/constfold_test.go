package constfold_test

import (
	"testing"

	"github.com/dmforge/constfold/internal/constant"
	"github.com/dmforge/constfold/internal/constfold"
	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/fixture"
)

func TestEvaluateAll_ArithmeticFolding(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /datum
    vars:
      - name: sum
        const: true
        expr:
          binary:
            op: add
            lhs: { int: 2 }
            rhs: { int: 3 }
      - name: ratio
        const: true
        expr:
          binary:
            op: div
            lhs: { int: 1 }
            rhs: { float: 2.0 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}

	cls, _ := tree.NodeByPath("/datum")
	sumSlot, _ := tree.SlotOfMut(cls, "sum")
	if sumSlot.Constant != (constant.Int{Value: 5}) {
		t.Fatalf("expected sum to fold to 5, got %v", sumSlot.Constant)
	}

	ratioSlot, _ := tree.SlotOfMut(cls, "ratio")
	if ratioSlot.Constant != (constant.Float{Value: 0.5}) {
		t.Fatalf("expected ratio to fold to 0.5, got %v", ratioSlot.Constant)
	}
}

func TestEvaluateAll_InheritedLookup(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /datum
    vars:
      - name: base
        const: true
        expr: { int: 10 }
  - path: /datum/child
    parent: /datum
    vars:
      - name: derived
        const: true
        expr:
          binary:
            op: mul
            lhs: { ident: base }
            rhs: { int: 2 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}

	child, _ := tree.NodeByPath("/datum/child")
	slot, _ := tree.SlotOfMut(child, "derived")
	if slot.Constant != (constant.Int{Value: 20}) {
		t.Fatalf("expected derived to fold to 20, got %v", slot.Constant)
	}
}

func TestEvaluateAll_CyclicReferenceReported(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: x
        const: true
        expr: { ident: y }
      - name: y
        const: true
        expr: { ident: x }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	errs := sink.Errors()
	if len(errs) == 0 {
		t.Fatal("expected at least one cyclic-reference diagnostic")
	}
	found := false
	for _, d := range errs {
		if d.Kind == diagnostics.KindCyclicReference {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a cyclic-reference diagnostic, got %v", errs)
	}
}

func TestEvaluateAll_UnknownVariableReported(t *testing.T) {
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

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	errs := sink.Errors()
	if len(errs) != 1 || errs[0].Kind != diagnostics.KindUnknownVariable {
		t.Fatalf("expected exactly one unknown-variable diagnostic, got %v", errs)
	}
}

func TestEvaluateAll_NonConstVariableRejected(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: x
        expr: { int: 1 }
      - name: y
        const: true
        expr: { ident: x }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	errs := sink.Errors()
	if len(errs) != 1 || errs[0].Kind != diagnostics.KindNonConstVariable {
		t.Fatalf("expected exactly one non-const-variable diagnostic, got %v", errs)
	}
}

func TestEvaluateAll_RgbFoldsToHexString(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: c
        const: true
        expr:
          call:
            name: rgb
            args:
              - { int: 255 }
              - { int: 0 }
              - { int: 128 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}

	cls, _ := tree.NodeByPath("/a")
	slot, _ := tree.SlotOfMut(cls, "c")
	s, ok := slot.Constant.(constant.String)
	if !ok || s.Value != "#ff0080" {
		t.Fatalf("expected #ff0080, got %v", slot.Constant)
	}
}

func TestEvaluateAll_RgbRejectsFloatArgument(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: c
        const: true
        expr:
          call:
            name: rgb
            args:
              - { float: 1.5 }
              - { int: 0 }
              - { int: 0 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	errs := sink.Errors()
	if len(errs) != 1 || errs[0].Kind != diagnostics.KindMalformedRgbCall {
		t.Fatalf("expected exactly one malformed-rgb-call diagnostic, got %v", errs)
	}
}

func TestEvaluateAll_BinaryOrNeverFolds(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: x
        const: true
        expr:
          binary:
            op: or
            lhs: { int: 1 }
            rhs: { int: 0 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	errs := sink.Errors()
	if len(errs) != 1 || errs[0].Kind != diagnostics.KindNonConstantBinary {
		t.Fatalf("expected exactly one non-constant-binary diagnostic for ||, got %v", errs)
	}
}

func TestEvaluateAll_BareIdentListKeyWarns(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: l
        const: true
        type_hint: [list]
        expr:
          list:
            - key: { ident: north }
              value: { int: 1 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}
	warnings := sink.Warnings()
	if len(warnings) != 1 || warnings[0].Kind != diagnostics.KindIdentUsedAsListKey {
		t.Fatalf("expected exactly one ident-used-as-list-key warning, got %v", warnings)
	}

	cls, _ := tree.NodeByPath("/a")
	slot, _ := tree.SlotOfMut(cls, "l")
	list := slot.Constant.(constant.List)
	if len(list.Elements) != 1 {
		t.Fatalf("expected one list element, got %d", len(list.Elements))
	}
	key, ok := list.Elements[0].Key.(constant.String)
	if !ok || key.Value != "north" {
		t.Fatalf("expected bare ident key to fold to string \"north\", got %v", list.Elements[0].Key)
	}
}

// TestEvaluateAll_FieldThroughNullResolvesStaticConst covers the
// "GLOB.SCI_FREQ" pattern: /G declares a variable typed /C with no
// initializer, which defaults to Null(hint=/C); /D (a child of /G) has an
// initializer referencing g.M, reducing the identifier first (to that
// hinted Null) and then following .M onto /C with must_be_static=true.
func TestEvaluateAll_FieldThroughNullResolvesStaticConst(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /C
    vars:
      - name: M
        static: true
        const: true
        expr: { int: 4 }
  - path: /G
    vars:
      - name: g
        const: true
        type_hint: [C]
  - path: /D
    parent: /G
    vars:
      - name: x
        const: true
        expr:
          field:
            base: { ident: g }
            name: M
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}

	d, _ := tree.NodeByPath("/D")
	slot, _ := tree.SlotOfMut(d, "x")
	if slot.Constant != (constant.Int{Value: 4}) {
		t.Fatalf("expected x to fold to 4 via field-through-null, got %v", slot.Constant)
	}
}

func TestEvaluateAll_FieldThroughNullRejectsNonStatic(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /C
    vars:
      - name: M
        const: true
        expr: { int: 4 }
  - path: /G
    vars:
      - name: g
        const: true
        type_hint: [C]
  - path: /D
    parent: /G
    vars:
      - name: x
        const: true
        expr:
          field:
            base: { ident: g }
            name: M
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	errs := sink.Errors()
	if len(errs) != 1 || errs[0].Kind != diagnostics.KindNonStaticVariable {
		t.Fatalf("expected exactly one non-static-variable diagnostic, got %v", errs)
	}
}

func TestEvaluateAll_ListPreservesInsertionOrder(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: k
        const: true
        expr:
          list:
            - key: { string: "a" }
              value: { int: 1 }
            - key: { string: "b" }
              value: { int: 2 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}

	cls, _ := tree.NodeByPath("/a")
	slot, _ := tree.SlotOfMut(cls, "k")
	list := slot.Constant.(constant.List)
	if len(list.Elements) != 2 {
		t.Fatalf("expected two list elements, got %d", len(list.Elements))
	}
	if k, ok := list.Elements[0].Key.(constant.String); !ok || k.Value != "a" {
		t.Fatalf("expected first key \"a\", got %v", list.Elements[0].Key)
	}
	if k, ok := list.Elements[1].Key.(constant.String); !ok || k.Value != "b" {
		t.Fatalf("expected second key \"b\", got %v", list.Elements[1].Key)
	}
}

func TestEvaluateAll_StringConcatenation(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: s
        const: true
        expr:
          binary:
            op: add
            lhs: { string: "hi" }
            rhs: { string: "!" }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}

	cls, _ := tree.NodeByPath("/a")
	slot, _ := tree.SlotOfMut(cls, "s")
	if slot.Constant != (constant.String{Value: "hi!"}) {
		t.Fatalf("expected s to fold to \"hi!\", got %v", slot.Constant)
	}
}

func TestEvaluateAll_MatrixCallPreservedSymbolically(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /a
    vars:
      - name: u
        const: true
        expr:
          call:
            name: matrix
            args:
              - { int: 1 }
              - { int: 0 }
              - { int: 0 }
              - { int: 0 }
              - { int: 1 }
              - { int: 0 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if len(sink.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", sink.Errors())
	}

	cls, _ := tree.NodeByPath("/a")
	slot, _ := tree.SlotOfMut(cls, "u")
	call, ok := slot.Constant.(constant.Call)
	if !ok || call.Fn != constant.FnMatrix || len(call.Args) != 6 {
		t.Fatalf("expected a preserved matrix(...) call with 6 args, got %v", slot.Constant)
	}
}

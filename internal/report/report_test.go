package report_test

import (
	"testing"

	"github.com/dmforge/constfold/internal/constfold"
	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/fixture"
	"github.com/dmforge/constfold/internal/report"
)

func TestBuild_RoundTripsFoldedValue(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /datum
    vars:
      - name: x
        const: true
        expr:
          binary:
            op: add
            lhs: { int: 1 }
            rhs: { int: 2 }
`))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}

	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)

	doc, err := report.Build(tree, sink.Diagnostics)
	if err != nil {
		t.Fatalf("report.Build: %v", err)
	}

	value, ok := report.Query(doc, "classes./datum.vars.x.value")
	if !ok || value != "3" {
		t.Fatalf("expected classes./datum.vars.x.value to be 3, got %q (ok=%v)", value, ok)
	}

	count, ok := report.Query(doc, "diagnostic_count")
	if !ok || count != "0" {
		t.Fatalf("expected diagnostic_count 0, got %q", count)
	}
}

func TestBuild_RecordsDiagnostics(t *testing.T) {
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

	doc, err := report.Build(tree, sink.Diagnostics)
	if err != nil {
		t.Fatalf("report.Build: %v", err)
	}

	kind, ok := report.Query(doc, "diagnostics.0.kind")
	if !ok || kind != string(diagnostics.KindUnknownVariable) {
		t.Fatalf("expected diagnostics.0.kind to be %q, got %q", diagnostics.KindUnknownVariable, kind)
	}
}

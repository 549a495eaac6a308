package report_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/dmforge/constfold/internal/constfold"
	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/fixture"
	"github.com/dmforge/constfold/internal/report"
)

// TestBuild_Snapshot folds a small representative tree covering an integer
// literal, a list whose value is an inherited identifier, an rgb() call and
// a cyclic-reference failure, and snapshots the pretty-printed report.
func TestBuild_Snapshot(t *testing.T) {
	tree, err := fixture.Load([]byte(`
classes:
  - path: /obj/item
    vars:
      - name: amount
        const: true
        expr: { int: 5 }
      - name: color
        const: true
        expr:
          call:
            name: rgb
            args:
              - { int: 255 }
              - { int: 0 }
              - { int: 128 }
      - name: a
        const: true
        expr: { ident: b }
      - name: b
        const: true
        expr: { ident: a }
  - path: /container
    parent: /obj/item
    vars:
      - name: slots
        const: true
        type_hint: [list]
        expr:
          list:
            - key: { string: "first" }
              value: { ident: amount }
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

	snaps.MatchSnapshot(t, string(report.Pretty(doc, false)))
}

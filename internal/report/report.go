// Package report assembles a JSON document summarizing one fold pass over
// a class tree — every folded variable's rendered value plus every
// diagnostic raised — and renders it for terminal display. It is a
// CLI/tooling concern, not part of the folder itself; internal/constfold
// never imports it.
package report

import (
	"fmt"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/objtree"
)

// Build assembles the report for tree after EvaluateAll has run, given the
// diagnostics it reported along the way. One sjson.Set call per variable
// and per diagnostic field, matching the incremental-assembly style the
// tidwall/sjson README itself demonstrates for building up a document
// field by field rather than marshaling a Go struct.
func Build(tree *objtree.Tree, diags []*diagnostics.Diagnostic) ([]byte, error) {
	doc := "{}"
	var err error

	for _, c := range tree.Classes() {
		for _, name := range c.VarNames() {
			slot, ok := tree.SlotOfMut(c, name)
			if !ok {
				continue
			}
			base := fmt.Sprintf("classes.%s.vars.%s", escapePathKey(c.Path), escapePathKey(name))
			if slot.HasConstant() {
				doc, err = sjson.Set(doc, base+".kind", string(slot.Constant.Kind()))
				if err != nil {
					return nil, fmt.Errorf("report: set %s.kind: %w", base, err)
				}
				doc, err = sjson.Set(doc, base+".value", slot.Constant.String())
				if err != nil {
					return nil, fmt.Errorf("report: set %s.value: %w", base, err)
				}
			} else {
				doc, err = sjson.Set(doc, base+".reduced", false)
				if err != nil {
					return nil, fmt.Errorf("report: set %s.reduced: %w", base, err)
				}
			}
		}
	}

	doc, err = sjson.Set(doc, "diagnostic_count", len(diags))
	if err != nil {
		return nil, fmt.Errorf("report: set diagnostic_count: %w", err)
	}

	for i, d := range diags {
		base := fmt.Sprintf("diagnostics.%d", i)
		doc, err = sjson.Set(doc, base+".severity", d.Severity.String())
		if err != nil {
			return nil, fmt.Errorf("report: set %s.severity: %w", base, err)
		}
		doc, err = sjson.Set(doc, base+".kind", string(d.Kind))
		if err != nil {
			return nil, fmt.Errorf("report: set %s.kind: %w", base, err)
		}
		doc, err = sjson.Set(doc, base+".message", d.Message)
		if err != nil {
			return nil, fmt.Errorf("report: set %s.message: %w", base, err)
		}
		doc, err = sjson.Set(doc, base+".line", d.Pos.Line)
		if err != nil {
			return nil, fmt.Errorf("report: set %s.line: %w", base, err)
		}
		doc, err = sjson.Set(doc, base+".column", d.Pos.Column)
		if err != nil {
			return nil, fmt.Errorf("report: set %s.column: %w", base, err)
		}
	}

	return []byte(doc), nil
}

// escapePathKey backslash-escapes the characters sjson/gjson treat as path
// syntax (".", "*", "?") so a class path like "/obj.item" or a variable
// name containing one of them doesn't get misread as a nested path.
func escapePathKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Pretty indents and colorizes data (the output of Build) for terminal
// display. Pass color=false for plain indentation suitable for piping.
func Pretty(data []byte, color bool) []byte {
	indented := pretty.Pretty(data)
	if !color {
		return indented
	}
	return pretty.Color(indented, nil)
}

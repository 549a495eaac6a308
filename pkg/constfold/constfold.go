// Package constfold is the public facade over this module: a consumer
// builds a class tree (by hand, via internal/fixture, or via its own
// parser/object-tree builder implementing the same shapes) and calls
// Evaluate to reduce every constant-evaluable variable initializer in
// place.
package constfold

import (
	"fmt"

	"github.com/dmforge/constfold/internal/constfold"
	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/objtree"
)

// Diagnostic is the (location, kind, message) triple internal/diagnostics
// defines, re-exported so callers never need to import the internal
// package directly.
type Diagnostic = diagnostics.Diagnostic

// Tree is the class tree the folder mutates in place, re-exported for the
// same reason.
type Tree = objtree.Tree

// Evaluate walks every class in tree and reduces every variable whose
// declaration is marked constant-evaluable, mutating the tree's slots in
// place. It returns every diagnostic raised along the way — errors and
// the single ident-used-as-list-key warning —
// and a non-nil error summarizing the count when at least one is an
// error-severity diagnostic. The fold never aborts early: a failure on one
// variable never prevents the rest of the tree from being folded.
func Evaluate(tree *Tree) ([]*Diagnostic, error) {
	sink := &diagnostics.SliceSink{}
	constfold.EvaluateAll(tree, sink)
	if errs := sink.Errors(); len(errs) > 0 {
		return sink.Diagnostics, fmt.Errorf("constfold: fold finished with %d error(s)", len(errs))
	}
	return sink.Diagnostics, nil
}

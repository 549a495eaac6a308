// Package constfold implements the identifier resolver, expression folder
// and driver that together reduce every constant-evaluable variable
// initializer in a class tree to a constant.Constant.
package constfold

import (
	"strings"

	"github.com/dmforge/constfold/internal/ast"
	"github.com/dmforge/constfold/internal/constant"
	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/objtree"
	"github.com/dmforge/constfold/internal/token"
)

// pendingSlot identifies one (class, variable) pair currently being
// evaluated along the call stack of the current fold — the dependency
// ring a cyclic-reference diagnostic needs to name in full.
type pendingSlot struct {
	ClassPath string
	VarName   string
}

// pendingChain renders the slots in entry order ("oldest" first) as
// "ClassPath.VarName -> ClassPath.VarName -> ...", for inlining into a
// cyclic-reference diagnostic's message.
func pendingChain(slots []pendingSlot) string {
	if len(slots) == 0 {
		return ""
	}
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = s.ClassPath + "." + s.VarName
	}
	return strings.Join(parts, " -> ")
}

// Folder carries the tree access and diagnostic sink shared by the
// resolver and the expression folder, plus the slots currently being
// evaluated along this call stack — used only to enrich a
// cyclic-reference diagnostic with the full ring of dependent variables.
type Folder struct {
	tree    *objtree.Tree
	sink    diagnostics.Sink
	pending []pendingSlot
}

// NewFolder builds a Folder over tree, reporting failures to sink.
func NewFolder(tree *objtree.Tree, sink diagnostics.Sink) *Folder {
	return &Folder{tree: tree, sink: sink}
}

// stepResult is the outcome of one single-class resolution step: either the
// identifier was found (possibly after folding its initializer), or the
// search must continue at Next (absent at the root).
type stepResult struct {
	Value    constant.Constant
	TypeHint ast.TypePath
	Next     *objtree.Class
	Found    bool
	HasNext  bool
}

// resolveIdent performs steps 1-8 of identifier resolution at exactly ty —
// it does not itself walk the parent chain; recursiveLookup does that by
// repeatedly calling this and following Next.
func (fl *Folder) resolveIdent(ty *objtree.Class, name string, mustBeStatic bool) (stepResult, error) {
	decl, ok := fl.tree.DeclarationOf(ty, name)
	if !ok {
		next, hasNext := fl.tree.ParentOf(ty)
		return stepResult{Next: next, HasNext: hasNext}, nil
	}

	slot, ok := fl.tree.SlotOfMut(ty, name)
	if !ok {
		next, hasNext := fl.tree.ParentOf(ty)
		return stepResult{Next: next, HasNext: hasNext}, nil
	}

	// The static requirement is checked before the memoized value is
	// returned, so the outcome doesn't depend on whether the driver already
	// folded this slot.
	if mustBeStatic && !decl.IsStatic {
		return stepResult{}, diagnostics.NewNonStaticVariable(slot.Location, name)
	}

	if slot.HasConstant() {
		return stepResult{Found: true, Value: slot.Constant, TypeHint: decl.DeclaredPath}, nil
	}

	if slot.BeingEvaluated {
		d := diagnostics.NewCyclicReference(slot.Location, name)
		if chain := pendingChain(fl.pending); chain != "" {
			d.Message += " (" + chain + " -> " + ty.Path + "." + name + ")"
		}
		return stepResult{}, d
	}

	if !decl.IsConstEvaluable {
		return stepResult{}, diagnostics.NewNonConstVariable(slot.Location, name)
	}

	if slot.Expression == nil {
		value := nullForHint(decl.DeclaredPath)
		slot.Constant = value
		return stepResult{Found: true, Value: value, TypeHint: decl.DeclaredPath}, nil
	}

	slot.BeingEvaluated = true
	fl.pending = append(fl.pending, pendingSlot{ClassPath: ty.Path, VarName: name})
	defer func() {
		slot.BeingEvaluated = false
		fl.pending = fl.pending[:len(fl.pending)-1]
	}()

	value, err := fl.foldExpr(ty, slot.Expression, decl.DeclaredPath)
	if err != nil {
		return stepResult{}, err
	}
	slot.Constant = value
	return stepResult{Found: true, Value: value, TypeHint: decl.DeclaredPath}, nil
}

// recursiveLookup walks the parent chain starting at ty, calling
// resolveIdent at each step, and fails with UnknownVariable once the root
// reports Continue with no further parent. refPos is the location of the
// identifier reference, used for the UnknownVariable diagnostic.
func (fl *Folder) recursiveLookup(ty *objtree.Class, name string, mustBeStatic bool, refPos token.Position) (constant.Constant, ast.TypePath, error) {
	cur := ty
	for cur != nil {
		res, err := fl.resolveIdent(cur, name, mustBeStatic)
		if err != nil {
			return nil, nil, err
		}
		if res.Found {
			return res.Value, res.TypeHint, nil
		}
		if !res.HasNext {
			cur = nil
			break
		}
		cur = res.Next
	}
	return nil, nil, diagnostics.NewUnknownVariable(refPos, name)
}

// nullForHint builds a Null carrying hint when hint is non-empty, or a
// typeless Null otherwise.
func nullForHint(hint ast.TypePath) constant.Constant {
	if hint.IsEmpty() {
		return constant.NewNull()
	}
	return constant.NewHintedNull(hint)
}

package constfold

import (
	"github.com/dmforge/constfold/internal/diagnostics"
	"github.com/dmforge/constfold/internal/objtree"
)

// EvaluateAll walks every class in tree, in the snapshot order
// tree.Classes() hands back, and resolves every const-evaluable variable
// each class itself declares. Failures are reported to sink; the walk
// never aborts on one.
func EvaluateAll(tree *objtree.Tree, sink diagnostics.Sink) {
	fl := NewFolder(tree, sink)
	for _, class := range tree.Classes() {
		for _, name := range class.VarNames() {
			decl, ok := class.OwnDeclaration(name)
			if !ok || !decl.IsConstEvaluable {
				continue
			}

			res, err := fl.resolveIdent(class, name, false)
			if err != nil {
				if d, ok := err.(*diagnostics.Diagnostic); ok {
					sink.Report(d)
					continue
				}
				panic(err)
			}
			if !res.Found {
				panic("constfold: declaration " + name + " on " + class.Path + " resolved past the root with no slot")
			}
		}
	}
}

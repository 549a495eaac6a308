// Package refs implements a "find references" symbol table over the class
// tree: for every variable declaration, every source location that
// references it, following the same static-type discipline the constant
// folder uses without being part of its evaluation path.
//
// Method slots carry no body to walk here — objtree.Class never models one
// — so this table only ever records variable-declaration symbols and the
// initializer expressions that reference them.
package refs

import (
	"github.com/dmforge/constfold/internal/objtree"
	"github.com/dmforge/constfold/internal/token"
)

// SymbolID identifies a variable declaration: the class that originates it
// plus its name. A declaration already has a stable identity, so this is
// used directly as the map key rather than allocating a numeric id.
type SymbolID struct {
	ClassPath string
	Name      string
}

// Table records, for every variable declaration, every source location
// that references it — including its own override sites, which count as
// uses (a variable with a single initializer has that initializer's
// location as its sole "reference").
type Table struct {
	uses map[SymbolID][]token.Position
}

// Build walks every class in tree twice: once to seed each declaration's
// own override sites, once to walk every initializer expression and record
// the identifiers and field-throughs it references.
func Build(tree *objtree.Tree) *Table {
	t := &Table{uses: make(map[SymbolID][]token.Position)}

	for _, c := range tree.Classes() {
		for _, name := range c.VarNames() {
			decl, ok := c.OwnDeclaration(name)
			if !ok {
				continue
			}
			slot, ok := tree.SlotOfMut(c, name)
			if !ok {
				continue
			}
			t.use(symbolOf(decl), slot.Location)
		}
	}

	for _, c := range tree.Classes() {
		for _, name := range c.VarNames() {
			slot, ok := tree.SlotOfMut(c, name)
			if !ok || slot.Expression == nil {
				continue
			}
			decl, _ := tree.DeclarationOf(c, name)
			w := newWalk(t, tree, c)
			w.visitExpression(slot.Expression, w.staticTypeOf(decl.DeclaredPath))
		}
	}

	return t
}

func symbolOf(decl *objtree.Declaration) SymbolID {
	return SymbolID{ClassPath: decl.Owner.Path, Name: decl.Name}
}

func (t *Table) use(id SymbolID, pos token.Position) {
	t.uses[id] = append(t.uses[id], pos)
}

// FindReferences returns every recorded location for symbol, in the order
// they were walked. A symbol nobody ever referenced returns nil.
func (t *Table) FindReferences(symbol SymbolID) []token.Position {
	return t.uses[symbol]
}

// Symbols returns every declaration symbol the table has any record of,
// in no particular order.
func (t *Table) Symbols() []SymbolID {
	out := make([]SymbolID, 0, len(t.uses))
	for id := range t.uses {
		out = append(out, id)
	}
	return out
}

package objtree

// Tree is the class tree facade: the only way the resolver and folder
// touch the inheritance graph.
type Tree struct {
	byPath  map[string]*Class
	classes []*Class // insertion order; Classes() hands out a snapshot of this
}

// NewTree creates an empty class tree.
func NewTree() *Tree {
	return &Tree{byPath: make(map[string]*Class)}
}

// AddClass creates a class at path with the given parent (nil for a root)
// and indexes it. Panics if path is already taken — the tree is built once,
// up front, by the fixture loader or a test, never concurrently with a
// fold.
func (t *Tree) AddClass(path string, parent *Class) *Class {
	if _, exists := t.byPath[path]; exists {
		panic("objtree: duplicate class path " + path)
	}
	c := newClass(path, parent)
	t.byPath[path] = c
	t.classes = append(t.classes, c)
	return c
}

// NodeByPath looks up a class by its absolute path.
func (t *Tree) NodeByPath(path string) (*Class, bool) {
	c, ok := t.byPath[path]
	return c, ok
}

// ParentOf returns ty's parent, or (nil, false) if ty is the root.
func (t *Tree) ParentOf(ty *Class) (*Class, bool) {
	if ty.Parent == nil {
		return nil, false
	}
	return ty.Parent, true
}

// DeclarationOf walks the inheritance chain starting at ty and returns the
// first declaration of name it finds.
func (t *Tree) DeclarationOf(ty *Class, name string) (*Declaration, bool) {
	for c := ty; c != nil; c = c.Parent {
		if d, ok := c.OwnDeclaration(name); ok {
			return d, true
		}
	}
	return nil, false
}

// SlotOfMut returns the override slot declared at exactly ty (not
// inherited). The returned slot may be mutated by the caller — this is the
// one place in the facade that hands out write access.
func (t *Tree) SlotOfMut(ty *Class, name string) (*VariableSlot, bool) {
	return ty.ownSlot(name)
}

// Classes returns a snapshot of every class node, in the order they were
// added. The driver iterates this snapshot — taken before the walk begins —
// rather than re-deriving it as it goes, so a tree mutation mid-fold (there
// is none here, but the contract holds) can't invalidate the walk.
func (t *Tree) Classes() []*Class {
	out := make([]*Class, len(t.classes))
	copy(out, t.classes)
	return out
}

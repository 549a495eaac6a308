// Package objtree implements the class tree and the facade the constant
// folder uses against it: node lookup by absolute path, parent-of,
// declaration inspection that walks the inheritance chain, and mutable
// access to the per-class variable override slot.
package objtree

import (
	"github.com/dmforge/constfold/internal/ast"
	"github.com/dmforge/constfold/internal/constant"
	"github.com/dmforge/constfold/internal/token"
)

// Class is one node of the inheritance tree. Its identity is the pointer
// itself — a stable opaque handle, never reallocated once created.
type Class struct {
	Parent       *Class
	vars         map[string]*VariableSlot
	declarations map[string]*Declaration
	varNames     []string // insertion order of this class's own var slots
	Path         string
}

// newClass allocates an empty class node. Unexported: classes are only
// created through Tree, which must also index them by path.
func newClass(path string, parent *Class) *Class {
	return &Class{
		Path:         path,
		Parent:       parent,
		vars:         make(map[string]*VariableSlot),
		declarations: make(map[string]*Declaration),
	}
}

// DeclareVar registers a variable originating on this class: its
// declaration metadata plus its (possibly empty) override slot. Used by
// the fixture loader and by tests building trees directly; not used by the
// folder itself, which only ever reads and mutates existing slots.
func (c *Class) DeclareVar(name string, decl *Declaration, slot *VariableSlot) {
	decl.Name = name
	decl.Owner = c
	c.declarations[name] = decl
	c.vars[name] = slot
	c.varNames = append(c.varNames, name)
}

// OwnDeclaration returns the declaration this class itself originates for
// name, if any — it does not walk the parent chain (see Tree.DeclarationOf
// for that).
func (c *Class) OwnDeclaration(name string) (*Declaration, bool) {
	d, ok := c.declarations[name]
	return d, ok
}

// ownSlot returns the override slot at exactly this class, if any.
func (c *Class) ownSlot(name string) (*VariableSlot, bool) {
	s, ok := c.vars[name]
	return s, ok
}

// VarNames returns the names this class itself declares or overrides, in
// declaration order.
func (c *Class) VarNames() []string {
	return c.varNames
}

// Declaration is the metadata attached to the class that first declares a
// variable name; inherited by subclasses unless shadowed.
type Declaration struct {
	Owner            *Class
	Name             string
	DeclaredPath     ast.TypePath
	IsStatic         bool
	IsConstEvaluable bool
}

// VariableSlot is the per-(class,name) storage holding the initializer
// expression and, once computed, the reduced value. A slot with no override
// at a given class simply doesn't exist there — the override is only
// created when the class itself declares or re-declares the variable.
type VariableSlot struct {
	Expression     ast.Expression
	Constant       constant.Constant
	Location       token.Position
	BeingEvaluated bool
}

// HasConstant reports whether the slot has already been reduced.
func (s *VariableSlot) HasConstant() bool {
	return s.Constant != nil
}

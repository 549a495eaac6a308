package ast

import (
	"strings"

	"github.com/dmforge/constfold/internal/token"
)

// PrefabVar is one `name = value` override inside a prefab literal, kept in
// source order — prefab overrides are an insertion-ordered mapping, not a
// sorted one.
type PrefabVar struct {
	Value Expression
	Name  string
}

// Prefab is a type path decorated with field overrides, e.g.
// `/obj/item{name = "Wrench"}`.
type Prefab struct {
	Path  TypePath
	Vars  []PrefabVar
	Token token.Position
}

func (p *Prefab) Pos() token.Position { return p.Token }
func (p *Prefab) String() string {
	if len(p.Vars) == 0 {
		return p.Path.String()
	}
	parts := make([]string, len(p.Vars))
	for i, v := range p.Vars {
		parts[i] = v.Name + " = " + v.Value.String()
	}
	return p.Path.String() + "{" + strings.Join(parts, "; ") + "}"
}

// NewType is what follows `new` in a New term: nothing (implicit, driven by
// the declaration's type hint), a bare prefab, or a bare identifier (which
// the folder always rejects).
type NewType interface {
	newTypeNode()
	String() string
}

// ImplicitNewType is a bare `new` with no explicit type.
type ImplicitNewType struct{}

func (ImplicitNewType) newTypeNode()   {}
func (ImplicitNewType) String() string { return "" }

// PrefabNewType is `new /path{...}`.
type PrefabNewType struct {
	Prefab *Prefab
}

func (PrefabNewType) newTypeNode()     {}
func (t PrefabNewType) String() string { return t.Prefab.String() }

// IdentNewType is `new SomeIdent(...)`. Always rejected by the folder.
type IdentNewType struct {
	Name string
}

func (IdentNewType) newTypeNode()    {}
func (t IdentNewType) String() string { return t.Name }

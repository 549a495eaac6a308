// Package fixture builds class trees for testing and CLI experimentation
// from a declarative YAML document, standing in for the parser and
// object-tree builder this core doesn't implement. A fixture describes
// already-parsed classes, declarations and initializer expressions
// directly — it never tokenizes source text.
package fixture

// Doc is the top-level shape of a fixture file: a flat list of classes,
// each naming its parent by path. Classes must appear after their parent
// (root classes have no parent field) — fixtures are hand-authored test
// data, not general input, so this ordering constraint is acceptable.
type Doc struct {
	Classes []ClassDoc `yaml:"classes"`
}

// ClassDoc is one class node and the variables it declares or overrides.
type ClassDoc struct {
	Path   string   `yaml:"path"`
	Parent string   `yaml:"parent,omitempty"`
	Vars   []VarDoc `yaml:"vars,omitempty"`
}

// VarDoc is one variable declared (or re-declared) on a class. Line/Column
// default to zero when omitted; tests that exercise diagnostic positions
// should set them explicitly.
type VarDoc struct {
	Expr     *ExprDoc `yaml:"expr,omitempty"`
	Name     string   `yaml:"name"`
	TypeHint []string `yaml:"type_hint,omitempty"`
	Line     int      `yaml:"line,omitempty"`
	Column   int      `yaml:"column,omitempty"`
	Static   bool     `yaml:"static,omitempty"`
	Const    bool     `yaml:"const,omitempty"`
}

// ExprDoc is a tagged union of expression shapes: exactly one field should
// be set. This mirrors the algebraic Expression/Term shapes in internal/ast
// closely enough that decoding is a direct, mostly mechanical translation.
type ExprDoc struct {
	Int      *int32        `yaml:"int,omitempty"`
	Float    *float32      `yaml:"float,omitempty"`
	String   *string       `yaml:"string,omitempty"`
	Resource *string       `yaml:"resource,omitempty"`
	Ident    *string       `yaml:"ident,omitempty"`
	Unary    *UnaryDoc     `yaml:"unary,omitempty"`
	Binary   *BinaryDoc    `yaml:"binary,omitempty"`
	Assign   *AssignDoc    `yaml:"assign,omitempty"`
	Call     *CallDoc      `yaml:"call,omitempty"`
	Prefab   *PrefabDoc    `yaml:"prefab,omitempty"`
	New      *NewDoc       `yaml:"new,omitempty"`
	Field    *FieldDoc     `yaml:"field,omitempty"`
	Paren    *ExprDoc      `yaml:"paren,omitempty"`
	List     []ListElemDoc `yaml:"list,omitempty"`
	Null     bool          `yaml:"null,omitempty"`
}

// UnaryDoc is `Op Operand`.
type UnaryDoc struct {
	Operand *ExprDoc `yaml:"operand"`
	Op      string   `yaml:"op"`
}

// BinaryDoc is `LHS Op RHS`.
type BinaryDoc struct {
	LHS *ExprDoc `yaml:"lhs"`
	RHS *ExprDoc `yaml:"rhs"`
	Op  string   `yaml:"op"`
}

// AssignDoc is an augmented-assignment shape, always folded to a rejection.
type AssignDoc struct {
	LHS *ExprDoc `yaml:"lhs"`
	RHS *ExprDoc `yaml:"rhs"`
	Op  string   `yaml:"op"`
}

// CallDoc is `Name(Args...)`.
type CallDoc struct {
	Name string    `yaml:"name"`
	Args []ExprDoc `yaml:"args,omitempty"`
}

// PrefabDoc is a type path with override variables.
type PrefabDoc struct {
	Path []string        `yaml:"path"`
	Vars []PrefabVarDoc  `yaml:"vars,omitempty"`
}

// PrefabVarDoc is one `name = value` override.
type PrefabVarDoc struct {
	Value ExprDoc `yaml:"value"`
	Name  string  `yaml:"name"`
}

// NewDoc is `new Type(Args...)`. At most one of Prefab/Ident should be set;
// neither set means an implicit (declaration-driven) type. Args absent
// (nil) means no argument list was written at all, distinct from an
// explicit empty one.
type NewDoc struct {
	Prefab *PrefabDoc `yaml:"prefab,omitempty"`
	Ident  string     `yaml:"ident,omitempty"`
	Args   []ExprDoc  `yaml:"args,omitempty"`
}

// FieldDoc is `Base.Name`, the only follow the folder ever accepts (and
// only when Base reduces to a type-hinted null).
type FieldDoc struct {
	Base *ExprDoc `yaml:"base"`
	Name string   `yaml:"name"`
}

// ListElemDoc is one `key` or `key = value` list entry.
type ListElemDoc struct {
	Key   ExprDoc  `yaml:"key"`
	Value *ExprDoc `yaml:"value,omitempty"`
}

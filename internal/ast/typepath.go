// Package ast defines the parse-tree shapes the constant folder consumes:
// expressions, terms, operators and type paths. Building these from source
// text is a parser's job and out of scope here — this package only fixes
// the contract a parser hands the folder.
package ast

import "strings"

// PathSegment is one dotted/slashed component of a type path, together with
// whatever prefix character preceded it in source ("/", ":", "." or none).
// The prefix is preserved for fidelity but carries no meaning once the path
// is joined (see Join).
type PathSegment struct {
	Name   string
	Prefix byte
}

// TypePath is a type-name hint attached to a declaration, e.g. the "list",
// "datum/thing" or "static/const/M" path pieces that precede a variable's
// name in a declaration.
type TypePath []PathSegment

// Join rebuilds the absolute path by prefixing every segment's name with a
// leading slash, discarding whatever prefix character it originally carried.
func (p TypePath) Join() string {
	var sb strings.Builder
	for _, seg := range p {
		sb.WriteByte('/')
		sb.WriteString(seg.Name)
	}
	return sb.String()
}

// String renders the path using its original prefixes, for diagnostics.
func (p TypePath) String() string {
	var sb strings.Builder
	for _, seg := range p {
		if seg.Prefix != 0 {
			sb.WriteByte(seg.Prefix)
		}
		sb.WriteString(seg.Name)
	}
	return sb.String()
}

// IsEmpty reports whether the path has no segments.
func (p TypePath) IsEmpty() bool {
	return len(p) == 0
}

// HasHead reports whether the path's first segment's name equals head.
func (p TypePath) HasHead(head string) bool {
	return len(p) > 0 && p[0].Name == head
}

// Tail returns the path with its first segment removed.
func (p TypePath) Tail() TypePath {
	if len(p) == 0 {
		return nil
	}
	return p[1:]
}

// NewTypePath builds a TypePath from bare segment names (no prefixes),
// mainly useful for tests and fixture loading.
func NewTypePath(names ...string) TypePath {
	segs := make(TypePath, len(names))
	for i, n := range names {
		segs[i] = PathSegment{Name: n}
	}
	return segs
}

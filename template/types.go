// Package template defines the StructureDef schema tree and its value types.
package template

import (
	"sort"

	"github.com/avoronkov/gridmdl/object"
)

// MaxVarDots bounds how many irregular single-cell child slots a template
// keeps before collapsing the whole child list into one variable.
const MaxVarDots = 5

// Value is one schema slot: a concrete integer, or Unknown when the
// instances disagree.
type Value struct {
	Val     int
	Unknown bool
}

// Known wraps a concrete value.
func Known(v int) Value { return Value{Val: v} }

// unknown marks a varying slot.
var unknown = Value{Unknown: true}

// propDefault lists the scalar property registry with per-property
// defaults; values equal to their default are omitted from the schema.
var propDefaults = []struct {
	Name    string
	Default int
	Get     func(o *object.Object) int
}{
	{"row", 0, func(o *object.Object) int { return o.Row() }},
	{"col", 0, func(o *object.Object) int { return o.Col() }},
	{"color", object.NullColor, func(o *object.Object) int { return o.Color() }},
}

// StructureDef mirrors an Object's shape: a property map (scalar names and
// single-letter generator codes) plus ordered child schemas.
type StructureDef struct {
	Props    map[string]Value
	Children []*StructureDef
}

// newStructure returns an empty schema node.
func newStructure() *StructureDef {
	return &StructureDef{Props: map[string]Value{}}
}

// Clone deep-copies the schema tree.
func (s *StructureDef) Clone() *StructureDef {
	out := newStructure()
	for k, v := range s.Props {
		out.Props[k] = v
	}
	out.Children = make([]*StructureDef, len(s.Children))
	for i, k := range s.Children {
		out.Children[i] = k.Clone()
	}

	return out
}

// Binding assigns one template slot: a non-nil Object replaces the whole
// subtree at Path, otherwise Value overwrites the property named by Path.
type Binding struct {
	Path   object.Path
	Object *object.Object
	Value  int
}

// sortBindings orders bindings parent-before-child for repeatable
// application.
func sortBindings(bindings []Binding) []Binding {
	out := append([]Binding(nil), bindings...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Path.Compare(out[j].Path) < 0
	})

	return out
}

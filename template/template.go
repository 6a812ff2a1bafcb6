package template

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/avoronkov/gridmdl/object"
)

// Template is a parameterized output schema: the common structure across a
// set of instances plus the set of paths left variable.
type Template struct {
	Structure *StructureDef

	variables map[string]object.Path
	log       *slog.Logger
}

// FromOutputs diffs the given positionally aligned Objects into a Template.
// Instances are assumed to play the same semantic role index by index.
func FromOutputs(objs []*object.Object) *Template {
	structure, variables := recursiveCompare(objs, nil)

	return &Template{
		Structure: structure,
		variables: variables,
		log:       slog.Default(),
	}
}

// Props measures template complexity as the number of variables left to
// fill; a good template minimizes it.
func (t *Template) Props() int { return len(t.variables) }

// Variables returns every unresolved path, sorted.
func (t *Template) Variables() []object.Path {
	out := make([]object.Path, 0, len(t.variables))
	for _, p := range t.variables {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	return out
}

// String renders the frame and its variables for inspection.
func (t *Template) String() string {
	var sb strings.Builder
	sb.WriteString("Frame:\n")
	t.displayNode(&sb, t.Structure, nil)
	sb.WriteString("Variables:\n")
	for _, v := range t.Variables() {
		fmt.Fprintf(&sb, "  %s\n", v)
	}

	return sb.String()
}

func (t *Template) displayNode(sb *strings.Builder, node *StructureDef, base object.BasePath) {
	keys := make([]string, 0, len(node.Props))
	for k := range node.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		v := node.Props[k]
		if v.Unknown {
			args = append(args, k+" = ?")
		} else {
			args = append(args, fmt.Sprintf("%s = %d", k, v.Val))
		}
	}
	fmt.Fprintf(sb, "%s%s (%s)\n", strings.Repeat("  ", len(base)+1),
		object.Path{Base: base}.Key(), strings.Join(args, ", "))
	for idx, kid := range node.Children {
		t.displayNode(sb, kid, base.Child(idx))
	}
}

// recursiveCompare walks the instances in lockstep, recording shared
// properties as constants and disagreements as variables. Child positions
// zip to the shortest child list; a position is kept only while the
// instances stay structurally compatible.
func recursiveCompare(objs []*object.Object, base object.BasePath) (*StructureDef, map[string]object.Path) {
	structure := newStructure()
	variables := map[string]object.Path{}

	common, varProps := compareProperties(objs)
	structure.Props = common
	for _, prop := range varProps {
		p := object.Path{Base: base.Clone(), Property: prop}
		variables[p.Key()] = p
	}

	minKids := -1
	for _, o := range objs {
		if n := len(o.Children()); minKids < 0 || n < minKids {
			minKids = n
		}
	}

	var childStructures []*StructureDef
	childVariables := map[string]object.Path{}
	dotCt := 0
	childMatch := true
	for idx := 0; idx < minKids; idx++ {
		group := make([]*object.Object, len(objs))
		for i, o := range objs {
			group[i] = o.Children()[idx]
		}
		kidStructure, kidVariables := recursiveCompare(group, base.Child(idx))
		childStructures = append(childStructures, kidStructure)
		for k, v := range kidVariables {
			childVariables[k] = v
		}
		if !allEqual(group) {
			childMatch = false
		}
		for _, kid := range group {
			if kid.Category() == "Dot" {
				dotCt++
				break
			}
		}
	}
	// Keep per-child substructure only under bounded irregularity; too many
	// loose dots collapse into a single "regenerate children" variable.
	if len(childStructures) > 0 || len(childVariables) > 0 {
		if dotCt <= MaxVarDots || childMatch {
			structure.Children = childStructures
			for k, v := range childVariables {
				variables[k] = v
			}
		} else {
			p := object.Path{Base: base.Clone()}
			variables[p.Key()] = p
		}
	}

	return structure, variables
}

// compareProperties diffs the scalar property registry and the generator
// code alphabet across the instances at one node.
func compareProperties(objs []*object.Object) (map[string]Value, []string) {
	props := map[string]Value{}
	var vars []string

	for _, pd := range propDefaults {
		if v, same := commonValue(objs, pd.Get); same {
			if v != pd.Default {
				props[pd.Name] = Known(v)
			}
		} else {
			props[pd.Name] = unknown
			vars = append(vars, pd.Name)
		}
	}
	for _, code := range object.CodeKeys {
		code := code
		get := func(o *object.Object) int { return o.Code(code) }
		if v, same := commonValue(objs, get); same {
			if v != 0 {
				props[code] = Known(v)
			}
		} else {
			props[code] = unknown
			vars = append(vars, code)
		}
	}

	return props, vars
}

// commonValue reports the shared value of get across objs.
func commonValue(objs []*object.Object, get func(*object.Object) int) (int, bool) {
	if len(objs) == 0 {
		return 0, true
	}
	v := get(objs[0])
	for _, o := range objs[1:] {
		if get(o) != v {
			return 0, false
		}
	}

	return v, true
}

// allEqual reports structural equality of every object to the first.
func allEqual(objs []*object.Object) bool {
	for _, o := range objs[1:] {
		if !objs[0].Equal(o) {
			return false
		}
	}

	return true
}

// getBase walks the schema along a tree path. An out-of-range index logs a
// warning and returns the last node reached; callers treat the degraded
// result as recoverable.
func (t *Template) getBase(base object.BasePath, root *StructureDef) *StructureDef {
	node := root
	for _, idx := range base {
		if idx < 0 || idx >= len(node.Children) {
			t.log.Warn("cannot access base path", "path", object.Path{Base: base}.Key())

			return node
		}
		node = node.Children[idx]
	}

	return node
}

// Value reads one property slot, falling back to the property default
// (0 for generator codes) when unset; ok is false for Unknown slots.
func (t *Template) Value(path object.Path) (int, bool) {
	node := t.getBase(path.Base, t.Structure)
	if v, present := node.Props[path.Property]; present {
		return v.Val, !v.Unknown
	}
	for _, pd := range propDefaults {
		if pd.Name == path.Property {
			return pd.Default, true
		}
	}

	return 0, true
}

// applyObject substitutes the subtree at path with the schema of a concrete
// object; an empty path replaces the whole frame.
func (t *Template) applyObject(frame *StructureDef, path object.Path, obj *object.Object) *StructureDef {
	objDef, _ := recursiveCompare([]*object.Object{obj}, nil)
	if len(path.Base) == 0 {
		return objDef
	}
	target := t.getBase(path.Base[:len(path.Base)-1], frame)
	last := path.Base[len(path.Base)-1]
	if last < 0 || last >= len(target.Children) {
		t.log.Warn("object binding outside frame", "path", path.Key())

		return frame
	}
	target.Children[last] = objDef

	return frame
}

// applyVariable overwrites one property slot.
func (t *Template) applyVariable(frame *StructureDef, path object.Path, value int) {
	if path.Property == "" {
		return
	}
	t.getBase(path.Base, frame).Props[path.Property] = Known(value)
}

// CreateOutput applies the bindings onto a copy of the schema in
// path-sorted order (parents before descendants) and materializes the
// resulting Object.
func (t *Template) CreateOutput(bindings []Binding) *object.Object {
	frame := t.Structure.Clone()
	for _, b := range sortBindings(bindings) {
		if b.Object != nil {
			t.log.Debug("inserting object", "path", b.Path.Key(), "object", b.Object.String())
			frame = t.applyObject(frame, b.Path, b.Object)
		} else {
			t.log.Debug("inserting value", "path", b.Path.Key(), "value", b.Value)
			t.applyVariable(frame, b.Path, b.Value)
		}
	}

	return Generate(frame)
}

// Generate rebuilds an Object bottom-up from a schema: multi-letter known
// properties feed the constructor, single-letter nonzero values become
// generator codes, Unknown slots are skipped.
func Generate(structure *StructureDef) *object.Object {
	children := make([]*object.Object, len(structure.Children))
	for i, kid := range structure.Children {
		children[i] = Generate(kid)
	}

	row, col, color := 0, 0, object.NullColor
	codes := object.Codes{}
	for key, v := range structure.Props {
		if v.Unknown {
			continue
		}
		switch {
		case key == "row":
			row = v.Val
		case key == "col":
			col = v.Val
		case key == "color":
			color = v.Val
		case len(key) == 1 && v.Val != 0:
			codes[key] = v.Val
		}
	}

	var opts []object.Option
	if len(children) > 0 {
		opts = append(opts, object.WithChildren(children...))
	}
	if len(codes) > 0 {
		opts = append(opts, object.WithCodes(codes))
	}

	return object.New(row, col, color, opts...)
}

package template_test

import (
	"testing"

	"github.com/avoronkov/gridmdl/object"
	"github.com/avoronkov/gridmdl/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromOutputs_ConstantsAndVariables diffs two leaves that agree on row
// and color but not column: the disagreement becomes the only variable.
func TestFromOutputs_ConstantsAndVariables(t *testing.T) {
	tpl := template.FromOutputs([]*object.Object{
		object.New(1, 2, 3),
		object.New(1, 5, 3),
	})

	assert.Equal(t, 1, tpl.Props())
	vars := tpl.Variables()
	require.Len(t, vars, 1)
	assert.Equal(t, "root/col", vars[0].Key())

	v, ok := tpl.Value(object.Path{Property: "row"})
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = tpl.Value(object.Path{Property: "col"})
	assert.False(t, ok, "a varying slot has no settled value")

	v, ok = tpl.Value(object.Path{Property: "color"})
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

// TestFromOutputs_ChildVariable keeps matching child structure and localizes
// the disagreement to one child property path.
func TestFromOutputs_ChildVariable(t *testing.T) {
	make2 := func(secondColor int) *object.Object {
		return object.New(0, 0, object.NullColor, object.WithChildren(
			object.New(0, 0, 2),
			object.New(1, 1, secondColor),
		))
	}
	tpl := template.FromOutputs([]*object.Object{make2(3), make2(6)})

	assert.Equal(t, 1, tpl.Props())
	vars := tpl.Variables()
	require.Len(t, vars, 1)
	assert.Equal(t, "1/color", vars[0].Key())
	assert.Len(t, tpl.Structure.Children, 2)
}

// TestFromOutputs_DotCollapse verifies bounded irregularity: too many
// disagreeing single-cell children collapse into one subtree variable.
func TestFromOutputs_DotCollapse(t *testing.T) {
	scatter := func(color int) *object.Object {
		kids := make([]*object.Object, template.MaxVarDots+1)
		for i := range kids {
			kids[i] = object.New(i, 0, color)
		}

		return object.New(0, 0, object.NullColor, object.WithChildren(kids...))
	}
	tpl := template.FromOutputs([]*object.Object{scatter(1), scatter(2)})

	vars := tpl.Variables()
	require.Len(t, vars, 1)
	assert.Equal(t, "root", vars[0].Key(), "the whole child list is regenerated")
	assert.Empty(t, tpl.Structure.Children)
}

// TestFromOutputs_IdenticalChildrenKept verifies the counter-case: fully
// matching children survive regardless of how many dots they contain.
func TestFromOutputs_IdenticalChildrenKept(t *testing.T) {
	build := func() *object.Object {
		kids := make([]*object.Object, template.MaxVarDots+2)
		for i := range kids {
			kids[i] = object.New(i, i, 4)
		}

		return object.New(0, 0, object.NullColor, object.WithChildren(kids...))
	}
	tpl := template.FromOutputs([]*object.Object{build(), build()})

	assert.Zero(t, tpl.Props())
	assert.Len(t, tpl.Structure.Children, template.MaxVarDots+2)
}

// TestCreateOutput_ValueBinding fills the single variable and regenerates a
// concrete object.
func TestCreateOutput_ValueBinding(t *testing.T) {
	tpl := template.FromOutputs([]*object.Object{
		object.New(1, 2, 3),
		object.New(1, 5, 3),
	})

	out := tpl.CreateOutput([]template.Binding{
		{Path: object.Path{Property: "col"}, Value: 7},
	})
	require.NotNil(t, out)
	assert.True(t, out.Equal(object.New(1, 7, 3)))
}

// TestCreateOutput_ObjectBinding replaces a whole child subtree with a
// concrete object before regeneration.
func TestCreateOutput_ObjectBinding(t *testing.T) {
	make2 := func(secondColor int) *object.Object {
		return object.New(0, 0, object.NullColor, object.WithChildren(
			object.New(0, 0, 2),
			object.New(1, 1, secondColor),
		))
	}
	tpl := template.FromOutputs([]*object.Object{make2(3), make2(6)})

	out := tpl.CreateOutput([]template.Binding{
		{Path: object.Path{Base: object.BasePath{1}}, Object: object.New(4, 4, 8)},
	})
	require.NotNil(t, out)
	kids := out.Children()
	require.Len(t, kids, 2)
	assert.True(t, kids[0].Equal(object.New(0, 0, 2)))
	assert.True(t, kids[1].Equal(object.New(4, 4, 8)))
}

// TestGenerate_RestoresGeneratorCodes round-trips a generated shape through
// the schema: single-letter slots come back as generator codes.
func TestGenerate_RestoresGeneratorCodes(t *testing.T) {
	gen := object.New(0, 0, 4, object.WithCodes(object.Codes{"C": 4}))
	tpl := template.FromOutputs([]*object.Object{gen})

	out := template.Generate(tpl.Structure)
	require.NotNil(t, out)
	assert.True(t, out.Generating())
	assert.Equal(t, 4, out.Code("C"))
	assert.True(t, out.Equal(gen))
}

// TestValue_DegradedPath verifies lookups past the schema fall back to the
// last reachable node instead of failing.
func TestValue_DegradedPath(t *testing.T) {
	tpl := template.FromOutputs([]*object.Object{object.New(0, 0, 4)})

	v, ok := tpl.Value(object.Path{Base: object.BasePath{3}, Property: "color"})
	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

// TestValue_DefaultFallback verifies unset properties read as their
// registry defaults.
func TestValue_DefaultFallback(t *testing.T) {
	tpl := template.FromOutputs([]*object.Object{object.New(0, 0, 4)})

	v, ok := tpl.Value(object.Path{Property: "row"})
	assert.True(t, ok)
	assert.Zero(t, v, "rows at the default are omitted from the schema")
}

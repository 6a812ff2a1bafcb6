// Package object defines core types, options, and sentinel errors
// for the object subpackage of github.com/avoronkov/gridmdl.
package object

import (
	"errors"
)

// Sentinel errors for object construction.
var (
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("object: input grid must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("object: all rows must have the same length")
	// ErrColorRange indicates a cell value outside the color alphabet.
	ErrColorRange = errors.New("object: cell value outside [0, NColors)")
)

// Color alphabet. Values 0..9 are real colors; NullColor marks transparent
// cells and NegativeColor marks cutouts. Both sentinels count toward NColors.
const (
	NColors       = 12
	NullColor     = 10
	NegativeColor = 11
)

// Grid size bounds for raw puzzle boards.
const (
	MaxRows = 30
	MaxCols = 30
)

// Entropic weights used by Props: a lone cell costs DotProps, any container
// or generated shape costs NonDotProps before its parameters.
const (
	DotProps    = 1
	NonDotProps = 2
)

// Generator code alphabet. R and V add vertical copies, C and H add
// horizontal copies; a value of n expands an axis (n+1)-fold. R/C are
// written by decomposition, V/H by the scale transforms; expansion
// multiplies the pairs so either spelling tiles the same way.
var CodeKeys = []string{"C", "H", "R", "V"}

// Codes maps a generator code letter to its repeat count.
type Codes map[string]int

// Clone returns a copy of the code map; nil stays nil.
func (c Codes) Clone() Codes {
	if c == nil {
		return nil
	}
	out := make(Codes, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// Point identifies one grid cell by row and column.
type Point struct {
	Row, Col int
}

// ColorCount pairs a color with the number of cells carrying it.
type ColorCount struct {
	Color, Count int
}

// Option configures an Object at construction time.
type Option func(*Object)

// WithChildren attaches ordered child Objects; later children occlude
// earlier ones when the grid is materialized.
func WithChildren(kids ...*Object) Option {
	return func(o *Object) {
		o.children = append([]*Object(nil), kids...)
	}
}

// WithCodes attaches a generator parameterization. The map is copied.
// An Object constructed with codes (even empty) is considered generating.
func WithCodes(codes Codes) Option {
	return func(o *Object) {
		if codes == nil {
			codes = Codes{}
		}
		o.codes = codes.Clone()
	}
}

// AsFinished marks the Object as already decomposed once; the search engine
// only descends into children of finished Objects.
func AsFinished() Option {
	return func(o *Object) {
		o.finished = true
	}
}

// Package board defines the Board options, the Process plugin contract,
// and sentinel errors for grid intake.
package board

import (
	"errors"
	"log/slog"

	"github.com/avoronkov/gridmdl/object"
)

// Sentinel errors for board construction. Grid shape and color validation
// sentinels are shared with the object package.
var (
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = object.ErrEmptyGrid
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = object.ErrRaggedGrid
	// ErrColorRange indicates a cell value outside the color alphabet.
	ErrColorRange = object.ErrColorRange
	// ErrGridTooLarge indicates a grid exceeding MaxRows×MaxCols.
	ErrGridTooLarge = errors.New("board: grid exceeds maximum dimensions")
)

// Default search bounds: candidates kept per round and maximum rounds.
const (
	Batch   = 10
	MaxIter = 10
)

// Process is one pluggable decomposition strategy: Test guards
// applicability, Run produces one candidate re-expression or nil when the
// object cannot be simplified this way.
type Process interface {
	Name() string
	Test(o *object.Object) bool
	Run(o *object.Object) *object.Object
}

// DefaultProcesses returns the standard ordered strategy list: base
// rectangle extraction, connected-component grouping, color separation.
func DefaultProcesses() []Process {
	return []Process{MakeBase{}, ConnectObjects{}, SeparateColor{}}
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithName labels the board in log output.
func WithName(name string) Option {
	return func(b *Board) { b.name = name }
}

// WithProcesses substitutes the decomposition strategy list, tried in the
// given order for every candidate.
func WithProcesses(processes ...Process) Option {
	return func(b *Board) {
		b.processes = append([]Process(nil), processes...)
	}
}

// WithLogger routes progress logging; defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(b *Board) {
		if log != nil {
			b.log = log
		}
	}
}

package scene

import (
	"log/slog"

	"github.com/avoronkov/gridmdl/board"
	"github.com/avoronkov/gridmdl/delta"
	"github.com/avoronkov/gridmdl/object"
)

// Scene pairs the input and output grids of one puzzle case.
type Scene struct {
	input  *board.Board
	output *board.Board

	dist int
	path []*delta.ObjectDelta

	log *slog.Logger
}

// Option adjusts a Scene at construction time.
type Option func(*Scene)

// WithLogger routes scene progress to a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scene) { s.log = log }
}

// New builds a Scene over the raw input and output grids.
// Returns the first grid validation error encountered.
func New(input, output [][]int, opts ...Option) (*Scene, error) {
	in, err := board.New(input, board.WithName("input"))
	if err != nil {
		return nil, err
	}
	out, err := board.New(output, board.WithName("output"))
	if err != nil {
		return nil, err
	}
	s := &Scene{
		input:  in,
		output: out,
		dist:   -1,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Input returns the input board.
func (s *Scene) Input() *board.Board { return s.input }

// Output returns the output board.
func (s *Scene) Output() *board.Board { return s.output }

// Decompose settles both boards' representations.
func (s *Scene) Decompose(batch, maxIter int) {
	s.input.Decompose(batch, maxIter)
	s.log.Info("input decomposed", "props", s.input.Rep().Props())
	s.output.Decompose(batch, maxIter)
	s.log.Info("output decomposed", "props", s.output.Rep().Props())
}

// Props sums the complexity of both settled representations.
func (s *Scene) Props() int {
	return s.input.Rep().Props() + s.output.Rep().Props()
}

// PPP is properties per point: total complexity relative to the number of
// occupied cells on both boards. Lower is more compressed.
func (s *Scene) PPP() float64 {
	points := s.input.Rep().Size() + s.output.Rep().Size()
	if points == 0 {
		return 0
	}

	return float64(s.Props()) / float64(points)
}

// Dist returns the transformational distance established by Match, or -1
// when Match has not run or found no match.
func (s *Scene) Dist() int { return s.dist }

// Path returns the deltas that recreate the output from the input inventory.
func (s *Scene) Path() []*delta.ObjectDelta { return s.path }

// Match recreates the output representation from the input inventory: the
// settled input representation and every node below it. The resulting
// distance and delta path are retained on the scene.
func (s *Scene) Match() {
	inventory := s.input.Rep().Nodes()
	s.dist, s.path = s.recreate(s.output.Rep(), inventory)
	for _, d := range s.path {
		s.log.Debug("matched", "delta", d.String())
	}
	s.log.Info("scene matched", "dist", s.dist, "deltas", len(s.path))
}

// recreate explains obj from the inventory, keeping whichever is cheaper:
// the best whole-object delta or the sum of its children's recreations.
// A distance of -1 means the subtree cannot be explained at all.
func (s *Scene) recreate(obj *object.Object, inventory []*object.Object) (int, []*delta.ObjectDelta) {
	var (
		wholeDist = -1
		whole     []*delta.ObjectDelta
	)
	if d := delta.FindClosest(obj, inventory, -1); d != nil && d.Comparable() {
		wholeDist = d.Dist
		whole = []*delta.ObjectDelta{d}
	}

	kids := obj.Children()
	if len(kids) == 0 {
		return wholeDist, whole
	}

	partsDist := 0
	var parts []*delta.ObjectDelta
	for _, kid := range kids {
		kidDist, kidPath := s.recreate(kid, inventory)
		if kidDist < 0 {
			partsDist = -1
			break
		}
		partsDist += kidDist
		parts = append(parts, kidPath...)
	}

	switch {
	case partsDist < 0:
		return wholeDist, whole
	case wholeDist < 0 || partsDist < wholeDist:
		return partsDist, parts
	default:
		return wholeDist, whole
	}
}

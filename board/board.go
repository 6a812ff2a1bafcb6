package board

import (
	"log/slog"

	"github.com/avoronkov/gridmdl/object"
)

// Board holds one grid's evolving object representation and the search
// frontier used to improve it. A Board is exclusively owned: only its own
// methods touch the queue and bank, and it settles once Decompose returns.
type Board struct {
	name      string
	rep       *object.Object
	processes []Process

	procQ []*object.Object // FIFO: append right, pop left
	bank  []*object.Object // terminal candidates

	log *slog.Logger
}

// New converts a raw grid of color values into a Board seeded with its
// literal cell-by-cell representation.
// Returns ErrEmptyGrid, ErrRaggedGrid, ErrColorRange or ErrGridTooLarge.
// Complexity: O(W×H).
func New(data [][]int, opts ...Option) (*Board, error) {
	g := object.Grid(data)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Rows() > object.MaxRows || g.Cols() > object.MaxCols {
		return nil, ErrGridTooLarge
	}
	rep, err := object.FromGrid(g.Clone())
	if err != nil {
		return nil, err
	}
	b := &Board{
		rep:       rep,
		processes: DefaultProcesses(),
		procQ:     []*object.Object{rep},
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Rep returns the current (after Decompose: settled) representation.
func (b *Board) Rep() *object.Object { return b.rep }

// Decompose searches for the most compact representation, running up to
// maxIter rounds of batch decomposition and stopping early once the
// processing queue drains. Non-positive arguments fall back to the
// defaults. The representation's Props never increases across rounds.
func (b *Board) Decompose(batch, maxIter int) {
	if batch <= 0 {
		batch = Batch
	}
	if maxIter <= 0 {
		maxIter = MaxIter
	}
	for ct := 0; ct < maxIter; ct++ {
		b.log.Debug("begin decomposition round", "board", b.name, "round", ct+1, "queued", len(b.procQ))
		b.batchDecomposition(batch)
		b.log.Info("decomposition progress", "board", b.name, "round", ct+1, "props", b.rep.Props())
		if len(b.procQ) == 0 {
			b.log.Info("ending decomposition: empty processing queue", "board", b.name)
			break
		}
	}
	b.selectRepresentation()
}

// batchDecomposition pops up to batch candidates from the queue front,
// re-expresses each, banks the terminal ones, and re-evaluates the
// incumbent after every item.
func (b *Board) batchDecomposition(batch int) {
	ct := 0
	for len(b.procQ) > 0 && ct < batch {
		ct++
		obj := b.procQ[0]
		b.procQ = b.procQ[1:]
		newObjs := b.decomposition(obj)
		if len(newObjs) == 0 {
			b.bank = append(b.bank, obj.Flatten())
		}
		b.procQ = append(b.procQ, newObjs...)
		b.log.Debug("batch item processed", "board", b.name, "item", ct,
			"queued", len(b.procQ), "banked", len(b.bank))
		b.selectRepresentation()
	}
}

// decomposition produces candidate re-expressions of obj. Leaves are
// already minimal. Finished objects descend into children in reverse order
// (later-drawn children occlude earlier ones), refining exactly one child
// slot per candidate and stopping at the first child that yields anything.
// Everything else runs through the process list.
func (b *Board) decomposition(obj *object.Object) []*object.Object {
	kids := obj.Children()
	if len(kids) == 0 {
		return nil
	}
	if obj.Finished() {
		var decompositions []*object.Object
		for revIdx := range kids {
			idx := len(kids) - 1 - revIdx
			childCandidates := b.decomposition(kids[idx])
			if len(childCandidates) == 0 {
				continue
			}
			// Each refined child needs a new top-level candidate
			for _, newChild := range childCandidates {
				decompositions = append(decompositions, obj.ReplaceChild(idx, newChild))
			}

			return decompositions
		}

		return nil
	}

	return b.generateCandidates(obj)
}

// generateCandidates tries every registered process in fixed order, keeping
// each run's output when the guard passes. A process contributing nothing
// is skipped, not an error.
func (b *Board) generateCandidates(obj *object.Object) []*object.Object {
	var candidates []*object.Object
	for _, process := range b.processes {
		if !process.Test(obj) {
			continue
		}
		if candidate := process.Run(obj); candidate != nil {
			b.log.Debug("candidate produced", "board", b.name,
				"process", process.Name(), "candidate", candidate.String())
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// selectRepresentation scans bank and queue for a strictly cheaper
// candidate and flattens it into the incumbent. Monotonic best-so-far:
// dominated candidates stay on the frontier, they just stop being the
// reported answer.
func (b *Board) selectRepresentation() {
	best := b.rep.Props()
	for _, obj := range b.bank {
		if obj.Props() < best {
			best = obj.Props()
			b.rep = obj.Flatten()
			b.log.Debug("selected flattened object", "board", b.name, "rep", b.rep.String())
		}
	}
	for _, obj := range b.procQ {
		if obj.Props() < best {
			best = obj.Props()
			b.rep = obj.Flatten()
			b.log.Debug("selected flattened object", "board", b.name, "rep", b.rep.String())
		}
	}
}

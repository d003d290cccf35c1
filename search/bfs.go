package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

// link records how a state was first reached. The start state's link is the
// root sentinel.
type link[S comparable, M any] struct {
	from   S
	move   M
	amount int
	root   bool
}

type queueItem[S comparable] struct {
	state S
	depth int
}

// walker owns the mutable state of a single search.
type walker[S comparable, M any] struct {
	expand   func(S) []Step[S, M]
	isTarget func(S) bool
	opts     Options
	ctx      context.Context
	queue    []queueItem[S]
	pred     map[S]link[S, M]
}

// BFS searches breadth-first from start for a state satisfying isTarget,
// generating successors with expand. The returned path has a minimum number
// of transitions. When no target is reachable the result has Found == false
// and an empty path.
func BFS[S comparable, M any](start S, expand func(S) []Step[S, M], isTarget func(S) bool, opts ...Option) (*Result[S, M], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if expand == nil || isTarget == nil {
		return nil, fmt.Errorf("%w: expand and isTarget are required", ErrOptionViolation)
	}

	w := &walker[S, M]{
		expand:   expand,
		isTarget: isTarget,
		opts:     o,
		ctx:      o.Ctx,
		pred:     make(map[S]link[S, M]),
	}
	w.pred[start] = link[S, M]{root: true}
	w.queue = append(w.queue, queueItem[S]{state: start})

	return w.loop()
}

// loop processes the frontier until a target is found, it empties, or the
// search is cancelled.
func (w *walker[S, M]) loop() (*Result[S, M], error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if w.isTarget(item.state) {
			log.Debug().Msgf("found %v (visited %d)", item.state, len(w.pred))
			return &Result[S, M]{
				Path:    reconstruct(w.pred, item.state),
				Found:   true,
				Visited: len(w.pred),
			}, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	log.Debug().Msgf("not found (visited %d)", len(w.pred))
	return &Result[S, M]{Visited: len(w.pred)}, nil
}

func (w *walker[S, M]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueNeighbors records and enqueues every step to a state not seen before.
// Duplicate successors of one state are dropped here, first one wins.
func (w *walker[S, M]) enqueueNeighbors(item queueItem[S]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, step := range w.expand(item.state) {
		if _, seen := w.pred[step.State]; seen {
			continue
		}
		if w.opts.MaxStates > 0 && len(w.pred) >= w.opts.MaxStates {
			return fmt.Errorf("%w: more than %d states", ErrStateLimit, w.opts.MaxStates)
		}
		w.pred[step.State] = link[S, M]{from: item.state, move: step.Move, amount: step.Amount}
		w.queue = append(w.queue, queueItem[S]{state: step.State, depth: nextDepth})
	}
	return nil
}

// reconstruct follows predecessor links back from end to the root and returns
// the path in forward order, starting with the root's START step.
func reconstruct[S comparable, M any](pred map[S]link[S, M], end S) Path[S, M] {
	path := Path[S, M]{}
	cur := end
	for {
		l, ok := pred[cur]
		if !ok || l.root {
			break
		}
		path = append(path, Step[S, M]{State: cur, Move: l.move, Amount: l.amount})
		cur = l.from
	}
	path = append(path, Step[S, M]{State: cur})
	slices.Reverse(path)
	return path
}

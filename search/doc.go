// Package search finds a shortest transition path through a state space that
// is generated on demand.
//
// States are plain comparable values; the caller supplies an expand function
// listing every (state, move, amount) step leaving a state and a predicate
// recognising targets. BFS explores states in non-decreasing transition count
// from the start, so the first target dequeued is reached by a minimum number
// of transitions. Ties between equally short paths follow the order in which
// expand lists its steps.
//
// Not finding a target is a normal outcome: the Result reports Found == false
// with an empty Path. Errors are reserved for invalid options, cancellation
// and the optional state limit.
//
// Usage
//
//	res, err := search.BFS(start, State.Neighbors, isTarget,
//	    search.WithMaxStates(100000),
//	)
//	if err != nil {
//	    // ErrOptionViolation, ErrStateLimit or a context error
//	}
//	if res.Found {
//	    fmt.Println(res.Path.Transitions())
//	}
//
// The expand function must be deterministic and must never return a step
// whose state compares equal to a different logical state; equality is the
// identity used by the visited set.
package search

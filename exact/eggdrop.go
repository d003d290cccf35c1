package exact

import "math"

// EggPlan is the optimal worst case for locating the breaking floor.
type EggPlan struct {
	Drops      int // Worst-case drops needed
	FirstFloor int // Lowest floor achieving it for the first drop, 0 if no drop is needed
}

// MinEggDrops finds the fewest drops that always locate the lowest floor in
// [1, floors] from which an egg breaks, allowing that no floor breaks it.
func MinEggDrops(eggs, floors int) (EggPlan, error) {
	if eggs < 1 {
		return EggPlan{}, invalid("eggs must be positive, got %d", eggs)
	}
	if floors < 0 {
		return EggPlan{}, invalid("floors cannot be negative, got %d", floors)
	}

	// opt[e][f] = best plan with e eggs and f floors left to search
	opt := make([][]EggPlan, eggs+1)
	for e := range opt {
		opt[e] = make([]EggPlan, floors+1)
	}
	// one egg: climb a floor at a time
	for f := 1; f <= floors; f++ {
		opt[1][f] = EggPlan{Drops: f, FirstFloor: 1}
	}

	for e := 2; e <= eggs; e++ {
		for f := 1; f <= floors; f++ {
			best := EggPlan{Drops: math.MaxInt}
			for drop := 1; drop <= f; drop++ {
				ifBreak := 1 + opt[e-1][drop-1].Drops
				ifSafe := 1 + opt[e][f-drop].Drops
				worst := max(ifBreak, ifSafe)
				if worst < best.Drops {
					best = EggPlan{Drops: worst, FirstFloor: drop}
				}
			}
			opt[e][f] = best
		}
	}
	return opt[eggs][floors], nil
}

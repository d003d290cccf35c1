package exact

// DominatedTurtle enumerates pairs of simple random walks of the given length
// that both end where they started, one from tStart and one from bStart. Hits
// counts the pairs where the first walker is strictly behind the second after
// every step; Total counts all returning pairs. Each returning pair has
// probability 4^-moves, so Hits / 4^moves is the chance of both returning
// with the first walker always behind.
func DominatedTurtle(tStart, bStart, moves int) (Count, error) {
	if moves < 0 || moves%2 != 0 {
		return Count{}, invalid("moves must be even and non-negative, got %d", moves)
	}

	walks := returningWalks(moves)
	count := Count{Total: len(walks) * len(walks)}
	for _, t := range walks {
		for _, b := range walks {
			if staysBehind(tStart, bStart, t, b) {
				count.Hits++
			}
		}
	}
	return count, nil
}

// returningWalks lists every +1/-1 sequence of the given even length that sums to zero.
func returningWalks(moves int) [][]int {
	var (
		walks [][]int
		walk  = make([]int, 0, moves)
		build func(forward int)
	)
	build = func(forward int) {
		back := len(walk) - forward
		if len(walk) == moves {
			walks = append(walks, append([]int(nil), walk...))
			return
		}
		if forward < moves/2 {
			walk = append(walk, 1)
			build(forward + 1)
			walk = walk[:len(walk)-1]
		}
		if back < moves/2 {
			walk = append(walk, -1)
			build(forward)
			walk = walk[:len(walk)-1]
		}
	}
	build(0)
	return walks
}

func staysBehind(t, b int, tMoves, bMoves []int) bool {
	for i := range tMoves {
		t += tMoves[i]
		b += bMoves[i]
		if t >= b {
			return false
		}
	}
	return true
}

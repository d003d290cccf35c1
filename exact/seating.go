package exact

// Neighbors maps each person to the two people either side of them at a round
// table. seating[place] is the person in that place.
func Neighbors(seating []int) [][2]int {
	n := len(seating)
	nb := make([][2]int, n)
	for place, person := range seating {
		nb[person] = [2]int{seating[(place-1+n)%n], seating[(place+1)%n]}
	}
	return nb
}

// NoSharedNeighbors reports whether nobody sits next to any of their
// neighbors from the first seating in the second one. Both seatings must be
// permutations of 0..n-1.
func NoSharedNeighbors(first, second []int) bool {
	return noShared(Neighbors(first), second)
}

func noShared(nb [][2]int, seating []int) bool {
	n := len(seating)
	for place, person := range seating {
		left, right := seating[(place-1+n)%n], seating[(place+1)%n]
		if isNeighbor(nb[person], left) || isNeighbor(nb[person], right) {
			return false
		}
	}
	return true
}

func isNeighbor(nb [2]int, person int) bool {
	return nb[0] == person || nb[1] == person
}

// SeatingNoRepeatNeighbors fixes the first seating and counts the second
// seatings, up to rotation, in which nobody repeats a neighbor.
func SeatingNoRepeatNeighbors(n int) (Count, error) {
	if n < 3 {
		return Count{}, invalid("need at least 3 seats, got %d", n)
	}

	first := make([]int, n)
	for i := range first {
		first[i] = i
	}
	nb := Neighbors(first)

	// person 0 keeps place 0 and the rest are permuted with Heap's algorithm
	second := append([]int(nil), first...)
	rest := second[1:]
	var count Count
	var permute func(k int)
	permute = func(k int) {
		if k == 1 {
			count.Total++
			if noShared(nb, second) {
				count.Hits++
			}
			return
		}
		for i := 0; i < k-1; i++ {
			permute(k - 1)
			if k%2 == 0 {
				rest[i], rest[k-1] = rest[k-1], rest[i]
			} else {
				rest[0], rest[k-1] = rest[k-1], rest[0]
			}
		}
		permute(k - 1)
	}
	permute(len(rest))
	return count, nil
}

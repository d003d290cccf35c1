package exact

const cubeFaces = 6

// CubeColorings paints each face of a cube with one of colors and counts the
// paintings where two faces sharing an edge have the same color. Faces i and
// 5-i are opposite.
func CubeColorings(colors int) (Count, error) {
	if colors < 1 {
		return Count{}, invalid("need at least one color, got %d", colors)
	}

	var (
		painting [cubeFaces]int
		count    Count
		paint    func(face int)
	)
	paint = func(face int) {
		if face == cubeFaces {
			count.Total++
			if sharesEdgeColor(painting) {
				count.Hits++
			}
			return
		}
		for c := 0; c < colors; c++ {
			painting[face] = c
			paint(face + 1)
		}
	}
	paint(0)
	return count, nil
}

func sharesEdgeColor(painting [cubeFaces]int) bool {
	for face := 0; face < cubeFaces; face++ {
		for other := face + 1; other < cubeFaces; other++ {
			if other == cubeFaces-1-face {
				continue
			}
			if painting[face] == painting[other] {
				return true
			}
		}
	}
	return false
}

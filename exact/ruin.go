package exact

// RuinAtStep is the probability that a walk starting at n, stepping +1 with
// probability p and -1 otherwise, first reaches 0 at exactly step n+2k.
func RuinAtStep(n, k int, p float64) (float64, error) {
	if n < 1 {
		return 0, invalid("start must be positive, got %d", n)
	}
	if k < 0 {
		return 0, invalid("k cannot be negative, got %d", k)
	}
	if p < 0 || p > 1 {
		return 0, invalid("p must be in [0, 1], got %g", p)
	}

	steps := n + 2*k
	top := n + steps + 1
	// prob[i] = chance of ruin at exactly `steps` from position i at step t
	prob := make([]float64, top+1)
	next := make([]float64, top+1)
	prob[0] = 1

	for t := steps - 1; t >= 0; t-- {
		next[0] = 0 // already ruined before the final step
		for i := 1; i < top; i++ {
			down := prob[i-1]
			if i == 1 && t+1 != steps {
				down = 0
			}
			next[i] = p*prob[i+1] + (1-p)*down
		}
		prob, next = next, prob
	}
	return prob[n], nil
}

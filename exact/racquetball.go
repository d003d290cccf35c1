package exact

// RacquetballWin is the probability that the first server wins a game to
// winning points, where only the server scores. pServe is the chance of
// winning a volley on one's own serve, pOpponentServe the opponent's chance on
// theirs.
func RacquetballWin(winning int, pServe, pOpponentServe float64) (float64, error) {
	if winning < 1 {
		return 0, invalid("winning score must be positive, got %d", winning)
	}
	for _, p := range []float64{pServe, pOpponentServe} {
		if p < 0 || p > 1 {
			return 0, invalid("probabilities must be in [0, 1], got %g", p)
		}
	}
	if pServe == 0 && pOpponentServe == 0 {
		return 0, invalid("nobody can ever score")
	}

	// serving[i][j] and receiving[i][j] are win chances at score i:j when we
	// serve and when the opponent serves. Serve changes are folded in by
	// solving the two-state loop.
	serving := make([][]float64, winning+1)
	receiving := make([][]float64, winning+1)
	for i := range serving {
		serving[i] = make([]float64, winning+1)
		receiving[i] = make([]float64, winning+1)
	}
	for j := 0; j < winning; j++ {
		serving[winning][j] = 1
		receiving[winning][j] = 1
	}

	mult := 1 / (1 - (1-pServe)*(1-pOpponentServe))
	for i := winning - 1; i >= 0; i-- {
		for j := winning - 1; j >= 0; j-- {
			serving[i][j] = mult * (pServe*serving[i+1][j] +
				(1-pServe)*pOpponentServe*receiving[i][j+1])
			receiving[i][j] = mult * (pOpponentServe*receiving[i][j+1] +
				(1-pOpponentServe)*pServe*serving[i+1][j])
		}
	}
	return serving[0][0], nil
}

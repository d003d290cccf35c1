package exact

import "math/big"

// SixCardExpectation is the expected number of correct guesses when a pile of
// aces and jacks is turned over one card at a time and each guess names the
// more numerous kind still in the pile.
func SixCardExpectation(aces, jacks int) (*big.Rat, error) {
	if aces < 0 || jacks < 0 {
		return nil, invalid("card counts cannot be negative, got %d aces and %d jacks", aces, jacks)
	}

	dp := make([][]*big.Rat, aces+1)
	for a := range dp {
		dp[a] = make([]*big.Rat, jacks+1)
	}
	// one kind left: every guess is right
	for a := 0; a <= aces; a++ {
		dp[a][0] = big.NewRat(int64(a), 1)
	}
	for j := 0; j <= jacks; j++ {
		dp[0][j] = big.NewRat(int64(j), 1)
	}

	for a := 1; a <= aces; a++ {
		for j := 1; j <= jacks; j++ {
			t := int64(a + j)
			guess := big.NewRat(int64(max(a, j)), t)
			ace := new(big.Rat).Mul(big.NewRat(int64(a), t), dp[a-1][j])
			jack := new(big.Rat).Mul(big.NewRat(int64(j), t), dp[a][j-1])
			dp[a][j] = guess.Add(guess, ace)
			dp[a][j].Add(dp[a][j], jack)
		}
	}
	return dp[aces][jacks], nil
}

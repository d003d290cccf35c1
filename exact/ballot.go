package exact

import "math/big"

// BallotPaths counts the orders in which n votes for A and m votes for B can
// be counted so that A is never behind B.
func BallotPaths(n, m int) (*big.Int, error) {
	if m < 0 || n < m {
		return nil, invalid("need 0 <= m <= n, got n=%d m=%d", n, m)
	}

	// opt[a][b] = orders completing the count from a votes for A and b for B
	opt := make([][]*big.Int, n+1)
	for a := range opt {
		opt[a] = make([]*big.Int, m+1)
		for b := range opt[a] {
			opt[a][b] = new(big.Int)
		}
	}
	for a := n; a >= 0; a-- {
		for b := min(a, m); b >= 0; b-- {
			if a == n {
				opt[a][b].SetInt64(1)
				continue
			}
			opt[a][b].Add(opt[a][b], opt[a+1][b])
			if b+1 <= m && b+1 <= a {
				opt[a][b].Add(opt[a][b], opt[a][b+1])
			}
		}
	}
	return opt[0][0], nil
}

// BallotClosedForm is C(n+m, m) * (n+1-m) / (n+1), which BallotPaths matches.
func BallotClosedForm(n, m int) (*big.Int, error) {
	if m < 0 || n < m {
		return nil, invalid("need 0 <= m <= n, got n=%d m=%d", n, m)
	}
	res, err := Binomial(n+m, m)
	if err != nil {
		return nil, err
	}
	res.Mul(res, big.NewInt(int64(n+1-m)))
	return res.Quo(res, big.NewInt(int64(n+1))), nil
}

// Binomial returns n choose k.
func Binomial(n, k int) (*big.Int, error) {
	if n < 0 || k < 0 || k > n {
		return nil, invalid("need 0 <= k <= n, got n=%d k=%d", n, k)
	}
	return new(big.Int).Binomial(int64(n), int64(k)), nil
}

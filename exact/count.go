package exact

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrInvalidArgument = errors.New("exact: invalid argument")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Count is the outcome of an enumeration: Hits favourable cases out of Total.
type Count struct {
	Hits  int
	Total int
}

func (c Count) Rat() *big.Rat {
	if c.Total == 0 {
		return new(big.Rat)
	}
	return big.NewRat(int64(c.Hits), int64(c.Total))
}

func (c Count) Float() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Hits) / float64(c.Total)
}

func (c Count) String() string {
	return fmt.Sprintf("%d / %d = %s", c.Hits, c.Total, c.Rat().RatString())
}

package jug

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidContainer  = errors.New("jug: amount must be within [0, capacity]")
	ErrTooManyContainers = errors.New("jug: too many containers")
	ErrNoVessels         = errors.New("jug: need at least one vessel")
)

// Container is an immutable amount of liquid in a vessel of fixed capacity.
type Container struct {
	Amount   int
	Capacity int
}

func NewContainer(amount, capacity int) (Container, error) {
	if capacity < 0 || amount < 0 || amount > capacity {
		return Container{}, fmt.Errorf("%w: %d / %d", ErrInvalidContainer, amount, capacity)
	}
	return Container{Amount: amount, Capacity: capacity}, nil
}

// Empty returns an empty container of the given capacity.
func Empty(capacity int) Container {
	return Container{Capacity: capacity}
}

// Full returns a full container of the given capacity.
func Full(capacity int) Container {
	return Container{Amount: capacity, Capacity: capacity}
}

func (c Container) Space() int {
	return c.Capacity - c.Amount
}

func (c Container) String() string {
	return fmt.Sprintf("Container[%d / %d]", c.Amount, c.Capacity)
}

// Pour moves as much as fits from one container into another and returns the
// new containers with the amount poured. Neither argument is modified.
func Pour(from, to Container) (Container, Container, int) {
	poured := min(from.Amount, to.Space())
	from.Amount -= poured
	to.Amount += poured
	return from, to, poured
}

// Drain discards the whole content of a container. The sink always has room
// for exactly what the container holds, so an empty container drains nothing.
func Drain(from Container) (Container, int) {
	poured := from.Amount
	from.Amount = 0
	return from, poured
}

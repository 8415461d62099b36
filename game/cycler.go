package game

// Cycler walks player indices in join order, wrapping after the last one.
type Cycler struct {
	size    int
	current int
}

func NewCycler(size, start int) *Cycler {
	return &Cycler{
		size:    size,
		current: ((start % size) + size) % size,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Next() int {
	c.current = (c.current + 1) % c.size
	return c.current
}

package request

// Sequence hands out picking request ids.
type Sequence interface {
	Next() int
}

// Counter is a Sequence producing start, start+1, ... It is not safe for
// concurrent use; the engine owns it.
type Counter struct {
	next int
}

// NewCounter returns a counter whose first id is start.
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

func (c *Counter) Next() int {
	id := c.next
	c.next++
	return id
}

// Peek returns the id the next call to Next will produce.
func (c *Counter) Peek() int {
	return c.next
}

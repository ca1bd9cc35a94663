package ecs

type contactKey struct {
	a Entity
	b Entity
}

func makeContactKey(a, b Entity) contactKey {
	if a > b {
		a, b = b, a
	}
	return contactKey{a: a, b: b}
}

// ContactSet holds the touching pairs of the current tick. Pairs are
// unordered: Touching(a, b) == Touching(b, a).
type ContactSet struct {
	pairs map[contactKey]struct{}
}

// Add records a contact between a and b.
func (c *ContactSet) Add(a, b Entity) {
	if c == nil || !a.Valid() || !b.Valid() || a == b {
		return
	}
	if c.pairs == nil {
		c.pairs = make(map[contactKey]struct{})
	}
	c.pairs[makeContactKey(a, b)] = struct{}{}
}

// Touching reports whether a and b share an active contact this tick.
func (c *ContactSet) Touching(a, b Entity) bool {
	if c == nil || c.pairs == nil {
		return false
	}
	_, ok := c.pairs[makeContactKey(a, b)]
	return ok
}

// Reset forgets every pair.
func (c *ContactSet) Reset() {
	if c == nil {
		return
	}
	clear(c.pairs)
}

func (c *ContactSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pairs)
}

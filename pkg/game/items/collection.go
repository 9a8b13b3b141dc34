package items

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"tangrin/pkg/engine/logger"
	"tangrin/pkg/engine/random"
)

// Unplaced marks a slot that has not been scattered yet.
const Unplaced ID = -1

// NoExclusion disables the excluded value of a layout.
const NoExclusion ID = -1

// MaxScatterAttempts bounds the draws for a single slot.
const MaxScatterAttempts = 10000

var (
	// ErrScatterExhausted is returned when a slot found no free value within MaxScatterAttempts.
	ErrScatterExhausted = errors.New("no free value found for item")

	// ErrLayoutTooSmall is returned when a layout has fewer free values than slots.
	ErrLayoutTooSmall = errors.New("layout range cannot hold every item")
)

// Layout describes one collection: Count slots, each drawing a distinct value
// from [Offset, Offset+Span) other than Exclude. PostScatter, when set, runs
// after every scatter and may override slots.
type Layout struct {
	Name        string
	Count       int
	Offset      int
	Span        int
	Exclude     ID
	PostScatter func(values []ID)
}

// freeValues is the number of distinct values a scatter can draw
func (l Layout) freeValues() int {
	free := l.Span
	if l.Exclude != NoExclusion && int(l.Exclude) >= l.Offset && int(l.Exclude) < l.Offset+l.Span {
		free--
	}
	return free
}

// Collection is a fixed-size, index aligned table of item values.
type Collection struct {
	layout Layout
	values []ID
}

// NewCollection creates a collection with every slot unplaced
func NewCollection(layout Layout) *Collection {
	c := &Collection{
		layout: layout,
		values: make([]ID, layout.Count),
	}
	c.clear()
	return c
}

func (c *Collection) clear() {
	for i := range c.values {
		c.values[i] = Unplaced
	}
}

// Scatter draws a fresh value for every slot. A draw that repeats another
// slot's value or hits the excluded value is redrawn for that slot only.
func (c *Collection) Scatter(rng random.Source) error {
	if c.layout.freeValues() < c.layout.Count {
		return fmt.Errorf("%w: %s needs %d values, has %d", ErrLayoutTooSmall, c.layout.Name, c.layout.Count, c.layout.freeValues())
	}

	c.clear()
	occupied := mapset.New[ID]()
	retries := 0

	for i := range c.values {
		placed := false
		for attempt := 0; attempt < MaxScatterAttempts; attempt++ {
			v := ID(rng.Intn(c.layout.Span) + c.layout.Offset)
			if v == c.layout.Exclude || occupied.Has(v) {
				retries++
				continue
			}
			c.values[i] = v
			occupied.Put(v)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: %s slot %d", ErrScatterExhausted, c.layout.Name, i)
		}
	}

	if c.layout.PostScatter != nil {
		c.layout.PostScatter(c.values)
	}

	logger.Debug("scattered collection", "collection", c.layout.Name, "slots", len(c.values), "retries", retries)
	return nil
}

// PlaceItem sets slot i to v unless v is excluded or held by another slot.
func (c *Collection) PlaceItem(i int, v ID) bool {
	if i < 0 || i >= len(c.values) || v == c.layout.Exclude {
		return false
	}
	if j, ok := c.IndexOf(v); ok && j != i {
		return false
	}
	c.values[i] = v
	return true
}

// UpdateItem sets slot i to v without any collision checks.
func (c *Collection) UpdateItem(i int, v ID) {
	if i < 0 || i >= len(c.values) {
		return
	}
	c.values[i] = v
}

// Get returns the value of slot i, or Unplaced when i is out of range
func (c *Collection) Get(i int) ID {
	if i < 0 || i >= len(c.values) {
		return Unplaced
	}
	return c.values[i]
}

// IndexOf returns the first slot holding v
func (c *Collection) IndexOf(v ID) (int, bool) {
	for i, held := range c.values {
		if held == v {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of slots
func (c *Collection) Len() int {
	return len(c.values)
}

// ItemLocations returns a copy of every slot value, in slot order
func (c *Collection) ItemLocations() []ID {
	out := make([]ID, len(c.values))
	copy(out, c.values)
	return out
}

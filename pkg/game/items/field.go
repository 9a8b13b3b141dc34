package items

import (
	"fmt"

	"tangrin/pkg/engine/random"
	"tangrin/pkg/engine/world"
)

// WorldLayout puts one item in every location. Draws cover every id up to
// Nothing except the treasure, which only ever starts inside a container.
var WorldLayout = Layout{
	Name:    "world",
	Count:   world.Locations,
	Offset:  0,
	Span:    int(Nothing) + 1,
	Exclude: Treasure,
}

// LocksLayout maps each key, by id - KeyOffset, to the container it opens.
var LocksLayout = Layout{
	Name:    "locks",
	Count:   KeyRange,
	Offset:  int(RedBox),
	Span:    Containers,
	Exclude: NoExclusion,
}

// ContentsLayout hides one key in each container. The last container always
// holds the treasure instead.
var ContentsLayout = Layout{
	Name:    "contents",
	Count:   Containers,
	Offset:  int(KeyOffset),
	Span:    KeyRange,
	Exclude: Treasure,
	PostScatter: func(values []ID) {
		values[len(values)-1] = Treasure
	},
}

// Field holds the three item collections of one game.
type Field struct {
	World    *Collection // indexed by location
	Locks    *Collection // indexed by key id - KeyOffset
	Contents *Collection // indexed by container id
}

// NewField creates an unscattered field
func NewField() *Field {
	return &Field{
		World:    NewCollection(WorldLayout),
		Locks:    NewCollection(LocksLayout),
		Contents: NewCollection(ContentsLayout),
	}
}

// Scatter scatters all three collections
func (f *Field) Scatter(rng random.Source) error {
	for _, c := range []*Collection{f.World, f.Locks, f.Contents} {
		if err := c.Scatter(rng); err != nil {
			return fmt.Errorf("scattering items: %w", err)
		}
	}
	return nil
}

// ItemAt returns the item lying at loc
func (f *Field) ItemAt(loc world.Location) ID {
	v := f.World.Get(int(loc))
	if v == Unplaced {
		return Nothing
	}
	return v
}

// RemoveItemAt leaves nothing at loc
func (f *Field) RemoveItemAt(loc world.Location) {
	f.World.UpdateItem(int(loc), Nothing)
}

// PutItemAt leaves id at loc, replacing whatever was there
func (f *Field) PutItemAt(loc world.Location, id ID) {
	f.World.UpdateItem(int(loc), id)
}

// ContainerOpenedBy returns the container the key opens
func (f *Field) ContainerOpenedBy(key ID) (ID, bool) {
	if !key.IsKey() {
		return Unplaced, false
	}
	c := f.Locks.Get(int(key - KeyOffset))
	return c, c != Unplaced
}

// ContentOf returns what is hidden inside container
func (f *Field) ContentOf(container ID) ID {
	return f.Contents.Get(int(container))
}

// SetContent replaces what is hidden inside container
func (f *Field) SetContent(container ID, id ID) {
	f.Contents.UpdateItem(int(container), id)
}

package entities

import "tangrin/pkg/game/items"

// Slots is the number of things the player can hold
const Slots = 3

// Inventory is the player's hands and pockets. Empty slots hold items.Nothing.
type Inventory struct {
	slots [Slots]items.ID
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	inv := &Inventory{}
	inv.Clear()
	return inv
}

// Clear empties every slot
func (inv *Inventory) Clear() {
	for i := range inv.slots {
		inv.slots[i] = items.Nothing
	}
}

// Item returns the item in slot, or items.Nothing for an empty or invalid slot
func (inv *Inventory) Item(slot int) items.ID {
	if slot < 0 || slot >= Slots {
		return items.Nothing
	}
	return inv.slots[slot]
}

// Set puts id in slot, replacing what was there
func (inv *Inventory) Set(slot int, id items.ID) {
	if slot < 0 || slot >= Slots {
		return
	}
	inv.slots[slot] = id
}

// Remove empties slot
func (inv *Inventory) Remove(slot int) {
	inv.Set(slot, items.Nothing)
}

// Add puts id in the first free slot and returns it
func (inv *Inventory) Add(id items.ID) (int, bool) {
	slot, ok := inv.FreeSlot()
	if !ok {
		return -1, false
	}
	inv.slots[slot] = id
	return slot, true
}

// Index returns the first slot holding id
func (inv *Inventory) Index(id items.ID) (int, bool) {
	for i, held := range inv.slots {
		if held == id {
			return i, true
		}
	}
	return -1, false
}

// IsHolding returns true if id is in any slot
func (inv *Inventory) IsHolding(id items.ID) bool {
	if id == items.Nothing {
		return false
	}
	_, ok := inv.Index(id)
	return ok
}

// FreeSlot returns the first empty slot
func (inv *Inventory) FreeSlot() (int, bool) {
	return inv.Index(items.Nothing)
}

// Held returns the occupied slots in order
func (inv *Inventory) Held() []int {
	var held []int
	for i, id := range inv.slots {
		if id != items.Nothing {
			held = append(held, i)
		}
	}
	return held
}

// IsEmpty returns true when nothing is held
func (inv *Inventory) IsEmpty() bool {
	return len(inv.Held()) == 0
}

// IsFull returns true when every slot is taken
func (inv *Inventory) IsFull() bool {
	_, free := inv.FreeSlot()
	return !free
}

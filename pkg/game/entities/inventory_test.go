package entities

import (
	"testing"

	"tangrin/pkg/game/items"
)

func TestInventory_AddUntilFull(t *testing.T) {
	inv := NewInventory()
	if !inv.IsEmpty() || inv.IsFull() {
		t.Fatal("new inventory should be empty")
	}
	for i, id := range []items.ID{items.Knife, items.Rope, items.Gun} {
		slot, ok := inv.Add(id)
		if !ok || slot != i {
			t.Errorf("Add(%d) = %d, %v, want %d, true", id, slot, ok, i)
		}
	}
	if !inv.IsFull() {
		t.Error("IsFull() = false after three adds")
	}
	if _, ok := inv.Add(items.Chair); ok {
		t.Error("Add() on full inventory succeeded")
	}
}

func TestInventory_RemoveAndReuse(t *testing.T) {
	inv := NewInventory()
	inv.Add(items.Knife)
	inv.Add(items.Rope)
	inv.Remove(0)

	if inv.IsHolding(items.Knife) {
		t.Error("IsHolding(knife) after remove = true")
	}
	if held := inv.Held(); len(held) != 1 || held[0] != 1 {
		t.Errorf("Held() = %v, want [1]", held)
	}
	if slot, _ := inv.Add(items.Treasure); slot != 0 {
		t.Errorf("Add() reused slot %d, want 0", slot)
	}
	if i, ok := inv.Index(items.Treasure); !ok || i != 0 {
		t.Errorf("Index(treasure) = %d, %v, want 0, true", i, ok)
	}
}

func TestInventory_NothingIsNeverHeld(t *testing.T) {
	inv := NewInventory()
	if inv.IsHolding(items.Nothing) {
		t.Error("IsHolding(Nothing) = true")
	}
}

func TestInventory_InvalidSlots(t *testing.T) {
	inv := NewInventory()
	inv.Set(Slots, items.Knife)
	inv.Set(-1, items.Knife)
	if inv.Item(-1) != items.Nothing || inv.Item(Slots) != items.Nothing {
		t.Error("invalid slots should read as Nothing")
	}
	if !inv.IsEmpty() {
		t.Error("Set on invalid slots changed the inventory")
	}
}

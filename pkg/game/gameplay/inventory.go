package gameplay

import (
	engineinput "tangrin/pkg/engine/input"
	"tangrin/pkg/engine/logger"
	"tangrin/pkg/game/entities"
	"tangrin/pkg/game/items"
)

// None of the inventory commands end the turn; the player may keep trying.

// PickUp moves the item at the player's location into a free slot.
func PickUp(s *Session) bool {
	g := s.Game
	here := g.ItemHere()

	if here == items.Nothing {
		logMessage(s, msgNothingHere)
		return false
	}
	if !here.CanLift() {
		logMessage(s, msgMagicalForce)
		return false
	}

	showHoldings(s)
	if _, ok := g.Inventory.Add(here); !ok {
		logMessage(s, msgNoHands)
		return false
	}
	g.Items.RemoveItemAt(g.Location)
	logMessage(s, msgPickedUp, s.World.ItemNameWithoutArticle(here))
	return false
}

// Dump leaves a held item at the player's location, which must be empty.
func Dump(s *Session) bool {
	g := s.Game

	if g.ItemHere() != items.Nothing {
		logMessage(s, msgSomethingHere)
		return false
	}
	if g.Inventory.IsEmpty() {
		logMessage(s, msgNothingWithYou)
		return false
	}

	showHoldings(s)
	slot := chooseHeldSlot(s, msgWhichOne)
	dropped := g.Inventory.Item(slot)
	g.Items.PutItemAt(g.Location, dropped)
	g.Inventory.Remove(slot)
	logMessage(s, msgDumped, s.World.ItemNameWithoutArticle(dropped))
	return false
}

// Swap exchanges a held item with the item at the player's location. Swapping
// with an empty location leaves the slot holding nothing.
func Swap(s *Session) bool {
	g := s.Game
	here := g.ItemHere()

	if !here.CanMove() {
		logMessage(s, msgTooHeavy)
		return false
	}
	if g.Inventory.IsEmpty() {
		logMessage(s, msgNothingToSwap)
		return false
	}

	showHoldings(s)
	slot := chooseHeldSlot(s, msgWhichToSwap)
	held := g.Inventory.Item(slot)
	g.Inventory.Set(slot, here)
	g.Items.PutItemAt(g.Location, held)
	logMessage(s, msgNowGot, s.World.ItemName(here))
	return false
}

// Open eats the tin of food when a tin opener is held, or opens a container
// with the matching key and offers what is inside.
func Open(s *Session) bool {
	g := s.Game
	here := g.ItemHere()

	switch {
	case here == items.Nothing:
		logMessage(s, msgNothingHere)
		return false
	case !here.CanOpen():
		logMessage(s, msgCannotOpen, s.World.ItemName(here))
		return false
	case here == items.TinOfFood:
		openTin(s)
		return false
	}

	slot, ok := MatchingKey(g.Inventory, g.Items, here)
	if !ok {
		logMessage(s, msgWrongKey, s.World.ItemNameWithoutArticle(here))
		return false
	}

	logMessage(s, msgCorrectKey, s.World.ItemNameWithoutArticle(g.Inventory.Item(slot)))
	s.Pace.Delay(3000)
	s.Out.Clear()

	inside := g.Items.ContentOf(here)
	logger.Info("container opened", "container", int(here), "content", int(inside))
	logMessage(s, msgInsideIs, s.World.ItemName(inside))
	if inside != items.Nothing {
		containerMenu(s, here)
	}
	return false
}

func openTin(s *Session) {
	g := s.Game
	if !g.Inventory.IsHolding(items.TinOpener) {
		logMessage(s, msgNoCanOpener)
		return
	}
	logMessage(s, msgYumYum)
	g.Player.Restore(items.FoodStamina)
	g.Items.RemoveItemAt(g.Location)
}

// MatchingKey returns the first slot, in slot order, holding a key whose lock
// belongs to container.
func MatchingKey(inv *entities.Inventory, field *items.Field, container items.ID) (int, bool) {
	for slot := 0; slot < entities.Slots; slot++ {
		key := inv.Item(slot)
		if !key.IsKey() {
			continue
		}
		if opens, ok := field.ContainerOpenedBy(key); ok && opens == container {
			return slot, true
		}
	}
	return -1, false
}

// containerMenu offers the content of an open container until the player
// swaps for it, picks it up or leaves it.
func containerMenu(s *Session, container items.ID) {
	g := s.Game
	for {
		logMessage(s, msgContainerMenu)
		action := s.In.ReadCommand()

		switch action {
		case engineinput.ActionPickUp:
			showHoldings(s)
			if g.Inventory.IsFull() {
				logMessage(s, msgHoldThree)
				continue
			}
			inside := g.Items.ContentOf(container)
			g.Inventory.Add(inside)
			g.Items.SetContent(container, items.Nothing)
			logMessage(s, msgPickedUp, s.World.ItemNameWithoutArticle(inside))
			return

		case engineinput.ActionSwap:
			showHoldings(s)
			slot := chooseHeldSlot(s, msgWhichItemToSwap)
			inside := g.Items.ContentOf(container)
			g.Items.SetContent(container, g.Inventory.Item(slot))
			g.Inventory.Set(slot, inside)
			logMessage(s, msgNowGot, s.World.ItemName(inside))
			return

		default:
			return
		}
	}
}

// showHoldings lists every slot, empty ones included
func showHoldings(s *Session) {
	logMessage(s, msgYouHold)
	for slot := 0; slot < entities.Slots; slot++ {
		logMessage(s, msgHoldingLine, slot+1, s.World.ItemName(s.Game.Inventory.Item(slot)))
	}
}

// chooseSlot prompts until the player names a slot between 1 and 3
func chooseSlot(s *Session, prompt string) int {
	for {
		logMessage(s, prompt)
		slot := s.In.ChooseListItem() - 1
		if slot >= 0 && slot < entities.Slots {
			return slot
		}
	}
}

// chooseHeldSlot prompts until the player names a slot that holds something
func chooseHeldSlot(s *Session, prompt string) int {
	for {
		slot := chooseSlot(s, prompt)
		if s.Game.Inventory.Item(slot) != items.Nothing {
			return slot
		}
	}
}

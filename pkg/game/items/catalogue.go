// Package items defines the item catalogue and scatters items, locks and
// container contents around the cave map.
package items

// ID identifies an entry of the item catalogue.
type ID int

// Catalogue ids. Containers come first, keys form a contiguous block.
const (
	RedBox ID = iota
	Cupboard
	Briefcase
	Trunk
	Sideboard
	TreasureChest
	CopperBox
	TinOfFood
	Skeleton
	DeadRat
	SilverKey
	GoldenKey
	BronzeKey
	NickelKey
	PointedKey
	InitialledKey
	Rope
	RubikCubes
	Records
	TinOpener
	Dictionary
	TouristGuide
	Newspaper
	Helmet
	Knife
	Chair
	Dentures
	StarTrekRock
	Treasure
	Gun
	Nothing
	Shell
)

// Count is the number of catalogue entries
const Count = int(Shell) + 1

const (
	// Containers is the number of lockable containers, ids 0 to Containers-1.
	Containers = 7

	// KeyOffset is the first id a container lock responds to.
	KeyOffset = SilverKey

	// KeyRange is the number of ids, starting at KeyOffset, checked against container locks.
	KeyRange = 7

	// FoodStamina is the stamina a tin of food restores.
	FoodStamina = 60
)

// IsContainer returns true for the lockable containers
func (id ID) IsContainer() bool {
	return id >= RedBox && id < Containers
}

// IsKey returns true for ids that can be matched against a container lock
func (id ID) IsKey() bool {
	return id >= KeyOffset && id < KeyOffset+KeyRange
}

// CanLift returns false for the containers, which stay where they are
func (id ID) CanLift() bool {
	return id >= TinOfFood
}

// CanMove returns false for the containers too heavy to swap
func (id ID) CanMove() bool {
	return id >= CopperBox
}

// CanOpen returns true for the containers and the tin of food
func (id ID) CanOpen() bool {
	return id >= RedBox && id <= TinOfFood
}

// IsValid returns true for catalogue ids
func (id ID) IsValid() bool {
	return id >= 0 && int(id) < Count
}

// Package entities contains the player and the things the player carries.
package entities

const (
	// FullStamina is the stamina of a rested player.
	FullStamina = 99

	// DeathThreshold is the stamina below which the player dies.
	DeathThreshold = 2

	// drainBase and drainDivisor set how fast stamina drains: (drainBase - tide) / drainDivisor per turn.
	drainBase    = 410
	drainDivisor = 95
)

// StaminaStatus names a band of the stamina scale.
type StaminaStatus int

const (
	StatusDead StaminaStatus = iota
	StatusExhausted
	StatusWeary
	StatusTired
	StatusPeckish
	StatusSteady
	StatusLessStrong
	StatusStrong
	StatusEfficient
	StatusFullStrength
)

// statusBands lists the lower bound of each band above StatusDead, lowest first.
var statusBands = []struct {
	below  int
	status StaminaStatus
}{
	{DeathThreshold, StatusDead},
	{10, StatusExhausted},
	{20, StatusWeary},
	{30, StatusTired},
	{40, StatusPeckish},
	{50, StatusSteady},
	{60, StatusLessStrong},
	{80, StatusStrong},
	{90, StatusEfficient},
}

// Player tracks the explorer's stamina, kept within [0, Full].
type Player struct {
	Stamina int
	Full    int
}

// NewPlayer creates a rested player. A non-positive full uses FullStamina.
func NewPlayer(full int) *Player {
	if full <= 0 {
		full = FullStamina
	}
	return &Player{Stamina: full, Full: full}
}

// RestoreFull sets stamina to the maximum
func (p *Player) RestoreFull() {
	p.Stamina = p.Full
}

// Restore adds amount, up to the maximum
func (p *Player) Restore(amount int) {
	p.set(p.Stamina + amount)
}

// Drain removes the stamina spent in one turn at the given tide time and
// returns the amount removed.
func (p *Player) Drain(tide int) int {
	cost := (drainBase - tide) / drainDivisor
	if cost < 0 {
		cost = 0
	}
	before := p.Stamina
	p.set(p.Stamina - cost)
	return before - p.Stamina
}

func (p *Player) set(v int) {
	switch {
	case v < 0:
		p.Stamina = 0
	case v > p.Full:
		p.Stamina = p.Full
	default:
		p.Stamina = v
	}
}

// IsDead returns true once stamina falls below DeathThreshold
func (p *Player) IsDead() bool {
	return p.Stamina < DeathThreshold
}

// Status returns the band the current stamina falls in
func (p *Player) Status() StaminaStatus {
	for _, band := range statusBands {
		if p.Stamina < band.below {
			return band.status
		}
	}
	return StatusFullStrength
}

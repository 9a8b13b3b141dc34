package random

// Scripted replays fixed draws in order. Integer draws are reduced into the
// requested range; once a script runs out it returns the low end of the range.
type Scripted struct {
	Ints   []int
	Floats []float64
}

// NewScripted creates a scripted source.
func NewScripted(ints []int, floats []float64) *Scripted {
	return &Scripted{Ints: ints, Floats: floats}
}

func (s *Scripted) nextInt() (int, bool) {
	if len(s.Ints) == 0 {
		return 0, false
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v, true
}

func (s *Scripted) Intn(n int) int {
	v, ok := s.nextInt()
	if !ok || n <= 0 {
		return 0
	}
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Scripted) IntRange(min, max int) int {
	v, ok := s.nextInt()
	if !ok || max <= min {
		return min
	}
	if v >= min && v < max {
		return v
	}
	if v < 0 {
		v = -v
	}
	return min + v%(max-min)
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *Scripted) Float64n(max float64) float64 {
	return s.Float64() * max
}

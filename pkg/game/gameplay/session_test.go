package gameplay

import (
	"strconv"
	"strings"
	"testing"

	engineinput "tangrin/pkg/engine/input"
	"tangrin/pkg/engine/random"
	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/renderer"
	"tangrin/pkg/game/state"
)

// scriptedInput answers every prompt from a fixed list of lines
type scriptedInput struct {
	t     *testing.T
	lines []string
}

func (in *scriptedInput) next() string {
	in.t.Helper()
	if len(in.lines) == 0 {
		in.t.Fatal("input script exhausted")
	}
	line := in.lines[0]
	in.lines = in.lines[1:]
	return line
}

func (in *scriptedInput) ReadCommand() engineinput.Action {
	return engineinput.ParseAction(in.next())
}

func (in *scriptedInput) YesNo() bool {
	return strings.HasPrefix(strings.ToLower(in.next()), "y")
}

func (in *scriptedInput) WaitForEnter() { in.next() }

func (in *scriptedInput) WaitForKey() { in.next() }

func (in *scriptedInput) ChooseListItem() int {
	n, err := strconv.Atoi(in.next())
	if err != nil {
		return 0
	}
	return n
}

// recorder keeps every message shown, with markup removed
type recorder struct {
	titles   []string
	messages []string
	clears   int
}

func (r *recorder) Init()                  {}
func (r *recorder) Clear()                 { r.clears++ }
func (r *recorder) ShowTitle(title string) { r.titles = append(r.titles, title) }
func (r *recorder) ShowMessage(msg string) { r.messages = append(r.messages, renderer.PlainText(msg)) }

func (r *recorder) StyleText(text string, _ renderer.TextStyle) string { return text }

func (r *recorder) FormatText(msg string, args ...any) string {
	return renderer.PlainText(msg, args...)
}

func (r *recorder) saw(msg string) bool {
	for _, m := range r.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func (r *recorder) count(msg string) int {
	n := 0
	for _, m := range r.messages {
		if m == msg {
			n++
		}
	}
	return n
}

// newTestSession creates a session on an empty map with no pauses. The ghost
// never appears unless the test changes the rules.
func newTestSession(t *testing.T, rng random.Source, lines ...string) (*Session, *recorder) {
	t.Helper()
	if rng == nil {
		rng = random.NewScripted(nil, nil)
	}
	out := &recorder{}
	g := state.NewGame(0, 0)
	g.Phase = state.PhasePlaying
	s := NewSession(g, rng, &scriptedInput{t: t, lines: lines}, out, nil, nil, Rules{EncounterThreshold: 1})
	return s, out
}

// connect joins two locations of the session's map
func connect(t *testing.T, s *Session, from world.Location, dir world.Direction, to world.Location) {
	t.Helper()
	if err := s.Game.Map.PlaceTwoWayConnection(random.NewScripted(nil, nil), from, dir, to, true); err != nil {
		t.Fatalf("PlaceTwoWayConnection(%d, %v, %d) error = %v", from, dir, to, err)
	}
}

func plain(msg string, a ...any) string {
	return renderer.PlainText(msg, a...)
}

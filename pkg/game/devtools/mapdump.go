// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/content"
	"tangrin/pkg/game/items"
	"tangrin/pkg/game/setup"
	"tangrin/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// DumpMapToFile writes a full debug dump of the current world to map.txt and
// returns its absolute path.
func DumpMapToFile(g *state.Game, text *content.World, seed int64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteMapDump(f, g, text, seed)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteMapDump writes the metadata, every location with its exits and item,
// the lock table and the container contents. Sections are "key: value" lines.
func WriteMapDump(w io.Writer, g *state.Game, text *content.World, seed int64) {
	survey := setup.Survey(g)
	reachable := g.Map.ReachableFrom(world.StartingLocation)

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (caves, exits, items) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "turn: %d\n", g.Turn)
	fmt.Fprintf(w, "phase: %s\n", g.Phase)
	fmt.Fprintf(w, "player_location: %d\n", g.Location)
	fmt.Fprintf(w, "tide: %d\n", g.Tide)
	fmt.Fprintf(w, "stamina: %d\n", g.Player.Stamina)
	fmt.Fprintf(w, "connections: %d\n", g.Map.ConnectionCount())
	fmt.Fprintf(w, "reachable_locations: %d\n", survey.Reachable)
	fmt.Fprintf(w, "treasure_container_at: %d\n", survey.TreasureContainerAt)
	fmt.Fprintf(w, "treasure_reachable: %v\n", survey.TreasureReachable)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "@ = player  * = unreachable from the start  exits are direction->location")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Locations ---")
	for loc := world.Location(0); loc < world.Locations; loc++ {
		marker := " "
		switch {
		case loc == g.Location:
			marker = "@"
		case !reachable.Has(loc):
			marker = "*"
		}

		var exits []string
		for _, d := range g.Map.Exits(loc) {
			dest, _ := g.Map.DestinationLocation(loc, d)
			exits = append(exits, fmt.Sprintf("%s->%d", strings.ToLower(d.String()), dest))
		}
		fmt.Fprintf(w, "%s location: %2d exits: [%s] item: %q\n", marker, loc, strings.Join(exits, " "), itemLabel(text, g.Items.ItemAt(loc)))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Locks (key opens container) ---")
	for key := items.KeyOffset; key < items.KeyOffset+items.KeyRange; key++ {
		container, ok := g.Items.ContainerOpenedBy(key)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  key: %q container: %q\n", itemLabel(text, key), itemLabel(text, container))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Contents ---")
	for c := items.ID(0); c < items.Containers; c++ {
		fmt.Fprintf(w, "  container: %q content: %q\n", itemLabel(text, c), itemLabel(text, g.Items.ContentOf(c)))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Player inventory ---")
	if g.Inventory.IsEmpty() {
		fmt.Fprintln(w, "  (none)")
	}
	for _, slot := range g.Inventory.Held() {
		fmt.Fprintf(w, "  slot: %d item_name: %q\n", slot+1, itemLabel(text, g.Inventory.Item(slot)))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

func itemLabel(text *content.World, id items.ID) string {
	if !id.IsValid() {
		return "(unplaced)"
	}
	return text.ItemName(id)
}

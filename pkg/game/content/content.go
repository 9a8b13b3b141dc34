// Package content loads the world text: title, instructions, room descriptions and item names.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"tangrin/pkg/engine/world"
	"tangrin/pkg/game/items"
)

//go:embed tangrin.ini
var defaultContent []byte

// InstructionPages is the number of instruction pages shown before a game
const InstructionPages = 3

// ErrIncomplete is returned when a content file leaves a room or item without text.
var ErrIncomplete = errors.New("content is incomplete")

// World is the text of one game world.
type World struct {
	Title        string
	Instructions [InstructionPages]string
	Rooms        [world.Locations]string
	Items        [items.Count]string
}

// Default returns the built-in world text
func Default() *World {
	w, err := parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("built-in content: %v", err))
	}
	return w
}

// Load reads the content file at path on top of the built-in text, so a file
// only needs the sections it changes. An empty path returns the built-in text.
func Load(path string) (*World, error) {
	if path == "" {
		return Default(), nil
	}
	w, err := parse(defaultContent, path)
	if err != nil {
		return nil, fmt.Errorf("loading content %s: %w", path, err)
	}
	return w, nil
}

func parse(source any, others ...any) (*World, error) {
	cfg, err := ini.Load(source, others...)
	if err != nil {
		return nil, err
	}

	w := &World{
		Title: cfg.Section("Game").Key("Title").String(),
	}

	instr := cfg.Section("Instructions")
	for i := range w.Instructions {
		w.Instructions[i] = instr.Key(fmt.Sprintf("Page%d", i+1)).String()
	}

	var missing []string
	for i := range w.Rooms {
		w.Rooms[i] = cfg.Section(fmt.Sprintf("Room%d", i)).Key("Description").String()
		if w.Rooms[i] == "" {
			missing = append(missing, fmt.Sprintf("Room%d", i))
		}
	}
	for i := range w.Items {
		w.Items[i] = cfg.Section(fmt.Sprintf("Item%d", i)).Key("Name").String()
		if w.Items[i] == "" {
			missing = append(missing, fmt.Sprintf("Item%d", i))
		}
	}
	if w.Title == "" {
		missing = append(missing, "Game.Title")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return w, nil
}

// RoomDescription returns the description of loc
func (w *World) RoomDescription(loc world.Location) string {
	if !loc.IsValid() {
		return ""
	}
	return w.Rooms[loc]
}

// ItemName returns the name of id, with its article
func (w *World) ItemName(id items.ID) string {
	if !id.IsValid() {
		return ""
	}
	return w.Items[id]
}

// ItemNameWithoutArticle returns the name of id with a leading a, an or the removed
func (w *World) ItemNameWithoutArticle(id items.ID) string {
	return WithoutArticle(w.ItemName(id))
}

// WithoutArticle removes a leading article from name
func WithoutArticle(name string) string {
	for _, article := range []string{"a ", "an ", "the "} {
		if len(name) > len(article) && strings.EqualFold(name[:len(article)], article) {
			return name[len(article):]
		}
	}
	return name
}

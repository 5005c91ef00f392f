package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a saved map: a flat list of placed items.
type Level struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is one placed thing. Kind is one of wall, door, exit, wire, warden
// or prisoner.
type Item struct {
	Kind     string `json:"item"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Vertical bool   `json:"vertical,omitempty"`
}

// Bounds returns the inclusive cell rectangle spanned by the items.
func (l *Level) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	if l == nil || len(l.Items) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = l.Items[0].X, l.Items[0].Y
	maxX, maxY = minX, minY
	for _, it := range l.Items[1:] {
		minX = min(minX, it.X)
		minY = min(minY, it.Y)
		maxX = max(maxX, it.X)
		maxY = max(maxY, it.Y)
	}
	return minX, minY, maxX, maxY, true
}

// Count returns how many items of kind the level holds.
func (l *Level) Count(kind string) int {
	n := 0
	for _, it := range l.Items {
		if strings.EqualFold(it.Kind, kind) {
			n++
		}
	}
	return n
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, levelFile(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return parseLevel(data)
}

// LoadLevel reads a level from a JSON file on disk when name points at one,
// otherwise from the embedded set.
func LoadLevel(name string) (*Level, error) {
	if filepath.Ext(name) == ".json" {
		if data, err := os.ReadFile(name); err == nil {
			return parseLevel(data)
		}
	}
	return LoadLevelFromFS(name)
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names
}

func levelFile(name string) string {
	name = filepath.Base(name)
	if filepath.Ext(name) != ".json" {
		name += ".json"
	}
	return name
}

func parseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if len(lvl.Items) == 0 {
		return nil, fmt.Errorf("level %q has no items", lvl.Name)
	}
	return &lvl, nil
}

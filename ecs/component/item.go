package component

import (
	"fmt"
	"strings"
)

// ItemKind identifies a placeable level item.
type ItemKind int

const (
	ItemWall ItemKind = iota + 1
	ItemDoor
	ItemExit
	ItemWire
	ItemWardenSpawn
	ItemPrisonerSpawn
)

var itemNames = map[ItemKind]string{
	ItemWall:          "wall",
	ItemDoor:          "door",
	ItemExit:          "exit",
	ItemWire:          "wire",
	ItemWardenSpawn:   "warden",
	ItemPrisonerSpawn: "prisoner",
}

func (k ItemKind) String() string {
	if name, ok := itemNames[k]; ok {
		return name
	}
	return fmt.Sprintf("item(%d)", int(k))
}

// ParseItemKind maps a level file name to its kind.
func ParseItemKind(name string) (ItemKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range itemNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown item %q", name)
}

// Blocking reports whether the item starts out non-walkable.
func (k ItemKind) Blocking() bool {
	return k == ItemWall || k == ItemDoor
}

// ItemComponent records what kind of item an entity was placed as.
var ItemComponent = NewComponent[ItemKind]()

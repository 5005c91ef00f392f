package entity

import (
	"fmt"

	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/levels"
	"github.com/milk9111/dontescape/logger"
	"github.com/milk9111/dontescape/nav"
	"go.uber.org/zap"
)

// LevelSummary counts what a level load produced.
type LevelSummary struct {
	Walls     int
	Doors     int
	Exits     int
	Wires     int
	Wardens   int
	Prisoners int
}

// LoadLevelToWorld marks every cell inside the level bounds walkable, stamps
// the blocking footprints over them and spawns the level's entities. The
// first warden placed becomes the keyboard controlled one.
func LoadLevelToWorld(w *ecs.World, m *nav.WalkabilityMap, lvl *levels.Level, rng Rand) (LevelSummary, error) {
	var sum LevelSummary
	if w == nil || m == nil {
		return sum, fmt.Errorf("load level: world and map are required")
	}

	minX, minY, maxX, maxY, ok := lvl.Bounds()
	if !ok {
		return sum, fmt.Errorf("load level: %q is empty", lvl.Name)
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			m.SetWalkable(nav.Cell{X: x, Y: y}, true)
		}
	}

	type spawn struct {
		kind component.ItemKind
		cell nav.Cell
	}
	var spawns []spawn

	for i, it := range lvl.Items {
		kind, err := component.ParseItemKind(it.Kind)
		if err != nil {
			return sum, fmt.Errorf("load level: item %d: %w", i, err)
		}
		cell := nav.Cell{X: it.X, Y: it.Y}

		switch kind {
		case component.ItemWall:
			if _, err := addStatic(w, m, kind, cell, nil); err != nil {
				return sum, err
			}
			sum.Walls++
		case component.ItemDoor:
			e, err := addStatic(w, m, kind, cell, component.DoorOffsets(it.Vertical))
			if err != nil {
				return sum, err
			}
			if err := ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{Vertical: it.Vertical}); err != nil {
				return sum, fmt.Errorf("load level: door at %s: %w", cell, err)
			}
			sum.Doors++
		case component.ItemExit:
			sum.Exits++
			spawns = append(spawns, spawn{kind, cell})
		case component.ItemWire:
			sum.Wires++
			spawns = append(spawns, spawn{kind, cell})
		case component.ItemWardenSpawn, component.ItemPrisonerSpawn:
			spawns = append(spawns, spawn{kind, cell})
		}
	}

	for _, s := range spawns {
		var err error
		switch s.kind {
		case component.ItemExit:
			err = addMarker(w, s.kind, s.cell, component.ExitTagComponent.Kind(), &component.ExitTag{})
		case component.ItemWire:
			err = addMarker(w, s.kind, s.cell, component.WireComponent.Kind(), &component.Wire{})
		case component.ItemWardenSpawn:
			_, err = NewWardenAt(w, s.cell, sum.Wardens == 0)
			sum.Wardens++
		case component.ItemPrisonerSpawn:
			_, err = NewPrisonerAt(w, s.cell, rng)
			sum.Prisoners++
		}
		if err != nil {
			return sum, fmt.Errorf("load level: %s at %s: %w", s.kind, s.cell, err)
		}
	}

	logger.Info("level loaded",
		zap.String("name", lvl.Name),
		zap.Int("walls", sum.Walls),
		zap.Int("doors", sum.Doors),
		zap.Int("exits", sum.Exits),
		zap.Int("wires", sum.Wires),
		zap.Int("wardens", sum.Wardens),
		zap.Int("prisoners", sum.Prisoners),
	)
	return sum, nil
}

// addStatic creates a blocking item and writes its footprint into m.
func addStatic(w *ecs.World, m *nav.WalkabilityMap, kind component.ItemKind, anchor nav.Cell, offsets []nav.Cell) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	fp := &component.Footprint{Anchor: anchor, Offsets: offsets, Walkable: !kind.Blocking()}
	if err := ecs.Add(w, e, component.ItemComponent.Kind(), &kind); err != nil {
		return 0, fmt.Errorf("load level: %s at %s: %w", kind, anchor, err)
	}
	if err := ecs.Add(w, e, component.FootprintComponent.Kind(), fp); err != nil {
		return 0, fmt.Errorf("load level: %s at %s: %w", kind, anchor, err)
	}
	fp.Apply(m)
	return e, nil
}

func addMarker[T any](w *ecs.World, kind component.ItemKind, cell nav.Cell, k component.ComponentKind[T], v *T) error {
	e := ecs.CreateEntity(w)
	pos := cell.Position()
	if err := ecs.Add(w, e, component.ItemComponent.Kind(), &kind); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PositionComponent.Kind(), &pos); err != nil {
		return err
	}
	return ecs.Add(w, e, k, v)
}

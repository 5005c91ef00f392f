package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/logger"
	"github.com/milk9111/dontescape/nav"
	"go.uber.org/zap"
)

const defaultEscapeInterval = 300

// EscapeSystem sends idle prisoners towards an exit every interval ticks and
// marks prisoners that reached one.
type EscapeSystem struct {
	finder   nav.PathFinder
	selector ExitSelector
	rng      Rand
	interval int
	tick     int
	escaped  int
}

func NewEscapeSystem(m *nav.WalkabilityMap, selector ExitSelector, rng Rand, interval int) *EscapeSystem {
	if interval <= 0 {
		interval = defaultEscapeInterval
	}
	if selector == nil {
		selector = RandomSelector{}
	}
	return &EscapeSystem{
		finder:   nav.PathFinder{Map: m},
		selector: selector,
		rng:      rng,
		interval: interval,
	}
}

// Escaped returns how many prisoners have reached an exit.
func (s *EscapeSystem) Escaped() int {
	if s == nil {
		return 0
	}
	return s.escaped
}

func (s *EscapeSystem) SetSelector(selector ExitSelector) {
	if selector != nil {
		s.selector = selector
	}
}

func (s *EscapeSystem) SetInterval(ticks int) {
	if ticks > 0 {
		s.interval = ticks
	}
}

func (s *EscapeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	exits := exitCells(w)
	s.markEscaped(w, exits)

	s.tick++
	if s.tick%s.interval != 0 || len(exits) == 0 {
		return
	}
	s.requestPaths(w, exits)
}

func exitCells(w *ecs.World) []nav.Cell {
	var exits []nav.Cell
	ecs.ForEach2(w, component.ExitTagComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, _ *component.ExitTag, pos *nav.Position) {
		exits = append(exits, pos.NearestCell())
	})
	return exits
}

func (s *EscapeSystem) markEscaped(w *ecs.World, exits []nav.Cell) {
	if len(exits) == 0 {
		return
	}
	onExit := make(map[nav.Cell]bool, len(exits))
	for _, c := range exits {
		onExit[c] = true
	}

	ecs.ForEach2(w, component.PrisonerTagComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.PrisonerTag, pos *nav.Position) {
		if ecs.Has(w, e, component.PathComponent.Kind()) || ecs.Has(w, e, component.EscapedComponent.Kind()) {
			return
		}
		if !onExit[pos.NearestCell()] {
			return
		}

		_ = ecs.Add(w, e, component.EscapedComponent.Kind(), &component.Escaped{})
		ecs.Remove(w, e, component.EscapingComponent.Kind())
		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			*vel = nav.Velocity{}
		}

		s.escaped++
		w.Events().Push(ecs.Event{Type: ecs.EventEscaped, Data: ecs.EntityEvent{Entity: e}})
		logger.Info("prisoner escaped", zap.Stringer("entity", e), zap.Stringer("exit", pos.NearestCell()), zap.Int("total", s.escaped))
	})
}

func (s *EscapeSystem) requestPaths(w *ecs.World, exits []nav.Cell) {
	ecs.ForEach2(w, component.PrisonerTagComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.PrisonerTag, pos *nav.Position) {
		if ecs.Has(w, e, component.PathComponent.Kind()) || ecs.Has(w, e, component.EscapedComponent.Kind()) {
			return
		}

		from := pos.NearestCell()
		idx, err := s.selector.SelectExit(exits, from, s.roll())
		if err != nil {
			logger.Warn("exit selection failed", zap.Stringer("entity", e), zap.Error(err))
			idx, _ = RandomSelector{}.SelectExit(exits, from, s.roll())
		}

		cells, cost, ok := s.finder.FindPath(from, exits[idx])
		if !ok {
			logger.Debug("no path to exit", zap.Stringer("entity", e), zap.Stringer("from", from), zap.Stringer("exit", exits[idx]))
			return
		}
		path, err := nav.NewPath(cells)
		if err != nil {
			return
		}

		_ = ecs.Add(w, e, component.PathComponent.Kind(), path)
		_ = ecs.Add(w, e, component.EscapingComponent.Kind(), &component.Escaping{})
		logger.Debug("escape path requested", zap.Stringer("entity", e), zap.Stringer("exit", exits[idx]), zap.Int("cost", cost))
	})
}

func (s *EscapeSystem) roll() float64 {
	if s.rng == nil {
		return 0
	}
	return s.rng.Float64()
}

package system

import (
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/logger"
	"go.uber.org/zap"
)

const (
	defaultDamageOdds   = 1000
	defaultDamagedTicks = 120
)

// WireSystem randomly damages wires, breaks wires left damaged too long and
// forces every door open while any wire is broken.
type WireSystem struct {
	rng          Rand
	damageOdds   int
	damagedTicks int
}

func NewWireSystem(rng Rand, damageOdds, damagedTicks int) *WireSystem {
	if damageOdds <= 0 {
		damageOdds = defaultDamageOdds
	}
	if damagedTicks <= 0 {
		damagedTicks = defaultDamagedTicks
	}
	return &WireSystem{rng: rng, damageOdds: damageOdds, damagedTicks: damagedTicks}
}

// SetTuning replaces the damage odds and timer; non-positive values keep the
// current setting.
func (s *WireSystem) SetTuning(damageOdds, damagedTicks int) {
	if damageOdds > 0 {
		s.damageOdds = damageOdds
	}
	if damagedTicks > 0 {
		s.damagedTicks = damagedTicks
	}
}

func (s *WireSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.damageRandomWire(w)

	anyBroken := false
	ecs.ForEach(w, component.WireComponent.Kind(), func(e ecs.Entity, wire *component.Wire) {
		if wire.State == component.WireDamaged {
			wire.TicksLeft--
			if wire.TicksLeft <= 0 {
				wire.State = component.WireBroken
				wire.TicksLeft = 0
				logger.Warn("wire broken", zap.Stringer("entity", e))
			}
		}
		if wire.State == component.WireBroken {
			anyBroken = true
		}
	})

	if !anyBroken {
		return
	}
	ecs.ForEach(w, component.DoorComponent.Kind(), func(e ecs.Entity, _ *component.Door) {
		SetDoorOpen(w, e, true)
	})
}

func (s *WireSystem) damageRandomWire(w *ecs.World) {
	if s.rng == nil || s.rng.Intn(s.damageOdds) != 0 {
		return
	}

	var intact []*component.Wire
	var ents []ecs.Entity
	ecs.ForEach(w, component.WireComponent.Kind(), func(e ecs.Entity, wire *component.Wire) {
		if wire.State == component.WireIntact {
			intact = append(intact, wire)
			ents = append(ents, e)
		}
	})
	if len(intact) == 0 {
		logger.Debug("no intact wires left to damage")
		return
	}

	i := s.rng.Intn(len(intact))
	intact[i].State = component.WireDamaged
	intact[i].TicksLeft = s.damagedTicks
	logger.Info("wire damaged", zap.Stringer("entity", ents[i]), zap.Int("ticks", s.damagedTicks))
}

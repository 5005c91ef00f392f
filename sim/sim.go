// Package sim assembles a level, its entities and the tick pipeline into a
// runnable simulation shared by the window, terminal and headless front ends.
package sim

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/dontescape/config"
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/ecs/entity"
	"github.com/milk9111/dontescape/ecs/system"
	"github.com/milk9111/dontescape/levels"
	"github.com/milk9111/dontescape/logger"
	"github.com/milk9111/dontescape/nav"
	"github.com/milk9111/dontescape/prefabs"
	"go.uber.org/zap"
)

type Sim struct {
	world    *ecs.World
	walkable *nav.WalkabilityMap
	sched    *ecs.Scheduler
	camera   *system.CameraSystem

	input  *system.InputSystem
	warden *system.WardenActionSystem
	escape *system.EscapeSystem
	wires  *system.WireSystem

	rng     *rand.Rand
	seed    int64
	tick    int
	level   *levels.Level
	summary entity.LevelSummary
	events  []ecs.Event
}

// New loads cfg.Sim.Level and wires up the pipeline. input may be nil for a
// run without a keyboard.
func New(cfg *config.Config, input system.InputSource) (*Sim, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	prefabs.SetDir(cfg.Prefabs.Dir)

	lvl, err := levels.LoadLevel(cfg.Sim.Level)
	if err != nil {
		return nil, fmt.Errorf("sim: level %q: %w", cfg.Sim.Level, err)
	}
	return NewWithLevel(cfg, lvl, input)
}

// NewWithLevel is New with an already loaded level.
func NewWithLevel(cfg *config.Config, lvl *levels.Level, input system.InputSource) (*Sim, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	wiresSpec, err := prefabs.LoadWiresSpec()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	escapeSpec, err := prefabs.LoadEscapeSpec()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	selector, err := loadSelector(escapeSpec.Script)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Sim{
		world:    ecs.NewWorld(),
		walkable: nav.NewWalkabilityMap(),
		camera:   system.NewCameraSystem(),
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		level:    lvl,
	}

	s.summary, err = entity.LoadLevelToWorld(s.world, s.walkable, lvl, s.rng)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	camEntity, err := entity.NewCamera(s.world)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if lerp := cfg.Display.CameraLerp; lerp > 0 {
		if cam, ok := ecs.Get(s.world, camEntity, component.CameraComponent.Kind()); ok {
			cam.Smoothness = lerp
		}
	}

	s.input = system.NewInputSystem(input)
	s.warden = system.NewWardenActionSystem(escapeSpec.CatchReach)
	s.escape = system.NewEscapeSystem(s.walkable, selector, s.rng, escapeSpec.IntervalTicks)
	s.wires = system.NewWireSystem(s.rng, wiresSpec.DamageOdds, wiresSpec.DamagedTicks)

	s.sched = system.NewTickPipeline(s.walkable, cfg.Display.CellSize, system.TickSystems{
		Input:  s.input,
		Warden: s.warden,
		Escape: s.escape,
		Wires:  s.wires,
	})
	s.sched.Add(recorder{s})

	// place transforms and the camera before the first tick is drawn
	system.NewPositionSyncSystem(cfg.Display.CellSize).Update(s.world)
	s.camera.Update(s.world)

	logger.Info("sim ready", zap.String("level", lvl.Name), zap.Int64("seed", seed))
	return s, nil
}

func loadSelector(script string) (system.ExitSelector, error) {
	if script == "" {
		return system.RandomSelector{}, nil
	}
	src, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", script, err)
	}
	return system.NewScriptSelector(src)
}

// recorder keeps a copy of each tick's events before the scheduler drops them.
type recorder struct {
	s *Sim
}

func (r recorder) Update(w *ecs.World) {
	r.s.events = append(r.s.events[:0], w.Events().Peek()...)
}

// Step runs one fixed tick.
func (s *Sim) Step() {
	s.sched.Update(s.world)
	s.camera.Update(s.world)
	s.tick++
}

// Run steps n ticks.
func (s *Sim) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func (s *Sim) World() *ecs.World            { return s.world }
func (s *Sim) Map() *nav.WalkabilityMap     { return s.walkable }
func (s *Sim) Tick() int                    { return s.tick }
func (s *Sim) Seed() int64                  { return s.seed }
func (s *Sim) Level() *levels.Level         { return s.level }
func (s *Sim) Summary() entity.LevelSummary { return s.summary }
func (s *Sim) Escaped() int                 { return s.escape.Escaped() }
func (s *Sim) Captured() int                { return s.warden.Captured() }

// Events returns the events raised during the last tick.
func (s *Sim) Events() []ecs.Event {
	return s.events
}

func (s *Sim) SetInput(input system.InputSource) {
	s.input.SetSource(input)
}

// Camera returns the smoothed camera centre in pixels.
func (s *Sim) Camera() (x, y float64, ok bool) {
	e, found := ecs.First(s.world, component.CameraComponent.Kind())
	if !found {
		return 0, 0, false
	}
	cam, found := ecs.Get(s.world, e, component.CameraComponent.Kind())
	if !found || !cam.Snapped {
		return 0, 0, false
	}
	return cam.X, cam.Y, true
}

// Reload re-reads tuning after a spec or script changed on disk. Entity
// prefabs only apply to entities spawned later.
func (s *Sim) Reload(path string) error {
	name := filepath.Base(path)
	switch {
	case name == "wires.yaml":
		spec, err := prefabs.LoadWiresSpec()
		if err != nil {
			return err
		}
		s.wires.SetTuning(spec.DamageOdds, spec.DamagedTicks)
	case name == "escape.yaml" || strings.HasSuffix(name, ".tengo"):
		spec, err := prefabs.LoadEscapeSpec()
		if err != nil {
			return err
		}
		selector, err := loadSelector(spec.Script)
		if err != nil {
			return err
		}
		s.escape.SetSelector(selector)
		s.escape.SetInterval(spec.IntervalTicks)
		s.warden.SetReach(spec.CatchReach)
	default:
		return nil
	}
	logger.Info("tuning reloaded", zap.String("file", name))
	return nil
}

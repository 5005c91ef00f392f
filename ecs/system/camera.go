package system

import (
	"github.com/milk9111/dontescape/common"
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
)

// CameraSystem eases the camera towards the keyboard controlled entity. It
// runs once per frame outside the tick pipeline.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	if !ecs.IsAlive(w, cs.camEntity) {
		e, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = e
	}
	if !ecs.IsAlive(w, cs.targetEntity) || !ecs.Has(w, cs.targetEntity, component.KeyboardControlComponent.Kind()) {
		e, ok := ecs.First(w, component.KeyboardControlComponent.Kind())
		if !ok {
			return
		}
		cs.targetEntity = e
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if !cam.Snapped {
		cam.X, cam.Y = target.X, target.Y
		cam.Snapped = true
		return
	}

	t := common.Clamp(cam.Smoothness, 0, 1)
	if t == 0 {
		t = 1
	}
	cam.X = common.Lerp(cam.X, target.X, t)
	cam.Y = common.Lerp(cam.Y, target.Y, t)
}

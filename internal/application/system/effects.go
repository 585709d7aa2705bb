package system

import "github.com/younwookim/sunrun/internal/domain/entity"

// EffectSystem drives the walk/run dust and jump burst effects from the
// actor's motion state. At most one effect of each type is live.
type EffectSystem struct {
	specs [entity.EffectTypeCount]entity.EffectSpec
	live  [entity.EffectTypeCount]*entity.Effect
}

// NewEffectSystem creates an effect system with the given per-type specs
func NewEffectSystem(specs [entity.EffectTypeCount]entity.EffectSpec) *EffectSystem {
	return &EffectSystem{specs: specs}
}

// Spec returns the spec of an effect type
func (s *EffectSystem) Spec(t entity.EffectType) entity.EffectSpec {
	return s.specs[t]
}

// Update advances live effects by dt seconds, then applies the motion
// transitions for the actor.
func (s *EffectSystem) Update(a *entity.Actor, dt float64) {
	for t := range s.live {
		e := s.live[t]
		if e == nil {
			continue
		}
		spec := s.specs[t]
		if e.Type.Locomotion() {
			s.anchor(e, a)
		}
		e.FrameTime += dt
		if e.FrameTime >= spec.FrameDelay {
			e.FrameTime = 0
			e.Frame++
			if e.Frame >= spec.Frames {
				if spec.Loop {
					e.Frame = 0
				} else {
					s.live[t] = nil
				}
			}
		}
	}

	switch {
	case a.OnGround && a.VelX != 0:
		mode, other := entity.EffectWalk, entity.EffectRun
		if a.IsRunning {
			mode, other = entity.EffectRun, entity.EffectWalk
		}
		s.live[other] = nil
		if s.live[mode] == nil {
			e := &entity.Effect{Type: mode}
			s.anchor(e, a)
			s.live[mode] = e
		}
	case !a.OnGround:
		s.live[entity.EffectWalk] = nil
		if a.VelY > 0 {
			s.live[entity.EffectRun] = nil
		}
	default:
		s.live[entity.EffectWalk] = nil
		s.live[entity.EffectRun] = nil
	}
}

// anchor places a locomotion effect behind the actor
func (s *EffectSystem) anchor(e *entity.Effect, a *entity.Actor) {
	spec := s.specs[e.Type]
	if a.FacingRight {
		e.X = a.X + spec.OffsetX
	} else {
		e.X = a.X - spec.OffsetX - spec.Size + a.W
	}
	e.Y = a.Y + spec.OffsetY
	e.FacingRight = a.FacingRight
}

// ActivateJump starts a jump burst at the given position, replacing any
// burst still playing.
func (s *EffectSystem) ActivateJump(x, y float64, facingRight bool) {
	spec := s.specs[entity.EffectJump]
	s.live[entity.EffectJump] = &entity.Effect{
		Type:        entity.EffectJump,
		X:           x + spec.OffsetX,
		Y:           y + spec.OffsetY,
		FacingRight: facingRight,
	}
}

// Clear removes every live effect
func (s *EffectSystem) Clear() {
	for t := range s.live {
		s.live[t] = nil
	}
}

// Active returns the live effects in type order
func (s *EffectSystem) Active() []entity.Effect {
	out := make([]entity.Effect, 0, len(s.live))
	for _, e := range s.live {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// Get returns the live effect of a type
func (s *EffectSystem) Get(t entity.EffectType) (entity.Effect, bool) {
	if e := s.live[t]; e != nil {
		return *e, true
	}
	return entity.Effect{}, false
}

package shaft

import (
	"math"

	"github.com/vovakirdan/tui-shaft/internal/config"
)

// CollisionKind is the outcome of a collision pass.
type CollisionKind int

const (
	NoCollision CollisionKind = iota
	SpikeHit
	PlatformLanded
)

func (k CollisionKind) String() string {
	switch k {
	case SpikeHit:
		return "spike"
	case PlatformLanded:
		return "landed"
	default:
		return "none"
	}
}

// Collision reports what the player hit this frame.
type Collision struct {
	Kind     CollisionKind
	Platform *Platform
}

// Physics resolves player contacts. It holds only tuning; all state lives
// on the player and platforms it is given.
type Physics struct {
	jumpPower     float64
	springFactor  float64
	ceilingHeight float64
	pushSpeed     float64
}

// NewPhysics builds a resolver from configuration.
func NewPhysics(cfg config.ShaftConfig) Physics {
	return Physics{
		jumpPower:     cfg.Physics.JumpPower,
		springFactor:  cfg.Physics.SpringMultiplier,
		ceilingHeight: cfg.Hazards.CeilingHeight,
		pushSpeed:     cfg.Hazards.PushSpeed,
	}
}

// CheckCollisions tests a falling player against platforms in order and
// resolves the first contact. The spring flag is cleared every call; a
// spring only launches on the first frame of contact.
func (ph Physics) CheckCollisions(p *Player, platforms []*Platform) Collision {
	wasOnSpring := p.OnSpring
	p.OnSpring = false

	if p.VelocityY <= 0 {
		return Collision{}
	}

	body := p.Box()
	for _, plat := range platforms {
		if !body.FeetWithin(plat.Box()) {
			continue
		}
		return ph.resolve(p, plat, wasOnSpring)
	}
	return Collision{}
}

func (ph Physics) resolve(p *Player, plat *Platform, wasOnSpring bool) Collision {
	switch plat.Type {
	case PlatformSpike:
		p.VelocityY = math.Max(p.VelocityY, ph.pushSpeed)
		return Collision{Kind: SpikeHit, Platform: plat}

	case PlatformSpring:
		p.Attach(plat)
		p.OnSpring = true
		if !wasOnSpring {
			p.VelocityY = -ph.jumpPower * ph.springFactor
			p.Detach()
		}

	default:
		p.Attach(plat)
		if plat.Type == PlatformBreaking {
			plat.StartBreaking()
		}
	}
	return Collision{Kind: PlatformLanded, Platform: plat}
}

// CheckCeilingSpikeCollision reports whether the player touched the
// ceiling spikes and, if so, forces it downward.
func (ph Physics) CheckCeilingSpikeCollision(p *Player, depth float64) bool {
	if p.Y-depth > ph.ceilingHeight {
		return false
	}
	p.VelocityY = math.Max(p.VelocityY, ph.pushSpeed)
	return true
}

// CheckGameBounds reports whether the player fell below the visible area.
func (ph Physics) CheckGameBounds(p *Player, depth, canvasHeight float64) bool {
	return p.Y > depth+canvasHeight
}

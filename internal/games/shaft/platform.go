package shaft

import (
	"math/rand"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
)

// PlatformType tags a platform's behavior.
type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformMoving
	PlatformBreaking
	PlatformSpike
	PlatformSpring
)

// String returns the lowercase type name.
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformBreaking:
		return "breaking"
	case PlatformSpike:
		return "spike"
	case PlatformSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// PlatformID identifies a platform for the lifetime of a session.
// IDs are never reused, so a stale ID simply fails to resolve.
type PlatformID uint64

// NoPlatform is the zero ID; it never names a live platform.
const NoPlatform PlatformID = 0

// Platform is a single support or hazard in the shaft.
type Platform struct {
	ID        PlatformID
	X, Y      float64 // World position of the top-left corner
	Width     float64
	Height    float64
	Type      PlatformType
	Breaking  bool
	BreakTime int     // Frames left once breaking has started
	Direction float64 // -1 or +1, horizontal travel for moving platforms
	Speed     float64
}

// NewPlatform creates a platform. Direction and speed are drawn for every
// type so the RNG sequence does not depend on the type.
func NewPlatform(id PlatformID, x, y float64, typ PlatformType, rng *rand.Rand, cfg config.PlatformsConfig) *Platform {
	p := &Platform{
		ID:     id,
		X:      x,
		Y:      y,
		Width:  cfg.Width,
		Height: cfg.Height,
		Type:   typ,
	}

	p.Direction = -1
	if rng.Float64() > 0.5 {
		p.Direction = 1
	}
	p.Speed = cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)

	if typ == PlatformBreaking {
		p.BreakTime = cfg.BreakFrames
	}
	return p
}

// Box returns the platform's bounding box.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Update advances per-type behavior by one frame and reports whether the
// platform has expired and must be removed.
func (p *Platform) Update(canvasWidth float64) bool {
	if p.Type == PlatformMoving {
		p.X += p.Direction * p.Speed
		if p.X <= 0 || p.X+p.Width >= canvasWidth {
			p.Direction = -p.Direction
		}
	}

	if p.Breaking {
		p.BreakTime--
		return p.BreakTime <= 0
	}
	return false
}

// StartBreaking begins the countdown. It has no effect on other types or
// on a platform that is already breaking.
func (p *Platform) StartBreaking() {
	if p.Type == PlatformBreaking {
		p.Breaking = true
	}
}

// Color returns the display color for the platform's type.
func (p *Platform) Color() core.Color {
	switch p.Type {
	case PlatformMoving:
		return core.ColorMagenta
	case PlatformBreaking:
		if p.Breaking && p.BreakTime%5 == 0 {
			return core.ColorSalmon
		}
		return core.ColorYellow
	case PlatformSpike:
		return core.ColorRed
	case PlatformSpring:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightGreen
	}
}

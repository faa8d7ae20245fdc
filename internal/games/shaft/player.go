package shaft

import (
	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
)

// MoveDir is the horizontal input for one frame.
type MoveDir int

const (
	MoveLeft  MoveDir = -1
	MoveNone  MoveDir = 0
	MoveRight MoveDir = 1
)

// Player is the controllable body.
type Player struct {
	X, Y      float64
	Width     float64
	Height    float64
	VelocityX float64
	VelocityY float64

	IsOnPlatform    bool
	CurrentPlatform PlatformID
	OnSpring        bool

	moveSpeed   float64
	gravity     float64
	jumpPower   float64
	canvasWidth float64

	flashTicks  int // Length of the damage flash
	damageTicks int // Remaining flash ticks
}

// NewPlayer creates a player centred horizontally at the configured start height.
func NewPlayer(cfg config.ShaftConfig, canvasWidth float64, flashTicks int) *Player {
	return &Player{
		X:           canvasWidth/2 - cfg.Player.Width/2,
		Y:           cfg.Player.StartY,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		moveSpeed:   cfg.Player.MoveSpeed,
		gravity:     cfg.Physics.Gravity,
		jumpPower:   cfg.Physics.JumpPower,
		canvasWidth: canvasWidth,
		flashTicks:  flashTicks,
	}
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// SetCanvasWidth updates the horizontal bounds and pulls the player inside.
func (p *Player) SetCanvasWidth(width float64) {
	p.canvasWidth = width
	p.constrainToScreen()
}

// Update applies horizontal input, edge detection and moving-platform carry.
func (p *Player) Update(move MoveDir, platforms PlatformLookup) {
	switch move {
	case MoveLeft:
		p.VelocityX = -p.moveSpeed
	case MoveRight:
		p.VelocityX = p.moveSpeed
	default:
		p.VelocityX = 0
	}
	p.X += p.VelocityX
	p.constrainToScreen()

	if !p.IsOnPlatform {
		return
	}

	plat, ok := platforms.Lookup(p.CurrentPlatform)
	if !ok {
		p.Detach()
		return
	}
	if p.X+p.Width <= plat.X || p.X >= plat.X+plat.Width {
		p.Detach()
		return
	}

	if plat.Type == PlatformMoving {
		p.X += plat.Direction * plat.Speed
		p.constrainToScreen()
	}
}

func (p *Player) constrainToScreen() {
	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.Width > p.canvasWidth {
		p.X = p.canvasWidth - p.Width
	}
}

// ApplyGravity accelerates the player while airborne and integrates y.
func (p *Player) ApplyGravity() {
	if !p.IsOnPlatform {
		p.VelocityY += p.gravity
	}
	p.Y += p.VelocityY
}

// Jump launches the player off its platform. Returns false when airborne.
func (p *Player) Jump() bool {
	if !p.IsOnPlatform {
		return false
	}
	p.VelocityY = -p.jumpPower
	p.Detach()
	return true
}

// Attach rests the player on top of plat.
func (p *Player) Attach(plat *Platform) {
	p.IsOnPlatform = true
	p.CurrentPlatform = plat.ID
	p.Y = plat.Y - p.Height
	p.VelocityY = 0
}

// Detach clears platform adherence.
func (p *Player) Detach() {
	p.IsOnPlatform = false
	p.CurrentPlatform = NoPlatform
}

// Release detaches the player if its platform is among the removed IDs.
func (p *Player) Release(removed []PlatformID) {
	if !p.IsOnPlatform {
		return
	}
	for _, id := range removed {
		if id == p.CurrentPlatform {
			p.Detach()
			return
		}
	}
}

// TakeDamage starts (or restarts) the damage flash.
func (p *Player) TakeDamage() {
	p.damageTicks = p.flashTicks
}

// TickDamage ages the damage flash by one frame.
func (p *Player) TickDamage() {
	if p.damageTicks > 0 {
		p.damageTicks--
	}
}

// Damaged reports whether the damage flash is showing.
func (p *Player) Damaged() bool {
	return p.damageTicks > 0
}

// Color returns the body color, red while damaged.
func (p *Player) Color() core.Color {
	if p.Damaged() {
		return core.ColorRed
	}
	return core.ColorCyan
}

package shaft

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
)

// Glyphs
const (
	MarkerChar = '┄'
	SpikeChar  = '▼'
	BodyLeft   = '▐'
	BodyMid    = '█'
	BodyRight  = '▌'
	EyeChar    = '•'
)

// markerSpacing is the depth between background markers.
const markerSpacing = 100

// Viewport is the block of screen rows the world is drawn into.
type Viewport struct {
	Top  int // First screen row of the play area
	Rows int
}

// Renderer projects world units onto screen cells. The camera is pinned to
// depth: world y maps to row (y - depth) / cellHeight.
type Renderer struct {
	cellWidth  float64
	cellHeight float64
	spikeWidth float64

	canvasWidth float64
	spikes      []float64 // Left x of each ceiling tooth
}

// NewRenderer creates a renderer from the world and hazard settings.
func NewRenderer(cfg config.ShaftConfig) *Renderer {
	return &Renderer{
		cellWidth:  cfg.World.CellWidth,
		cellHeight: cfg.World.CellHeight,
		spikeWidth: cfg.Hazards.SpikeWidth,
	}
}

// Resize rebuilds the ceiling spike line for a new canvas width.
func (r *Renderer) Resize(canvasWidth float64) {
	r.canvasWidth = canvasWidth
	r.spikes = r.spikes[:0]
	if r.spikeWidth <= 0 {
		return
	}
	n := int(math.Floor(canvasWidth / r.spikeWidth))
	for i := 0; i < n; i++ {
		r.spikes = append(r.spikes, float64(i)*r.spikeWidth)
	}
}

// CeilingSpikes returns the number of teeth in the spike line.
func (r *Renderer) CeilingSpikes() int {
	return len(r.spikes)
}

func (r *Renderer) column(x float64) int {
	return int(math.Floor(x / r.cellWidth))
}

func (r *Renderer) row(y, depth float64, vp Viewport) int {
	return vp.Top + int(math.Floor((y-depth)/r.cellHeight))
}

// Render draws the world: markers first, then spikes, platforms and the player.
func (r *Renderer) Render(dst *core.Screen, vp Viewport, depth float64, platforms []*Platform, player *Player) {
	r.drawMarkers(dst, vp, depth)
	r.drawCeilingSpikes(dst, vp)

	for _, p := range platforms {
		r.drawPlatform(dst, vp, depth, p)
	}
	if player != nil {
		r.drawPlayer(dst, vp, depth, player)
	}
}

func (r *Renderer) set(dst *core.Screen, vp Viewport, x, y int, ch rune, c core.Color) {
	if y < vp.Top || y >= vp.Top+vp.Rows {
		return
	}
	dst.SetCell(x, y, ch, c)
}

func (r *Renderer) drawMarkers(dst *core.Screen, vp Viewport, depth float64) {
	bottom := depth + float64(vp.Rows)*r.cellHeight
	first := math.Ceil(depth/markerSpacing) * markerSpacing

	for d := first; d < bottom; d += markerSpacing {
		y := r.row(d, depth, vp)
		if y < vp.Top || y >= vp.Top+vp.Rows {
			continue
		}
		dst.DrawHLine(0, y, dst.Width(), MarkerChar, core.ColorDarkGray)
		dst.DrawTextColor(1, y, fmt.Sprintf(" %dm ", int(d)), core.ColorGray)
	}
}

func (r *Renderer) drawCeilingSpikes(dst *core.Screen, vp Viewport) {
	for _, x := range r.spikes {
		from := r.column(x)
		to := r.column(x + r.spikeWidth)
		for col := from; col < to; col++ {
			r.set(dst, vp, col, vp.Top, SpikeChar, core.ColorRed)
		}
	}
}

func platformGlyph(t PlatformType) rune {
	switch t {
	case PlatformMoving:
		return '═'
	case PlatformBreaking:
		return '▚'
	case PlatformSpike:
		return '▲'
	case PlatformSpring:
		return '≋'
	default:
		return '▀'
	}
}

func (r *Renderer) drawPlatform(dst *core.Screen, vp Viewport, depth float64, p *Platform) {
	y := r.row(p.Y, depth, vp)
	from := r.column(p.X)
	to := core.Max(r.column(p.X+p.Width), from+1)
	glyph := platformGlyph(p.Type)
	color := p.Color()

	for col := from; col < to; col++ {
		r.set(dst, vp, col, y, glyph, color)
	}
}

func (r *Renderer) drawPlayer(dst *core.Screen, vp Viewport, depth float64, p *Player) {
	top := r.row(p.Y, depth, vp)
	bottom := core.Max(r.row(p.Y+p.Height-1, depth, vp), top+1)
	left := r.column(p.X)
	right := core.Max(r.column(p.X+p.Width), left+3)
	color := p.Color()

	// Mouth opens while falling
	mouth := '‿'
	if p.VelocityY > 0 {
		mouth = 'o'
	}

	mid := left + (right-left)/2
	for col := left; col < right; col++ {
		face := ' '
		switch {
		case col == mid:
			face = mouth
		case col == left || col == right-1:
			face = EyeChar
		}
		r.set(dst, vp, col, top, face, color)
	}

	for y := top + 1; y <= bottom; y++ {
		for col := left; col < right; col++ {
			body := BodyMid
			switch col {
			case left:
				body = BodyLeft
			case right - 1:
				body = BodyRight
			}
			r.set(dst, vp, col, y, body, color)
		}
	}
}

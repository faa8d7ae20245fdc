package shaft

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shaft/internal/config"
)

// PlatformLookup resolves a platform ID to a live platform.
type PlatformLookup interface {
	Lookup(id PlatformID) (*Platform, bool)
}

// PlatformManager owns the live platforms and the spawn/despawn policy.
type PlatformManager struct {
	platforms    []*Platform
	rng          *rand.Rand
	cfg          config.PlatformsConfig
	canvasWidth  float64
	canvasHeight float64
	lastID       PlatformID
}

// NewPlatformManager creates an empty manager drawing from rng.
func NewPlatformManager(rng *rand.Rand, cfg config.PlatformsConfig, canvasWidth, canvasHeight float64) *PlatformManager {
	return &PlatformManager{
		platforms:    make([]*Platform, 0, cfg.MinCount*2),
		rng:          rng,
		cfg:          cfg,
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
	}
}

// Platforms returns the live platforms in collection order.
func (pm *PlatformManager) Platforms() []*Platform {
	return pm.platforms
}

// Len returns the number of live platforms.
func (pm *PlatformManager) Len() int {
	return len(pm.platforms)
}

// Lookup implements PlatformLookup.
func (pm *PlatformManager) Lookup(id PlatformID) (*Platform, bool) {
	if id == NoPlatform {
		return nil, false
	}
	for _, p := range pm.platforms {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Add appends a platform built by the caller and assigns it a fresh ID.
func (pm *PlatformManager) Add(x, y float64, typ PlatformType) *Platform {
	pm.lastID++
	p := NewPlatform(pm.lastID, x, y, typ, pm.rng, pm.cfg)
	pm.platforms = append(pm.platforms, p)
	return p
}

// Clear drops every platform.
func (pm *PlatformManager) Clear() {
	for i := range pm.platforms {
		pm.platforms[i] = nil
	}
	pm.platforms = pm.platforms[:0]
}

// CreateInitialPlatforms lays out a normal platform centred under the
// player's start, then fills down to MinCount at the base gap.
func (pm *PlatformManager) CreateInitialPlatforms(playerY float64) {
	firstY := playerY + pm.cfg.InitialOffset
	pm.Add(pm.canvasWidth/2-pm.cfg.Width/2, firstY, PlatformNormal)

	for i := 1; i < pm.cfg.MinCount; i++ {
		pm.createPlatform(firstY+float64(i)*pm.cfg.Gap, 0)
	}
}

// createPlatform spawns a platform at a random x using the depth-banded type policy.
func (pm *PlatformManager) createPlatform(y, depth float64) {
	span := math.Max(pm.canvasWidth-pm.cfg.Width, 0)
	x := pm.rng.Float64() * span
	pm.Add(x, y, pm.DeterminePlatformType(depth))
}

// DeterminePlatformType draws one random value and maps it through the
// cumulative thresholds of the deepest band whose AboveDepth is exceeded.
func (pm *PlatformManager) DeterminePlatformType(depth float64) PlatformType {
	return pm.typeFor(depth, pm.rng.Float64())
}

func (pm *PlatformManager) typeFor(depth, r float64) PlatformType {
	band, ok := pm.bandFor(depth)
	if !ok {
		return PlatformNormal
	}
	switch {
	case r < band.Spike:
		return PlatformSpike
	case r < band.Breaking:
		return PlatformBreaking
	case r < band.Moving:
		return PlatformMoving
	case r < band.Spring:
		return PlatformSpring
	}
	return PlatformNormal
}

func (pm *PlatformManager) bandFor(depth float64) (config.SpawnBand, bool) {
	var best config.SpawnBand
	found := false
	for _, b := range pm.cfg.SpawnBands {
		if depth > b.AboveDepth && (!found || b.AboveDepth > best.AboveDepth) {
			best = b
			found = true
		}
	}
	return best, found
}

// nextGap returns a randomized spawn gap, never below MinGap.
func (pm *PlatformManager) nextGap() float64 {
	return math.Max(pm.cfg.Gap*(1+pm.rng.Float64()*pm.cfg.GapJitter), pm.cfg.MinGap)
}

// Update runs one frame of platform lifecycle and returns the new spawn
// line together with the IDs of every platform removed this frame.
//
// Spawning is deliberately loose: the scheduled spawn and the top-up to
// MinCount both run every frame. Only the lower bound is guaranteed.
func (pm *PlatformManager) Update(depth, spawnDepth float64) (float64, []PlatformID) {
	var removed []PlatformID

	// Scrolled out above the retained window
	kept := pm.platforms[:0]
	for _, p := range pm.platforms {
		if p.Y > depth-pm.cfg.DespawnMargin {
			kept = append(kept, p)
		} else {
			removed = append(removed, p.ID)
		}
	}
	pm.truncate(kept)

	// Per-type behavior; breaking platforms expire here
	kept = pm.platforms[:0]
	for _, p := range pm.platforms {
		if p.Update(pm.canvasWidth) {
			removed = append(removed, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	pm.truncate(kept)

	if spawnDepth < depth+pm.canvasHeight {
		gap := pm.nextGap()
		pm.createPlatform(spawnDepth+gap, depth)
		spawnDepth += gap
	}

	for len(pm.platforms) < pm.cfg.MinCount {
		gap := pm.nextGap()
		pm.createPlatform(spawnDepth, depth)
		spawnDepth += gap
	}

	return spawnDepth, removed
}

// truncate installs kept as the live slice and clears the stale tail so
// removed platforms can be collected.
func (pm *PlatformManager) truncate(kept []*Platform) {
	for i := len(kept); i < len(pm.platforms); i++ {
		pm.platforms[i] = nil
	}
	pm.platforms = kept
}

// UpdateCanvasDimensions stores new bounds and pulls every platform back
// inside the new width.
func (pm *PlatformManager) UpdateCanvasDimensions(width, height float64) {
	pm.canvasWidth = width
	pm.canvasHeight = height

	for _, p := range pm.platforms {
		if p.X+p.Width > pm.canvasWidth {
			p.X = pm.canvasWidth - p.Width
		}
		if p.X < 0 {
			p.X = 0
		}
	}
}

// CanvasSize returns the stored bounds.
func (pm *PlatformManager) CanvasSize() (float64, float64) {
	return pm.canvasWidth, pm.canvasHeight
}

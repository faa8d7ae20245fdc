package shaft

import (
	"testing"
)

func TestCreateInitialPlatforms(t *testing.T) {
	pm := newTestManager(1)
	pm.CreateInitialPlatforms(100)

	if pm.Len() != 5 {
		t.Fatalf("expected 5 platforms, got %d", pm.Len())
	}

	first := pm.Platforms()[0]
	if first.X != 360 || first.Y != 150 || first.Type != PlatformNormal {
		t.Errorf("first platform: got (%v, %v, %v), want (360, 150, normal)", first.X, first.Y, first.Type)
	}

	for i, p := range pm.Platforms() {
		wantY := 150 + float64(i)*150
		if p.Y != wantY {
			t.Errorf("platform %d: Y = %v, want %v", i, p.Y, wantY)
		}
		if p.Type != PlatformNormal {
			t.Errorf("platform %d: type %v at depth 0", i, p.Type)
		}
		if p.X < 0 || p.X+p.Width > testCanvasW {
			t.Errorf("platform %d: X = %v outside canvas", i, p.X)
		}
	}
}

func TestPlatformIDsUnique(t *testing.T) {
	pm := newTestManager(3)
	pm.CreateInitialPlatforms(100)

	seen := make(map[PlatformID]bool)
	for _, p := range pm.Platforms() {
		if p.ID == NoPlatform {
			t.Error("live platform has the zero ID")
		}
		if seen[p.ID] {
			t.Errorf("duplicate ID %d", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestTypeForBands(t *testing.T) {
	pm := newTestManager(1)

	tests := []struct {
		depth float64
		r     float64
		want  PlatformType
	}{
		{50, 0.01, PlatformNormal},
		{100, 0.01, PlatformNormal},
		{150, 0.04, PlatformSpike},
		{150, 0.10, PlatformBreaking},
		{150, 0.30, PlatformMoving},
		{150, 0.40, PlatformSpring},
		{150, 0.50, PlatformNormal},
		{200, 0.07, PlatformBreaking},
		{300, 0.09, PlatformSpike},
		{300, 0.24, PlatformBreaking},
		{300, 0.45, PlatformSpring},
		{300, 0.55, PlatformNormal},
		{600, 0.14, PlatformSpike},
		{600, 0.50, PlatformMoving},
		{600, 0.60, PlatformSpring},
		{600, 0.71, PlatformNormal},
	}

	for _, tt := range tests {
		if got := pm.typeFor(tt.depth, tt.r); got != tt.want {
			t.Errorf("typeFor(%v, %v) = %v, want %v", tt.depth, tt.r, got, tt.want)
		}
	}
}

func TestDeterminePlatformTypeShallowIsNormal(t *testing.T) {
	pm := newTestManager(9)
	for i := 0; i < 1000; i++ {
		if got := pm.DeterminePlatformType(0); got != PlatformNormal {
			t.Fatalf("draw %d: got %v at depth 0", i, got)
		}
	}
}

func TestNextGapRange(t *testing.T) {
	pm := newTestManager(5)
	for i := 0; i < 1000; i++ {
		gap := pm.nextGap()
		if gap < 150 || gap >= 225 {
			t.Fatalf("gap %v outside [150, 225)", gap)
		}
	}
}

func TestUpdateKeepsMinimumAndWindow(t *testing.T) {
	pm := newTestManager(11)
	pm.CreateInitialPlatforms(100)

	depth := 0.0
	spawnDepth := 0.0
	for tick := 0; tick < 3000; tick++ {
		spawnDepth, _ = pm.Update(depth, spawnDepth)

		if pm.Len() < 5 {
			t.Fatalf("tick %d: only %d platforms", tick, pm.Len())
		}
		for _, p := range pm.Platforms() {
			if p.Y <= depth-100 {
				t.Fatalf("tick %d: platform at %v retained at depth %v", tick, p.Y, depth)
			}
		}
		depth += 0.5
	}
}

func TestUpdateRemovesScrolledPlatforms(t *testing.T) {
	pm := newTestManager(2)
	pm.CreateInitialPlatforms(100)
	first := pm.Platforms()[0]

	_, removed := pm.Update(250, 0)

	found := false
	for _, id := range removed {
		if id == first.ID {
			found = true
		}
	}
	if !found {
		t.Error("platform at y=150 should be removed at depth 250")
	}
	if _, ok := pm.Lookup(first.ID); ok {
		t.Error("removed platform still resolves")
	}
}

func TestBreakingPlatformExpires(t *testing.T) {
	pm := newTestManager(4)
	pm.CreateInitialPlatforms(100)
	b := pm.Add(100, 400, PlatformBreaking)

	spawnDepth := 0.0
	for i := 0; i < 59; i++ {
		spawnDepth, _ = pm.Update(0, spawnDepth)
	}
	if _, ok := pm.Lookup(b.ID); !ok {
		t.Fatal("idle breaking platform should not expire")
	}

	b.StartBreaking()
	for i := 0; i < 59; i++ {
		spawnDepth, _ = pm.Update(0, spawnDepth)
	}
	if _, ok := pm.Lookup(b.ID); !ok {
		t.Fatal("breaking platform expired early")
	}

	var removed []PlatformID
	_, removed = pm.Update(0, spawnDepth)
	if len(removed) == 0 || removed[len(removed)-1] != b.ID {
		t.Errorf("expected %d in removed, got %v", b.ID, removed)
	}
	if _, ok := pm.Lookup(b.ID); ok {
		t.Error("expired platform still resolves")
	}
}

func TestMovingPlatformReflects(t *testing.T) {
	p := mkPlatform(1, 5, 0, PlatformMoving)
	p.Direction = -1
	p.Speed = 3

	p.Update(testCanvasW)
	if p.X != 2 || p.Direction != -1 {
		t.Fatalf("first step: X=%v dir=%v", p.X, p.Direction)
	}
	p.Update(testCanvasW)
	if p.X != -1 || p.Direction != 1 {
		t.Errorf("left wall: X=%v dir=%v, want -1 and 1", p.X, p.Direction)
	}

	p.X = 718
	p.Update(testCanvasW)
	if p.X != 721 || p.Direction != -1 {
		t.Errorf("right wall: X=%v dir=%v, want 721 and -1", p.X, p.Direction)
	}
}

func TestStartBreakingOnlyForBreakingType(t *testing.T) {
	p := mkPlatform(1, 0, 0, PlatformNormal)
	p.StartBreaking()
	if p.Breaking {
		t.Error("normal platform should ignore StartBreaking")
	}
	if p.Update(testCanvasW) {
		t.Error("normal platform should never expire")
	}
}

func TestUpdateCanvasDimensionsClamps(t *testing.T) {
	pm := newTestManager(6)
	wide := pm.Add(700, 300, PlatformNormal)
	neg := pm.Add(-5, 400, PlatformNormal)

	pm.UpdateCanvasDimensions(500, 550)

	if wide.X != 420 {
		t.Errorf("X = %v, want 420", wide.X)
	}
	if neg.X != 0 {
		t.Errorf("X = %v, want 0", neg.X)
	}
	if w, h := pm.CanvasSize(); w != 500 || h != 550 {
		t.Errorf("CanvasSize = (%v, %v)", w, h)
	}
}

func TestLookupAndClear(t *testing.T) {
	pm := newTestManager(8)
	p := pm.Add(10, 10, PlatformNormal)

	if _, ok := pm.Lookup(NoPlatform); ok {
		t.Error("NoPlatform should never resolve")
	}
	if got, ok := pm.Lookup(p.ID); !ok || got != p {
		t.Error("added platform should resolve")
	}

	pm.Clear()
	if pm.Len() != 0 {
		t.Errorf("Len after Clear = %d", pm.Len())
	}
	if _, ok := pm.Lookup(p.ID); ok {
		t.Error("cleared platform still resolves")
	}
}

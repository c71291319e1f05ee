package kokaton

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/kokaton/internal/asset"
	"github.com/vovakirdan/kokaton/internal/core"
)

var testWorld = core.Bounds{W: 1100, H: 650}

func testCatalog(t *testing.T) *asset.Catalog {
	t.Helper()
	c, err := asset.Default()
	if err != nil {
		t.Fatalf("default sprites: %v", err)
	}
	return c
}

func testPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := NewPlayer(300, 200, 5, testWorld, testCatalog(t))
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	return p
}

func inputOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		v    core.Vec
		want Direction
	}{
		{core.Vec{X: 5, Y: 0}, DirRight},
		{core.Vec{X: 5, Y: -5}, DirUpRight},
		{core.Vec{X: 0, Y: -5}, DirUp},
		{core.Vec{X: -5, Y: -5}, DirUpLeft},
		{core.Vec{X: -5, Y: 0}, DirLeft},
		{core.Vec{X: -5, Y: 5}, DirDownLeft},
		{core.Vec{X: 0, Y: 5}, DirDown},
		{core.Vec{X: 5, Y: 5}, DirDownRight},
	}

	for _, tc := range tests {
		got, ok := DirectionOf(tc.v)
		if !ok || got != tc.want {
			t.Errorf("DirectionOf(%v) = %v, %v; expected %v", tc.v, got, ok, tc.want)
		}
	}

	if _, ok := DirectionOf(core.Vec{}); ok {
		t.Error("zero vector should not have a direction")
	}
}

func TestDirectionAngles(t *testing.T) {
	for i, d := range Directions {
		want := float64(i) * 45
		if want > 180 {
			want -= 360
		}
		if got := d.Angle(); math.Abs(got-want) > 1e-9 {
			t.Errorf("%v.Angle() = %v, expected %v", d, got, want)
		}
	}
}

func TestPlayerMove(t *testing.T) {
	p := testPlayer(t)
	right := inputOf(core.ActionRight)
	for i := 0; i < 3; i++ {
		p.Move(right)
	}

	cx, cy := p.Rect().Center()
	if cx != 315 || cy != 200 {
		t.Errorf("center after 3 right moves = (%d,%d), expected (315,200)", cx, cy)
	}
	if p.Direction() != DirRight {
		t.Errorf("direction = %v, expected right", p.Direction())
	}
}

func TestPlayerOpposingKeysCancel(t *testing.T) {
	p := testPlayer(t)
	p.Move(inputOf(core.ActionUp))
	before := p.Rect()

	p.Move(inputOf(core.ActionLeft, core.ActionRight))
	if p.Rect() != before {
		t.Errorf("opposing keys moved the player: %v -> %v", before, p.Rect())
	}
	if p.Direction() != DirUp {
		t.Errorf("zero net move should keep direction, got %v", p.Direction())
	}
}

func TestPlayerMoveRevertsWholeStep(t *testing.T) {
	p := testPlayer(t)
	p.rect = core.NewRect(0, 100, 90, 90)

	p.Move(inputOf(core.ActionLeft, core.ActionUp))

	if p.Rect() != core.NewRect(0, 100, 90, 90) {
		t.Errorf("out-of-bounds move should revert both axes, got %v", p.Rect())
	}
	if p.Direction() != DirUpLeft {
		t.Errorf("direction should still turn to up-left, got %v", p.Direction())
	}
}

func TestPlayerMoveToEdgeAllowed(t *testing.T) {
	p := testPlayer(t)
	p.rect = core.NewRect(5, 100, 90, 90)

	p.Move(inputOf(core.ActionLeft))
	if p.Rect().X != 0 {
		t.Errorf("touching the edge is in bounds, X = %d", p.Rect().X)
	}
}

func TestPlayerPose(t *testing.T) {
	p := testPlayer(t)

	if !p.SetPose(PoseHit) || p.Sprite().Name != "kokaton/6" {
		t.Fatalf("SetPose(hit) sprite = %q", p.Sprite().Name)
	}
	p.Move(core.NewInputFrame())
	if p.Sprite().Name != "kokaton/6" {
		t.Error("pose should persist without movement")
	}
	p.Move(inputOf(core.ActionDown))
	if p.Sprite().Name != "kokaton/3" || p.Sprite().Badge != DirDown.Arrow() {
		t.Errorf("moving should restore the facing sprite, got %q badge %q", p.Sprite().Name, p.Sprite().Badge)
	}
	if p.SetPose(42) {
		t.Error("unknown pose should be rejected")
	}
}

func TestNewBeam(t *testing.T) {
	base, err := testCatalog(t).Sprite("beam")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		move   []core.Action
		center [2]int
		size   [2]int
		vel    core.Vec
	}{
		{"right", nil, [2]int{390, 200}, [2]int{50, 10}, core.Vec{X: 5, Y: 0}},
		{"up", []core.Action{core.ActionUp}, [2]int{300, 105}, [2]int{10, 50}, core.Vec{X: 0, Y: -5}},
		{"up-right", []core.Action{core.ActionUp, core.ActionRight}, [2]int{395, 105}, [2]int{42, 42}, core.Vec{X: 5, Y: -5}},
		{"left", []core.Action{core.ActionLeft}, [2]int{205, 200}, [2]int{50, 10}, core.Vec{X: -5, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPlayer(t)
			if len(tc.move) > 0 {
				p.Move(inputOf(tc.move...))
			}

			b := NewBeam(p, 5, base)
			cx, cy := b.Rect().Center()
			if cx != tc.center[0] || cy != tc.center[1] {
				t.Errorf("center = (%d,%d), expected (%d,%d)", cx, cy, tc.center[0], tc.center[1])
			}
			if b.Rect().W != tc.size[0] || b.Rect().H != tc.size[1] {
				t.Errorf("size = %dx%d, expected %dx%d", b.Rect().W, b.Rect().H, tc.size[0], tc.size[1])
			}
			if b.Velocity() != tc.vel {
				t.Errorf("velocity = %v, expected %v", b.Velocity(), tc.vel)
			}
		})
	}
}

func TestBeamStopsOutsideWorld(t *testing.T) {
	b := &Beam{rect: core.NewRect(1080, 100, 50, 10), vel: core.Vec{X: 5}}
	if !b.Offscreen(testWorld) {
		t.Fatal("beam past the right edge should be offscreen")
	}
	b.Update(testWorld)
	if b.Rect().X != 1080 {
		t.Errorf("offscreen beam moved to X=%d", b.Rect().X)
	}
}

func TestHazardBounces(t *testing.T) {
	tests := []struct {
		name string
		rect core.Rect
		vel  core.Vec
		want core.Vec
	}{
		{"inside", core.NewRect(500, 300, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 5, Y: 5}},
		{"at right edge", core.NewRect(1080, 300, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 5, Y: 5}},
		{"past right edge", core.NewRect(1083, 300, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: -5, Y: 5}},
		{"past bottom", core.NewRect(500, 633, 20, 20), core.Vec{X: 5, Y: 5}, core.Vec{X: 5, Y: -5}},
		{"past corner", core.NewRect(-2, -3, 20, 20), core.Vec{X: -5, Y: -5}, core.Vec{X: 5, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &Hazard{rect: tc.rect, vel: tc.vel}
			h.Update(testWorld)
			if h.Velocity() != tc.want {
				t.Errorf("velocity = %v, expected %v", h.Velocity(), tc.want)
			}
			if h.Rect() != tc.rect.Moved(tc.want) {
				t.Errorf("rect = %v, expected %v", h.Rect(), tc.rect.Moved(tc.want))
			}
		})
	}
}

func TestSpawnHazardInsideAndClearOfPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	avoid := core.RectCentered(300, 200, 90, 90)

	for i := 0; i < 500; i++ {
		h := SpawnHazard(rng, testWorld, avoid, 10, 5, 20, core.ColorRed)
		if !core.Inside(h.Rect(), testWorld) {
			t.Fatalf("hazard %d spawned outside the world: %v", i, h.Rect())
		}
		if h.Rect().Intersects(avoid) {
			t.Fatalf("hazard %d spawned on the player: %v", i, h.Rect())
		}
		if h.Velocity() != (core.Vec{X: 5, Y: 5}) {
			t.Fatalf("initial velocity = %v", h.Velocity())
		}
	}
}

func TestSpawnHazardRollsAtLeastOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	avoid := core.RectCentered(300, 200, 90, 90)

	for _, attempts := range []int{-1, 0} {
		h := SpawnHazard(rng, testWorld, avoid, 10, 5, attempts, core.ColorRed)
		if h == nil {
			t.Fatalf("SpawnHazard(attempts=%d) returned nil", attempts)
		}
		if !core.Inside(h.Rect(), testWorld) {
			t.Errorf("attempts=%d: hazard spawned outside the world: %v", attempts, h.Rect())
		}
	}
}

func TestExplosionLifecycle(t *testing.T) {
	sprite, err := testCatalog(t).Sprite("explosion")
	if err != nil {
		t.Fatal(err)
	}
	e := NewExplosion(100, 100, 10, sprite)

	visible := 0
	prev := e.Frame().Art[0]
	for i := 0; i < 10; i++ {
		e.Update()
		if e.Visible() {
			visible++
			if e.Frame().Art[0] == prev {
				t.Errorf("tick %d: frame did not alternate", i)
			}
			prev = e.Frame().Art[0]
		}
	}

	if visible != 9 {
		t.Errorf("visible for %d ticks, expected 9", visible)
	}
	if e.State() != Removed {
		t.Error("explosion should be removed once life runs out")
	}
}

func TestScoreText(t *testing.T) {
	s := NewScore(100, 600, core.ColorBlue)
	s.Increment(1)
	s.Increment(2)
	if s.Value() != 3 || s.Text() != "Score: 3" {
		t.Errorf("score = %d %q", s.Value(), s.Text())
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	hs := []*Hazard{{rect: core.NewRect(1, 0, 1, 1)}, {rect: core.NewRect(2, 0, 1, 1)}, {rect: core.NewRect(3, 0, 1, 1)}}
	hs[1].Remove()

	kept := compact(hs)
	if len(kept) != 2 || kept[0].Rect().X != 1 || kept[1].Rect().X != 3 {
		t.Errorf("compact() = %v", kept)
	}
	if len(hs) != 3 || hs[1] == nil || hs[1].State() != Removed {
		t.Errorf("compact() modified its input: %v", hs)
	}
}

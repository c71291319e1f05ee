// Package kokaton implements Fight Kokaton: steer the kokaton around the
// field, shoot beams at bouncing bombs and avoid touching any of them.
package kokaton

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/kokaton/internal/asset"
	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "kokaton"

// Phase is the top-level game state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// requiredSprites must be present in any sprite pack.
var requiredSprites = []string{
	poseSpriteName(PoseDefault),
	poseSpriteName(PoseHit),
	poseSpriteName(PoseDefeated),
	"beam",
	"explosion",
	"background",
}

// Game implements the Fight Kokaton logic.
type Game struct {
	cfg     config.KokatonConfig
	sprites *asset.Catalog
	runtime core.RuntimeConfig
	world   core.Bounds
	rng     *rand.Rand

	player     *Player
	beams      []*Beam
	hazards    []*Hazard
	explosions []*Explosion
	score      Score

	beamSprite      asset.Sprite
	explosionSprite asset.Sprite
	background      asset.Sprite

	phase     Phase
	paused    bool
	tickCount uint64
	loadErr   error
}

// CLI-provided resource locations, shared by every new game.
var (
	configPath       string
	assetsPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssetsPath sets the custom sprite pack path for loading.
func SetAssetsPath(path string) {
	assetsPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadResources loads the configuration and sprite catalog from the
// configured locations and checks that every sprite the game draws exists.
func LoadResources() (config.KokatonConfig, *asset.Catalog, error) {
	cfg, err := config.LoadKokaton(configPath)
	if err != nil {
		return cfg, nil, err
	}
	config.ApplyKokatonPreset(&cfg, difficultyPreset)

	sprites, err := asset.LoadFile(assetsPath)
	if err != nil {
		return cfg, nil, err
	}
	if err := sprites.Require(requiredSprites...); err != nil {
		return cfg, nil, err
	}
	return cfg, sprites, nil
}

// New creates a game that loads its resources on the first Reset.
func New() *Game {
	return &Game{}
}

// NewWithResources creates a game with preloaded config and sprites.
func NewWithResources(cfg config.KokatonConfig, sprites *asset.Catalog) *Game {
	return &Game{cfg: cfg, sprites: sprites}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fight Kokaton"
}

// Reset builds a fresh world: the kokaton at its start position, a full set
// of bombs, no beams or explosions and a zero score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.sprites == nil {
		cfg, sprites, err := LoadResources()
		if err != nil {
			// Keep playing on the embedded defaults; the platform reports LoadError.
			g.loadErr = err
			cfg = config.DefaultKokatonConfig()
			config.ApplyKokatonPreset(&cfg, difficultyPreset)
			sprites, err = asset.Default()
			if err != nil {
				panic(fmt.Sprintf("kokaton: embedded sprites are broken: %v", err))
			}
		}
		g.cfg = cfg
		g.sprites = sprites
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.world = core.Bounds{W: g.cfg.World.Width, H: g.cfg.World.Height}

	g.beamSprite = g.mustSprite("beam")
	g.explosionSprite = g.mustSprite("explosion")
	g.background = g.mustSprite("background")

	player, err := NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Player.Step, g.world, g.sprites)
	if err != nil {
		panic(fmt.Sprintf("kokaton: %v", err))
	}
	g.player = player

	difficulty := config.NewDifficultyManager(g.cfg.Difficulty)
	count := difficulty.HazardCount(g.cfg.Hazards.Count)
	speed := difficulty.Speed(g.cfg.Hazards.Speed)
	color, ok := core.ParseColor(g.cfg.Hazards.Color)
	if !ok {
		panic(fmt.Sprintf("kokaton: unknown hazard color %q", g.cfg.Hazards.Color))
	}

	g.hazards = make([]*Hazard, 0, count)
	for i := 0; i < count; i++ {
		g.hazards = append(g.hazards, SpawnHazard(g.rng, g.world, player.Rect(),
			g.cfg.Hazards.Radius, speed, g.cfg.Hazards.SpawnAttempts, color))
	}

	g.beams = nil
	g.explosions = nil
	g.score = NewScore(g.cfg.Gameplay.ScoreX, g.world.H-g.cfg.Gameplay.ScoreY, core.ColorBlue)
	g.phase = PhaseRunning
	g.paused = false
	g.tickCount = 0
}

// mustSprite looks up a sprite that LoadResources already required.
func (g *Game) mustSprite(name string) asset.Sprite {
	s, err := g.sprites.Sprite(name)
	if err != nil {
		panic(fmt.Sprintf("kokaton: %v", err))
	}
	return s
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for i := 0; i < in.Count(core.ActionFire); i++ {
		g.beams = append(g.beams, NewBeam(g.player, g.cfg.Beam.Speed, g.beamSprite))
	}

	// Touching any bomb ends the game before beams get a chance to clear it.
	for _, h := range g.hazards {
		if g.player.Rect().Intersects(h.Rect()) {
			g.player.SetPose(PoseDefeated)
			g.phase = PhaseGameOver
			return core.StepResult{State: g.State()}
		}
	}

	g.resolveBeamHits()

	for _, b := range g.beams {
		if b.Offscreen(g.world) {
			b.Remove()
		}
	}
	g.beams = compact(g.beams)
	g.hazards = compact(g.hazards)

	g.player.Move(in)

	for _, b := range g.beams {
		b.Update(g.world)
	}
	for _, h := range g.hazards {
		h.Update(g.world)
	}
	g.explosions = compact(g.explosions)
	for _, e := range g.explosions {
		e.Update()
	}

	g.tickCount++
	return core.StepResult{State: g.State()}
}

// resolveBeamHits destroys every bomb touched by a live beam. A beam is
// spent by its hits but still checks the remaining bombs this frame.
func (g *Game) resolveBeamHits() {
	for _, b := range g.beams {
		if b.State() != Alive {
			continue
		}
		for _, h := range g.hazards {
			if h.State() != Alive || !b.Rect().Intersects(h.Rect()) {
				continue
			}
			b.Remove()
			h.Remove()
			cx, cy := h.Rect().Center()
			g.explosions = append(g.explosions, NewExplosion(cx, cy, g.cfg.Explosion.Life, g.explosionSprite))
			g.score.Increment(1)
			g.player.SetPose(PoseHit)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the top-level game state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Tick returns the number of frames simulated since Reset.
func (g *Game) Tick() uint64 {
	return g.tickCount
}

// LoadError returns the error that forced a fallback to embedded defaults,
// or nil if the configured resources loaded.
func (g *Game) LoadError() error {
	return g.loadErr
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

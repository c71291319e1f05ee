package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/platform/tui"
	"github.com/vovakirdan/kokaton/internal/storage"
)

var (
	flagDebug  bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Fight Kokaton",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Move (combine for diagonals)
  Space        - Fire a beam
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

The game ends when a bomb touches the kokaton. The final frame stays up for
a moment and the score is saved.

Difficulty options:
  easy   - Fewer bombs
  normal - Slightly faster bombs, one extra
  hard   - Bigger, faster bombs and more of them
  fixed  - Exactly what the config says

Examples:
  kokaton play
  kokaton play --difficulty hard
  kokaton play --seed 42 --debug
  kokaton play --config ./my-kokaton.yaml --assets ./my-sprites.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.arcade/kokaton.log")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your score (default: login name)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, sprites, err := kokaton.LoadResources()
	if err != nil {
		return fmt.Errorf("loading game resources: %w", err)
	}

	logger, closeLog, err := playLogger(flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("resources loaded",
		"level", cfg.Difficulty.InitialLevel,
		"hazards", cfg.Hazards.Count,
		"sprites", sprites.Names())

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cmd, cfg),
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score persistence", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := kokaton.NewWithResources(cfg, sprites)
	final, err := tui.Run(game, runtime, tui.Options{
		Store:        store,
		Player:       playerName(),
		Logger:       logger,
		GameOverHold: time.Duration(cfg.Gameplay.GameOverHoldMs) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if final.GameOver {
		fmt.Printf("GAME OVER - Score: %d\n", final.Score)
	}
	return nil
}

// tickRate prefers an explicit --fps over the config's tick rate.
func tickRate(cmd *cobra.Command, cfg config.KokatonConfig) int {
	if cmd.Flags().Changed("fps") {
		return flagFPS
	}
	return cfg.Gameplay.TickRate
}

// playerName returns --player or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}

// playLogger returns a file logger when debug is on and a discarding one
// otherwise. The terminal belongs to the game, so nothing logs to stderr.
func playLogger(debug bool) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, ".arcade", "kokaton.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "kokaton",
	})
	return logger, func() { f.Close() }, nil
}

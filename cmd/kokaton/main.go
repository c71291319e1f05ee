// kokaton is Fight Kokaton, a terminal shooter: steer the kokaton, shoot
// the bouncing bombs and don't let any of them touch you.
//
// Usage:
//
//	kokaton play             - Play in this terminal
//	kokaton serve            - Start SSH server for remote play
//	kokaton scores           - Show high scores
//	kokaton list             - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 50)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/kokaton.db)
//	--config <path>      - Custom game config YAML
//	--assets <path>      - Custom sprite pack YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagAssets     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kokaton",
	Short: "Fight Kokaton - shoot bouncing bombs in your terminal",
	Long: `Fight Kokaton is a small arcade shooter for the terminal.

Steer the kokaton around the field, fire beams in the direction it faces and
destroy the bouncing bombs. Touching a bomb ends the game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games

Examples:
  kokaton play
  kokaton play --difficulty hard
  kokaton serve --ssh :2222
  kokaton scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		kokaton.SetConfigPath(flagConfig)
		kokaton.SetAssetsPath(flagAssets)
		kokaton.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/kokaton.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Path to custom sprite pack YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/platform/tui"
	"github.com/vovakirdan/kokaton/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  kokaton scores
  kokaton scores --limit 25
  kokaton scores --tui
  kokaton scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	title := kokaton.New().Title()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(kokaton.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, kokaton.ID, title, width, height)
	}

	scores, err := store.TopScores(kokaton.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'kokaton play' to set the first high score!")
		return nil
	}

	nameWidth := len("Player")
	for _, entry := range scores {
		nameWidth = max(nameWidth, len(entry.Player))
	}

	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "Rank", nameWidth, "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "----", nameWidth, strings.Repeat("-", nameWidth), "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-*s  %-6d  %s\n", i+1, nameWidth, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(kokaton.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Players: %d  Average: %.1f\n",
			stats.HighScore, stats.GamesCount, stats.Players, stats.AvgScore)
	}
	if best, ok, err := store.PlayerBest(kokaton.ID, playerName()); err == nil && ok {
		fmt.Printf("Your best (%s): %d\n", playerName(), best)
	}
	return nil
}

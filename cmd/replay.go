package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweeplab/minefield/game"
)

var replayFresh bool

var replayCmd = &cobra.Command{
	Use:   "replay SNAPSHOT",
	Short: "Load a board snapshot and print it",
	Long: `replay loads a YAML board snapshot, rebuilds the board, and prints
it along with the game status. With --fresh the recorded visibility is
discarded and the board starts fully hidden, ready to play again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		snapshot, err := game.LoadSnapshot(string(raw))
		if err != nil {
			return err
		}

		board, err := snapshot.Restore(replayFresh)
		if err != nil {
			return err
		}

		g := game.Restore(board)
		printBoard(g)
		fmt.Printf("status: %s\n", g.Status())

		if !replayFresh {
			return nil
		}
		return runLoaded(g)
	},
}

// runLoaded continues interactive play on a restored board.
func runLoaded(g *game.Game) error {
	fmt.Println("resume play: r|f|q ROW COL (x to quit)")
	return playLoop(g)
}

func init() {
	replayCmd.Flags().BoolVar(&replayFresh, "fresh", false, "Reset all cells to hidden before printing")
	rootCmd.AddCommand(replayCmd)
}

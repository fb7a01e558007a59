package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sweeplab/minefield/director/constraint"
	"github.com/sweeplab/minefield/director/random"
	"github.com/sweeplab/minefield/game"
)

var log = logrus.New()

var (
	gameConfig   = game.NewConfig()
	directorName = ""
	debug        = false
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `minefield is a Minesweeper rules engine with a small terminal front.

Run with no arguments to play manually
	minefield

Use the director flag to make the computer play
	minefield --director constraint

During play, commands are:
	r ROW COL    reveal a cell
	f ROW COL    toggle a flag
	q ROW COL    toggle a question mark
	n            start a new game
	x            quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			log.SetLevel(logrus.DebugLevel)
		}

		if directorName != "" {
			return runDirector(directorName)
		}
		return runInteractive()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	rootCmd.PersistentFlags().IntVarP(&gameConfig.Rows, "height", "h", 9, "Height of game board, in cells")
	rootCmd.PersistentFlags().IntVarP(&gameConfig.Cols, "width", "w", 9, "Width of game board, in cells")
	rootCmd.PersistentFlags().IntVarP(&gameConfig.NumMines, "mines", "m", -1, "Number of mines to place in the game board (default: 15% of cells)")
	rootCmd.PersistentFlags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for mine placement (0 = random)")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", "Make the computer play (random or constraint)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func newGame() (*game.Game, error) {
	g, err := game.New(gameConfig)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"rows":  g.Rows(),
		"cols":  g.Cols(),
		"mines": g.TotalMines(),
	}).Debug("game created")
	return g, nil
}

func printBoard(g *game.Game) {
	fmt.Print(g.Render())
	fmt.Printf("flags remaining: %d/%d\n", g.RemainingFlags(), g.TotalMines())
}

func printOutcome(g *game.Game) bool {
	switch g.Status() {
	case game.Won:
		printBoard(g)
		fmt.Println("WIN!")
		return true
	case game.Lost:
		printBoard(g)
		fmt.Println("LOSE :(")
		return true
	}
	return false
}

func runDirector(name string) error {
	g, err := newGame()
	if err != nil {
		return err
	}

	var director game.Director
	switch name {
	case "random":
		director = &random.Director{}
	case "constraint":
		director = constraint.NewDirector(nil)
	default:
		return fmt.Errorf("unknown director %q", name)
	}
	director.Init(g)
	for director.Act() {
	}

	printBoard(g)
	fmt.Printf("director finished: %s\n", g.Status())
	return nil
}

func runInteractive() error {
	g, err := newGame()
	if err != nil {
		return err
	}
	printBoard(g)
	return playLoop(g)
}

func playLoop(g *game.Game) error {
	var err error
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "x", "exit", "quit":
			return nil
		case "n", "new":
			if g, err = newGame(); err != nil {
				return err
			}
			printBoard(g)
			continue
		}

		var row, col int
		if len(fields) != 3 {
			fmt.Println("expected: r|f|q ROW COL")
			continue
		}
		if _, err := fmt.Sscanf(fields[1]+" "+fields[2], "%d %d", &row, &col); err != nil {
			fmt.Println("expected numeric ROW COL")
			continue
		}

		var cmdErr error
		switch fields[0] {
		case "r":
			cmdErr = g.Reveal(row, col)
		case "f":
			cmdErr = g.ToggleFlag(row, col)
		case "q":
			cmdErr = g.ToggleQuestion(row, col)
		default:
			fmt.Println("unknown command; use r, f, q, n or x")
			continue
		}

		switch {
		case errors.Is(cmdErr, game.ErrOutOfBounds):
			fmt.Printf("(%d, %d) is off the board\n", row, col)
		case errors.Is(cmdErr, game.ErrNoFlagsRemaining):
			fmt.Println("no flags remaining; unflag something first")
		case errors.Is(cmdErr, game.ErrGameOver):
			fmt.Println("game is over; start a new one with n")
		case cmdErr != nil:
			return cmdErr
		}

		if printOutcome(g) {
			fmt.Println("play again with n, or quit with x")
			continue
		}
		printBoard(g)
	}
}

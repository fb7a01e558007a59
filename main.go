package main

import "github.com/sweeplab/minefield/cmd"

func main() {
	cmd.Execute()
}

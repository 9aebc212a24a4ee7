// Command handgame scores a strategy guide of rock paper scissors rounds,
// reading the second column first as the hand to play and then as the
// outcome to reach.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
)

//go:embed handgame.go
var source []byte

var parts = []aoc.Part{
	{Name: "solveRounds", Label: "total score", Solve: solveRounds},
	{Name: "solvePlans", Label: "total score with outcomes", Solve: solvePlans},
}

func main() {
	aoc.Run(source, parts...)
}

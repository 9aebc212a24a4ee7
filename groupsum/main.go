// Command groupsum sums blank-line separated groups of integers and
// reports the largest group and the three largest groups combined.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
)

//go:embed groupsum.go
var source []byte

var parts = []aoc.Part{
	{Name: "solveMax", Label: "max", Solve: solveMax},
	{Name: "solveTopThree", Label: "top3", Solve: solveTopThree},
}

func main() {
	aoc.Run(source, parts...)
}

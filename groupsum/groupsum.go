package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
	aoc "github.com/maisem/aoc2022"
)

/*
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func solveMax(p *aoc.Puzzle) (any, error) {
	sums, err := puzzleGroupSums(p)
	if err != nil {
		return nil, err
	}
	return maxGroupSum(sums)
}

// want=45000
func solveTopThree(p *aoc.Puzzle) (any, error) {
	sums, err := puzzleGroupSums(p)
	if err != nil {
		return nil, err
	}
	return topThreeSum(sums)
}

func puzzleGroupSums(p *aoc.Puzzle) ([]uint64, error) {
	sums, err := groupSums(p)
	if err != nil {
		return nil, err
	}
	p.Logf("%s groups", humanize.Comma(int64(len(sums))))
	if p.SampleMode {
		p.Logf("group sums: %v", sums)
	}
	return sums, nil
}

// groupSums returns the sum of each blank-line terminated group in the
// puzzle input, in input order. A group is only counted once the blank
// line after it is seen, so a last group not followed by a newline is
// dropped.
func groupSums(p *aoc.Puzzle) ([]uint64, error) {
	var sums []uint64
	var cur uint64
	err := p.ForLines(func(n int, line string) error {
		if line == "" {
			sums = append(sums, cur)
			cur = 0
			return nil
		}
		v, err := aoc.Uint(line)
		if err != nil {
			return &aoc.ParseError{Line: n, Text: line, Err: err}
		}
		sum, ok := aoc.AddUint(cur, v)
		if !ok {
			return &aoc.ParseError{
				Line: n,
				Text: line,
				Err:  fmt.Errorf("%s group overflows: %w", humanize.Ordinal(len(sums)+1), strconv.ErrRange),
			}
		}
		cur = sum
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sums, nil
}

func maxGroupSum(sums []uint64) (uint64, error) {
	if len(sums) == 0 {
		return 0, fmt.Errorf("max group: %w", aoc.ErrEmptyInput)
	}
	return slices.Max(sums), nil
}

// topThreeSum returns the sum of the three largest groups, or of all of
// them if there are fewer than three. It fails with strconv.ErrRange if
// the sum does not fit in a uint64.
func topThreeSum(sums []uint64) (uint64, error) {
	var total uint64
	for _, v := range aoc.TopN(sums, 3) {
		var ok bool
		if total, ok = aoc.AddUint(total, v); !ok {
			return 0, fmt.Errorf("top three groups: %w", strconv.ErrRange)
		}
	}
	return total, nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	aoc "github.com/maisem/aoc2022"
)

// Round is a strategy guide line read as two hands.
type Round struct {
	Opponent Hand
	Played   Hand
}

func (r Round) Score() uint64 {
	return r.Played.Score() + r.Played.Against(r.Opponent).Score()
}

// Plan is a strategy guide line read as a hand and the outcome to reach.
type Plan struct {
	Opponent Hand
	Outcome  Outcome
}

func (p Plan) Score() uint64 {
	return p.Opponent.NeedToChoose(p.Outcome).Score() + p.Outcome.Score()
}

/*
want=15

A Y
B X
C Z
*/
func solveRounds(p *aoc.Puzzle) (any, error) {
	return solveWith(p, "rounds", parseRound)
}

// want=12
func solvePlans(p *aoc.Puzzle) (any, error) {
	return solveWith(p, "plans", parsePlan)
}

func solveWith[S scorer](p *aoc.Puzzle, what string, parse func(string) (S, error)) (uint64, error) {
	records, err := parseRecords(p, parse)
	if err != nil {
		return 0, err
	}
	p.Logf("%s %s", humanize.Comma(int64(len(records))), what)
	if p.SampleMode {
		p.Logf("%# v", pretty.Formatter(records))
	}
	return totalScore(records), nil
}

type scorer interface {
	Score() uint64
}

func totalScore[S scorer](records []S) uint64 {
	return aoc.Fold(records, func(sum uint64, r S) uint64 {
		return sum + r.Score()
	}, 0)
}

var (
	errFormat   = errors.New(`want "<A-C> <X-Z>"`)
	errOpponent = errors.New("opponent must be A, B or C")
	errSecond   = errors.New("second column must be X, Y or Z")
)

// parseRecords decodes one record per line of the puzzle input. A single
// trailing newline is allowed; any other empty line is an error, as is an
// input without records.
func parseRecords[T any](p *aoc.Puzzle, parse func(string) (T, error)) ([]T, error) {
	lines, err := p.Lines()
	if err != nil {
		return nil, err
	}
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	var out []T
	for i, line := range lines {
		r, err := parse(line)
		if err != nil {
			return nil, &aoc.ParseError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}

func splitLine(line string) (opponent Hand, second byte, err error) {
	if len(line) != 3 || line[1] != ' ' {
		return 0, 0, errFormat
	}
	switch line[0] {
	case 'A':
		opponent = Rock
	case 'B':
		opponent = Paper
	case 'C':
		opponent = Scissors
	default:
		return 0, 0, errOpponent
	}
	return opponent, line[2], nil
}

// parseRound reads the second column as the hand played.
func parseRound(line string) (Round, error) {
	opp, c, err := splitLine(line)
	if err != nil {
		return Round{}, err
	}
	r := Round{Opponent: opp}
	switch c {
	case 'X':
		r.Played = Rock
	case 'Y':
		r.Played = Paper
	case 'Z':
		r.Played = Scissors
	default:
		return Round{}, fmt.Errorf("%w, got %q", errSecond, c)
	}
	return r, nil
}

// parsePlan reads the second column as the outcome to reach.
func parsePlan(line string) (Plan, error) {
	opp, c, err := splitLine(line)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Opponent: opp}
	switch c {
	case 'X':
		p.Outcome = Loss
	case 'Y':
		p.Outcome = Draw
	case 'Z':
		p.Outcome = Win
	default:
		return Plan{}, fmt.Errorf("%w, got %q", errSecond, c)
	}
	return p, nil
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/kr/pretty"
	aoc "github.com/maisem/aoc2022"
)

func TestParseRound(t *testing.T) {
	tests := []struct {
		line string
		want Round
	}{
		{"A Y", Round{Rock, Paper}},
		{"B X", Round{Paper, Rock}},
		{"C Z", Round{Scissors, Scissors}},
	}
	for _, tt := range tests {
		got, err := parseRound(tt.line)
		if err != nil {
			t.Errorf("parseRound(%q): %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRound(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParsePlan(t *testing.T) {
	tests := []struct {
		line string
		want Plan
	}{
		{"A Y", Plan{Rock, Draw}},
		{"B X", Plan{Paper, Loss}},
		{"C Z", Plan{Scissors, Win}},
	}
	for _, tt := range tests {
		got, err := parsePlan(tt.line)
		if err != nil {
			t.Errorf("parsePlan(%q): %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePlan(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"A W", errSecond},
		{"D X", errOpponent},
		{"a x", errOpponent},
		{"AX", errFormat},
		{"A  X", errFormat},
		{"A-X", errFormat},
		{"A X ", errFormat},
		{"", errFormat},
	}
	for _, tt := range tests {
		if _, err := parseRound(tt.line); !errors.Is(err, tt.want) {
			t.Errorf("parseRound(%q) error = %v, want %v", tt.line, err, tt.want)
		}
		if _, err := parsePlan(tt.line); !errors.Is(err, tt.want) {
			t.Errorf("parsePlan(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestParseRecords(t *testing.T) {
	got, err := parseRecords(aoc.FromString("A Y\nB X\nC Z\n"), parseRound)
	if err != nil {
		t.Fatal(err)
	}
	want := []Round{{Rock, Paper}, {Paper, Rock}, {Scissors, Scissors}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("parseRecords = %v, want %v: %v", got, want, diff)
	}

	tests := []struct {
		in       string
		wantLine int
	}{
		{"A Y\nB W\nC Z", 2},
		{"A Y\n\nC Z\n", 2},
		{"A Y\nB X\n\n", 3},
		{"", 1},
		{"\n", 1},
		{"A Y\r\n", 1},
	}
	for _, tt := range tests {
		_, err := parseRecords(aoc.FromString(tt.in), parsePlan)
		var pe *aoc.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("parseRecords(%q) error = %v, want ParseError", tt.in, err)
			continue
		}
		if pe.Line != tt.wantLine {
			t.Errorf("parseRecords(%q) error line = %d, want %d", tt.in, pe.Line, tt.wantLine)
		}
	}
}

func TestScoreExamples(t *testing.T) {
	rounds := []Round{{Rock, Paper}, {Paper, Rock}, {Scissors, Scissors}}
	for i, want := range []uint64{8, 1, 6} {
		if got := rounds[i].Score(); got != want {
			t.Errorf("%v.Score() = %d, want %d", rounds[i], got, want)
		}
	}
	plans := []Plan{{Rock, Draw}, {Paper, Loss}, {Scissors, Win}}
	for i, want := range []uint64{4, 1, 7} {
		if got := plans[i].Score(); got != want {
			t.Errorf("%v.Score() = %d, want %d", plans[i], got, want)
		}
	}
	if got := totalScore(rounds); got != 15 {
		t.Errorf("totalScore(rounds) = %d, want 15", got)
	}
	if got := totalScore(plans); got != 12 {
		t.Errorf("totalScore(plans) = %d, want 12", got)
	}
}

func TestTotalScoreOrderIndependent(t *testing.T) {
	var rounds []Round
	for _, a := range hands {
		for _, b := range hands {
			rounds = append(rounds, Round{a, b})
		}
	}
	want := totalScore(rounds)
	rev := make([]Round, len(rounds))
	for i, r := range rounds {
		rev[len(rounds)-1-i] = r
	}
	if got := totalScore(rev); got != want {
		t.Errorf("totalScore(reversed) = %d, want %d", got, want)
	}
	if got := totalScore[Round](nil); got != 0 {
		t.Errorf("totalScore(nil) = %d, want 0", got)
	}
}

func TestSolve(t *testing.T) {
	var buf bytes.Buffer
	if err := aoc.Solve(&buf, aoc.NewPuzzle("testdata/sample.txt"), parts...); err != nil {
		t.Fatal(err)
	}
	want := "total score: 15\ntotal score with outcomes: 12\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSolveMalformed(t *testing.T) {
	var buf bytes.Buffer
	err := aoc.Solve(&buf, aoc.FromString("A Y\nA W\n"), parts...)
	var pe *aoc.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("Solve error = %v, want ParseError on line 2", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Solve wrote %q on error", buf.String())
	}
}

func TestSamples(t *testing.T) {
	if err := aoc.CheckSamples(io.Discard, source, parts...); err != nil {
		t.Fatal(err)
	}
}

func TestSampleModeDump(t *testing.T) {
	var logged []string
	logf := func(format string, args ...any) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	p := aoc.FromString("A Y\n")
	p.Logf = logf
	if _, err := solveRounds(p); err != nil {
		t.Fatal(err)
	}
	if len(logged) != 2 || !strings.Contains(logged[1], "Opponent:") {
		t.Errorf("sample mode logged %q, want count and records", logged)
	}

	logged = nil
	in := aoc.NewPuzzle("testdata/sample.txt")
	in.Logf = logf
	if _, err := solveRounds(in); err != nil {
		t.Fatal(err)
	}
	if len(logged) != 1 || logged[0] != "3 rounds" {
		t.Errorf("input mode logged %q, want only the count", logged)
	}
}

func TestMainExit(t *testing.T) {
	if os.Getenv("HANDGAME_RUN_MAIN") == "1" {
		main()
		return
	}
	tests := []struct {
		input      string
		wantStdout string
		wantErr    bool
	}{
		{input: "testdata/sample.txt", wantStdout: "total score: 15\ntotal score with outcomes: 12\n"},
		{input: "testdata/malformed.txt", wantErr: true},
		{input: "testdata/missing.txt", wantErr: true},
	}
	for _, tt := range tests {
		cmd := exec.Command(os.Args[0], "-test.run=^TestMainExit$", "-input="+tt.input)
		cmd.Env = append(os.Environ(), "HANDGAME_RUN_MAIN=1")
		var stdout, stderr bytes.Buffer
		cmd.Stdout, cmd.Stderr = &stdout, &stderr
		err := cmd.Run()
		if !tt.wantErr {
			if err != nil {
				t.Errorf("%s: %v; stderr: %s", tt.input, err, stderr.String())
			} else if !strings.HasPrefix(stdout.String(), tt.wantStdout) {
				t.Errorf("%s: stdout = %q, want %q", tt.input, stdout.String(), tt.wantStdout)
			}
			continue
		}
		var ee *exec.ExitError
		if !errors.As(err, &ee) || ee.ExitCode() != 1 {
			t.Errorf("%s: error = %v, want exit status 1", tt.input, err)
		}
		if stdout.Len() != 0 {
			t.Errorf("%s: stdout = %q, want nothing", tt.input, stdout.String())
		}
		if !strings.Contains(stderr.String(), "solve failed") {
			t.Errorf("%s: stderr = %q, want the error", tt.input, stderr.String())
		}
	}
}

// Package aoc is a small kit for solving line-oriented puzzle inputs.
// (forked from maisem/aoc)
//
// The module path is github.com/maisem/aoc2022; import it as aoc.
package aoc

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions declared in src, keyed by function name.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "source.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is the input of a single run. The input is read at most once
// and shared by every part.
type Puzzle struct {
	SampleMode bool

	// Logf receives debug output. It is never nil once the Puzzle is
	// handed to a part.
	Logf logger.Logf

	path  string
	input []byte
	read  bool
}

// debugf is the Logf of new Puzzles. Run points it at the debug log.
var debugf logger.Logf = logger.Discard

// NewPuzzle returns a Puzzle reading its input from path.
func NewPuzzle(path string) *Puzzle {
	return &Puzzle{path: path, Logf: debugf}
}

// FromString returns a Puzzle whose input is s.
func FromString(s string) *Puzzle {
	return &Puzzle{
		SampleMode: true,
		Logf:       debugf,
		input:      []byte(s),
		read:       true,
	}
}

// Input returns the raw input bytes.
func (p *Puzzle) Input() ([]byte, error) {
	if p.read {
		return p.input, nil
	}
	b, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	p.input, p.read = b, true
	return b, nil
}

// Lines returns the input split on '\n'. Input ending in a newline yields
// a final empty line.
func (p *Puzzle) Lines() ([]string, error) {
	in, err := p.Input()
	if err != nil {
		return nil, err
	}
	return SplitLines(in), nil
}

// ForLines calls onLine for each line of input, stopping at the first
// error. The line number starts at 1.
func (p *Puzzle) ForLines(onLine func(n int, line string) error) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	for i, line := range lines {
		if err := onLine(i+1, line); err != nil {
			return err
		}
	}
	return nil
}

// SplitLines splits in on '\n' without dropping a trailing empty line.
func SplitLines(in []byte) []string {
	return strings.Split(string(in), "\n")
}

// Part is one answer a program prints.
type Part struct {
	// Name is the function holding the sample for this part.
	Name string
	// Label is printed in front of the answer.
	Label string
	Solve func(*Puzzle) (any, error)
}

var (
	flagInput  string
	flagPart   string
	flagDebug  bool
	flagSample bool
)

func init() {
	flag.StringVar(&flagInput, "input", "input.txt", "input file")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.BoolVar(&flagSample, "sample", false, "check the embedded samples instead of the input file")
}

var initFlags = sync.OnceFunc(flag.Parse)

// Solve runs every part against p and writes one "label: answer" line
// per part to w. Nothing is written unless all parts succeed.
func Solve(w io.Writer, p *Puzzle, parts ...Part) error {
	var buf bytes.Buffer
	for _, part := range parts {
		got, err := part.Solve(p)
		if err != nil {
			return fmt.Errorf("%s: %w", part.Label, err)
		}
		fmt.Fprintf(&buf, "%s: %v\n", part.Label, got)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// CheckSamples runs each part against the sample in its doc comment in
// src and reports the first part whose answer differs.
func CheckSamples(w io.Writer, src []byte, parts ...Part) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	for _, part := range parts {
		s, ok := samples[part.Name]
		if !ok {
			known := maps.Keys(samples)
			slices.Sort(known)
			return fmt.Errorf("no sample found for %v; have %v", part.Name, known)
		}
		got, err := part.Solve(FromString(s.input))
		if err != nil {
			return fmt.Errorf("%s sample: %w", part.Label, err)
		}
		if fmt.Sprint(got) != s.want {
			return fmt.Errorf("%s sample: got %v; want %v", part.Label, got, s.want)
		}
		fmt.Fprintf(w, "%s sample: %v ✅\n", part.Label, got)
	}
	return nil
}

// Run is the main function of a puzzle program. src is the program's own
// source, used to find samples.
func Run(src []byte, parts ...Part) {
	initFlags()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	debugf = func(format string, args ...any) {
		log.Debug().Msgf(format, args...)
	}

	if flagPart != "" {
		parts = slices.DeleteFunc(slices.Clone(parts), func(p Part) bool {
			return p.Name != flagPart && p.Label != flagPart
		})
		if len(parts) == 0 {
			log.Fatal().Str("part", flagPart).Msg("no such part")
		}
	}

	if flagSample {
		if err := CheckSamples(os.Stdout, src, parts...); err != nil {
			log.Fatal().Err(err).Msg("sample failed")
		}
		return
	}

	p := NewPuzzle(flagInput)
	if err := Solve(os.Stdout, p, parts...); err != nil {
		log.Fatal().Err(err).Str("input", flagInput).Msg("solve failed")
	}
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

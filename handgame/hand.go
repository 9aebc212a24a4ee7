package main

import "fmt"

// Hand is a rock paper scissors move. The zero Hand is invalid.
type Hand int8

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

func (h Hand) String() string {
	switch h {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Hand(%d)", int8(h))
}

func (h Hand) valid() bool {
	return h >= Rock && h <= Scissors
}

// beats returns the hand that h wins against.
func (h Hand) beats() Hand {
	switch h {
	case Rock:
		return Scissors
	case Scissors:
		return Paper
	case Paper:
		return Rock
	}
	panic(fmt.Sprintf("bad hand %v", h))
}

// losesTo returns the hand that wins against h.
func (h Hand) losesTo() Hand {
	switch h {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	case Scissors:
		return Rock
	}
	panic(fmt.Sprintf("bad hand %v", h))
}

// Against returns the outcome for h when played against other.
func (h Hand) Against(other Hand) Outcome {
	if !h.valid() {
		panic(fmt.Sprintf("bad hand %v", h))
	}
	switch other {
	case h:
		return Draw
	case h.beats():
		return Win
	case h.losesTo():
		return Loss
	}
	panic(fmt.Sprintf("bad hand %v", other))
}

// NeedToChoose returns the hand to play against h to get outcome o.
func (h Hand) NeedToChoose(o Outcome) Hand {
	switch o {
	case Draw:
		if !h.valid() {
			panic(fmt.Sprintf("bad hand %v", h))
		}
		return h
	case Loss:
		return h.beats()
	case Win:
		return h.losesTo()
	}
	panic(fmt.Sprintf("bad outcome %v", o))
}

func (h Hand) Score() uint64 {
	switch h {
	case Rock:
		return 1
	case Paper:
		return 2
	case Scissors:
		return 3
	}
	panic(fmt.Sprintf("bad hand %v", h))
}

// Outcome is the result of a round for the player.
type Outcome int8

const (
	Loss Outcome = iota + 1
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Outcome(%d)", int8(o))
}

func (o Outcome) Score() uint64 {
	switch o {
	case Loss:
		return 0
	case Draw:
		return 3
	case Win:
		return 6
	}
	panic(fmt.Sprintf("bad outcome %v", o))
}

package days

import (
	"fmt"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// RockPaperScissors solves day 2. Each line holds the opponent's shape
// (A, B, C) and a second column (X, Y, Z) whose meaning differs per part.
type RockPaperScissors struct{}

// Round is one line of the strategy guide. Both columns are 0, 1 or 2 for
// rock, paper and scissors (or lose, draw, win in part 2).
type Round struct {
	Opponent int
	Column   int
}

func (RockPaperScissors) Parse(raw string) ([]Round, error) {
	lines := puzzle.Lines(raw)
	if len(lines) == 0 {
		return nil, puzzle.ErrEmptyInput
	}
	rounds := make([]Round, 0, len(lines))
	for i, line := range lines {
		f, err := puzzle.Fields(line, i+1, 2)
		if err != nil {
			return nil, err
		}
		opp, err := letter(f[0], 'A', line, i+1)
		if err != nil {
			return nil, err
		}
		col, err := letter(f[1], 'X', line, i+1)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, Round{Opponent: opp, Column: col})
	}
	return rounds, nil
}

// Part1 scores the second column as the shape to play.
func (RockPaperScissors) Part1(rounds []Round) int {
	score := 0
	for _, r := range rounds {
		outcome := (r.Column - r.Opponent + 4) % 3
		score += r.Column + 1 + outcome*3
	}
	return score
}

// Part2 scores the second column as the outcome to reach.
func (RockPaperScissors) Part2(rounds []Round) int {
	score := 0
	for _, r := range rounds {
		shape := (r.Opponent + r.Column + 2) % 3
		score += shape + 1 + r.Column*3
	}
	return score
}

// letter maps a single letter in base..base+2 to 0..2.
func letter(field string, base byte, line string, lineNo int) (int, error) {
	if len(field) != 1 || field[0] < base || field[0] > base+2 {
		return 0, &puzzle.ParseError{
			Line:     lineNo,
			Column:   1,
			Fragment: line,
			Reason:   fmt.Sprintf("expected one of %c, %c, %c", base, base+1, base+2),
		}
	}
	return int(field[0] - base), nil
}

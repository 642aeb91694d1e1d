package days

import (
	"github.com/mesh-intelligence/advent/internal/harness"
	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// binder closes over a concrete solver and produces its zero-argument run
// for a given input path.
type binder func(path string, opts []harness.Option) func() error

func bind[I, A1, A2 any](s puzzle.Solver[I, A1, A2]) binder {
	return func(path string, opts []harness.Option) func() error {
		return func() error {
			return harness.Run(s, path, opts...)
		}
	}
}

var unsolved = bind[string, Pending, Pending](Unsolved{})

// registry lists the solver of every day, index 0 being day 1.
var registry = [puzzle.MaxDay]binder{
	bind[[]Inventory, int, int](CalorieCounting{}),
	bind[[]Round, int, int](RockPaperScissors{}),
	unsolved, // 3
	unsolved, // 4
	unsolved, // 5
	unsolved, // 6
	unsolved, // 7
	unsolved, // 8
	unsolved, // 9
	unsolved, // 10
	unsolved, // 11
	unsolved, // 12
	unsolved, // 13
	unsolved, // 14
	unsolved, // 15
	unsolved, // 16
	unsolved, // 17
	unsolved, // 18
	unsolved, // 19
	unsolved, // 20
	unsolved, // 21
	unsolved, // 22
	unsolved, // 23
	unsolved, // 24
	unsolved, // 25
}

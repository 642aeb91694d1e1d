package days

import (
	"slices"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

// CalorieCounting solves day 1. The input lists the calories carried by each
// elf, one item per line, elves separated by a blank line.
type CalorieCounting struct{}

// Inventory is the calorie count of each item one elf carries.
type Inventory []int

// Total returns the calories carried.
func (inv Inventory) Total() int {
	total := 0
	for _, c := range inv {
		total += c
	}
	return total
}

func (CalorieCounting) Parse(raw string) ([]Inventory, error) {
	blocks, err := puzzle.Blocks(raw)
	if err != nil {
		return nil, err
	}
	elves := make([]Inventory, 0, len(blocks))
	for _, b := range blocks {
		inv := make(Inventory, 0, len(b.Lines))
		for i, line := range b.Lines {
			n, err := puzzle.Int(line, b.Start+i)
			if err != nil {
				return nil, err
			}
			inv = append(inv, n)
		}
		elves = append(elves, inv)
	}
	return elves, nil
}

// Part1 returns the most calories carried by a single elf.
func (CalorieCounting) Part1(elves []Inventory) int {
	return topTotal(elves, 1)
}

// Part2 returns the calories carried by the three best-stocked elves.
func (CalorieCounting) Part2(elves []Inventory) int {
	return topTotal(elves, 3)
}

func topTotal(elves []Inventory, n int) int {
	totals := make([]int, len(elves))
	for i, inv := range elves {
		totals[i] = inv.Total()
	}
	slices.Sort(totals)
	slices.Reverse(totals)
	sum := 0
	for _, t := range totals[:min(n, len(totals))] {
		sum += t
	}
	return sum
}

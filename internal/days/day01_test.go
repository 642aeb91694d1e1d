package days

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

const calorieSample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestCalorieCounting_Parse(t *testing.T) {
	got, err := CalorieCounting{}.Parse(calorieSample)
	require.NoError(t, err)

	want := []Inventory{{1000, 2000, 3000}, {4000}, {5000, 6000}, {7000, 8000, 9000}, {10000}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalorieCounting_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantLine int
	}{
		{name: "letters in a count", raw: "1000\n\n20x0\n", wantLine: 3},
		{name: "double blank line", raw: "1000\n\n\n2000\n", wantLine: 3},
		{name: "trailing blank line", raw: "1000\n\n", wantLine: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalorieCounting{}.Parse(tt.raw)

			var pe *puzzle.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantLine, pe.Line)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := CalorieCounting{}.Parse("")
		require.ErrorIs(t, err, puzzle.ErrEmptyInput)
	})
}

func TestCalorieCounting_Parts(t *testing.T) {
	elves, err := CalorieCounting{}.Parse(calorieSample)
	require.NoError(t, err)

	assert.Equal(t, 24000, CalorieCounting{}.Part1(elves))
	assert.Equal(t, 45000, CalorieCounting{}.Part2(elves))

	// Part 2 first, then part 1: no ordering dependency, no mutation.
	again, err := CalorieCounting{}.Parse(calorieSample)
	require.NoError(t, err)
	assert.Equal(t, 45000, CalorieCounting{}.Part2(again))
	assert.Equal(t, 24000, CalorieCounting{}.Part1(again))
	assert.Equal(t, elves, again)
}

func TestCalorieCounting_FewerThanThreeElves(t *testing.T) {
	elves, err := CalorieCounting{}.Parse("5\n\n7\n")
	require.NoError(t, err)

	assert.Equal(t, 7, CalorieCounting{}.Part1(elves))
	assert.Equal(t, 12, CalorieCounting{}.Part2(elves))
}

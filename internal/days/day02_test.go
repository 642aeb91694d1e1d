package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/puzzle"
)

func TestRockPaperScissors(t *testing.T) {
	rounds, err := RockPaperScissors{}.Parse("A Y\nB X\nC Z\n")
	require.NoError(t, err)
	assert.Equal(t, []Round{{0, 1}, {1, 0}, {2, 2}}, rounds)

	assert.Equal(t, 15, RockPaperScissors{}.Part1(rounds))
	assert.Equal(t, 12, RockPaperScissors{}.Part2(rounds))

	// Twice over the same input yields the same answers.
	assert.Equal(t, 15, RockPaperScissors{}.Part1(rounds))
	assert.Equal(t, 12, RockPaperScissors{}.Part2(rounds))
}

func TestRockPaperScissors_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantLine int
	}{
		{name: "unknown opponent shape", raw: "A Y\nD X\n", wantLine: 2},
		{name: "unknown response", raw: "A W\n", wantLine: 1},
		{name: "missing column", raw: "A Y\nB\n", wantLine: 2},
		{name: "trailing content", raw: "A Y\nB X extra\n", wantLine: 2},
		{name: "trailing blank line", raw: "A Y\n\n", wantLine: 2},
		{name: "multi-letter field", raw: "AA Y\n", wantLine: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RockPaperScissors{}.Parse(tt.raw)

			var pe *puzzle.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantLine, pe.Line)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := RockPaperScissors{}.Parse("")
		require.ErrorIs(t, err, puzzle.ErrEmptyInput)
	})
}

func TestUnsolved(t *testing.T) {
	in, err := Unsolved{}.Parse("anything at all\n")
	require.NoError(t, err)

	assert.Equal(t, "unsolved", puzzle.Render(Unsolved{}.Part1(in)))
	assert.Equal(t, "unsolved", puzzle.Render(Unsolved{}.Part2(in)))
}

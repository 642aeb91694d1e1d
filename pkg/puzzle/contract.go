package puzzle

import "fmt"

// Solver is the contract a daily puzzle implements. I is the parsed input,
// A1 and A2 the answer types of the two parts.
//
// Parse must consume the whole input: trailing or malformed content is an
// error. Part1 and Part2 must be pure and total over every value Parse
// produces; neither may rely on the other having run.
type Solver[I, A1, A2 any] interface {
	Parse(raw string) (I, error)
	Part1(in I) A1
	Part2(in I) A2
}

// Render returns the human-readable form of an answer.
func Render(answer any) string {
	return fmt.Sprint(answer)
}

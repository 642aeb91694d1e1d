// Package puzzle defines the Solver contract every daily puzzle satisfies,
// the Day identifier, the unified Error returned by the execution core, and
// the line-oriented parse helpers puzzle parsers build on.
package puzzle

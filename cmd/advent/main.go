// Command advent runs daily puzzle solutions and downloads their inputs.
package main

import "github.com/mesh-intelligence/advent/internal/cli"

func main() {
	cli.Execute()
}

// go3to4 - terminal simulator for the 3x3x3x3 hyperpuzzle.
package main

import (
	"github.com/rayzchen/go3to4/internal/cli"
)

func main() {
	cli.Execute()
}

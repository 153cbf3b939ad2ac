// Command mazesolve finds the cheapest route through a character maze with
// an exhaustive backtracking search.
//
// Usage:
//
//	mazesolve solve input_16.txt --turn-cost 1000 --render
//	mazesolve solve --config mazesolve.yaml
//	mazesolve version
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

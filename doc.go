// Package backtrack is a small toolkit for exhaustive depth-first search over
// problem-defined state spaces, with a maze solver built on top.
//
// What is in the box?
//
//	search/   the engine: iterative backtracking with a path-local visited
//	           set and best-path tracking over any Problem[S, A, W]
//	maze/     a Problem for '#', '.', 'S', 'E' mazes with step and turn costs
//	config/   YAML configuration for the solver application
//	logging/  log/slog logger construction
//	metrics/  Prometheus metrics fed by the engine's observer hook
//	cmd/mazesolve  command-line front end
//
// Quick ASCII example:
//
//	#######
//	#....E#     start facing east, turns cost 1000, steps cost 1:
//	#.###.#     the lower corridor (one turn) wins with cost 1006
//	#S....#
//	#######
//
// The engine never recurses: a stack of frames, each holding the sibling
// candidates of one depth and a cursor, makes every backtrack an explicit
// pop-and-advance. Search depth is bounded by memory, not by the goroutine
// stack.
//
//	go get github.com/katalvlaran/backtrack/search
package backtrack

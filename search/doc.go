// Package search implements a generic, iterative depth-first backtracking
// engine over a problem-defined state space.
//
// What:
//
//   - Problem: the four pure operations a problem supplies (Initial,
//     NextStates, NextAccum, Score) over its own State, Accumulator and
//     World types.
//   - Solve / Run: exhaustive depth-first traversal of every non-cyclic path
//     reachable from the initial state, returning the highest-scoring path.
//   - Observer hook: Push, DeadEnd, Backtrack and Improve events for logging
//     and metrics; observers never influence the traversal.
//
// How:
//
//   - An explicit stack of frames replaces recursion. A frame holds the
//     sibling candidates discovered from the frame below, their
//     accumulators, and a cursor selecting the active candidate.
//   - A path-local visited set (insert on descend, remove on backtrack)
//     keeps a branch from revisiting its own states. A state may reappear on
//     a different branch once backtracking has released it.
//   - Every state is scored when it becomes active; a defined score strictly
//     greater than the best so far snapshots the whole active path.
//
// Tie-break:
//
//   - Only strictly greater scores replace the best path, so the first path
//     reaching the maximum (in exploration order) wins.
//
// Complexity:
//
//   - Time:   exponential in the worst case (every simple path is enumerated).
//   - Memory: O(depth × branching) for frames, O(depth) for the visited set.
//
// No solution:
//
//   - If no visited state yields a defined score, the result is an empty path
//     with MinScore. Callers must check Result.Found (or compare with MinScore).
package search

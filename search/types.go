package search

import "math"

// MinScore is the score reported when no visited state was scorable.
// It is lower than any score a Problem can return.
const MinScore = math.MinInt

// Problem describes a search space to the engine.
//
// S is the state type; it must be comparable because the engine keeps the
// states of the current path in a set. A is the accumulator carried with each
// state along a path (cost so far, facing direction, ...). W is the read-only
// world consulted by every call.
//
// All methods must be pure: the engine may call them in any order and expects
// the same answers for the same arguments.
type Problem[S comparable, A any, W any] interface {
	// Initial returns the root state and its accumulator. It must succeed;
	// worlds without a valid start are rejected before the search begins.
	Initial(world W) (S, A)

	// NextStates lists the states reachable from state, in branching order.
	// States already on the current path, and repeats, are filtered out by
	// the engine.
	NextStates(world W, state S) []S

	// NextAccum derives the accumulator of next from the accumulator of the
	// state it is reached from.
	NextAccum(world W, last A, lastState, next S) A

	// Score rates a state. ok == false means the state is not a candidate
	// endpoint and is skipped by the best-path comparison.
	Score(world W, state S, accum A) (score int, ok bool)
}

// EventKind identifies a traversal step reported to an Observer.
type EventKind int

const (
	// EventPush: a new frame was pushed; Depth is the new stack depth.
	EventPush EventKind = iota
	// EventDeadEnd: the active state had no unvisited successors.
	EventDeadEnd
	// EventBacktrack: one exhausted frame was popped.
	EventBacktrack
	// EventImprove: a strictly better path was recorded; Score holds it.
	EventImprove
)

// String returns the lower-case name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPush:
		return "push"
	case EventDeadEnd:
		return "dead_end"
	case EventBacktrack:
		return "backtrack"
	case EventImprove:
		return "improve"
	default:
		return "unknown"
	}
}

// Event describes one traversal step.
type Event struct {
	Kind  EventKind
	Depth int // stack depth after the step
	Score int // best score after the step
}

// Observer receives traversal events synchronously, in order.
type Observer func(Event)

// Option configures optional behavior of Solve and Run.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Observer, if non-nil, is called after each push, dead end, backtrack
	// pop and best-path improvement.
	Observer Observer
}

// DefaultOptions returns Options with no observer installed.
func DefaultOptions() Options {
	return Options{
		Observer: nil,
	}
}

// WithObserver installs fn as the traversal observer.
// Passing nil leaves the search unobserved.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// Stats counts what a traversal did.
type Stats struct {
	// Steps is the number of Advance and Backtrack steps taken.
	Steps int
	// Pushes counts frames pushed, including the initial one.
	Pushes int
	// Pops counts exhausted frames removed.
	Pops int
	// DeadEnds counts active states without unvisited successors.
	DeadEnds int
	// Scored counts states for which Score returned a defined value.
	Scored int
	// Improvements counts replacements of the best path.
	Improvements int
	// MaxDepth is the deepest stack reached.
	MaxDepth int
}

// Result is the outcome of Run.
type Result[S comparable] struct {
	// Path lists the states of the best path from the initial state onward.
	// It is empty when nothing was scorable.
	Path []S
	// Score is the score of Path, or MinScore.
	Score int
	// Stats describes the traversal.
	Stats Stats
}

// Found reports whether any scorable state was reached.
func (r Result[S]) Found() bool {
	return r.Score != MinScore
}

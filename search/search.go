package search

// frame is one level of the traversal stack.
// states[index] is the active candidate; index == len(states) means the
// frame is exhausted. Frames are never pushed with zero candidates.
type frame[S comparable, A any] struct {
	states []S
	accums []A
	index  int
}

// active reports whether the frame still has a candidate under its cursor.
func (f *frame[S, A]) active() bool { return f.index < len(f.states) }

// engine holds all traversal state of one search.
// It is owned by a single Run call and discarded afterwards.
type engine[S comparable, A any, W any] struct {
	problem Problem[S, A, W]
	world   W
	opts    Options

	stack   []frame[S, A]  // stack[len-1] is the top
	visited map[S]struct{} // active state of every frame on the stack

	bestPath  []S
	bestScore int

	stats Stats
}

// Solve runs an exhaustive depth-first search of problem over world and
// returns the best-scoring path with its score. If no state was scorable it
// returns an empty path and MinScore.
func Solve[S comparable, A any, W any](problem Problem[S, A, W], world W, opts ...Option) ([]S, int) {
	res := Run(problem, world, opts...)

	return res.Path, res.Score
}

// Run is Solve with traversal statistics.
func Run[S comparable, A any, W any](problem Problem[S, A, W], world W, opts ...Option) Result[S] {
	e := newEngine(problem, world, opts...)
	e.init()
	for e.step() {
	}

	return e.result()
}

// newEngine applies options and allocates the search state.
func newEngine[S comparable, A any, W any](problem Problem[S, A, W], world W, opts ...Option) *engine[S, A, W] {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &engine[S, A, W]{
		problem:   problem,
		world:     world,
		opts:      o,
		visited:   make(map[S]struct{}),
		bestPath:  []S{},
		bestScore: MinScore,
	}
}

// init pushes the single-element root frame and scores the initial state.
func (e *engine[S, A, W]) init() {
	s0, a0 := e.problem.Initial(e.world)
	e.push([]S{s0}, []A{a0})
}

// step performs one Advance or Backtrack step.
// It returns false once the stack is empty.
func (e *engine[S, A, W]) step() bool {
	if len(e.stack) == 0 {
		return false
	}
	e.stats.Steps++

	top := &e.stack[len(e.stack)-1]
	if top.active() {
		e.advance(top)
	} else {
		e.backtrack()
	}

	return len(e.stack) > 0
}

// advance expands the active state of top. Unvisited successors become a new
// frame; no successors turn the step into a dead end that moves top's cursor.
func (e *engine[S, A, W]) advance(top *frame[S, A]) {
	cur := top.states[top.index]
	acc := top.accums[top.index]

	next := e.candidates(cur)
	if len(next) == 0 {
		e.stats.DeadEnds++
		e.emit(EventDeadEnd)
		e.moveCursor(top)

		return
	}

	accums := make([]A, len(next))
	for i, s := range next {
		accums[i] = e.problem.NextAccum(e.world, acc, cur, s)
	}
	e.push(next, accums)
}

// candidates returns the successors of cur that are not on the current path,
// dropping repeats while preserving the problem's order.
func (e *engine[S, A, W]) candidates(cur S) []S {
	raw := e.problem.NextStates(e.world, cur)
	out := make([]S, 0, len(raw))
	seen := make(map[S]struct{}, len(raw))
	for _, s := range raw {
		if _, onPath := e.visited[s]; onPath {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// backtrack pops exhausted frames, then moves the cursor of the first frame
// that still has an active candidate.
func (e *engine[S, A, W]) backtrack() {
	for len(e.stack) > 0 && !e.stack[len(e.stack)-1].active() {
		e.stack[len(e.stack)-1] = frame[S, A]{} // release candidate slices
		e.stack = e.stack[:len(e.stack)-1]
		e.stats.Pops++
		e.emit(EventBacktrack)
	}
	if len(e.stack) == 0 {
		return
	}
	e.moveCursor(&e.stack[len(e.stack)-1])
}

// push appends a frame whose first candidate becomes active.
func (e *engine[S, A, W]) push(states []S, accums []A) {
	e.stack = append(e.stack, frame[S, A]{states: states, accums: accums})
	e.stats.Pushes++
	if len(e.stack) > e.stats.MaxDepth {
		e.stats.MaxDepth = len(e.stack)
	}
	e.emit(EventPush)
	e.activate(&e.stack[len(e.stack)-1])
}

// moveCursor releases the active state of f and exposes the next sibling.
func (e *engine[S, A, W]) moveCursor(f *frame[S, A]) {
	delete(e.visited, f.states[f.index])
	f.index++
	e.activate(f)
}

// activate marks the candidate under f's cursor as visited and scores it.
// An exhausted frame has nothing to activate.
func (e *engine[S, A, W]) activate(f *frame[S, A]) {
	if !f.active() {
		return
	}
	s := f.states[f.index]
	e.visited[s] = struct{}{}

	score, ok := e.problem.Score(e.world, s, f.accums[f.index])
	if !ok {
		return
	}
	e.stats.Scored++
	if score <= e.bestScore {
		return // strictly greater only: first maximum wins
	}
	e.bestScore = score
	e.bestPath = e.snapshot()
	e.stats.Improvements++
	e.emit(EventImprove)
}

// snapshot copies the active state of every frame, bottom to top.
func (e *engine[S, A, W]) snapshot() []S {
	path := make([]S, len(e.stack))
	for i := range e.stack {
		path[i] = e.stack[i].states[e.stack[i].index]
	}

	return path
}

// emit reports an event to the observer, if any.
func (e *engine[S, A, W]) emit(kind EventKind) {
	if e.opts.Observer == nil {
		return
	}
	e.opts.Observer(Event{Kind: kind, Depth: len(e.stack), Score: e.bestScore})
}

// result packages the best path found so far.
func (e *engine[S, A, W]) result() Result[S] {
	return Result[S]{
		Path:  e.bestPath,
		Score: e.bestScore,
		Stats: e.stats,
	}
}

package search_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/backtrack/search"
)

// graph is a small adjacency-list world: edges in branching order plus
// optional per-vertex scores.
type graph struct {
	edges  map[string][]string
	scores map[string]int
}

// graphProblem walks a graph from root; the accumulator is the path length.
type graphProblem struct {
	root string
}

func (p graphProblem) Initial(g *graph) (string, int) { return p.root, 0 }

func (graphProblem) NextStates(g *graph, s string) []string { return g.edges[s] }

func (graphProblem) NextAccum(g *graph, last int, _, _ string) int { return last + 1 }

func (graphProblem) Score(g *graph, s string, _ int) (int, bool) {
	v, ok := g.scores[s]

	return v, ok
}

// point is a grid cell used by gridWalk.
type point struct{ X, Y int }

// gridWalk is an open W×H grid walked in N, E, S, W order from (0,0).
// Reaching goal scores minus the number of steps taken.
type gridWalk struct {
	W, H int
	goal point
}

func (g gridWalk) Initial(_ struct{}) (point, int) { return point{0, 0}, 0 }

func (g gridWalk) NextStates(_ struct{}, p point) []point {
	out := make([]point, 0, 4)
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		n := point{p.X + d[0], p.Y + d[1]}
		if n.X >= 0 && n.X < g.W && n.Y >= 0 && n.Y < g.H {
			out = append(out, n)
		}
	}

	return out
}

func (gridWalk) NextAccum(_ struct{}, last int, _, _ point) int { return last + 1 }

func (g gridWalk) Score(_ struct{}, p point, steps int) (int, bool) {
	if p != g.goal {
		return 0, false
	}

	return -steps, true
}

// buildChain creates a chain graph N0→N1→…→N(n-1) where only the last vertex scores.
func buildChain(n int) *graph {
	g := &graph{edges: map[string][]string{}, scores: map[string]int{}}
	for i := 0; i < n-1; i++ {
		u := fmt.Sprintf("N%d", i)
		v := fmt.Sprintf("N%d", i+1)
		g.edges[u] = append(g.edges[u], v)
	}
	g.scores[fmt.Sprintf("N%d", n-1)] = n

	return g
}

func TestSolve_InitialScorable_NoTransitions(t *testing.T) {
	g := &graph{scores: map[string]int{"A": 7}}

	path, score := search.Solve[string, int, *graph](graphProblem{root: "A"}, g)
	assert.Equal(t, []string{"A"}, path)
	assert.Equal(t, 7, score)
}

func TestSolve_SelfLoopDeadEnd(t *testing.T) {
	g := &graph{edges: map[string][]string{"A": {"A"}}}

	res := search.Run[string, int, *graph](graphProblem{root: "A"}, g)
	assert.False(t, res.Found())
	assert.Empty(t, res.Path)
	assert.Equal(t, search.MinScore, res.Score)

	// The self-loop is filtered, so the root frame is the only one ever pushed.
	assert.Equal(t, 1, res.Stats.Pushes)
	assert.Equal(t, 1, res.Stats.Pops)
	assert.Equal(t, 1, res.Stats.DeadEnds)
	assert.Equal(t, 2, res.Stats.Steps)
	assert.Equal(t, 1, res.Stats.MaxDepth)
}

func TestSolve_SelfLoopScorableRoot(t *testing.T) {
	g := &graph{
		edges:  map[string][]string{"A": {"A"}},
		scores: map[string]int{"A": -3},
	}

	path, score := search.Solve[string, int, *graph](graphProblem{root: "A"}, g)
	assert.Equal(t, []string{"A"}, path)
	assert.Equal(t, -3, score)
}

func TestSolve_TieBreak_FirstDiscoveredWins(t *testing.T) {
	cases := []struct {
		name string
		g    *graph
		want []string
	}{
		{
			name: "DistinctEndpoints",
			g: &graph{
				edges:  map[string][]string{"A": {"B", "C"}, "B": {"X"}, "C": {"Y"}},
				scores: map[string]int{"X": 5, "Y": 5},
			},
			want: []string{"A", "B", "X"},
		},
		{
			name: "SharedEndpoint",
			g: &graph{
				edges:  map[string][]string{"A": {"B", "C"}, "B": {"D"}, "C": {"D"}},
				scores: map[string]int{"D": 5},
			},
			want: []string{"A", "B", "D"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := search.Run[string, int, *graph](graphProblem{root: "A"}, tc.g)
			require.True(t, res.Found())
			assert.Equal(t, tc.want, res.Path)
			assert.Equal(t, 5, res.Score)
			assert.Equal(t, 1, res.Stats.Improvements, "equal scores must not replace the best path")
		})
	}
}

func TestSolve_LaterBetterPathWins(t *testing.T) {
	g := &graph{
		edges:  map[string][]string{"A": {"B", "C"}, "B": {"X"}, "C": {"Y"}},
		scores: map[string]int{"X": 1, "Y": 9},
	}

	res := search.Run[string, int, *graph](graphProblem{root: "A"}, g)
	assert.Equal(t, []string{"A", "C", "Y"}, res.Path)
	assert.Equal(t, 9, res.Score)
	assert.Equal(t, 2, res.Stats.Improvements)
}

func TestSolve_IntermediateStatesAreScored(t *testing.T) {
	// B scores higher than its descendant, so the path stops at B.
	g := &graph{
		edges:  map[string][]string{"A": {"B"}, "B": {"C"}},
		scores: map[string]int{"B": 10, "C": 2},
	}

	path, score := search.Solve[string, int, *graph](graphProblem{root: "A"}, g)
	assert.Equal(t, []string{"A", "B"}, path)
	assert.Equal(t, 10, score)
}

func TestSolve_GridWalk3x3(t *testing.T) {
	p := gridWalk{W: 3, H: 3, goal: point{2, 2}}

	path, score := search.Solve[point, int, struct{}](p, struct{}{})
	require.Len(t, path, 5, "4 edges, 5 states")
	assert.Equal(t, -4, score)
	assert.Equal(t, point{0, 0}, path[0])
	assert.Equal(t, point{2, 2}, path[4])
	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y
		assert.Equal(t, 1, dx*dx+dy*dy, "consecutive states must be adjacent")
	}
}

func TestSolve_CycleTerminatesAndReachesAll(t *testing.T) {
	// A⇄B⇄C⇄A with a tail C→D; every vertex scores so Scored counts visits.
	g := &graph{
		edges: map[string][]string{
			"A": {"B", "C"},
			"B": {"A", "C"},
			"C": {"A", "B", "D"},
		},
		scores: map[string]int{"A": 0, "B": 0, "C": 0, "D": 1},
	}

	seen := map[string]bool{}
	rec := recordingProblem{graphProblem: graphProblem{root: "A"}, seen: seen}
	res := search.Run[string, int, *graph](rec, g)

	assert.Equal(t, 1, res.Score)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
	for _, v := range []string{"A", "B", "C", "D"} {
		assert.True(t, seen[v], "vertex %s must be visited", v)
	}
}

// recordingProblem records every state handed to Score.
type recordingProblem struct {
	graphProblem
	seen map[string]bool
}

func (r recordingProblem) Score(g *graph, s string, a int) (int, bool) {
	r.seen[s] = true

	return r.graphProblem.Score(g, s, a)
}

func TestSolve_DuplicateCandidatesExploredOnce(t *testing.T) {
	g := &graph{
		edges:  map[string][]string{"A": {"B", "B", "A"}},
		scores: map[string]int{"B": 1},
	}

	res := search.Run[string, int, *graph](graphProblem{root: "A"}, g)
	assert.Equal(t, []string{"A", "B"}, res.Path)
	assert.Equal(t, 2, res.Stats.Pushes)
	assert.Equal(t, 1, res.Stats.Scored)
}

func TestSolve_Idempotent(t *testing.T) {
	p := gridWalk{W: 3, H: 3, goal: point{2, 1}}

	path1, score1 := search.Solve[point, int, struct{}](p, struct{}{})
	path2, score2 := search.Solve[point, int, struct{}](p, struct{}{})
	assert.Equal(t, path1, path2)
	assert.Equal(t, score1, score2)
}

func TestSolve_LongChain(t *testing.T) {
	const n = 10000
	g := buildChain(n)

	res := search.Run[string, int, *graph](graphProblem{root: "N0"}, g)
	require.Len(t, res.Path, n)
	assert.Equal(t, n, res.Score)
	assert.Equal(t, n, res.Stats.MaxDepth)
	assert.Equal(t, "N9999", res.Path[n-1])
}

func TestObserver_MonotonicBestScore(t *testing.T) {
	p := gridWalk{W: 3, H: 3, goal: point{2, 2}}

	var (
		improvements []int
		kinds        = map[search.EventKind]int{}
		lastBest     = search.MinScore
	)
	obs := func(ev search.Event) {
		kinds[ev.Kind]++
		assert.GreaterOrEqual(t, ev.Score, lastBest, "best score must never decrease")
		lastBest = ev.Score
		if ev.Kind == search.EventImprove {
			improvements = append(improvements, ev.Score)
		}
	}

	res := search.Run[point, int, struct{}](p, struct{}{}, search.WithObserver(obs))
	require.NotEmpty(t, improvements)
	for i := 1; i < len(improvements); i++ {
		assert.Greater(t, improvements[i], improvements[i-1])
	}
	assert.Equal(t, res.Score, improvements[len(improvements)-1])
	assert.Equal(t, res.Stats.Pushes, kinds[search.EventPush])
	assert.Equal(t, res.Stats.Pops, kinds[search.EventBacktrack])
	assert.Equal(t, res.Stats.DeadEnds, kinds[search.EventDeadEnd])
	assert.Equal(t, res.Stats.Improvements, kinds[search.EventImprove])
}

func TestWithObserver_Nil(t *testing.T) {
	g := &graph{scores: map[string]int{"A": 1}}

	path, score := search.Solve[string, int, *graph](graphProblem{root: "A"}, g, search.WithObserver(nil))
	assert.Equal(t, []string{"A"}, path)
	assert.Equal(t, 1, score)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "push", search.EventPush.String())
	assert.Equal(t, "dead_end", search.EventDeadEnd.String())
	assert.Equal(t, "backtrack", search.EventBacktrack.String())
	assert.Equal(t, "improve", search.EventImprove.String())
	assert.Equal(t, "unknown", search.EventKind(42).String())
}

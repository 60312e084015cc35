// Package solver decides whether a dealt Klondike board admits a winning
// line within fixed depth and node budgets. The search is an exhaustive DFS
// over a depth-indexed array of board snapshots, pruned by forced-move
// collapse, a safe-push heuristic, and a transposition table. It reports
// only existence of a win, never the line itself, and it fails closed: a
// budget or allocation failure is indistinguishable from a proven dead end.
package solver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/fingerprint"
	"github.com/domino14/klondike/movegen"
)

// Config carries the search budgets. These used to be compile-time constants
// in an earlier design; keeping them here lets tests run with tiny budgets.
type Config struct {
	// DepthCeiling caps the snapshot array, bounding peak memory.
	DepthCeiling int
	// NodeCeiling caps visited nodes across one invocation.
	NodeCeiling uint64
	// TableCapacity is the transposition table slot count. Prime, so probe
	// sequences spread well.
	TableCapacity int
}

// DefaultConfig returns the production budgets.
func DefaultConfig() Config {
	return Config{
		DepthCeiling:  512,
		NodeCeiling:   2_000_000,
		TableCapacity: 200_003,
	}
}

// Stats describes one solver invocation. Only Winnable is contractual; the
// rest feeds driver logging.
type Stats struct {
	Winnable     bool
	Nodes        uint64
	MaxDepth     int
	TableCreated uint64
	TableLookups uint64
	TableHits    uint64
	Elapsed      time.Duration
}

// Solver holds only configuration. All per-call state lives in a
// call-scoped context, so a single Solver is safe for concurrent Solve
// calls.
type Solver struct {
	cfg Config
}

func New(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

// searchContext is the caller-owned state of one invocation: the
// depth-indexed snapshot array, the visited set, and the node counter.
type searchContext struct {
	states   []*board.Board
	visited  *TranspositionTable
	nodes    uint64
	maxDepth int
}

// Solve reports whether a winning line exists from b within budget. The
// input board is never mutated; the search works on copies. Repeated calls
// on structurally identical boards return identical results.
func (s *Solver) Solve(b *board.Board) bool {
	return s.SolveWithStats(b).Winnable
}

// SolveWithStats is Solve plus search statistics.
func (s *Solver) SolveWithStats(b *board.Board) Stats {
	start := time.Now()

	if b.GoalReached() {
		return Stats{Winnable: true, Elapsed: time.Since(start)}
	}

	visited := newTranspositionTable(s.cfg.TableCapacity)
	if visited == nil {
		// Fail closed: an unverified board is acceptable, a crash is not.
		return Stats{Elapsed: time.Since(start)}
	}

	ctx := &searchContext{
		states:  make([]*board.Board, s.cfg.DepthCeiling+2),
		visited: visited,
	}
	for i := range ctx.states {
		ctx.states[i] = &board.Board{}
	}
	b.CopyInto(ctx.states[0])

	win := s.search(ctx, 0)

	stats := Stats{
		Winnable:     win,
		Nodes:        ctx.nodes,
		MaxDepth:     ctx.maxDepth,
		TableCreated: visited.created,
		TableLookups: visited.lookups,
		TableHits:    visited.hits,
		Elapsed:      time.Since(start),
	}
	log.Debug().Bool("winnable", win).
		Uint64("nodes", stats.Nodes).
		Int("max-depth", stats.MaxDepth).
		Uint64("tt-created", stats.TableCreated).
		Uint64("tt-hits", stats.TableHits).
		Dur("elapsed", stats.Elapsed).
		Msg("solve-done")
	return stats
}

// search evaluates states[depth]. Children are written into states[depth+1]
// before recursing; backtracking overwrites deeper slots, so storage is
// bounded by the depth ceiling regardless of how the search branches.
func (s *Solver) search(ctx *searchContext, depth int) bool {
	if depth >= s.cfg.DepthCeiling {
		return false
	}
	if depth > ctx.maxDepth {
		ctx.maxDepth = depth
	}
	cur := ctx.states[depth]

	Collapse(cur)

	if cur.GoalReached() {
		return true
	}

	ctx.nodes++
	if ctx.nodes > s.cfg.NodeCeiling {
		return false
	}

	key := fingerprint.Hash(cur)
	if ctx.visited.Contains(key) {
		return false
	}
	ctx.visited.Insert(key)

	if !movegen.HasProgressMove(cur) {
		return false
	}

	child := ctx.states[depth+1]
	for _, m := range movegen.GenAll(cur) {
		cur.CopyInto(child)
		child.Apply(m)
		if s.search(ctx, depth+1) {
			return true
		}
	}
	return false
}

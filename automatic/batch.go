package automatic

// Data collection for batch solving. Deal many boards, solve each, and
// summarize how often the solver verifies a win and how hard it works.

import (
	"context"
	"expvar"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/card"
	"github.com/domino14/klondike/solver"
	"github.com/domino14/klondike/stats"
)

var (
	DealCounter *expvar.Int
	IsSolving   *expvar.Int
)

func init() {
	DealCounter = expvar.NewInt("dealCounter")
	IsSolving = expvar.NewInt("isSolving")
}

// BatchResult is one deal's outcome in a batch run.
type BatchResult struct {
	DealID   uint64
	Winnable bool
	Nodes    uint64
	MaxDepth int
}

// Summary aggregates a finished batch.
type Summary struct {
	Mode    board.Mode
	Results []BatchResult
}

// RunBatch deals and solves numDeals boards across worker goroutines. Each
// worker owns its solver invocations, so nothing is shared but the results
// channel. Per-deal CSV rows go to logWriter if it is non-nil.
func RunBatch(ctx context.Context, s *solver.Solver, mode board.Mode,
	numDeals, workers int, logWriter io.Writer) (*Summary, error) {

	if numDeals <= 0 {
		return nil, fmt.Errorf("need at least one deal, got %d", numDeals)
	}
	if workers < 1 {
		workers = 1
	}
	log.Debug().Int("deals", numDeals).Int("workers", workers).
		Str("mode", mode.String()).Msg("starting-batch")

	DealCounter.Set(0)

	results := make(chan BatchResult, workers)
	summary := &Summary{Mode: mode}

	collectorDone := make(chan struct{})
	go func() {
		defer close(collectorDone)
		if logWriter != nil {
			io.WriteString(logWriter, "dealID,winnable,nodes,maxdepth\n")
		}
		for r := range results {
			summary.Results = append(summary.Results, r)
			if logWriter != nil {
				fmt.Fprintf(logWriter, "%x,%t,%d,%d\n", r.DealID, r.Winnable, r.Nodes, r.MaxDepth)
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	IsSolving.Add(1)
	for i := 0; i < numDeals; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			deck := card.NewDeck()
			card.Shuffle(deck)
			b := board.Deal(deck, mode)

			st := s.SolveWithStats(b)
			results <- BatchResult{
				DealID:   card.DealID(deck),
				Winnable: st.Winnable,
				Nodes:    st.Nodes,
				MaxDepth: st.MaxDepth,
			}
			DealCounter.Add(1)
			return nil
		})
	}
	err := g.Wait()
	IsSolving.Add(-1)
	close(results)
	<-collectorDone
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// WinnableCount returns how many deals the solver verified.
func (s *Summary) WinnableCount() int {
	return lo.CountBy(s.Results, func(r BatchResult) bool { return r.Winnable })
}

// WinRate returns the verified-winnable proportion.
func (s *Summary) WinRate() float64 {
	if len(s.Results) == 0 {
		return 0
	}
	return float64(s.WinnableCount()) / float64(len(s.Results))
}

// ConfidenceInterval returns a normal-approximation interval for the win
// rate at the given confidence (in percent, e.g. 95).
func (s *Summary) ConfidenceInterval(confidence float64) (low, high float64) {
	n := float64(len(s.Results))
	if n == 0 {
		return 0, 0
	}
	p := s.WinRate()
	margin := stats.ZVal(confidence) * math.Sqrt(p*(1-p)/n)
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// NodeStats returns the mean and standard deviation of per-deal node counts.
func (s *Summary) NodeStats() (mean, stddev float64) {
	nodes := lo.Map(s.Results, func(r BatchResult, _ int) float64 { return float64(r.Nodes) })
	return stat.Mean(nodes, nil), stat.StdDev(nodes, nil)
}

// NodeHistogram writes a histogram of per-deal node counts.
func (s *Summary) NodeHistogram(w io.Writer) error {
	nodes := lo.Map(s.Results, func(r BatchResult, _ int) float64 { return float64(r.Nodes) })
	hist := histogram.Hist(10, nodes)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

func (s *Summary) String() string {
	var sb strings.Builder
	mean, stddev := s.NodeStats()
	low, high := s.ConfidenceInterval(95)
	fmt.Fprintf(&sb, "mode: %s\n", s.Mode)
	fmt.Fprintf(&sb, "deals: %d, verified winnable: %d (%.1f%%)\n",
		len(s.Results), s.WinnableCount(), 100*s.WinRate())
	fmt.Fprintf(&sb, "win rate 95%% CI: [%.3f, %.3f]\n", low, high)
	fmt.Fprintf(&sb, "nodes/deal: mean %.0f, stddev %.0f\n", mean, stddev)
	sb.WriteString("node histogram:\n")
	if err := s.NodeHistogram(&sb); err != nil {
		fmt.Fprintf(&sb, "(histogram error: %v)\n", err)
	}
	return sb.String()
}

package automatic

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/solver"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// tinySolver can't verify anything: one node is never enough for a fresh
// deal. That makes driver behavior deterministic in tests.
func tinySolver() *solver.Solver {
	return solver.New(solver.Config{
		DepthCeiling:  8,
		NodeCeiling:   1,
		TableCapacity: 101,
	})
}

func TestDealWinnableFallsBack(t *testing.T) {
	is := is.New(t)
	res := DealWinnable(tinySolver(), board.ModeNormal, 3)
	is.True(res.Board != nil) // fallback board is still usable
	is.True(!res.Verified)
	is.Equal(res.Attempts, 3)
	is.Equal(res.Board.CardCount(), 52)
}

func TestDealWinnableSingleAttempt(t *testing.T) {
	is := is.New(t)
	res := DealWinnable(tinySolver(), board.ModeEasy, 1)
	is.True(res.Board != nil)
	is.Equal(res.Attempts, 1)
	is.Equal(res.Board.Mode, board.ModeEasy)
}

func TestDealWinnableClampsAttemptCap(t *testing.T) {
	is := is.New(t)
	// A cap of zero must mean "one try", never "retry forever".
	res := DealWinnable(tinySolver(), board.ModeNormal, 0)
	is.True(res.Board != nil)
	is.Equal(res.Attempts, 1)
	is.True(!res.Verified)

	res = DealWinnable(tinySolver(), board.ModeNormal, -3)
	is.Equal(res.Attempts, 1)
}

func TestRunBatch(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	summary, err := RunBatch(context.Background(), tinySolver(), board.ModeNormal, 5, 2, &buf)
	is.NoErr(err)
	is.Equal(len(summary.Results), 5)
	is.Equal(summary.WinnableCount(), 0)
	is.Equal(summary.WinRate(), 0.0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 6) // header + one row per deal
	is.Equal(lines[0], "dealID,winnable,nodes,maxdepth")
}

func TestRunBatchRejectsBadInput(t *testing.T) {
	_, err := RunBatch(context.Background(), tinySolver(), board.ModeNormal, 0, 2, nil)
	assert.Error(t, err)
}

func TestSummaryStats(t *testing.T) {
	assert := assert.New(t)
	s := &Summary{
		Mode: board.ModeNormal,
		Results: []BatchResult{
			{DealID: 1, Winnable: true, Nodes: 100},
			{DealID: 2, Winnable: false, Nodes: 300},
			{DealID: 3, Winnable: true, Nodes: 200},
			{DealID: 4, Winnable: false, Nodes: 400},
		},
	}
	assert.Equal(2, s.WinnableCount())
	assert.InDelta(0.5, s.WinRate(), 1e-9)

	mean, stddev := s.NodeStats()
	assert.InDelta(250.0, mean, 1e-9)
	assert.Greater(stddev, 0.0)

	low, high := s.ConfidenceInterval(95)
	assert.Less(low, 0.5)
	assert.Greater(high, 0.5)
	assert.GreaterOrEqual(low, 0.0)
	assert.LessOrEqual(high, 1.0)

	out := s.String()
	assert.Contains(out, "deals: 4")
	assert.Contains(out, "verified winnable: 2")
}

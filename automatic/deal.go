// Package automatic is the deal driver: it deals fresh boards and asks the
// solver to verify winnability, retrying up to an attempt cap, and it can
// run batches of deals across workers for solver analysis.
package automatic

import (
	"errors"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/card"
	"github.com/domino14/klondike/solver"
)

var errNotWinnable = errors.New("deal not provably winnable")

// DealResult is the outcome of DealWinnable. Board is always set; Verified
// says whether the solver proved it winnable or the attempt cap ran out and
// the last deal was kept as a fallback. Callers surface that fact to the
// user.
type DealResult struct {
	Board    *board.Board
	DealID   uint64
	Verified bool
	Attempts int
	Nodes    uint64
}

// DealWinnable shuffles and deals boards until the solver verifies one, up
// to maxAttempts deals. A cap below 1 is treated as 1: retry.Attempts(0)
// means retry forever, which would never terminate on an unwinnable
// configuration.
func DealWinnable(s *solver.Solver, mode board.Mode, maxAttempts int) DealResult {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	res := DealResult{}
	err := retry.Do(
		func() error {
			res.Attempts++
			deck := card.NewDeck()
			card.Shuffle(deck)
			res.DealID = card.DealID(deck)
			res.Board = board.Deal(deck, mode)

			st := s.SolveWithStats(res.Board)
			res.Nodes += st.Nodes
			if !st.Winnable {
				return errNotWinnable
			}
			return nil
		},
		retry.Attempts(uint(maxAttempts)),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	res.Verified = err == nil
	if res.Verified {
		log.Debug().Uint64("deal-id", res.DealID).Int("attempts", res.Attempts).
			Msg("verified-winnable-deal")
	} else {
		log.Info().Int("attempts", res.Attempts).
			Msg("falling-back-to-unverified-board")
	}
	return res
}

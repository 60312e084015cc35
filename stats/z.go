// Package stats holds the small statistical helpers behind the batch
// analyzer's win-rate confidence intervals.
package stats

import "gonum.org/v1/gonum/stat/distuv"

// ZVal returns the two-tailed standard-normal critical value for a
// confidence level given in percent (95 -> ~1.96). The batch summary
// multiplies it into the normal-approximation margin around the observed
// win rate.
func ZVal(confidence float64) float64 {
	stdNormal := distuv.Normal{Mu: 0, Sigma: 1}
	upperTail := (1 + confidence/100) / 2
	return stdNormal.Quantile(upperTail)
}

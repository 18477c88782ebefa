package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Demodulation quality metrics.
 *
 * Description:	Scoring is against the nearest constellation level on
 *		each axis rather than the transmitted symbol, so a
 *		quadrant ambiguity in the decision directed carrier
 *		loop does not charge every symbol as an error.
 *
 *----------------------------------------------------------------*/

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

/* Per axis distance past which a symbol counts as a miss. */

const SYMBOL_ERROR_TOLERANCE = 300

type demod_stats_t struct {
	Total    int
	Good     int
	Accuracy float64 /* Good / Total. */
	EvmRms   float64 /* RMS nearest-level error, Q1.11 counts. */
	LockAt   int     /* First locked symbol index, -1 if never. */
}

func symbol_is_good(sym demod_symbol_t) bool {
	return qam16_axis_distance(sym.I) <= SYMBOL_ERROR_TOLERANCE &&
		qam16_axis_distance(sym.Q) <= SYMBOL_ERROR_TOLERANCE
}

/*------------------------------------------------------------------
 *
 * Name:        analyze_symbols
 *
 * Purpose:     Score a demodulated run.
 *
 * Inputs:	syms	- Receiver output.
 *		skip	- Leading symbols excluded from accuracy and
 *			  EVM, covering filter fill and acquisition.
 *
 *----------------------------------------------------------------*/

func analyze_symbols(syms []demod_symbol_t, skip int) demod_stats_t {

	var st = demod_stats_t{LockAt: -1}

	for k, sym := range syms {
		if sym.Locked && st.LockAt < 0 {
			st.LockAt = k
		}
	}

	if skip >= len(syms) {
		return st
	}

	var sqerr = make([]float64, 0, len(syms)-skip)

	for _, sym := range syms[skip:] {
		st.Total++
		if symbol_is_good(sym) {
			st.Good++
		}

		var di = float64(qam16_axis_distance(sym.I))
		var dq = float64(qam16_axis_distance(sym.Q))
		sqerr = append(sqerr, di*di+dq*dq)
	}

	if st.Total > 0 {
		st.Accuracy = float64(st.Good) / float64(st.Total)
		st.EvmRms = math.Sqrt(stat.Mean(sqerr, nil))
	}

	return st
}

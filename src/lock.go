package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Carrier lock detector.
 *
 * Description:	Exponential moving average over the magnitude of the
 *		phase detector error.  Lock is declared once a minimum
 *		number of symbols has been observed since reset AND the
 *		average sits under the threshold.  The flag is a level,
 *		not a latch, so a burst of noise that pushes the
 *		average back up drops it, and it re-asserts as soon as
 *		the average recovers.
 *
 *----------------------------------------------------------------*/

type lock_detect_s struct {
	average   int32 /* EMA of |error|, never negative. */
	count     int32 /* Symbols observed since reset, saturating. */
	shift     uint  /* EMA time constant, alpha = 2^-shift. */
	threshold int32
	min_count int32
	locked    bool
}

func lock_detect_init(ld *lock_detect_s, shift uint, threshold int32, min_count int32) {
	ld.shift = shift
	ld.threshold = threshold
	ld.min_count = min_count
	lock_detect_reset(ld)
}

func lock_detect_reset(ld *lock_detect_s) {
	ld.average = 0
	ld.count = 0
	ld.locked = false
}

/*------------------------------------------------------------------
 *
 * Name:        lock_detect_update
 *
 * Purpose:     Fold one phase error into the average and refresh the
 *		lock flag.
 *
 * Inputs:	err	- Raw phase detector output, either sign.
 *
 * Returns:	Current lock state.
 *
 *----------------------------------------------------------------*/

func lock_detect_update(ld *lock_detect_s, err int32) bool {

	var mag = err
	if mag < 0 {
		mag = -mag
	}

	ld.average += shr_sym(mag-ld.average, ld.shift)
	if ld.average < 0 {
		ld.average = 0
	}

	if ld.count < 0x7fffffff {
		ld.count++
	}

	ld.locked = ld.count >= ld.min_count && ld.average < ld.threshold
	return ld.locked
}

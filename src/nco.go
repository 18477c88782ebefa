package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:   	Numerically controlled oscillator.
 *
 * Description:	A phase accumulator of configurable width with a
 *		nominal step and an externally supplied correction.
 *		Both synchronization loops are built on one of these:
 *
 *		- The timing loop advances it once per input sample
 *		  with step = 2^W / samples_per_symbol.  The wrap of
 *		  the accumulator is the symbol boundary and the
 *		  residual after the wrap becomes the interpolator
 *		  fraction.
 *
 *		- The carrier loop advances it once per symbol with a
 *		  nominal step of zero; the accumulator is simply the
 *		  local oscillator phase (full scale = one turn), used
 *		  to index the sine table.
 *
 *		The effective step is clamped to a configured range so
 *		a wild correction can never stall the timing loop or
 *		run it backwards.  The carrier instance uses a
 *		symmetric range because its phase must be allowed to
 *		retreat.
 *
 *----------------------------------------------------------------*/

type nco_s struct {
	phase uint32 /* Masked to width bits. */
	mask  uint32

	nominal_step int32
	min_step     int32
	max_step     int32

	reset_phase uint32
}

func nco_init(n *nco_s, width uint, nominal_step int32, min_step int32, max_step int32, reset_phase uint32) {
	*n = nco_s{}
	n.mask = (1 << width) - 1
	n.nominal_step = nominal_step
	n.min_step = min_step
	n.max_step = max_step
	n.reset_phase = reset_phase & n.mask
	n.phase = n.reset_phase
}

func nco_reset(n *nco_s) {
	n.phase = n.reset_phase
}

/*------------------------------------------------------------------
 *
 * Name:	nco_advance
 *
 * Purpose:	Advance the accumulator by one tick.
 *
 * Inputs:	correction	- Signed step adjustment from the
 *				  enclosing loop filter.
 *
 * Returns:	wrapped		- True when the accumulator crossed
 *				  the top of its range.  That is the
 *				  boundary event the enclosing loop
 *				  acts on.
 *
 *		residual	- Accumulator value after the wrap
 *				  (or the current phase when no wrap
 *				  occurred).  For the timing loop the
 *				  residual measures how far past the
 *				  boundary this tick landed.
 *
 *----------------------------------------------------------------*/

func nco_advance(n *nco_s, correction int32) (bool, uint32) {
	var step = n.nominal_step + correction
	if step < n.min_step {
		step = n.min_step
	}
	if step > n.max_step {
		step = n.max_step
	}

	var sum = int64(n.phase) + int64(step)
	var wrapped = sum > int64(n.mask)

	n.phase = uint32(sum & int64(n.mask))

	return wrapped, n.phase
}

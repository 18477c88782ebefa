package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Symbol timing recovery.
 *
 * Description:	Gardner timing error detector driving a proportional
 *		plus integral filter into the sample clock NCO.  The
 *		detector needs three points per symbol: the current
 *		strobe, the previous strobe, and the sample midway
 *		between them.  All three are linearly interpolated at
 *		the fractional offset recovered from the NCO residual.
 *
 *		The correction is computed once per strobe and held so
 *		every NCO step between strobes sees the same value.
 *
 *----------------------------------------------------------------*/

const TIMING_NCO_WIDTH = 16

type timing_loop_s struct {
	nco nco_s
	sps int32

	kp_shift   uint
	ki_shift   uint
	deadzone   int32
	int_clamp  int32
	integrator int32
	correction int32

	holdoff      int32 /* Strobes left with the filter frozen. */
	holdoff_init int32

	last_err int32 /* TED output at the most recent strobe. */

	mu        int32 /* Fractional offset of the last strobe, Q1.11. */
	mid_count int32 /* Samples since the last strobe. */

	prev_i int32 /* Raw sample one step back, interpolation source. */
	prev_q int32

	mid_i    int32 /* Interpolated half symbol point. */
	mid_q    int32
	have_mid bool

	last_i    int32 /* Previous strobe symbol. */
	last_q    int32
	have_last bool
}

func timing_loop_init(t *timing_loop_s, sps int32, kp_shift uint, ki_shift uint, deadzone int32, int_clamp int32, holdoff int32) {

	var step = int32((1 << TIMING_NCO_WIDTH) / sps)

	nco_init(&t.nco, TIMING_NCO_WIDTH, step, 1, 2*step, uint32(1<<TIMING_NCO_WIDTH)-uint32(step))

	t.sps = sps
	t.kp_shift = kp_shift
	t.ki_shift = ki_shift
	t.deadzone = deadzone
	t.int_clamp = int_clamp
	t.holdoff_init = holdoff

	timing_loop_reset(t)
}

func timing_loop_reset(t *timing_loop_s) {
	nco_reset(&t.nco)
	t.holdoff = t.holdoff_init
	t.integrator = 0
	t.correction = 0
	t.last_err = 0
	t.mu = 0
	t.mid_count = 0
	t.prev_i = 0
	t.prev_q = 0
	t.mid_i = 0
	t.mid_q = 0
	t.have_mid = false
	t.last_i = 0
	t.last_q = 0
	t.have_last = false
}

/*------------------------------------------------------------------
 *
 * Name:        timing_loop_sample
 *
 * Purpose:     Push one matched filter output sample through the
 *		timing loop.
 *
 * Inputs:	in_i, in_q	- Sample at the free running rate.
 *
 * Returns:	strobe		- True when this sample produced a
 *				  symbol decision point.
 *		sym_i, sym_q	- Interpolated symbol, valid only
 *				  when strobe is true.
 *
 *----------------------------------------------------------------*/

func timing_loop_sample(t *timing_loop_s, in_i int32, in_q int32) (bool, int32, int32) {

	var wrapped, phase = nco_advance(&t.nco, t.correction)

	t.mid_count++
	if t.mid_count == t.sps/2 {
		t.mid_i = interpolate_linear(in_i, t.prev_i, t.mu)
		t.mid_q = interpolate_linear(in_q, t.prev_q, t.mu)
		t.have_mid = true
	}

	var strobe bool
	var sym_i, sym_q int32

	if wrapped {
		strobe = true
		t.mid_count = 0

		/* Residual past the boundary, as a fraction of one sample. */

		var mu = int32((int64(phase) << SAMPLE_FRAC_BITS) / int64(t.nco.nominal_step))
		if mu > SAMPLE_MAX {
			mu = SAMPLE_MAX
		}
		t.mu = mu

		sym_i = interpolate_linear(in_i, t.prev_i, mu)
		sym_q = interpolate_linear(in_q, t.prev_q, mu)

		if t.have_last && t.have_mid {
			var err = add_sat(mul_q11(sub_sat(t.last_i, sym_i), t.mid_i),
				mul_q11(sub_sat(t.last_q, sym_q), t.mid_q))
			t.last_err = err

			if t.holdoff > 0 {
				t.holdoff--
			} else {
				var prop = -shr_sym(err, t.kp_shift)

				var mag = err
				if mag < 0 {
					mag = -mag
				}
				if mag > t.deadzone {
					t.integrator -= shr_sym(err, t.ki_shift)
					if t.integrator > t.int_clamp {
						t.integrator = t.int_clamp
					}
					if t.integrator < -t.int_clamp {
						t.integrator = -t.int_clamp
					}
				}

				t.correction = prop + t.integrator
			}
		}

		t.last_i = sym_i
		t.last_q = sym_q
		t.have_last = true
		t.have_mid = false
	}

	t.prev_i = in_i
	t.prev_q = in_q

	return strobe, sym_i, sym_q
}

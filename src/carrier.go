package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Carrier phase and frequency recovery.
 *
 * Description:	Decision directed Costas loop running once per symbol
 *		strobe.  The incoming symbol is de-rotated by the NCO
 *		phase, sliced to the nearest constellation point, and
 *		the cross product between the rotated symbol and the
 *		decision drives a proportional plus integral filter.
 *
 *		The loop is gear shifted.  It starts in an acquisition
 *		state with wide bandwidth and an active frequency
 *		integrator, then after a fixed number of symbols drops
 *		to a narrow proportional-only tracking state with the
 *		integrator frozen at the acquired frequency estimate.
 *
 *----------------------------------------------------------------*/

import (
	"math"
)

const CARRIER_NCO_WIDTH = 16

/* Largest phase step per symbol, either direction. */

const CARRIER_STEP_CLAMP = 8192

/* Quarter wave sine table, Q1.11 amplitude.  The 16 bit phase is
 * quantized to 256 buckets; folding the quadrants needs 64 buckets
 * per quadrant plus the shared endpoint. */

var qsin_table [65]int32

func init() {
	for j := range qsin_table {
		qsin_table[j] = int32(math.Round(2047.0 * math.Sin(math.Pi/2.0*float64(j)/64.0)))
	}
}

func lut_sin(phase uint32) int32 {

	var idx = (phase >> 8) & 0xff
	var pos = int(idx & 0x3f)

	switch idx >> 6 {
	case 0:
		return qsin_table[pos]
	case 1:
		return qsin_table[64-pos]
	case 2:
		return -qsin_table[pos]
	default:
		return -qsin_table[64-pos]
	}
}

func lut_cos(phase uint32) int32 {
	return lut_sin((phase + 0x4000) & 0xffff)
}

/* Loop states.  Transitions are one way; a reset starts over. */

const (
	CARRIER_RESET = iota
	CARRIER_HOLDOFF
	CARRIER_ACQUISITION
	CARRIER_TRACKING
)

type carrier_loop_s struct {
	nco   nco_s
	state int

	kp_shift_acq uint
	ki_shift_acq uint
	kp_shift_trk uint

	omega       int32 /* Frequency estimate, phase units per symbol. */
	omega_clamp int32

	holdoff    int32 /* Symbols left before the loop closes. */
	gear_count int32 /* Acquisition symbols before the gear shift. */

	freeze_nco bool /* Diagnostic: stop the NCO once locked. */

	lock lock_detect_s
}

type carrier_config_s struct {
	kp_shift_acq uint
	ki_shift_acq uint
	kp_shift_trk uint
	omega_clamp  int32
	holdoff      int32
	gear_count   int32

	lock_shift     uint
	lock_threshold int32
	lock_min_count int32
}

func default_carrier_config() carrier_config_s {
	return carrier_config_s{
		kp_shift_acq:   3,
		ki_shift_acq:   6,
		kp_shift_trk:   1,
		omega_clamp:    1024,
		holdoff:        32,
		gear_count:     400,
		lock_shift:     5,
		lock_threshold: 512,
		lock_min_count: 128,
	}
}

func carrier_loop_init(c *carrier_loop_s, cfg carrier_config_s) {

	nco_init(&c.nco, CARRIER_NCO_WIDTH, 0, -CARRIER_STEP_CLAMP, CARRIER_STEP_CLAMP, 0)

	c.kp_shift_acq = cfg.kp_shift_acq
	c.ki_shift_acq = cfg.ki_shift_acq
	c.kp_shift_trk = cfg.kp_shift_trk
	c.omega_clamp = cfg.omega_clamp

	lock_detect_init(&c.lock, cfg.lock_shift, cfg.lock_threshold, cfg.lock_min_count)

	carrier_loop_reset(c, cfg.holdoff, cfg.gear_count)
}

func carrier_loop_reset(c *carrier_loop_s, holdoff int32, gear_count int32) {
	nco_reset(&c.nco)
	c.state = CARRIER_RESET
	c.omega = 0
	c.holdoff = holdoff
	c.gear_count = gear_count
	lock_detect_reset(&c.lock)
}

/*------------------------------------------------------------------
 *
 * Name:        carrier_loop_symbol
 *
 * Purpose:     De-rotate one symbol and close the loop on it.
 *
 * Inputs:	in_i, in_q	- Symbol from the timing loop strobe.
 *
 * Returns:	rot_i, rot_q	- Symbol after phase correction.
 *		locked		- Lock detector level.
 *
 *----------------------------------------------------------------*/

func carrier_loop_symbol(c *carrier_loop_s, in_i int32, in_q int32) (int32, int32, bool) {

	var cos = lut_cos(c.nco.phase)
	var sin = lut_sin(c.nco.phase)

	/* Rotate by minus the NCO phase. */

	var rot_i = add_sat(mul_q11(in_i, cos), mul_q11(in_q, sin))
	var rot_q = sub_sat(mul_q11(in_q, cos), mul_q11(in_i, sin))

	if c.state == CARRIER_RESET {
		c.state = CARRIER_HOLDOFF
	}

	if c.state == CARRIER_HOLDOFF {
		c.holdoff--
		if c.holdoff <= 0 {
			c.state = CARRIER_ACQUISITION
		}
		nco_advance(&c.nco, c.omega)
		return rot_i, rot_q, false
	}

	var i_hat = qam16_slice_axis(rot_i)
	var q_hat = qam16_slice_axis(rot_q)

	/* Positive error means the NCO lags the carrier. */

	var err = sub_sat(mul_q11(rot_q, i_hat), mul_q11(rot_i, q_hat))

	var prop int32

	if c.state == CARRIER_ACQUISITION {
		prop = shr_sym(err, c.kp_shift_acq)

		c.omega += shr_sym(err, c.ki_shift_acq)
		if c.omega > c.omega_clamp {
			c.omega = c.omega_clamp
		}
		if c.omega < -c.omega_clamp {
			c.omega = -c.omega_clamp
		}

		c.gear_count--
		if c.gear_count <= 0 {
			c.state = CARRIER_TRACKING
		}
	} else {
		prop = shr_sym(err, c.kp_shift_trk)
	}

	var locked = lock_detect_update(&c.lock, err)

	if !(c.freeze_nco && locked) {
		nco_advance(&c.nco, prop+c.omega)
	}

	return rot_i, rot_q, locked
}

package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:   	Saturating Q1.11 fixed point arithmetic.
 *
 * Description:	Every I/Q value in the modem - filter taps, matched
 *		filter output, recovered symbols, sine table entries -
 *		is a 12 bit signed value with 11 fractional bits.
 *		Range is [-2048, 2047], i.e. roughly [-1.0, +1.0) at a
 *		resolution of 2^-11.
 *
 *		Anything written back into that range must be saturated,
 *		never wrapped.  Native wrapping arithmetic would produce
 *		different acquisition and lock behavior, so all the
 *		helpers here clamp to the boundary values.
 *
 *		Values are carried in int32 for convenience.  Products
 *		are computed double width and the caller decides how the
 *		fractional bits come off: rounded (mul_q11) or truncated
 *		toward zero (mul_q11_trunc).
 *
 *----------------------------------------------------------------*/

import (
	"math"
)

const SAMPLE_FRAC_BITS = 11

const SAMPLE_SCALE = 1 << SAMPLE_FRAC_BITS /* 2048 = 1.0 */

const SAMPLE_MAX = SAMPLE_SCALE - 1 /* 2047 */

const SAMPLE_MIN = -SAMPLE_SCALE /* -2048 */

/* Clamp a wide intermediate result to the 12 bit sample range. */

func sat12(v int64) int32 {
	if v > SAMPLE_MAX {
		return SAMPLE_MAX
	}
	if v < SAMPLE_MIN {
		return SAMPLE_MIN
	}
	return int32(v)
}

func add_sat(a int32, b int32) int32 {
	return sat12(int64(a) + int64(b))
}

func sub_sat(a int32, b int32) int32 {
	return sat12(int64(a) - int64(b))
}

/*------------------------------------------------------------------
 *
 * Name:	mul_q11
 *
 * Purpose:	Q1.11 x Q1.11 multiply with rounding.
 *
 * Description:	The double width product has 22 fractional bits.
 *		Add half an output LSB before discarding 11 of them,
 *		then saturate.
 *
 *----------------------------------------------------------------*/

func mul_q11(a int32, b int32) int32 {
	var p = int64(a) * int64(b)
	p += 1 << (SAMPLE_FRAC_BITS - 1)
	return sat12(p >> SAMPLE_FRAC_BITS)
}

/* Same but truncating toward zero, for places that must be sign symmetric. */

func mul_q11_trunc(a int32, b int32) int32 {
	var p = int64(a) * int64(b)
	if p < 0 {
		return sat12(-((-p) >> SAMPLE_FRAC_BITS))
	}
	return sat12(p >> SAMPLE_FRAC_BITS)
}

/*------------------------------------------------------------------
 *
 * Name:	shr_sym
 *
 * Purpose:	Sign symmetric right shift: truncate toward zero.
 *
 * Description:	A plain arithmetic shift of a negative value rounds
 *		toward minus infinity.  Inside the loop filters that
 *		introduces a constant drift during acquisition, so the
 *		gain shifts use this instead.
 *
 *----------------------------------------------------------------*/

func shr_sym(v int32, shift uint) int32 {
	if v < 0 {
		return -((-v) >> shift)
	}
	return v >> shift
}

/* Conversions used by filter design and test vector generation. */

func sample_to_float(v int32) float64 {
	return float64(v) / SAMPLE_SCALE
}

func float_to_sample(f float64) int32 {
	return sat12(int64(math.Round(f * SAMPLE_SCALE)))
}

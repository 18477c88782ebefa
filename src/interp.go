package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:   	Linear interpolator for the timing loop.
 *
 * Description:	Reconstructs a sample at a fractional position
 *		between two consecutive input samples:
 *
 *			out = cur + mu * (prev - cur)
 *
 *		where mu is a Q0.11 fraction in [0, 1).  mu = 0 gives
 *		the current sample, mu -> 1 approaches the previous
 *		one.  First order approximation of the ideal
 *		interpolation filter; costs one multiply per axis.
 *
 *----------------------------------------------------------------*/

func interpolate_linear(cur int32, prev int32, mu int32) int32 {
	return add_sat(cur, mul_q11(mu, sub_sat(prev, cur)))
}

package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Channel impairment model for tests and test vector
 *		generation.
 *
 * Description:	Applied in floating point, then requantized.  A static
 *		phase rotation, a carrier frequency offset, and white
 *		Gaussian noise at a given SNR.  The noise variance is
 *		derived from the measured signal power so the SNR is
 *		honest regardless of the shaping headroom:
 *
 *		    var = P_sig / (2 * 10^(snr/10))     per axis.
 *
 *----------------------------------------------------------------*/

import (
	"math"
	"math/rand"
)

type channel_s struct {
	phase_rad float64 /* Static rotation. */
	cfo_hz    float64
	fs        float64
	snr_db    float64
	add_noise bool
	rng       *rand.Rand
}

func channel_init(ch *channel_s, phase_deg float64, cfo_hz float64, fs float64) {
	ch.phase_rad = phase_deg * math.Pi / 180.0
	ch.cfo_hz = cfo_hz
	ch.fs = fs
	ch.add_noise = false
}

func channel_set_noise(ch *channel_s, snr_db float64, seed int64) {
	ch.snr_db = snr_db
	ch.add_noise = true
	ch.rng = rand.New(rand.NewSource(seed))
}

/*------------------------------------------------------------------
 *
 * Name:        channel_apply
 *
 * Purpose:     Run a sample stream through the impairments.
 *
 * Inputs:	in_i, in_q	- Clean transmit stream.
 *
 * Returns:	Impaired stream, same length, requantized to Q1.11.
 *
 *----------------------------------------------------------------*/

func channel_apply(ch *channel_s, in_i []int32, in_q []int32) ([]int32, []int32) {

	var n = len(in_i)
	var fi = make([]float64, n)
	var fq = make([]float64, n)

	var sig_power float64
	for k := 0; k < n; k++ {
		fi[k] = sample_to_float(in_i[k])
		fq[k] = sample_to_float(in_q[k])
		sig_power += fi[k]*fi[k] + fq[k]*fq[k]
	}
	sig_power /= float64(n)

	var w = 2.0 * math.Pi * ch.cfo_hz / ch.fs

	for k := 0; k < n; k++ {
		var ang = ch.phase_rad + w*float64(k)
		var c = math.Cos(ang)
		var s = math.Sin(ang)

		var ri = fi[k]*c - fq[k]*s
		var rq = fi[k]*s + fq[k]*c
		fi[k] = ri
		fq[k] = rq
	}

	if ch.add_noise {
		var sigma = math.Sqrt(sig_power / (2.0 * math.Pow(10.0, ch.snr_db/10.0)))
		for k := 0; k < n; k++ {
			fi[k] += sigma * ch.rng.NormFloat64()
			fq[k] += sigma * ch.rng.NormFloat64()
		}
	}

	var out_i = make([]int32, n)
	var out_q = make([]int32, n)
	for k := 0; k < n; k++ {
		out_i[k] = float_to_sample(fi[k])
		out_q[k] = float_to_sample(fq[k])
	}

	return out_i, out_q
}

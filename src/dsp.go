package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Root raised cosine filter design and the fixed point
 *		FIR used for pulse shaping and matched filtering.
 *
 * Description:	The filter kernel is designed in floating point from
 *		the closed form (Proakis, Digital Communications 5e),
 *		normalized to unit energy, then quantized to Q1.11.
 *
 *		The transmit taps are scaled so the peak coefficient
 *		lands at about 0.45, leaving headroom for accumulation
 *		in the shaping FIR.  The receive taps are scaled by the
 *		reciprocal so the TX -> RX cascade has unit peak gain
 *		at the optimum sampling instant and the slicer levels
 *		in qam.go hold without further normalization.
 *
 *----------------------------------------------------------------*/

import (
	"math"
)

/* Peak target for the quantized transmit taps. */

const RRC_TX_PEAK_TARGET = 0.45

/*------------------------------------------------------------------
 *
 * Name:        gen_rrc_pulse
 *
 * Purpose:     Root raised cosine impulse response.
 *
 * Inputs:   	num_taps	- Filter length, must be odd for
 *				  Type I linear phase symmetry.
 *		sps		- Samples per symbol.
 *		alpha		- Roll off factor, 0 < alpha <= 1.
 *
 * Returns:	Taps normalized to unit energy.
 *
 *----------------------------------------------------------------*/

func gen_rrc_pulse(num_taps int, sps int, alpha float64) []float64 {

	var h = make([]float64, num_taps)
	var center = float64(num_taps-1) / 2.0

	for k := 0; k < num_taps; k++ {
		var t = (float64(k) - center) / float64(sps) /* time in symbol periods */

		switch {
		case math.Abs(t) < 1e-12:
			h[k] = 1 - alpha + 4*alpha/math.Pi

		case math.Abs(math.Abs(t)-1/(4*alpha)) < 1e-12:
			/* The singular points t = +-1/(4 alpha). */
			h[k] = (alpha / math.Sqrt2) * ((1+2/math.Pi)*math.Sin(math.Pi/(4*alpha)) +
				(1-2/math.Pi)*math.Cos(math.Pi/(4*alpha)))

		default:
			var num = math.Sin(math.Pi*t*(1-alpha)) + 4*alpha*t*math.Cos(math.Pi*t*(1+alpha))
			var den = math.Pi * t * (1 - math.Pow(4*alpha*t, 2))
			h[k] = num / den
		}
	}

	/* Normalize to unit energy so the matched pair has unit gain. */

	var energy float64
	for k := 0; k < num_taps; k++ {
		energy += h[k] * h[k]
	}
	var norm = math.Sqrt(energy)
	for k := 0; k < num_taps; k++ {
		h[k] /= norm
	}

	return h
}

/* Scale and quantize a float kernel to Q1.11. */

func quantize_taps(h []float64, scale float64) []int32 {
	var taps = make([]int32, len(h))
	for k := range h {
		taps[k] = float_to_sample(h[k] * scale)
	}
	return taps
}

/*------------------------------------------------------------------
 *
 * Name:        gen_tx_taps
 *		gen_rx_taps
 *
 * Purpose:     Quantized shaping and matched filter kernels.
 *
 * Description:	With unit energy taps the cascade peak is exactly the
 *		product of the two scale factors, so choosing
 *		rx_scale = 1 / tx_scale makes the overall symbol gain
 *		1.0 and the constellation arrives at the slicer on the
 *		nominal Q1.11 levels.
 *
 *----------------------------------------------------------------*/

func gen_tx_taps(h []float64) []int32 {
	return quantize_taps(h, RRC_TX_PEAK_TARGET/peak_abs(h))
}

func gen_rx_taps(h []float64) []int32 {
	return quantize_taps(h, peak_abs(h)/RRC_TX_PEAK_TARGET)
}

func peak_abs(h []float64) float64 {
	var peak float64
	for k := range h {
		if math.Abs(h[k]) > peak {
			peak = math.Abs(h[k])
		}
	}
	return peak
}

/* Cascade peak gain of two quantized kernels, in Q1.11.  Should be
 * close to SAMPLE_SCALE for a matched pair. */

func cascade_gain(tx []int32, rx []int32) int32 {
	var acc int64
	for k := range tx {
		acc += int64(tx[k]) * int64(rx[k])
	}
	return int32(acc >> SAMPLE_FRAC_BITS)
}

/*------------------------------------------------------------------
 *
 * Name:        fir_fixed_s
 *
 * Purpose:     Streaming Q1.11 FIR over an I/Q pair.
 *
 * Description:	Newest sample first.  The accumulator is 64 bit wide;
 *		the result is rounded back to Q1.11 and saturated.
 *
 *----------------------------------------------------------------*/

type fir_fixed_s struct {
	taps    []int32
	delay_i []int32
	delay_q []int32
}

func fir_fixed_init(f *fir_fixed_s, taps []int32) {
	f.taps = taps
	f.delay_i = make([]int32, len(taps))
	f.delay_q = make([]int32, len(taps))
}

/* Add sample to buffer and shift the rest down. */

func push_sample_fixed(val int32, buff []int32) {
	copy(buff[1:], buff[:len(buff)-1])
	buff[0] = val
}

func convolve_fixed(data []int32, taps []int32) int32 {
	var acc int64

	for j := range taps {
		acc += int64(taps[j]) * int64(data[j])
	}

	acc += 1 << (SAMPLE_FRAC_BITS - 1)
	return sat12(acc >> SAMPLE_FRAC_BITS)
}

func fir_fixed_sample(f *fir_fixed_s, in_i int32, in_q int32) (int32, int32) {
	push_sample_fixed(in_i, f.delay_i)
	push_sample_fixed(in_q, f.delay_q)

	return convolve_fixed(f.delay_i, f.taps), convolve_fixed(f.delay_q, f.taps)
}

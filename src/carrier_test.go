package gdsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSineLutAnchors(t *testing.T) {
	assert.Equal(t, int32(0), lut_sin(0))
	assert.Equal(t, int32(2047), lut_sin(0x4000))
	assert.Equal(t, int32(0), lut_sin(0x8000))
	assert.Equal(t, int32(-2047), lut_sin(0xc000))
	assert.Equal(t, int32(2047), lut_cos(0))
	assert.Equal(t, int32(-2047), lut_cos(0x8000))
}

func TestSineLutSymmetry(t *testing.T) {
	// The first quadrant is monotone.
	for j := 1; j <= 64; j++ {
		assert.GreaterOrEqual(t, qsin_table[j], qsin_table[j-1])
	}

	rapid.Check(t, func(t *rapid.T) {
		var phase = rapid.Uint32Range(0, 0xffff).Draw(t, "phase")

		// Half turn negates exactly, by the quadrant folding.
		assert.Equal(t, -lut_sin(phase), lut_sin((phase+0x8000)&0xffff))

		// Close to the real thing.
		var want = 2047.0 * math.Sin(2.0*math.Pi*float64(phase)/65536.0)
		assert.InDelta(t, want, float64(lut_sin(phase)), 55.0)
	})
}

// Ideal constellation symbols rotated in floating point, quantized to
// Q1.11.  phase_step is the per symbol rotation in radians.
func rotated_symbols(count int, phase0 float64, phase_step float64) ([]int32, []int32) {
	var p prbs_s
	prbs_init(&p, 7)

	var out_i = make([]int32, count)
	var out_q = make([]int32, count)

	for k := 0; k < count; k++ {
		var si, sq = qam16_map(prbs_nibble(&p))
		var ang = phase0 + phase_step*float64(k)
		var c, s = math.Cos(ang), math.Sin(ang)

		var fi = sample_to_float(si)
		var fq = sample_to_float(sq)
		out_i[k] = float_to_sample(fi*c - fq*s)
		out_q[k] = float_to_sample(fi*s + fq*c)
	}
	return out_i, out_q
}

func run_carrier(c *carrier_loop_s, in_i []int32, in_q []int32) []demod_symbol_t {
	var out = make([]demod_symbol_t, len(in_i))
	for k := range in_i {
		var ri, rq, locked = carrier_loop_symbol(c, in_i[k], in_q[k])
		out[k] = demod_symbol_t{I: ri, Q: rq, Locked: locked}
	}
	return out
}

func TestCarrierLocksAtFortyFiveDegrees(t *testing.T) {
	var in_i, in_q = rotated_symbols(1500, math.Pi/4, 0)

	var c carrier_loop_s
	carrier_loop_init(&c, default_carrier_config())

	var out = run_carrier(&c, in_i, in_q)

	var st = analyze_symbols(out, 1000)
	require.GreaterOrEqual(t, st.LockAt, 0, "never locked")
	assert.Less(t, st.LockAt, 800)
	assert.Greater(t, st.Accuracy, 0.95, "accuracy %.3f", st.Accuracy)
}

func TestCarrierHoldoff(t *testing.T) {
	var in_i, in_q = rotated_symbols(40, 0.3, 0)

	var c carrier_loop_s
	carrier_loop_init(&c, default_carrier_config())

	for k := 0; k < 32; k++ {
		var _, _, locked = carrier_loop_symbol(&c, in_i[k], in_q[k])
		assert.False(t, locked, "symbol %d", k)
		assert.NotEqual(t, CARRIER_TRACKING, c.state)
	}
	require.Equal(t, CARRIER_ACQUISITION, c.state)
}

func TestCarrierStateMachineIsMonotone(t *testing.T) {
	var in_i, in_q = rotated_symbols(600, 0.5, 0)

	var c carrier_loop_s
	carrier_loop_init(&c, default_carrier_config())

	var prev = c.state
	for k := range in_i {
		carrier_loop_symbol(&c, in_i[k], in_q[k])
		assert.GreaterOrEqual(t, c.state, prev, "symbol %d", k)
		prev = c.state
	}
	assert.Equal(t, CARRIER_TRACKING, c.state)
}

func TestCarrierAcquiresFrequencyOffset(t *testing.T) {
	// 50 kHz offset at a 6.75 Msym/s rate is about 485 NCO units per
	// symbol, well inside the integrator clamp.
	var symbol_rate = 27.0e6 / 4.0

	var omega_for = func(cfo float64) int32 {
		var step = 2.0 * math.Pi * cfo / symbol_rate
		var in_i, in_q = rotated_symbols(1200, 0, step)

		var c carrier_loop_s
		carrier_loop_init(&c, default_carrier_config())
		run_carrier(&c, in_i, in_q)
		return c.omega
	}

	var want50 = 50.0e3 / symbol_rate * 65536.0
	var got50 = omega_for(50.0e3)
	assert.InDelta(t, want50, float64(got50), want50/2, "omega %d", got50)

	var got25 = omega_for(25.0e3)
	assert.Greater(t, got25, int32(0))
	assert.Greater(t, got50, got25)
}

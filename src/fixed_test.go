package gdsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, int32(SAMPLE_MAX), add_sat(2047, 2047))
	assert.Equal(t, int32(SAMPLE_MIN), add_sat(-2048, -2048))
	assert.Equal(t, int32(SAMPLE_MIN), sub_sat(-2048, 2047))
	assert.Equal(t, int32(-1), add_sat(2047, -2048))
	assert.Equal(t, int32(0), add_sat(0, 0))
}

func TestSaturatingMul(t *testing.T) {
	// Near full scale squared rounds to just under full scale.
	assert.Equal(t, int32(2046), mul_q11(2047, 2047))

	// -1.0 * -1.0 would be +1.0 which does not exist in Q1.11.
	assert.Equal(t, int32(SAMPLE_MAX), mul_q11(-2048, -2048))

	// 0.5 * 0.5 = 0.25.
	assert.Equal(t, int32(512), mul_q11(1024, 1024))

	assert.Equal(t, int32(0), mul_q11(2047, 0))
}

func TestSignSymmetricShift(t *testing.T) {
	// Arithmetic shift of -5 by 1 gives -3; sign symmetric gives -2.
	assert.Equal(t, int32(-2), shr_sym(-5, 1))
	assert.Equal(t, int32(2), shr_sym(5, 1))
	assert.Equal(t, int32(0), shr_sym(-1, 1))
	assert.Equal(t, int32(-3), mul_q11_trunc(-3, 2048))
}

func TestConversionRoundTrip(t *testing.T) {
	assert.Equal(t, int32(SAMPLE_MAX), float_to_sample(2.0))
	assert.Equal(t, int32(SAMPLE_MIN), float_to_sample(-2.0))
	assert.Equal(t, int32(1024), float_to_sample(0.5))
	assert.InDelta(t, 0.5, sample_to_float(1024), 1e-9)
}

func TestSaturationNeverWraps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var a = rapid.Int32Range(SAMPLE_MIN, SAMPLE_MAX).Draw(t, "a")
		var b = rapid.Int32Range(SAMPLE_MIN, SAMPLE_MAX).Draw(t, "b")

		var want = int64(a) + int64(b)
		if want > SAMPLE_MAX {
			want = SAMPLE_MAX
		}
		if want < SAMPLE_MIN {
			want = SAMPLE_MIN
		}
		assert.Equal(t, int32(want), add_sat(a, b))

		var p = mul_q11(a, b)
		assert.LessOrEqual(t, p, int32(SAMPLE_MAX))
		assert.GreaterOrEqual(t, p, int32(SAMPLE_MIN))
	})
}

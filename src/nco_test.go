package gdsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNcoPeriodicity(t *testing.T) {
	var n nco_s
	var step = int32(65536 / 4)
	nco_init(&n, 16, step, 1, 2*step, uint32(65536)-uint32(step))

	// With zero correction the wrap must land every 4 ticks, and the
	// first one after exactly one tick because of the reset phase.
	var wraps []int
	for k := 0; k < 400; k++ {
		if w, _ := nco_advance(&n, 0); w {
			wraps = append(wraps, k)
		}
	}

	require.Len(t, wraps, 100)
	assert.Equal(t, 0, wraps[0])
	for j := 1; j < len(wraps); j++ {
		assert.Equal(t, 4, wraps[j]-wraps[j-1])
	}
}

func TestNcoResidualIsZeroOnExactWrap(t *testing.T) {
	var n nco_s
	var step = int32(65536 / 4)
	nco_init(&n, 16, step, 1, 2*step, uint32(65536)-uint32(step))

	var wrapped, residual = nco_advance(&n, 0)
	require.True(t, wrapped)
	assert.Equal(t, uint32(0), residual)
}

func TestNcoResidualMeasuresOvershoot(t *testing.T) {
	var n nco_s
	var step = int32(65536 / 4)
	nco_init(&n, 16, step, 1, 2*step, uint32(65536)-uint32(step))

	// A positive correction makes the wrap come early and the leftover
	// phase is exactly the overshoot past the top.
	var wrapped, residual = nco_advance(&n, 100)
	require.True(t, wrapped)
	assert.Equal(t, uint32(100), residual)
}

func TestNcoStepClamp(t *testing.T) {
	var n nco_s
	var step = int32(65536 / 4)
	nco_init(&n, 16, step, 1, 2*step, 0)

	// A huge negative correction clamps the step to 1; the clock slows
	// but never stops or runs backwards.
	var before = n.phase
	nco_advance(&n, -1000000)
	assert.Equal(t, before+1, n.phase)

	// A huge positive correction clamps to twice nominal.
	before = n.phase
	nco_advance(&n, 1000000)
	assert.Equal(t, before+uint32(2*step), n.phase)
}

func TestNcoNegativeStepWrapsBackwards(t *testing.T) {
	// The carrier instance has nominal step 0 and a symmetric clamp so
	// its phase can retreat through zero.
	var n nco_s
	nco_init(&n, 16, 0, -8192, 8192, 0)

	var wrapped, phase = nco_advance(&n, -100)
	assert.False(t, wrapped)
	assert.Equal(t, uint32(65436), phase)

	nco_advance(&n, 200)
	assert.Equal(t, uint32(100), n.phase)
}

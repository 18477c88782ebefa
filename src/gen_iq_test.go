package gdsp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHexVectorFormat(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "v.hex")

	// Three hex digits of two's complement per line, negatives included.
	require.NoError(t, write_hex_vector(path, []int32{2047, -2048, -1, 0, 648}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, []string{"7ff", "800", "fff", "000", "288"}, lines)
}

func TestTapVectorMatchesDesign(t *testing.T) {
	var cfg = DefaultModemConfig()
	var taps = gen_tx_taps(gen_rrc_pulse(cfg.NumTaps, cfg.Sps, cfg.Alpha))

	var path = filepath.Join(t.TempDir(), "taps.hex")
	require.NoError(t, write_hex_vector(path, taps))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, cfg.NumTaps)

	// The center tap is the 0.45 peak target.
	assert.Equal(t, "39a", lines[cfg.NumTaps/2])
}

package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Generate I/Q test vector files.
 *
 * Description:	Writes the shaped, optionally impaired sample stream
 *		as text, one sample per line, three hex digits of two's
 *		complement Q1.11 per value.  The same format is easy to
 *		read back with Verilog $readmemh style tooling.
 *
 * Usage:	gen_iq [--symbols n] [--phase deg] [--cfo hz]
 *		       [--snr db] [--seed n] [--out prefix]
 *
 *		Produces <prefix>_i.hex and <prefix>_q.hex, plus the
 *		quantized shaping filter taps as <prefix>_rrc.hex so a
 *		testbench can load the matching coefficients.
 *
 *----------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func write_hex_vector(path string, samples []int32) error {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	var w = bufio.NewWriter(f)
	for _, s := range samples {
		fmt.Fprintf(w, "%03x\n", uint32(s)&0xfff)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func GenIQMain() int {

	var symbols = pflag.Int("symbols", 2000, "Number of symbols to generate")
	var phase = pflag.Float64("phase", 0, "Static carrier phase offset, degrees")
	var cfo = pflag.Float64("cfo", 0, "Carrier frequency offset, Hz")
	var snr = pflag.Float64("snr", 0, "Add AWGN at this SNR in dB (0 means clean)")
	var seed = pflag.Int("seed", 1, "Symbol generator seed")
	var out = pflag.String("out", "vector", "Output file prefix")
	var configPath = pflag.String("config", "", "YAML config file overriding modem defaults")

	pflag.Parse()

	var cfg = DefaultModemConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadModemConfig(*configPath)
		if err != nil {
			log.Error("Cannot load config", "err", err)
			return 1
		}
	}

	var h = gen_rrc_pulse(cfg.NumTaps, cfg.Sps, cfg.Alpha)
	var tx_taps = gen_tx_taps(h)
	var nibbles = gen_symbols(int32(*seed), *symbols)
	var tx_i, tx_q = qam16_modulate(nibbles, cfg.Sps, tx_taps)

	var ch channel_s
	channel_init(&ch, *phase, *cfo, cfg.SampleRate)
	if *snr != 0 {
		channel_set_noise(&ch, *snr, int64(*seed))
	}
	var out_i, out_q = channel_apply(&ch, tx_i, tx_q)

	if err := write_hex_vector(*out+"_i.hex", out_i); err != nil {
		log.Error("Vector write failed", "err", err)
		return 1
	}
	if err := write_hex_vector(*out+"_q.hex", out_q); err != nil {
		log.Error("Vector write failed", "err", err)
		return 1
	}
	if err := write_hex_vector(*out+"_rrc.hex", tx_taps); err != nil {
		log.Error("Vector write failed", "err", err)
		return 1
	}

	log.Info("Vectors written",
		"samples", len(out_i),
		"taps", len(tx_taps),
		"files", *out+"_{i,q,rrc}.hex")
	return 0
}

package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     End to end self test driver.
 *
 * Description:	Generates a pseudo random 16-QAM burst, runs it
 *		through the channel model and the full receiver, and
 *		reports lock time, accuracy, and EVM.
 *
 * Usage:	qamtest [--symbols n] [--phase deg] [--cfo hz]
 *			[--snr db] [--seed n] [--config file]
 *
 *----------------------------------------------------------------*/

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func QamtestMain() int {

	var symbols = pflag.Int("symbols", 2000, "Number of symbols to transmit")
	var phase = pflag.Float64("phase", 0, "Static carrier phase offset, degrees")
	var cfo = pflag.Float64("cfo", 0, "Carrier frequency offset, Hz")
	var snr = pflag.Float64("snr", 0, "Add AWGN at this SNR in dB (0 means clean)")
	var seed = pflag.Int("seed", 1, "Symbol generator seed")
	var skip = pflag.Int("skip", 800, "Symbols excluded from scoring while the loops settle")
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
	var nibbles = gen_symbols(int32(*seed), *symbols)
	var tx_i, tx_q = qam16_modulate(nibbles, cfg.Sps, gen_tx_taps(h))

	var ch channel_s
	channel_init(&ch, *phase, *cfo, cfg.SampleRate)
	if *snr != 0 {
		channel_set_noise(&ch, *snr, int64(*seed))
	}
	var rx_i, rx_q = channel_apply(&ch, tx_i, tx_q)

	var rx receiver_s
	receiver_init(&rx, &cfg)
	var syms = receiver_run(&rx, rx_i, rx_q)

	var st = analyze_symbols(syms, *skip)

	log.Info("Run complete",
		"symbols", len(syms),
		"lock_at", st.LockAt,
		"accuracy", st.Accuracy,
		"evm_rms", st.EvmRms)

	if st.LockAt < 0 {
		log.Error("Carrier never locked")
		return 1
	}
	return 0
}

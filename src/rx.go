package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Complete 16-QAM receiver.
 *
 * Description:	Sample rate in, symbols out.  Each input sample goes
 *		through the matched filter and the timing loop; when
 *		the timing loop strobes, the interpolated symbol goes
 *		through the carrier loop and comes out de-rotated with
 *		the lock detector level attached.
 *
 *----------------------------------------------------------------*/

type demod_symbol_t struct {
	I      int32
	Q      int32
	Locked bool
}

type receiver_s struct {
	mf      fir_fixed_s
	timing  timing_loop_s
	carrier carrier_loop_s
}

func receiver_init(r *receiver_s, cfg *ModemConfig) {

	var h = gen_rrc_pulse(cfg.NumTaps, cfg.Sps, cfg.Alpha)
	fir_fixed_init(&r.mf, gen_rx_taps(h))

	timing_loop_init(&r.timing, int32(cfg.Sps),
		cfg.Timing.KpShift, cfg.Timing.KiShift,
		cfg.Timing.Deadzone, cfg.Timing.IntClamp, cfg.Timing.Holdoff)

	carrier_loop_init(&r.carrier, carrier_config_s{
		kp_shift_acq:   cfg.Carrier.KpShiftAcq,
		ki_shift_acq:   cfg.Carrier.KiShiftAcq,
		kp_shift_trk:   cfg.Carrier.KpShiftTrk,
		omega_clamp:    cfg.Carrier.OmegaClamp,
		holdoff:        cfg.Carrier.Holdoff,
		gear_count:     cfg.Carrier.GearCount,
		lock_shift:     cfg.Lock.Shift,
		lock_threshold: cfg.Lock.Threshold,
		lock_min_count: cfg.Lock.MinCount,
	})
	r.carrier.freeze_nco = cfg.Carrier.FreezeNco
}

/*------------------------------------------------------------------
 *
 * Name:        receiver_sample
 *
 * Purpose:     Push one channel sample through the receiver.
 *
 * Returns:	ok	- True when a symbol came out.
 *		sym	- The symbol, valid only when ok.
 *
 *----------------------------------------------------------------*/

func receiver_sample(r *receiver_s, in_i int32, in_q int32) (bool, demod_symbol_t) {

	var mi, mq = fir_fixed_sample(&r.mf, in_i, in_q)

	var strobe, si, sq = timing_loop_sample(&r.timing, mi, mq)
	if !strobe {
		return false, demod_symbol_t{}
	}

	var ri, rq, locked = carrier_loop_symbol(&r.carrier, si, sq)

	return true, demod_symbol_t{I: ri, Q: rq, Locked: locked}
}

func receiver_run(r *receiver_s, in_i []int32, in_q []int32) []demod_symbol_t {

	var out = make([]demod_symbol_t, 0, len(in_i)/4)

	for k := range in_i {
		if ok, sym := receiver_sample(r, in_i[k], in_q[k]); ok {
			out = append(out, sym)
		}
	}
	return out
}

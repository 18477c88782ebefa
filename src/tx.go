package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:     Test signal generation: pseudo random symbols, Gray
 *		mapping, and root raised cosine pulse shaping.
 *
 * Description:	Symbols are drawn from a simple LCG so a run can be
 *		reproduced from its seed alone.  Each symbol is a four
 *		bit nibble, MSB first: upper two bits select the I
 *		level, lower two the Q level.
 *
 *		Shaping is done the usual way, one mapped sample per
 *		symbol with sps-1 zeros stuffed between, through the
 *		transmit FIR.
 *
 *----------------------------------------------------------------*/

type prbs_s struct {
	seed int32
}

func prbs_init(p *prbs_s, seed int32) {
	p.seed = seed & 0x7fffffff
}

func prbs_bit(p *prbs_s) int {
	p.seed = (p.seed*1103515245 + 12345) & 0x7fffffff
	return int(p.seed>>16) & 1
}

func prbs_nibble(p *prbs_s) byte {
	var n byte
	for j := 0; j < 4; j++ {
		n = n<<1 | byte(prbs_bit(p))
	}
	return n
}

func gen_symbols(seed int32, count int) []byte {
	var p prbs_s
	prbs_init(&p, seed)

	var nibbles = make([]byte, count)
	for k := range nibbles {
		nibbles[k] = prbs_nibble(&p)
	}
	return nibbles
}

/*------------------------------------------------------------------
 *
 * Name:        qam16_modulate
 *
 * Purpose:     Produce a shaped I/Q sample stream from symbols.
 *
 * Inputs:	nibbles		- One symbol per element, low 4 bits.
 *		sps		- Samples per symbol.
 *		tx_taps		- Shaping filter, from gen_tx_taps.
 *
 * Returns:	I and Q sample streams, len(nibbles)*sps long.
 *
 *----------------------------------------------------------------*/

func qam16_modulate(nibbles []byte, sps int, tx_taps []int32) ([]int32, []int32) {

	var shaper fir_fixed_s
	fir_fixed_init(&shaper, tx_taps)

	var out_i = make([]int32, len(nibbles)*sps)
	var out_q = make([]int32, len(nibbles)*sps)

	var n = 0
	for _, nib := range nibbles {
		var si, sq = qam16_map(nib)

		out_i[n], out_q[n] = fir_fixed_sample(&shaper, si, sq)
		n++

		for j := 0; j < sps-1; j++ {
			out_i[n], out_q[n] = fir_fixed_sample(&shaper, 0, 0)
			n++
		}
	}

	return out_i, out_q
}

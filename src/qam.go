package gdsp

/*------------------------------------------------------------------
 *
 * Purpose:   	Gray coded 16-QAM constellation mapping.
 *
 * Description:	Four bits per symbol.  The upper two bits select the
 *		I axis level, the lower two the Q axis level, each
 *		through the same Gray map:
 *
 *			00 -> -3    01 -> -1    11 -> +1    10 -> +3
 *
 *		Levels are normalized by 1/sqrt(10) so the average
 *		constellation power is 1.0, then quantized to Q1.11:
 *
 *			1/sqrt(10) * 2048 =  648
 *			3/sqrt(10) * 2048 = 1943
 *
 *		The slicer threshold sits at the midpoint between the
 *		inner and outer magnitudes, 2/sqrt(10) * 2048 = 1295.
 *		These constants assume the matched filter cascade has
 *		unit peak gain at the optimum sampling instant, which
 *		is how gen_rx_taps scales the receive filter.
 *
 *----------------------------------------------------------------*/

const QAM_LEVEL_INNER = 648 /* 1/sqrt(10) in Q1.11 */

const QAM_LEVEL_OUTER = 1943 /* 3/sqrt(10) in Q1.11 */

const QAM_SLICE_THRESHOLD = 1295 /* 2/sqrt(10) in Q1.11 */

/* Per axis level indexed by a 2 bit Gray field. */

var qam_gray_level = [4]int32{
	-QAM_LEVEL_OUTER, /* 00 -> -3 */
	-QAM_LEVEL_INNER, /* 01 -> -1 */
	+QAM_LEVEL_OUTER, /* 10 -> +3 */
	+QAM_LEVEL_INNER, /* 11 -> +1 */
}

/*------------------------------------------------------------------
 *
 * Name:	qam16_map
 *
 * Purpose:	Map a 4 bit symbol to its constellation point.
 *
 * Inputs:	nibble	- Symbol value 0 .. 15.  Bits 3..2 select the
 *			  I level, bits 1..0 select the Q level.
 *
 * Returns:	I and Q in Q1.11.
 *
 *----------------------------------------------------------------*/

func qam16_map(nibble byte) (int32, int32) {
	var i = qam_gray_level[(nibble>>2)&0x3]
	var q = qam_gray_level[nibble&0x3]
	return i, q
}

/* Map one axis value to the nearest of the four levels. */

func qam16_slice_axis(v int32) int32 {
	if v < 0 {
		if v < -QAM_SLICE_THRESHOLD {
			return -QAM_LEVEL_OUTER
		}
		return -QAM_LEVEL_INNER
	}
	if v < QAM_SLICE_THRESHOLD {
		return QAM_LEVEL_INNER
	}
	return QAM_LEVEL_OUTER
}

/* Inverse of the axis Gray map: level decision back to 2 bits. */

func qam16_demap_axis(v int32) byte {
	if v < 0 {
		if v < -QAM_SLICE_THRESHOLD {
			return 0b00 /* -3 */
		}
		return 0b01 /* -1 */
	}
	if v < QAM_SLICE_THRESHOLD {
		return 0b11 /* +1 */
	}
	return 0b10 /* +3 */
}

/*------------------------------------------------------------------
 *
 * Name:	qam16_demap
 *
 * Purpose:	Hard decision from a received point back to 4 bits.
 *
 *----------------------------------------------------------------*/

func qam16_demap(i int32, q int32) byte {
	return (qam16_demap_axis(i) << 2) | qam16_demap_axis(q)
}

/* Distance from a value to the nearest constellation level, for scoring. */

func qam16_axis_distance(v int32) int32 {
	var d = v - qam16_slice_axis(v)
	if d < 0 {
		return -d
	}
	return d
}

package conv

// U32Hex writes 8-digit uppercase hex without 0x, zero-padded.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	const hexd = "0123456789ABCDEF"
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Hex writes n as lowercase hex without leading zeros or prefix, so zero
// is "0". buf should be length >= 16 for uint64; a short buf keeps the
// low digits only.
func Hex(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	const hexd = "0123456789abcdef"
	i := len(buf)
	for {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
		if n == 0 || i == 0 {
			break
		}
	}
	return buf[i:]
}

package conv

// Itoa writes the base-10 form of n into the tail of buf and returns that
// slice. buf should be length >= 20 for int64; a short buf keeps the low
// digits and drops the sign. No allocations, no fmt/strconv.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
		if u == 0 || i == 0 {
			break
		}
	}
	if n < 0 && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}

package cmsis

import "github.com/namezis/cmsis-go/x/conv"

// Handle is an RTOS object identifier (osThreadId_t, osEventFlagsId_t, ...)
// kept only for display. It is never dereferenced.
type Handle uintptr

// String renders h like a pointer: "0x" followed by lowercase hex digits.
func (h Handle) String() string {
	var buf [2 + 16]byte
	buf[0], buf[1] = '0', 'x'
	digits := conv.Hex(buf[2:], uint64(h))
	n := copy(buf[2:], digits)
	return string(buf[:2+n])
}

// FormatDiagnostic returns "op(id)", the context prefix used for errors
// raised by an RTOS call on a given object.
func FormatDiagnostic(op string, id Handle) string {
	return op + "(" + id.String() + ")"
}

package cmsis

import "github.com/namezis/cmsis-go/x/conv"

// Status mirrors osStatus_t as returned by the CMSIS-RTOS2 API.
// Positive values are RTX-specific conditions reported to osRtxErrorNotify.
type Status int32

const (
	OK             Status = 0
	Error          Status = -1
	ErrorTimeout   Status = -2
	ErrorResource  Status = -3
	ErrorParameter Status = -4
	ErrorNoMemory  Status = -5
	ErrorISR       Status = -6
	StatusReserved Status = 0x7FFFFFFF

	RtxErrorStackUnderflow     Status = 1
	RtxErrorISRQueueOverflow   Status = 2
	RtxErrorTimerQueueOverflow Status = 3
	RtxErrorClibSpace          Status = 4
	RtxErrorClibMutex          Status = 5
)

// FlagsError is the error domain of the osThreadFlags*/osEventFlags* calls.
// Those calls return a flag mask on success; a set MSB marks an error.
type FlagsError uint32

const (
	flagsErrorBit uint32 = 0x80000000

	FlagsErrorUnknown   FlagsError = 0xFFFFFFFF
	FlagsErrorTimeout   FlagsError = 0xFFFFFFFE
	FlagsErrorResource  FlagsError = 0xFFFFFFFD
	FlagsErrorParameter FlagsError = 0xFFFFFFFC
	FlagsErrorISR       FlagsError = 0xFFFFFFFA
)

// IsFlagsError reports whether a raw flags return value is an error code
// rather than a flag mask.
func IsFlagsError(v uint32) bool { return v&flagsErrorBit != 0 }

func (s Status) String() string {
	if e, ok := osTable().lookup(int(s)); ok {
		return e.name
	}
	var buf [20]byte
	return "Status(" + string(conv.Itoa(buf[:], int64(s))) + ")"
}

// Message returns the OS category description of s.
func (s Status) Message() string { return OSCategory().Message(int(s)) }

func (f FlagsError) String() string {
	if e, ok := flagsTable().lookup(flagsCode(f)); ok {
		return e.name
	}
	var buf [8]byte
	return "FlagsError(0x" + string(conv.U32Hex(buf[:], uint32(f))) + ")"
}

// Message returns the flags category description of f.
func (f FlagsError) Message() string { return FlagsCategory().Message(flagsCode(f)) }

// flagsCode is f as the C API's int condition: sign-extended from 32 bits,
// so the value is the same whatever the width of int.
func flagsCode(f FlagsError) int { return int(int32(f)) }

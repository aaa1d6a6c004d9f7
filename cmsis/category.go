package cmsis

import (
	"math"
	"sync"
)

// Category names an error domain and describes the codes in it.
// The set of categories is closed: OSCategory and FlagsCategory.
type Category interface {
	Name() string
	Message(code int) string
}

const unknownMessage = "Unknown error"

type entry struct {
	key  int64
	name string
	msg  string
}

// table is an immutable code -> description lookup. It is built once and
// shared read-only, so concurrent callers need no locking.
type table struct {
	name    string
	entries []entry // ascending by key
	index   map[int64]int
	norm    func(code int) (int64, bool)
}

func newTable(name string, norm func(int) (int64, bool), entries []entry) *table {
	t := &table{
		name:    name,
		entries: entries,
		index:   make(map[int64]int, len(entries)),
		norm:    norm,
	}
	for i, e := range entries {
		t.index[e.key] = i
	}
	return t
}

func (t *table) Name() string { return t.name }

func (t *table) Message(code int) string {
	if e, ok := t.lookup(code); ok {
		return e.msg
	}
	return unknownMessage
}

func (t *table) lookup(code int) (entry, bool) {
	k, ok := t.norm(code)
	if !ok {
		return entry{}, false
	}
	i, ok := t.index[k]
	if !ok {
		return entry{}, false
	}
	return t.entries[i], true
}

// osStatus keys are plain signed 32-bit values.
func osStatusKey(code int) (int64, bool) {
	c := int64(code)
	if c < math.MinInt32 || c > math.MaxInt32 {
		return 0, false
	}
	return c, true
}

// Flags codes arrive either sign-extended (an int32 such as -2) or as the
// raw uint32 return value; both map to the same unsigned key.
func flagsKey(code int) (int64, bool) {
	c := int64(code)
	if c < math.MinInt32 || c > math.MaxUint32 {
		return 0, false
	}
	return int64(uint32(c)), true
}

var osTable = sync.OnceValue(func() *table {
	return newTable("cmsis os", osStatusKey, []entry{
		{int64(ErrorISR), "ErrorISR", "Not allowed in ISR context: the function cannot be called from interrupt service routines"},
		{int64(ErrorNoMemory), "ErrorNoMemory", "System is out of memory: it was impossible to allocate or reserve memory for the operation"},
		{int64(ErrorParameter), "ErrorParameter", "Parameter error"},
		{int64(ErrorResource), "ErrorResource", "Resource not available"},
		{int64(ErrorTimeout), "ErrorTimeout", "Operation not completed within the timeout period"},
		{int64(Error), "Error", "Unspecified RTOS error: run-time error but no other error message fits"},
		{int64(OK), "OK", "Operation completed successfully"},
		{int64(RtxErrorStackUnderflow), "RtxErrorStackUnderflow", "Stack underflow detected for thread"},
		{int64(RtxErrorISRQueueOverflow), "RtxErrorISRQueueOverflow", "ISR Queue overflow detected when inserting object"},
		{int64(RtxErrorTimerQueueOverflow), "RtxErrorTimerQueueOverflow", "User Timer Callback Queue overflow detected for timer"},
		{int64(RtxErrorClibSpace), "RtxErrorClibSpace", "Standard C/C++ library libspace not available: increase OS_THREAD_LIBSPACE_NUM"},
		{int64(RtxErrorClibMutex), "RtxErrorClibMutex", "Standard C/C++ library mutex initialization failed"},
		{int64(StatusReserved), "StatusReserved", "Prevents enum down-size compiler optimization"},
	})
})

var flagsTable = sync.OnceValue(func() *table {
	return newTable("cmsis flag", flagsKey, []entry{
		{int64(FlagsErrorISR), "FlagsErrorISR", "Not allowed in ISR context: the function cannot be called from interrupt service routines"},
		{int64(FlagsErrorParameter), "FlagsErrorParameter", "A given parameter is wrong"},
		{int64(FlagsErrorResource), "FlagsErrorResource", "Try to get a flag that was not set and timeout 0 was specified, or the specified object identifier is corrupt or invalid"},
		{int64(FlagsErrorTimeout), "FlagsErrorTimeout", "A timeout was specified and the specified flags were not set, when the timeout occurred"},
		{int64(FlagsErrorUnknown), "FlagsErrorUnknown", "Generic error"},
	})
})

// OSCategory returns the category of osStatus_t codes ("cmsis os").
func OSCategory() Category { return osTable() }

// FlagsCategory returns the category of thread/event flags error codes
// ("cmsis flag").
func FlagsCategory() Category { return flagsTable() }

package cmsis

import "github.com/namezis/cmsis-go/errcode"

// StatusError is a failed RTOS call: a code within a category, plus the
// operation and object it was raised for.
type StatusError struct {
	Category Category // nil means OSCategory
	Value    int
	Op       string // e.g. "osEventFlagsWait"; optional
	ID       Handle
}

func (e *StatusError) category() Category {
	if e.Category == nil {
		return OSCategory()
	}
	return e.Category
}

func (e *StatusError) Error() string {
	cat := e.category()
	s := cat.Name() + ": " + cat.Message(e.Value)
	if e.Op == "" {
		return s
	}
	return FormatDiagnostic(e.Op, e.ID) + ": " + s
}

// Is matches any *StatusError with the same category and code, ignoring Op/ID.
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok {
		return false
	}
	cat := e.category()
	return cat == t.category() && sameCode(cat, e.Value, t.Value)
}

// Code reports the canonical bus code for e; see CodeOf.
func (e *StatusError) Code() errcode.Code { return CodeOf(e.category(), e.Value) }

func sameCode(cat Category, a, b int) bool {
	t, ok := cat.(*table)
	if !ok {
		return a == b
	}
	ka, okA := t.norm(a)
	kb, okB := t.norm(b)
	if !okA || !okB {
		return a == b
	}
	return ka == kb
}

// Sentinels for errors.Is.
var (
	ErrGeneric   = &StatusError{Category: OSCategory(), Value: int(Error)}
	ErrTimeout   = &StatusError{Category: OSCategory(), Value: int(ErrorTimeout)}
	ErrResource  = &StatusError{Category: OSCategory(), Value: int(ErrorResource)}
	ErrParameter = &StatusError{Category: OSCategory(), Value: int(ErrorParameter)}
	ErrNoMemory  = &StatusError{Category: OSCategory(), Value: int(ErrorNoMemory)}
	ErrISR       = &StatusError{Category: OSCategory(), Value: int(ErrorISR)}

	ErrFlagsUnknown   = &StatusError{Category: FlagsCategory(), Value: flagsCode(FlagsErrorUnknown)}
	ErrFlagsTimeout   = &StatusError{Category: FlagsCategory(), Value: flagsCode(FlagsErrorTimeout)}
	ErrFlagsResource  = &StatusError{Category: FlagsCategory(), Value: flagsCode(FlagsErrorResource)}
	ErrFlagsParameter = &StatusError{Category: FlagsCategory(), Value: flagsCode(FlagsErrorParameter)}
	ErrFlagsISR       = &StatusError{Category: FlagsCategory(), Value: flagsCode(FlagsErrorISR)}
)

// Check turns an osStatus_t result into an error. Only OK is success.
func Check(op string, id Handle, st Status) error {
	if st == OK {
		return nil
	}
	return &StatusError{Category: OSCategory(), Value: int(st), Op: op, ID: id}
}

// CheckFlags splits a raw flags return value into its mask or an error.
func CheckFlags(op string, id Handle, ret uint32) (uint32, error) {
	if !IsFlagsError(ret) {
		return ret, nil
	}
	return 0, &StatusError{Category: FlagsCategory(), Value: flagsCode(FlagsError(ret)), Op: op, ID: id}
}

// CodeOf maps a code in cat onto the canonical errcode vocabulary.
func CodeOf(cat Category, code int) errcode.Code {
	switch cat {
	case OSCategory():
		k, ok := osStatusKey(code)
		if !ok {
			break
		}
		switch Status(k) {
		case OK:
			return errcode.OK
		case ErrorTimeout:
			return errcode.Timeout
		case ErrorResource:
			return errcode.Busy
		case ErrorParameter:
			return errcode.InvalidParams
		case ErrorNoMemory:
			return errcode.NoMemory
		case ErrorISR:
			return errcode.NotInISR
		}
	case FlagsCategory():
		k, ok := flagsKey(code)
		if !ok {
			break
		}
		switch FlagsError(k) {
		case FlagsErrorTimeout:
			return errcode.Timeout
		case FlagsErrorResource:
			return errcode.Busy
		case FlagsErrorParameter:
			return errcode.InvalidParams
		case FlagsErrorISR:
			return errcode.NotInISR
		}
	}
	return errcode.Error
}

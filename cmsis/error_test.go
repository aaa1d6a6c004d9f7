package cmsis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namezis/cmsis-go/errcode"
)

func TestFormatDiagnostic(t *testing.T) {
	assert.Equal(t, "Wait(0x1000)", FormatDiagnostic("Wait", Handle(0x1000)))
	assert.Equal(t, "osThreadNew(0x20001f4c)", FormatDiagnostic("osThreadNew", Handle(0x20001f4c)))
	assert.Equal(t, "osMutexNew(0x0)", FormatDiagnostic("osMutexNew", 0))
	assert.Equal(t, "(0xff)", FormatDiagnostic("", 0xff))
}

func TestHandleString(t *testing.T) {
	assert.Equal(t, "0x1000", Handle(0x1000).String())
	assert.Equal(t, "0x0", Handle(0).String())
	assert.Equal(t, fmt.Sprintf("%#x", uintptr(0xdeadbeef)), Handle(0xdeadbeef).String())
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check("osDelay", 0, OK))

	err := Check("osMutexAcquire", 0x1000, ErrorTimeout)
	require.Error(t, err)
	assert.Equal(t, "osMutexAcquire(0x1000): cmsis os: Operation not completed within the timeout period", err.Error())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrResource)
	assert.NotErrorIs(t, err, ErrFlagsTimeout)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, int(ErrorTimeout), se.Value)
	assert.Equal(t, Handle(0x1000), se.ID)

	// Positive RTX conditions are failures too.
	err = Check("osRtxErrorNotify", 0x2000, RtxErrorStackUnderflow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stack underflow detected for thread")
}

func TestCheckFlags(t *testing.T) {
	mask, err := CheckFlags("osEventFlagsWait", 0x1000, 0x5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5), mask)

	mask, err = CheckFlags("osEventFlagsWait", 0x1000, uint32(FlagsErrorTimeout))
	require.Error(t, err)
	assert.Zero(t, mask)
	assert.ErrorIs(t, err, ErrFlagsTimeout)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "osEventFlagsWait(0x1000): cmsis flag: A timeout was specified and the specified flags were not set, when the timeout occurred", err.Error())

	// Unlisted error values still report through the flags category.
	_, err = CheckFlags("osThreadFlagsSet", 0, 0xFFFFFFF0)
	require.Error(t, err)
	assert.Equal(t, "osThreadFlagsSet(0x0): cmsis flag: Unknown error", err.Error())
}

func TestStatusErrorWithoutOp(t *testing.T) {
	err := &StatusError{Category: OSCategory(), Value: int(ErrorResource)}
	assert.Equal(t, "cmsis os: Resource not available", err.Error())
}

func TestStatusErrorZeroValue(t *testing.T) {
	var e StatusError
	assert.Equal(t, "cmsis os: Operation completed successfully", e.Error())
	assert.Equal(t, errcode.OK, e.Code())

	noCat := &StatusError{Value: int(ErrorTimeout)}
	assert.ErrorIs(t, noCat, ErrTimeout)
	assert.ErrorIs(t, ErrTimeout, noCat)
	assert.NotErrorIs(t, noCat, ErrFlagsTimeout)
}

func TestStatusErrorIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("start worker: %w", Check("osThreadNew", 0, ErrorNoMemory))
	assert.ErrorIs(t, err, ErrNoMemory)

	// Flags codes match whether stored signed or unsigned.
	unsigned := &StatusError{Category: FlagsCategory(), Value: int(int64(FlagsErrorISR))}
	assert.ErrorIs(t, unsigned, ErrFlagsISR)
	assert.False(t, errors.Is(unsigned, errcode.NotInISR))
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		cat  Category
		code int
		want errcode.Code
	}{
		{OSCategory(), int(OK), errcode.OK},
		{OSCategory(), int(ErrorTimeout), errcode.Timeout},
		{OSCategory(), int(ErrorResource), errcode.Busy},
		{OSCategory(), int(ErrorParameter), errcode.InvalidParams},
		{OSCategory(), int(ErrorNoMemory), errcode.NoMemory},
		{OSCategory(), int(ErrorISR), errcode.NotInISR},
		{OSCategory(), int(Error), errcode.Error},
		{OSCategory(), int(RtxErrorClibSpace), errcode.Error},
		{OSCategory(), 9999, errcode.Error},
		{FlagsCategory(), flagsCode(FlagsErrorTimeout), errcode.Timeout},
		{FlagsCategory(), flagsCode(FlagsErrorResource), errcode.Busy},
		{FlagsCategory(), flagsCode(FlagsErrorParameter), errcode.InvalidParams},
		{FlagsCategory(), flagsCode(FlagsErrorISR), errcode.NotInISR},
		{FlagsCategory(), flagsCode(FlagsErrorUnknown), errcode.Error},
		{FlagsCategory(), 0, errcode.Error},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CodeOf(c.cat, c.code), "%s %d", c.cat.Name(), c.code)
	}
}

func TestErrcodeOfStatusError(t *testing.T) {
	err := fmt.Errorf("acquire: %w", Check("osSemaphoreAcquire", 0x1000, ErrorResource))
	assert.Equal(t, errcode.Busy, errcode.Of(err))
	assert.Equal(t, errcode.Busy, errcode.MapDriverErr(err))

	_, err = CheckFlags("osThreadFlagsWait", 0, uint32(FlagsErrorParameter))
	assert.Equal(t, errcode.InvalidParams, errcode.Of(err))
}

func TestDescriptors(t *testing.T) {
	os := Descriptors(OSCategory())
	require.Len(t, os, 13)
	for i := 1; i < len(os); i++ {
		assert.Less(t, os[i-1].Code, os[i].Code)
	}
	assert.Equal(t, Descriptor{
		Category: "cmsis os",
		Name:     "ErrorISR",
		Code:     -6,
		Message:  "Not allowed in ISR context: the function cannot be called from interrupt service routines",
	}, os[0])
	assert.Equal(t, int64(StatusReserved), os[len(os)-1].Code)

	flags := Descriptors(FlagsCategory())
	require.Len(t, flags, 5)
	assert.Equal(t, "cmsis flag", flags[0].Category)
	assert.Equal(t, int64(0xFFFFFFFA), flags[0].Code)
	assert.Equal(t, int64(0xFFFFFFFF), flags[4].Code)
	assert.Equal(t, "Generic error", flags[4].Message)

	for _, d := range append(os, flags...) {
		cat := OSCategory()
		if d.Category == "cmsis flag" {
			cat = FlagsCategory()
		}
		assert.Equal(t, d.Message, cat.Message(int(d.Code)))
	}
}

package errcode

import (
	"errors"
	"fmt"
	"testing"
)

type coded struct{ c Code }

func (e coded) Error() string { return "coded" }
func (e coded) Code() Code    { return e.c }

func TestOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"plain code", Timeout, Timeout},
		{"wrapper", &E{C: Busy, Op: "osMutexAcquire"}, Busy},
		{"coder", coded{NoMemory}, NoMemory},
		{"wrapped coder", fmt.Errorf("start: %w", coded{NotInISR}), NotInISR},
		{"foreign", errors.New("boom"), Error},
	}
	for _, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Fatalf("%s: Of = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMapDriverErr(t *testing.T) {
	if got := MapDriverErr(nil); got != OK {
		t.Fatalf("MapDriverErr(nil) = %q, want ok", got)
	}
	if got := MapDriverErr(coded{InvalidParams}); got != InvalidParams {
		t.Fatalf("MapDriverErr = %q, want invalid_params", got)
	}
}

func TestEError(t *testing.T) {
	cause := errors.New("cause")
	e := &E{C: Timeout, Op: "osDelay", Msg: "late", Err: cause}
	if got, want := e.Error(), "osDelay: timeout: late"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Fatal("E should unwrap to its cause")
	}
	if got := (&E{C: Busy}).Error(); got != "busy" {
		t.Fatalf("Error() = %q, want busy", got)
	}
}

func TestOfPrefersOutermost(t *testing.T) {
	err := &E{C: Busy, Err: Timeout}
	if got := Of(err); got != Busy {
		t.Fatalf("Of = %q, want busy", got)
	}
}

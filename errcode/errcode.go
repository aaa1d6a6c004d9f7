package errcode

import "errors"

// Code is a stable, bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Busy          Code = "busy"
	InvalidParams Code = "invalid_params"
	Timeout       Code = "timeout"
	NoMemory      Code = "no_memory"
	NotInISR      Code = "not_in_isr"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

type coder interface{ Code() Code }

// Of extracts a Code from an error, defaulting to Error.
// The wrap chain is walked outermost first; the first Code or coder wins.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	for err != nil {
		switch x := err.(type) {
		case Code:
			return x
		case coder:
			return x.Code()
		}
		err = errors.Unwrap(err)
	}
	return Error
}

// MapDriverErr maps low-level driver or RTOS errors to a Code.
// Anything that does not carry a Code collapses to Error.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	return Of(err)
}

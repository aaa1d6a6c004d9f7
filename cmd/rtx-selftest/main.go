//go:build rp2040 || rp2350

// Command rtx-selftest prints the RTX status tables over UART0 so the
// on-target build of package cmsis can be checked against the host one
// (compare with `rtxstatus table`).
package main

import (
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"github.com/namezis/cmsis-go/cmsis"
	"github.com/namezis/cmsis-go/x/conv"
)

const baud = 115200

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[rtx] boot")

	u := uartx.UART0
	// Pins left zero so uartx applies the board defaults.
	if err := u.Configure(uartx.UARTConfig{BaudRate: baud}); err != nil {
		println("[rtx] uart0 configure failed:", err.Error())
		return
	}

	n := 0
	for _, cat := range []cmsis.Category{cmsis.OSCategory(), cmsis.FlagsCategory()} {
		for _, d := range cmsis.Descriptors(cat) {
			writeDescriptor(u, d)
			n++
		}
	}

	// Exercise the error path with a made-up object id.
	err := cmsis.Check("osMutexAcquire", cmsis.Handle(0x20001000), cmsis.ErrorTimeout)
	writeLine(u, err.Error())
	if _, err := cmsis.CheckFlags("osEventFlagsWait", cmsis.Handle(0x20001040), uint32(cmsis.FlagsErrorResource)); err != nil {
		writeLine(u, err.Error())
	}
	println("[rtx] wrote", n, "descriptors")

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()
	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat")
	}
}

func writeDescriptor(u *uartx.UART, d cmsis.Descriptor) {
	var buf [20]byte
	line := d.Category + " " + string(conv.Itoa(buf[:], d.Code)) + " " + d.Name + ": " + d.Message
	writeLine(u, line)
}

func writeLine(u *uartx.UART, s string) {
	_, _ = u.Write([]byte(s))
	_, _ = u.Write([]byte("\r\n"))
}

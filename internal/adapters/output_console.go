package adapters

import (
	"io"

	"github.com/pterm/pterm"

	"boardbridge/internal/ports"
)

// ConsoleSinkAdapter renders operation progress to a terminal writer.
type ConsoleSinkAdapter struct {
	out  io.Writer
	info pterm.PrefixPrinter
	fail pterm.PrefixPrinter
}

func NewConsoleSinkAdapter(out io.Writer) *ConsoleSinkAdapter {
	return &ConsoleSinkAdapter{
		out:  out,
		info: *pterm.Info.WithWriter(out),
		fail: *pterm.Error.WithWriter(out),
	}
}

// Show is a no-op for a console sink; the terminal is always in the
// foreground.
func (a *ConsoleSinkAdapter) Show() {}

func (a *ConsoleSinkAdapter) Info(line string) {
	a.info.Println(line)
}

func (a *ConsoleSinkAdapter) Error(line string) {
	a.fail.Println(line)
}

func (a *ConsoleSinkAdapter) Stream() io.Writer {
	return a.out
}

var _ ports.OutputSinkPort = (*ConsoleSinkAdapter)(nil)

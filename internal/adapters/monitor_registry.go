package adapters

import (
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"boardbridge/internal/ports"
)

// MonitorRegistryAdapter tracks serial-monitor sessions opened through
// this process, keyed by port. Close on a port without a session is a
// no-op so upload paths need no existence check of their own.
type MonitorRegistryAdapter struct {
	sessions map[string]io.Closer
}

func NewMonitorRegistryAdapter() *MonitorRegistryAdapter {
	return &MonitorRegistryAdapter{sessions: map[string]io.Closer{}}
}

func (a *MonitorRegistryAdapter) Open(port string, session io.Closer) {
	a.sessions[port] = session
}

func (a *MonitorRegistryAdapter) IsOpen(port string) bool {
	_, ok := a.sessions[port]
	return ok
}

func (a *MonitorRegistryAdapter) Close(port string) error {
	session, ok := a.sessions[port]
	if !ok {
		return nil
	}
	delete(a.sessions, port)
	if err := session.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close serial monitor session").
			WithCause(err)
	}
	return nil
}

var _ ports.MonitorPort = (*MonitorRegistryAdapter)(nil)

package ports

// MonitorPort tracks serial-monitor sessions. An upload must close any
// session on its port before the toolchain process launches; the two must
// never hold the port concurrently.
type MonitorPort interface {
	IsOpen(port string) bool
	Close(port string) error
}

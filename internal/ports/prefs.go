package ports

// PreferencePort reads toolchain preference values. The backing document
// is loaded once on first access and is immutable for the process run;
// Reload discards the cached load when freshness is required.
type PreferencePort interface {
	Get(key string) (string, bool, error)
	Reload() error
}

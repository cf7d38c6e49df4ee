package ports

// ConfigStorePort merges include path candidates into the persisted
// language-analysis configuration document. The merge is idempotent and
// must never drop sections or fields it does not understand, nor touch a
// document it cannot parse.
type ConfigStorePort interface {
	Reconcile(candidates []string) error
}

package types

// ConfigSection is the platform-specific block inside the persisted
// language-analysis configuration document. Only the fields below are
// managed by this tool; anything else in the document passes through
// reconciliation untouched.
type ConfigSection struct {
	Name        string         `json:"name"`
	IncludePath []string       `json:"includePath"`
	Browse      BrowseSettings `json:"browse"`
}

type BrowseSettings struct {
	LimitSymbolsToIncludedHeaders bool `json:"limitSymbolsToIncludedHeaders"`
}

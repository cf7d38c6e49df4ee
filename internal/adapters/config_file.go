package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"boardbridge/internal/core"
	"boardbridge/internal/ports"
)

// ConfigFileAdapter reconciles include paths into the persisted
// language-analysis configuration document. The document is user-owned and
// may contain sections and fields this tool knows nothing about, so all
// edits happen on the raw JSON text: gjson/sjson touch only the paths being
// changed and everything else survives byte-preserving (modulo the final
// pretty pass).
type ConfigFileAdapter struct {
	Path        string
	SectionName string
}

func NewConfigFileAdapter(path string, sectionName string) ConfigFileAdapter {
	return ConfigFileAdapter{Path: path, SectionName: sectionName}
}

// Reconcile merges candidates into the platform section's includePath,
// deduplicating by normalized absolute path. Repeat calls with the same
// candidates leave the array unchanged. A document that fails to parse is
// never written back.
func (a ConfigFileAdapter) Reconcile(candidates []string) error {
	doc, err := a.loadDocument()
	if err != nil {
		return err
	}

	doc, active, err := a.ensureSection(doc)
	if err != nil {
		return err
	}

	includePath := fmt.Sprintf("configurations.%d.includePath", active)
	var existing []string
	for _, entry := range gjson.Get(doc, includePath).Array() {
		existing = append(existing, entry.String())
	}
	additions, err := core.MergeIncludePaths(existing, candidates)
	if err != nil {
		return err
	}
	for _, path := range additions {
		doc, err = sjson.Set(doc, includePath+".-1", path)
		if err != nil {
			return editError(err)
		}
	}

	formatted := pretty.PrettyOptions([]byte(doc), &pretty.Options{Indent: "    "})
	if err := os.WriteFile(a.Path, formatted, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write configuration document").
			WithCause(err)
	}
	return nil
}

// loadDocument reads the existing document or initializes an empty one,
// creating the parent directory on first use.
func (a ConfigFileAdapter) loadDocument() (string, error) {
	raw, err := os.ReadFile(a.Path)
	switch {
	case err == nil:
		if !gjson.ValidBytes(raw) {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("configuration document is not valid JSON")
		}
		return string(raw), nil
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(filepath.Dir(a.Path), 0o750); mkErr != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create configuration directory").
				WithCause(mkErr)
		}
		return "{}", nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read configuration document").
			WithCause(err)
	}
}

// ensureSection returns the document with the platform section present and
// the index of the merge target. Every section matching the platform name
// gets the browse limit forced off; the first match is the merge target.
// Header-limiting is always disabled because includePath is managed here
// and a limited-symbol scan would hide toolchain headers.
func (a ConfigFileAdapter) ensureSection(doc string) (string, int, error) {
	sections := gjson.Get(doc, "configurations")
	if sections.Exists() && !sections.IsArray() {
		return "", 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("configurations is not an array")
	}
	if !sections.Exists() {
		updated, err := sjson.SetRaw(doc, "configurations", "[]")
		if err != nil {
			return "", 0, editError(err)
		}
		doc = updated
		sections = gjson.Get(doc, "configurations")
	}

	active := -1
	count := 0
	for _, section := range sections.Array() {
		if section.Get("name").String() == a.SectionName {
			if active == -1 {
				active = count
			}
			updated, err := sjson.Set(doc,
				fmt.Sprintf("configurations.%d.browse.limitSymbolsToIncludedHeaders", count), false)
			if err != nil {
				return "", 0, editError(err)
			}
			doc = updated
		}
		count++
	}
	if active != -1 {
		return doc, active, nil
	}

	fresh := fmt.Sprintf(
		`{"name":%q,"includePath":[],"browse":{"limitSymbolsToIncludedHeaders":false}}`,
		a.SectionName)
	updated, err := sjson.SetRaw(doc, "configurations.-1", fresh)
	if err != nil {
		return "", 0, editError(err)
	}
	return updated, count, nil
}

func editError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to edit configuration document").
		WithCause(err)
}

var _ ports.ConfigStorePort = ConfigFileAdapter{}

package entity

import "fmt"

// DefaultLanguage is the code every unknown language code resolves to.
const DefaultLanguage = "en"

// Endpoint names the request kind a table or parameter set belongs to.
type Endpoint string

const (
	EndpointChat   Endpoint = "chat"
	EndpointReport Endpoint = "report"
)

// LanguageTable maps a language code to a string. Lookups are exact-match
// and fall back to the DefaultLanguage entry. A table is never mutated after
// construction, so it is safe for concurrent use.
type LanguageTable struct {
	entries map[string]string
}

// NewLanguageTable copies entries. It panics when the default entry is missing
// or empty, since every lookup must yield a non-empty string.
func NewLanguageTable(entries map[string]string) LanguageTable {
	if entries[DefaultLanguage] == "" {
		panic(fmt.Sprintf("language table has no %q entry", DefaultLanguage))
	}
	cp := make(map[string]string, len(entries))
	for code, v := range entries {
		cp[code] = v
	}
	return LanguageTable{entries: cp}
}

func (t LanguageTable) Lookup(code string) string {
	if v, ok := t.entries[code]; ok && v != "" {
		return v
	}
	return t.entries[DefaultLanguage]
}

func (t LanguageTable) Supports(code string) bool {
	_, ok := t.entries[code]
	return ok
}

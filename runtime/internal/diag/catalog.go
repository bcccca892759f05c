package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "BFE0004"
	Title string `json:"title"` // short human title e.g., "missing argument"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format.
type Registry struct {
	Format map[string]CodeEntry `json:"format"` // format string and argument checks
	Args   map[string]CodeEntry `json:"args"`   // command-line argument conversion
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key). Domain is "format" or "args".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var m map[string]CodeEntry
	switch domain {
	case "format":
		m = reg.Format
	case "args":
		m = reg.Args
	}
	ce, ok := m[key]
	return ce, ok
}

// MustLookup returns the entry if found; otherwise a placeholder built from
// defaultID and defaultTitle, so codes stay stable if the catalog is broken.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}

// LookupFormat is a convenience for the "format" domain.
func LookupFormat(key string) (CodeEntry, bool) { return Lookup("format", key) }

// LookupArgs is a convenience for the "args" domain.
func LookupArgs(key string) (CodeEntry, bool) { return Lookup("args", key) }

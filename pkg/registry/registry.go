// Package registry keeps the parsed documents of all checked files.
package registry

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"adscheck/pkg/adstxt"
)

// Entry is one loaded ads.txt file: its parsed document plus the per-line
// errors collected during a lenient parse.
type Entry struct {
	Source   string
	Doc      *adstxt.Document
	Errors   []error
	LoadedAt time.Time
}

var (
	documents = make(map[string]Entry)
	mu        sync.RWMutex
)

// Get returns the entry stored under name, or nil.
func Get(name string) *Entry {
	mu.RLock()
	defer mu.RUnlock()

	if entry, ok := documents[name]; ok {
		return &entry
	}
	return nil
}

// All returns a copy of every stored entry keyed by name.
func All() map[string]Entry {
	mu.RLock()
	defer mu.RUnlock()

	all := make(map[string]Entry, len(documents))
	for name, entry := range documents {
		all[name] = entry
	}
	return all
}

// Names returns the stored names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set stores an entry under name, replacing any previous one.
func Set(name string, entry Entry) {
	mu.Lock()
	defer mu.Unlock()

	documents[name] = entry
}

// Clear drops all stored entries.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	documents = make(map[string]Entry)
}

// LoadFromFile reads and parses one ads.txt file and stores the result
// under name. In strict mode a parse failure is returned and nothing is
// stored. Otherwise the file is parsed leniently, per-line errors are
// logged at Warn and kept in the entry, and the entry is always stored.
func LoadFromFile(name string, path string, strict bool, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is provided via config.
	if err != nil {
		return fmt.Errorf("read ads.txt file: %w", err)
	}

	if strict {
		doc, err := adstxt.Parse(string(data))
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		Set(name, Entry{Source: path, Doc: doc, LoadedAt: time.Now()})
		return nil
	}

	doc, errs := adstxt.ParseLenient(string(data))
	for _, parseErr := range errs {
		log.Warn("unparsable ads.txt line", "file", name, "error", parseErr)
	}
	Set(name, Entry{Source: path, Doc: doc, Errors: errs, LoadedAt: time.Now()})
	return nil
}

// Package pokedex is the embedded index of the original 151 entries: number
// to name resolution, the stat blocks we ship data for, and fuzzy lookup by
// name fragment.
package pokedex

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

//go:embed data/names.json data/stats.json
var dataFS embed.FS

// Stats is the stat block shipped for a subset of well-known entries.
type Stats struct {
	Number  int      `json:"number"`
	Types   []string `json:"types"`
	HP      int      `json:"hp"`
	Attack  int      `json:"attack"`
	Defense int      `json:"defense"`
	Speed   int      `json:"speed"`
}

var (
	names []string
	stats map[string]Stats
)

func init() {
	mustLoad("data/names.json", &names)
	mustLoad("data/stats.json", &stats)
	if len(names) != 151 {
		panic(fmt.Sprintf("pokedex: expected 151 names, embedded %d", len(names)))
	}
}

func mustLoad(path string, dst any) {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("pokedex: embedded %s: %v", path, err))
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		panic(fmt.Sprintf("pokedex: embedded %s: %v", path, err))
	}
}

// Count returns the number of indexed entries.
func Count() int {
	return len(names)
}

// NameByNumber resolves an entry number to its name. Numbers outside the
// index get a placeholder name rather than an error, so callers can render
// any number the cursor reaches.
func NameByNumber(number int) string {
	if number < 1 || number > len(names) {
		return fmt.Sprintf("Pokemon #%d", number)
	}
	return names[number-1]
}

// StatsByName returns the stat block for a name, if we ship one.
func StatsByName(name string) (Stats, bool) {
	s, ok := stats[name]
	return s, ok
}

// Random returns a uniformly chosen entry number.
func Random() int {
	return rand.Intn(len(names)) + 1
}

// Search fuzzy-matches a query against the name index and returns the best
// entry number. Exact and prefix matches rank ahead of scattered ones.
func Search(query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return 0, false
	}
	sort.Sort(ranks)
	return ranks[0].OriginalIndex + 1, true
}

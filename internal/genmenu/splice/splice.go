// Package splice edits source artifacts as structured line models instead of
// raw byte patching. Every mutation is anchored to a named line and checked
// for prior application, so running the same splice twice changes nothing.
package splice

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Artifact is one editable file: its lines plus a dirty marker. Save writes
// the file back only when a mutation actually changed it.
type Artifact struct {
	path  string
	lines []string
	dirty bool
}

// Load reads an artifact from disk.
func Load(path string) (*Artifact, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("splice: reading %s: %w", path, err)
	}
	return Parse(path, content), nil
}

// Parse builds an artifact from in-memory content, used by tests.
func Parse(path string, content []byte) *Artifact {
	text := strings.TrimSuffix(string(content), "\n")
	return &Artifact{path: path, lines: strings.Split(text, "\n")}
}

// Path returns the file the artifact was loaded from.
func (a *Artifact) Path() string {
	return a.path
}

// Lines exposes the current line model for read-only inspection.
func (a *Artifact) Lines() []string {
	return a.lines
}

// Dirty reports whether any mutation changed the artifact.
func (a *Artifact) Dirty() bool {
	return a.dirty
}

// Has reports whether any line contains the needle.
func (a *Artifact) Has(needle string) bool {
	for _, line := range a.lines {
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}

// InsertBefore places the block immediately above the first line containing
// the anchor. A missing anchor means the artifact no longer has the expected
// shape, which is an error, not a silent skip.
func (a *Artifact) InsertBefore(anchor string, block ...string) error {
	for i, line := range a.lines {
		if !strings.Contains(line, anchor) {
			continue
		}
		updated := make([]string, 0, len(a.lines)+len(block))
		updated = append(updated, a.lines[:i]...)
		updated = append(updated, block...)
		updated = append(updated, a.lines[i:]...)
		a.lines = updated
		a.dirty = true
		return nil
	}
	return fmt.Errorf("splice: %s has no anchor %q", a.path, anchor)
}

var ordinalCase = regexp.MustCompile(`^(\s*)case (\d+):(.*)$`)

// RenumberOrdinalCases shifts every `case N:` line with N >= start by delta.
// Artifacts that dispatch on positional ordinals need their tail arms pushed
// down when an entry is inserted mid-list; ID-keyed artifacts are unaffected
// because they contain no ordinal arms.
func (a *Artifact) RenumberOrdinalCases(start, delta int) int {
	changed := 0
	for i, line := range a.lines {
		m := ordinalCase.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[2])
		if err != nil || n < start {
			continue
		}
		a.lines[i] = fmt.Sprintf("%scase %d:%s", m[1], n+delta, m[3])
		changed++
	}
	if changed > 0 {
		a.dirty = true
	}
	return changed
}

// Bytes renders the artifact back to file content.
func (a *Artifact) Bytes() []byte {
	return []byte(strings.Join(a.lines, "\n") + "\n")
}

// Save writes the artifact back to its path, but only if it changed.
func (a *Artifact) Save() error {
	if !a.dirty {
		return nil
	}
	if err := os.WriteFile(a.path, a.Bytes(), 0o644); err != nil {
		return fmt.Errorf("splice: writing %s: %w", a.path, err)
	}
	a.dirty = false
	return nil
}

// Package highscore keeps the top-5 table of named scores in a plain text
// file, one "name score" pair per line, best first.
package highscore

import (
	"bufio"
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Capacity is the number of entries the table keeps.
const Capacity = 5

// DefaultName is used when a player enters an empty name.
const DefaultName = "You"

// ErrNotQualified is returned by Insert when a score does not make the table.
var ErrNotQualified = errors.New("highscore: score does not qualify")

// Entry is one row of the table.
type Entry struct {
	Name  string
	Score int
}

// Table is the top-5 table backed by a file. Safe for concurrent use.
type Table struct {
	mu      sync.Mutex
	path    string
	entries []Entry
}

// Load reads the table at path. A missing file yields an empty table.
// Malformed lines are skipped.
func Load(path string) (*Table, error) {
	t := &Table{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("highscore: read %s: %w", path, err)
	}

	t.entries = parse(data)
	return t, nil
}

func parse(data []byte) []Entry {
	var entries []Entry
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// Names may contain spaces; the score is the last field
		i := strings.LastIndexByte(line, ' ')
		if i <= 0 {
			continue
		}
		score, err := strconv.Atoi(line[i+1:])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: strings.TrimSpace(line[:i]), Score: score})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int { return cmp.Compare(b.Score, a.Score) })
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	return entries
}

// Entries returns a copy of the table, best first.
func (t *Table) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.entries)
}

// Path returns the backing file path.
func (t *Table) Path() string {
	return t.path
}

// Qualifies reports whether score would enter the table.
func (t *Table) Qualifies(score int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.position(score)
	return ok
}

// position returns where score would be inserted: before the first lower
// entry, or at the end while the table has room.
func (t *Table) position(score int) (int, bool) {
	for i, e := range t.entries {
		if score > e.Score {
			return i, true
		}
	}
	if len(t.entries) < Capacity {
		return len(t.entries), true
	}
	return 0, false
}

// Insert adds a score, evicting the lowest entry when full, and persists the
// table. It returns the 0-based rank or ErrNotQualified.
func (t *Table) Insert(name string, score int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos, ok := t.position(score)
	if !ok {
		return -1, ErrNotQualified
	}

	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		name = DefaultName
	}

	t.entries = slices.Insert(t.entries, pos, Entry{Name: name, Score: score})
	if len(t.entries) > Capacity {
		t.entries = t.entries[:Capacity]
	}

	if err := t.save(); err != nil {
		return pos, err
	}
	return pos, nil
}

// Save rewrites the backing file in full.
func (t *Table) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.save()
}

func (t *Table) save() error {
	if t.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("highscore: create directory: %w", err)
	}

	var b strings.Builder
	for _, e := range t.entries {
		fmt.Fprintf(&b, "%s %d\n", e.Name, e.Score)
	}
	if err := os.WriteFile(t.path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("highscore: write %s: %w", t.path, err)
	}
	return nil
}

// DefaultPath returns ~/.skyfight/scores.txt, or scores.txt when the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "scores.txt"
	}
	return filepath.Join(home, ".skyfight", "scores.txt")
}

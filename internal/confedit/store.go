package confedit

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/duskydots/duskytune/internal/logging"
	"go.uber.org/zap"
)

// Errors returned by Store operations. Callers are expected to treat these
// as recoverable: a failed write leaves the file and the cache untouched.
var (
	// ErrKeyNotFound indicates that no line holding the key could be
	// located inside the requested scope.
	ErrKeyNotFound = errors.New("key not found in scope")
	// ErrBadValue indicates the replacement value cannot be represented on
	// a single configuration line.
	ErrBadValue = errors.New("value contains newline")
)

// scopedKey identifies a setting by its key name and the innermost enclosing
// block. An empty scope means top level.
type scopedKey struct {
	key   string
	scope string
}

// Store is a cache of the settings found in one configuration file. It is
// populated by a full scan when opened and updated incrementally after every
// successful write; it is never read back from disk after a write.
type Store struct {
	path   string
	values map[scopedKey]string
}

// Open reads and parses the configuration file at path. The file must exist,
// be a regular file, and be writable; anything else is a setup failure and
// the UI should not start.
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("config file %s: not a regular file", path)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	s := &Store{
		path:   path,
		values: make(map[scopedKey]string),
	}
	scanConfig(splitLines(string(data)), func(_ int, _ string, key, value, scope string) {
		// First occurrence wins, matching the line the write path targets.
		if _, ok := s.values[scopedKey{key, scope}]; !ok {
			s.values[scopedKey{key, scope}] = value
		}
		// First bare occurrence wins for scope-free lookups.
		if _, ok := s.values[scopedKey{key, ""}]; !ok {
			s.values[scopedKey{key, ""}] = value
		}
	})
	logging.Debug("parsed config file",
		zap.String("path", path),
		zap.Int("entries", len(s.values)))
	return s, nil
}

// Path returns the path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached value for key inside scope. The boolean is false
// when the key was never seen in that scope.
func (s *Store) Get(key, scope string) (string, bool) {
	v, ok := s.values[scopedKey{key, scope}]
	return v, ok
}

// lineVisitor is called by scanConfig for every setting line, with the line
// number (0-based), the raw line text, the parsed key and value, and the
// innermost enclosing scope at that point.
type lineVisitor func(ln int, raw, key, value, scope string)

// scanConfig runs the scope-tracking scan over lines. Both the initial full
// parse and the write-path line locator use this single implementation, so
// the two passes cannot disagree on scope boundaries.
func scanConfig(lines []string, visit lineVisitor) {
	var stack []string
	for ln, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if key, value, ok := splitSetting(trimmed); ok {
			scope := ""
			if len(stack) > 0 {
				scope = stack[len(stack)-1]
			}
			visit(ln, raw, key, value, scope)
			continue
		}

		// Not a setting line: process block delimiters. Several openings
		// and closings may share one line ("} decoration {").
		word := ""
	delims:
		for _, r := range trimmed {
			switch r {
			case '#':
				break delims
			case '{':
				stack = append(stack, strings.TrimSpace(word))
				word = ""
			case '}':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				word = ""
			default:
				word += string(r)
			}
		}
	}
}

// splitSetting parses a trimmed "key = value" line. The value has any
// trailing same-line comment stripped. Lines whose key segment is not a
// plain identifier (e.g. block openers) are rejected.
func splitSetting(trimmed string) (key, value string, ok bool) {
	eq := strings.IndexByte(trimmed, '=')
	if eq < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(trimmed[:eq])
	if key == "" || strings.ContainsAny(key, "{}#") {
		return "", "", false
	}
	value = strings.TrimSpace(stripTrailingComment(trimmed[eq+1:]))
	return key, value, true
}

// stripTrailingComment removes a trailing "  # ..." comment from a value
// segment. A '#' that starts the value itself (a bare color like "#a6e3a1")
// is not a comment.
func stripTrailingComment(v string) string {
	trimmed := strings.TrimSpace(v)
	for i := 1; i < len(trimmed); i++ {
		if trimmed[i] == '#' && (trimmed[i-1] == ' ' || trimmed[i-1] == '\t') {
			return trimmed[:i]
		}
	}
	return trimmed
}

// splitLines splits file content into lines without the terminating
// newlines. The final newline, if any, does not produce an empty element.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

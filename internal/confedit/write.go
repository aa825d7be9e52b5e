package confedit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/duskydots/duskytune/internal/logging"
	"go.uber.org/zap"
)

// Set replaces the value of key inside scope with value. The target line is
// located by re-scanning the file with the same scope tracker used by the
// initial parse, and only the value span of that line is rewritten; leading
// whitespace, the key text, and any trailing inline comment are preserved
// byte for byte.
//
// Setting a key to the value it already holds is a successful no-op that
// never touches the file. On any failure the file and the in-memory cache
// are left exactly as they were.
func (s *Store) Set(key, scope, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("set %s: %w", key, ErrBadValue)
	}
	if cur, ok := s.values[scopedKey{key, scope}]; ok && cur == value {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	content := string(data)
	lines := splitLines(content)

	target := -1
	scanConfig(lines, func(ln int, _, k, _, sc string) {
		if target < 0 && k == key && sc == scope {
			target = ln
		}
	})
	if target < 0 {
		return fmt.Errorf("set %s in scope %q: %w", key, scope, ErrKeyNotFound)
	}

	patched, ok := spliceValue(lines[target], value)
	if !ok {
		return fmt.Errorf("set %s in scope %q: %w", key, scope, ErrKeyNotFound)
	}
	lines[target] = patched

	out := strings.Join(lines, "\n")
	if strings.HasSuffix(content, "\n") {
		out += "\n"
	}
	if err := s.replaceFile([]byte(out)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	s.values[scopedKey{key, scope}] = value
	if scope == "" {
		s.values[scopedKey{key, ""}] = value
	}
	logging.Debug("config value written",
		zap.String("path", s.path),
		zap.String("key", key),
		zap.String("scope", scope),
		zap.String("value", value))
	return nil
}

// spliceValue rewrites the value span of one "key = value" line. The span
// starts after the '=' and its following whitespace and ends before the
// whitespace that introduces a trailing comment, using the same comment rule
// as the parser so the two passes agree on what the value is.
func spliceValue(raw, newValue string) (string, bool) {
	eq := strings.IndexByte(raw, '=')
	if eq < 0 {
		return "", false
	}
	vs := eq + 1
	for vs < len(raw) && (raw[vs] == ' ' || raw[vs] == '\t') {
		vs++
	}
	ve := len(raw)
	for i := vs + 1; i < len(raw); i++ {
		if raw[i] == '#' && (raw[i-1] == ' ' || raw[i-1] == '\t') {
			ve = i
			break
		}
	}
	for ve > vs && (raw[ve-1] == ' ' || raw[ve-1] == '\t') {
		ve--
	}
	return raw[:vs] + newValue + raw[ve:], true
}

// replaceFile writes content to a temporary file in the same directory as
// the target and atomically renames it over the original. The temp file is
// synced before the rename and the directory after, matching the crash
// safety of the original implementation.
func (s *Store) replaceFile(content []byte) error {
	info, err := os.Stat(s.path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}
	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Sync the directory so the rename itself is durable.
	if d, err := os.Open(dir); err == nil {
		d.Sync()
		d.Close()
	}
	return nil
}

package tui

import (
	"strconv"
	"strings"

	"github.com/duskydots/duskytune/internal/confedit"
	"github.com/duskydots/duskytune/internal/registry"
)

// Value is one cached display value. The zero Value is the unset sentinel:
// it is distinct from every legal string, including the empty one, so "key
// not found" can never be confused with a legitimately empty value.
type Value struct {
	Text string
	Set  bool
}

// valueCache maps item labels of the active view to their last-known
// values. It is rebuilt on every view activation and mutated only by
// successful writes.
type valueCache map[string]Value

// loadValues reads the current value of every item in view from the store.
// No interpretation happens here; values stay literal text until they are
// rendered or modified.
func loadValues(store *confedit.Store, view *registry.View) valueCache {
	cache := make(valueCache, len(view.Items))
	for _, it := range view.Items {
		if it.Kind == registry.Submenu {
			continue
		}
		if text, ok := store.Get(it.Key, it.Scope); ok && text != "" {
			cache[it.Label] = Value{Text: text, Set: true}
		} else {
			cache[it.Label] = Value{}
		}
	}
	return cache
}

// modifyValue computes the next value for it when stepped in direction dir
// (+1 or -1). An unset value is first seeded from the item's default, or
// from its minimum when no default is declared, and the step is then
// applied to the seed. The returned bool is false when the item kind cannot
// be modified (submenus).
func modifyValue(it registry.Item, cur Value, dir int) (string, bool) {
	text := cur.Text
	if !cur.Set {
		text = seedValue(it)
	}

	switch it.Kind {
	case registry.Bool:
		if parseBool(text) {
			return "false", true
		}
		return "true", true

	case registry.Int:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			v = it.Int.Min
		}
		v += int64(dir) * it.Int.Step
		if it.Int.Bounded {
			v = clampInt(v, it.Int.Min, it.Int.Max)
		}
		return strconv.FormatInt(v, 10), true

	case registry.Float:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			v = it.Float.Min
		}
		v += float64(dir) * it.Float.Step
		if it.Float.Bounded {
			v = clampFloat(v, it.Float.Min, it.Float.Max)
		}
		return formatFloat(v), true

	case registry.Cycle:
		idx := 0
		for i, opt := range it.Options {
			if opt == text {
				idx = i
				break
			}
		}
		n := len(it.Options)
		idx = ((idx+dir)%n + n) % n
		return it.Options[idx], true

	case registry.Submenu:
		return "", false

	default:
		return "", false
	}
}

// seedValue picks the working value for an unset item: the declared
// default, else the minimum constraint, else a kind-appropriate zero.
func seedValue(it registry.Item) string {
	if it.HasDefault() {
		return it.Default
	}
	switch it.Kind {
	case registry.Int:
		return strconv.FormatInt(it.Int.Min, 10)
	case registry.Float:
		return formatFloat(it.Float.Min)
	case registry.Cycle:
		return it.Options[0]
	default:
		return "false"
	}
}

// parseBool accepts the spellings other tools write into config files;
// canonical output is always "true"/"false".
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	default:
		return false
	}
}

// formatFloat renders a float with stable fixed precision: never
// exponential notation, no trailing zero noise.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func clampInt(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

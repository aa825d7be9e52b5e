// Package registry declares the catalog of editable settings a panel
// exposes. A Registry is built once at startup, before the UI is shown, and
// is read-only afterwards; every other component shares it.
//
// Malformed declarations (a step of zero, inverted bounds, an empty option
// list, duplicate labels) are programmer errors in the panel definition, not
// runtime conditions, so the builder panics on them in the manner of
// regexp.MustCompile.
package registry

import "fmt"

// Kind discriminates the editable item types. Every consumer switches over
// all kinds, so adding one is a compile-visible change.
type Kind int

const (
	// Bool toggles between "true" and "false".
	Bool Kind = iota
	// Int steps a signed integer by a fixed amount, optionally clamped.
	Int
	// Float steps a decimal by a fixed amount, optionally clamped.
	Float
	// Cycle advances through a fixed list of string options, wrapping.
	Cycle
	// Submenu drills into a child view; it has no value of its own.
	Submenu
)

// String returns the declaration-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Cycle:
		return "cycle"
	case Submenu:
		return "submenu"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IntSpec constrains an Int item. When Bounded is false, Min and Max are
// ignored and values are unclamped.
type IntSpec struct {
	Min, Max int64
	Step     int64
	Bounded  bool
}

// FloatSpec constrains a Float item.
type FloatSpec struct {
	Min, Max float64
	Step     float64
	Bounded  bool
}

// Item is one editable entry: a label shown in the UI bound to a (key,
// scope) pair in the configuration file. Exactly one kind-specific payload
// is meaningful, selected by Kind.
type Item struct {
	Label string
	Key   string
	Scope string
	Kind  Kind

	Int     IntSpec
	Float   FloatSpec
	Options []string
	Menu    *View

	// Default seeds the value when the key is absent from the file and is
	// what reset-to-default writes. Empty means no default declared.
	Default string
}

// HasDefault reports whether the item declared a default value.
func (it Item) HasDefault() bool {
	return it.Default != ""
}

// View is an ordered collection of items with its own selection and scroll
// state: either a top-level tab or a submenu.
type View struct {
	Title string
	Items []Item
}

// Registry owns the tabs and submenu views of one panel.
type Registry struct {
	tabs  []*View
	menus map[string]*View
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{menus: make(map[string]*View)}
}

// AddTab appends a top-level tab and returns it for item registration.
func (r *Registry) AddTab(title string) *View {
	if title == "" {
		panic("registry: tab title must not be empty")
	}
	v := &View{Title: title}
	r.tabs = append(r.tabs, v)
	return v
}

// Tabs returns the ordered top-level views.
func (r *Registry) Tabs() []*View {
	return r.tabs
}

// AddSubmenu registers a submenu item on v and returns the child view. The
// key identifies the submenu and must be unique within the registry.
func (r *Registry) AddSubmenu(v *View, label, key, title string) *View {
	if key == "" {
		panic("registry: submenu key must not be empty")
	}
	if _, dup := r.menus[key]; dup {
		panic(fmt.Sprintf("registry: duplicate submenu key %q", key))
	}
	child := &View{Title: title}
	r.menus[key] = child
	v.add(Item{Label: label, Key: key, Kind: Submenu, Menu: child})
	return child
}

// AddBool registers a boolean toggle. def may be "" for no default.
func (v *View) AddBool(label, key, scope, def string) {
	v.add(Item{Label: label, Key: key, Scope: scope, Kind: Bool, Default: def})
}

// AddInt registers a stepped integer.
func (v *View) AddInt(label, key, scope string, spec IntSpec, def string) {
	if spec.Step <= 0 {
		panic(fmt.Sprintf("registry: item %q: int step must be positive, got %d", label, spec.Step))
	}
	if spec.Bounded && spec.Min > spec.Max {
		panic(fmt.Sprintf("registry: item %q: int bounds inverted (%d > %d)", label, spec.Min, spec.Max))
	}
	v.add(Item{Label: label, Key: key, Scope: scope, Kind: Int, Int: spec, Default: def})
}

// AddFloat registers a stepped decimal.
func (v *View) AddFloat(label, key, scope string, spec FloatSpec, def string) {
	if spec.Step <= 0 {
		panic(fmt.Sprintf("registry: item %q: float step must be positive, got %v", label, spec.Step))
	}
	if spec.Bounded && spec.Min > spec.Max {
		panic(fmt.Sprintf("registry: item %q: float bounds inverted (%v > %v)", label, spec.Min, spec.Max))
	}
	v.add(Item{Label: label, Key: key, Scope: scope, Kind: Float, Float: spec, Default: def})
}

// AddCycle registers a fixed-choice item.
func (v *View) AddCycle(label, key, scope string, options []string, def string) {
	if len(options) == 0 {
		panic(fmt.Sprintf("registry: item %q: cycle needs at least one option", label))
	}
	v.add(Item{Label: label, Key: key, Scope: scope, Kind: Cycle, Options: options, Default: def})
}

func (v *View) add(it Item) {
	if it.Label == "" {
		panic("registry: item label must not be empty")
	}
	if it.Kind != Submenu && it.Key == "" {
		panic(fmt.Sprintf("registry: item %q: key must not be empty", it.Label))
	}
	for _, existing := range v.Items {
		if existing.Label == it.Label {
			panic(fmt.Sprintf("registry: duplicate label %q in view %q", it.Label, v.Title))
		}
	}
	v.Items = append(v.Items, it)
}

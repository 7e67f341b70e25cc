// Package registry declares the option-mutating functions the analysis
// inspects and where each one takes its autoload argument.
package registry

import "sort"

// Entry describes one checked function: which parameter carries the
// autoload value, whether the caller may omit it, and which literal
// spellings are accepted there.
type Entry struct {
	// Name is the canonical lowercase function name.
	Name string
	// ArgName is the declared parameter name, used to match named
	// arguments at call sites.
	ArgName string
	// ArgPos is the zero-based positional index of the parameter.
	ArgPos int
	// Optional marks parameters with a default value; calls that omit
	// them are counted but not flagged.
	Optional bool
	// IsArray marks the batch form whose parameter is an option=>value
	// array rather than a single autoload value.
	IsArray bool
	// ValidSet holds the accepted lowercase spellings of the value.
	ValidSet map[string]bool
}

// Accepts reports whether the lowercase normalized value is one of the
// accepted spellings for this parameter.
func (e *Entry) Accepts(lower string) bool {
	return e.ValidSet[lower]
}

var boolOnly = map[string]bool{
	"true":  true,
	"false": true,
}

var boolOrNull = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
}

var entries = map[string]*Entry{
	"add_option": {
		Name:     "add_option",
		ArgName:  "autoload",
		ArgPos:   3,
		Optional: true,
		ValidSet: boolOrNull,
	},
	"update_option": {
		Name:     "update_option",
		ArgName:  "autoload",
		ArgPos:   2,
		Optional: true,
		ValidSet: boolOrNull,
	},
	"wp_set_option_autoload": {
		Name:     "wp_set_option_autoload",
		ArgName:  "autoload",
		ArgPos:   1,
		ValidSet: boolOnly,
	},
	"wp_set_options_autoload": {
		Name:     "wp_set_options_autoload",
		ArgName:  "autoload",
		ArgPos:   1,
		ValidSet: boolOnly,
	},
	"wp_set_option_autoload_values": {
		Name:     "wp_set_option_autoload_values",
		ArgName:  "options",
		ArgPos:   0,
		IsArray:  true,
		ValidSet: boolOnly,
	},
}

// Lookup resolves a function name (already lowercased by the caller)
// to its registry entry.
func Lookup(lowerName string) (*Entry, bool) {
	e, ok := entries[lowerName]
	return e, ok
}

// Functions returns the checked function names in sorted order.
func Functions() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package registry_test

import (
	"testing"

	"optlint/internal/registry"
)

func TestLookupKnownFunctions(t *testing.T) {
	cases := []struct {
		name     string
		argName  string
		argPos   int
		optional bool
		isArray  bool
	}{
		{"add_option", "autoload", 3, true, false},
		{"update_option", "autoload", 2, true, false},
		{"wp_set_option_autoload", "autoload", 1, false, false},
		{"wp_set_options_autoload", "autoload", 1, false, false},
		{"wp_set_option_autoload_values", "options", 0, false, true},
	}

	for _, tc := range cases {
		e, ok := registry.Lookup(tc.name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tc.name)
		}
		if e.ArgName != tc.argName || e.ArgPos != tc.argPos || e.Optional != tc.optional || e.IsArray != tc.isArray {
			t.Errorf("Lookup(%q) = %+v, want arg=%s pos=%d optional=%v array=%v",
				tc.name, e, tc.argName, tc.argPos, tc.optional, tc.isArray)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := registry.Lookup("get_option"); ok {
		t.Error("get_option must not be registered")
	}
	// lookup is not responsible for case folding
	if _, ok := registry.Lookup("Add_Option"); ok {
		t.Error("Lookup must take pre-lowercased names only")
	}
}

func TestValidSets(t *testing.T) {
	add, _ := registry.Lookup("add_option")
	for _, v := range []string{"true", "false", "null"} {
		if !add.Accepts(v) {
			t.Errorf("add_option should accept %q", v)
		}
	}

	set, _ := registry.Lookup("wp_set_option_autoload")
	if set.Accepts("null") {
		t.Error("wp_set_option_autoload must not accept null")
	}
	if !set.Accepts("true") || !set.Accepts("false") {
		t.Error("wp_set_option_autoload must accept true and false")
	}
	if set.Accepts("yes") {
		t.Error("yes is never a valid spelling")
	}
}

func TestFunctionsSorted(t *testing.T) {
	names := registry.Functions()
	if len(names) != 5 {
		t.Fatalf("got %d functions, want 5", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

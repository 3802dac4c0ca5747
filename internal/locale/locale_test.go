package locale

import "testing"

func TestTableGet(t *testing.T) {
	table := Table{
		French:  "bonjour",
		English: "hello",
		Arabic:  "مرحبا",
	}

	tests := []struct {
		name     string
		loc      Locale
		expected string
	}{
		{"french entry", French, "bonjour"},
		{"english entry", English, "hello"},
		{"arabic entry", Arabic, "مرحبا"},
		{"unknown locale falls back to english", Locale("de"), "hello"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := table.Get(tc.loc); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestListGet_FallsBackToEnglish(t *testing.T) {
	list := List{
		French:  {"a"},
		English: {"b", "c"},
		Arabic:  {"d"},
	}

	got := list.Get(Locale("es"))
	if len(got) != 2 || got[0] != "b" {
		t.Errorf("Expected english fallback, got %v", got)
	}
}

func TestMustComplete_PanicsOnMissingLocale(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for incomplete table")
		}
	}()

	MustComplete("incomplete", Table{French: "x", English: "y"})
}

func TestMustCompleteList_PanicsOnEmptySet(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for empty locale set")
		}
	}()

	MustCompleteList("incomplete", List{French: {"x"}, English: {"y"}, Arabic: {}})
}

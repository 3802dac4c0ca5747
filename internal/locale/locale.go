package locale

import "fmt"

// Locale is one of the three supported response languages.
type Locale string

const (
	French  Locale = "fr"
	English Locale = "en"
	Arabic  Locale = "ar"
)

// All lists every supported locale. Table completeness checks iterate this.
func All() []Locale {
	return []Locale{French, English, Arabic}
}

// Table maps each locale to a single localized string.
type Table map[Locale]string

// Get returns the entry for loc, falling back to English.
func (t Table) Get(loc Locale) string {
	if s, ok := t[loc]; ok {
		return s
	}
	return t[English]
}

// List maps each locale to a fixed set of localized strings.
type List map[Locale][]string

// Get returns the entries for loc, falling back to English.
func (l List) Get(loc Locale) []string {
	if s, ok := l[loc]; ok {
		return s
	}
	return l[English]
}

// MustComplete panics if t is missing any locale. Called from package init
// so a missing translation fails at startup, not mid-request.
func MustComplete(name string, t Table) Table {
	for _, loc := range All() {
		if _, ok := t[loc]; !ok {
			panic(fmt.Sprintf("locale table %s is missing entry for %q", name, loc))
		}
	}
	return t
}

// MustCompleteList panics if l is missing or has an empty set for any locale.
func MustCompleteList(name string, l List) List {
	for _, loc := range All() {
		if len(l[loc]) == 0 {
			panic(fmt.Sprintf("locale list %s is missing entries for %q", name, loc))
		}
	}
	return l
}

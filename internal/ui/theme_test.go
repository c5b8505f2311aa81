package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Olive" || names[1] != "Nightfox" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Olive Nightfox Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Olive"); got != "Nightfox" {
		t.Fatalf("NextTheme(Olive) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Olive" {
		t.Fatalf("NextTheme(Slate) = %q, want Olive", got)
	}
	if got := NextTheme("Unknown"); got != "Olive" {
		t.Fatalf("NextTheme(Unknown) = %q, want Olive", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Nightfox"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme(Nightfox).Name = %q, want Nightfox", got.Name)
	}
	if got := GetTheme("Unknown"); got.Name != "Olive" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Olive (fallback)", got.Name)
	}
}

func TestThemes_CoverOrderStatuses(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, status := range []string{"processing", "shipped", "completed"} {
			if th.StatusColors[status] == "" {
				t.Fatalf("theme %s missing status color %q", name, status)
			}
		}
	}
}

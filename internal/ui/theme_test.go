package ui

import "testing"

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Slate"); got.Name != "Slate" {
		t.Fatalf("GetTheme(Slate).Name = %q", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "Iron" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Iron", got.Name)
	}
	if got := GetTheme(""); got.Name != "Iron" {
		t.Fatalf("GetTheme(empty).Name = %q, want Iron", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	start := themes[0].Name
	name := start
	for range themes {
		name = NextTheme(name)
	}
	if name != start {
		t.Fatalf("cycling %d times from %q ended at %q", len(themes), start, name)
	}

	if got := NextTheme("unknown"); got != themes[0].Name {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, themes[0].Name)
	}
}

package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"lazybear/internal/model"
)

func TestPaletteColorPerTheme(t *testing.T) {
	themes := []model.Theme{
		model.ThemeOriginal,
		model.ThemePink,
		model.ThemePurple,
		model.ThemeBlue,
		model.ThemeGreen,
		model.ThemeYellow,
	}
	seen := map[lipgloss.Color]model.Theme{}
	for _, th := range themes {
		c := PaletteColor(th)
		if c == "" {
			t.Fatalf("theme %q has no color", th)
		}
		if prev, dup := seen[c]; dup {
			t.Fatalf("themes %q and %q share color %q", prev, th, c)
		}
		seen[c] = th
	}
	// Unknown themes fall back to the default accent.
	if PaletteColor(model.Theme("nope")) != PaletteColor(model.ThemeOriginal) {
		t.Fatalf("unknown theme should use the default color")
	}
}

func TestCheckbox(t *testing.T) {
	if Checkbox(false) != "[ ]" {
		t.Fatalf("unchecked box = %q", Checkbox(false))
	}
	if Checkbox(true) == "[ ]" {
		t.Fatalf("checked box should differ from unchecked")
	}
}

package menu

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain text", "Breakfast", "Breakfast"},
		{"Non-breaking spaces", "Harissa\u00a0Potatoes", "Harissa Potatoes"},
		{"Leading and trailing dashes", "-- Griddle --", "- Griddle -"},
		{"Single dash decoration", "- Soups -", "Soups"},
		{"En-dash decoration", "– Bakery –", "Bakery"},
		{"Trailing colon", "Entrees:", "Entrees"},
		{"Whitespace runs", "Open    Bar\t\tItems", "Open Bar Items"},
		{"Surrounding whitespace", "  Lunch  ", "Lunch"},
		{"Empty", "", ""},
		{"Only decoration", " - ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.expected {
				t.Errorf("NormalizeText(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeHeaderFallback(t *testing.T) {
	if got := NormalizeHeader("  -  "); got != Uncategorized {
		t.Errorf("expected empty header to fall back to %q, got %q", Uncategorized, got)
	}
	if got := NormalizeHeader("Dinner"); got != "Dinner" {
		t.Errorf("expected %q, got %q", "Dinner", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("\u00a0 Crunch   Wrap \u00a0")
	if got != "Crunch Wrap" {
		t.Errorf("CollapseWhitespace = %q, expected %q", got, "Crunch Wrap")
	}
}

package menu

import "testing"

func TestSplitPrice(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantPrice string
	}{
		{"No price", "Harissa Potatoes", "Harissa Potatoes", ""},
		{"Trailing price", "Crunch Wrap $7.00", "Crunch Wrap", "$7.00"},
		{"Price with dash separator", "Breakfast Burrito - $6.50", "Breakfast Burrito", "$6.50"},
		{"Price with colon separator", "Latte: $4", "Latte", "$4"},
		{"Spaced dollar sign", "Smoothie $ 5.25", "Smoothie", "$ 5.25"},
		{"Single decimal digit", "Cookie $1.5", "Cookie", "$1.5"},
		{"Leading price", "$3.00 Bagel", "Bagel", "$3.00"},
		{"Only first match", "Combo $8.00 or $9.00", "Combo or $9.00", "$8.00"},
		{"Whitespace only", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotPrice := SplitPrice(tt.input)
			if gotName != tt.wantName {
				t.Errorf("SplitPrice(%q) name = %q, expected %q", tt.input, gotName, tt.wantName)
			}
			if gotPrice != tt.wantPrice {
				t.Errorf("SplitPrice(%q) price = %q, expected %q", tt.input, gotPrice, tt.wantPrice)
			}
		})
	}
}

func TestFindPrice(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Pizza slice $3.75 each", "$3.75"},
		{"no dollars here", ""},
		{"two: $2 and $4.00", "$2"},
	}

	for _, tt := range tests {
		if got := FindPrice(tt.input); got != tt.expected {
			t.Errorf("FindPrice(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

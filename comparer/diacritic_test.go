package comparer

import "testing"

func TestDiacriticFold(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"café", "cafe", true},
		{"naïve", "NAIVE", true},
		{"straße", "strasse", true},
		{"Istanbul", "istanbul", true},
		{"ıstanbul", "istanbul", true},
		{"øre", "ore", true},
		{"hello", "world", false},
	}
	for _, tt := range tests {
		if got := DiacriticFold.EqualString(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualString(%q,%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDiacriticFoldRune(t *testing.T) {
	if !DiacriticFold.Equal('é', 'e') {
		t.Error("Equal('é','e') = false, want true")
	}
	if DiacriticFold.Equal('a', 'b') {
		t.Error("Equal('a','b') = true, want false")
	}
}

package comparer

import (
	"testing"

	"golang.org/x/text/language"
)

func TestOrdinal(t *testing.T) {
	if !Ordinal.Equal('a', 'a') {
		t.Error("Ordinal.Equal('a','a') = false, want true")
	}
	if Ordinal.Equal('a', 'A') {
		t.Error("Ordinal.Equal('a','A') = true, want false")
	}
	if !Ordinal.EqualString("hello", "hello") {
		t.Error("EqualString(hello,hello) = false, want true")
	}
	if Ordinal.EqualString("hello", "HELLO") {
		t.Error("EqualString(hello,HELLO) = true, want false")
	}
}

func TestInvariantIgnoreCase(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"hello", "HELLo", true},
		{"straße", "STRASSE", true},
		{"café", "CAFÉ", true},
		{"hello", "world", false},
	}
	for _, tt := range tests {
		if got := InvariantIgnoreCase.EqualString(tt.a, tt.b); got != tt.want {
			t.Errorf("EqualString(%q,%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCurrentCultureIgnoreCaseTurkish(t *testing.T) {
	tr := CurrentCultureIgnoreCase(language.Turkish)
	if !tr.EqualString("İstanbul", "istanbul") {
		t.Error(`Turkish fold: EqualString("İstanbul","istanbul") = false, want true`)
	}
}

func TestNatural(t *testing.T) {
	cmp := Natural[int]()
	if !cmp.Equal(3, 3) {
		t.Error("Natural[int].Equal(3,3) = false, want true")
	}
	if cmp.Equal(3, 4) {
		t.Error("Natural[int].Equal(3,4) = true, want false")
	}
}

func TestFromFunc(t *testing.T) {
	cmp := FromFunc(func(a, b int) bool { return a%10 == b%10 })
	if !cmp.Equal(3, 13) {
		t.Error("FromFunc comparer should treat 3 and 13 as equal mod 10")
	}
}

package model

import "testing"

func TestMaskedNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "spaced card number", number: "1234 5678 9012 3456", want: "•••• 3456"},
		{name: "unspaced", number: "9876543210987654", want: "•••• 7654"},
		{name: "exactly four digits", number: "1234", want: "•••• 1234"},
		{name: "too short falls back", number: "123", want: "123"},
		{name: "empty", number: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Account{AccountNumber: tt.number}
			if got := a.MaskedNumber(); got != tt.want {
				t.Errorf("MaskedNumber(%q) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

package validation

import "testing"

func TestParsePositiveAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "100", want: 10000},
		{input: "0.01", want: 1},
		{input: "0", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePositiveAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePositiveAmount(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePositiveAmount(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePositiveAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "2025-03-10"},
		{input: ""},
		{input: "   "},
		{input: "03/10/2025", wantErr: true},
		{input: "2025-13-01", wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateDate(tt.input)
		if tt.wantErr && err == nil {
			t.Errorf("ValidateDate(%q) = nil, want error", tt.input)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ValidateDate(%q) = %v, want nil", tt.input, err)
		}
	}
}

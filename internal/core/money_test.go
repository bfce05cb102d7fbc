package core

import (
	"errors"
	"testing"
)

func TestParseAmountToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "dot separator", input: "12.34", want: 1234},
		{name: "comma separator", input: "12,34", want: 1234},
		{name: "integer", input: "7", want: 700},
		{name: "zero", input: "0", want: 0},
		{name: "single fractional digit", input: "3.5", want: 350},
		{name: "rounds half up", input: "12.346", want: 1235},
		{name: "rounds down", input: "12.344", want: 1234},
		{name: "leading dot", input: ".99", want: 99},
		{name: "surrounding whitespace", input: "  4,20  ", want: 420},
		{name: "negative passes through", input: "-5", want: -500},
		{name: "explicit plus", input: "+5", want: 500},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "mixed", input: "12a.30", wantErr: true},
		{name: "two separators", input: "1.2.3", wantErr: true},
		{name: "bare sign", input: "-", wantErr: true},
		{name: "overflow", input: "92233720368547758079", wantErr: true},
		{name: "overflow from fractional cents", input: "92233720368547758.99", wantErr: true},
		{name: "exactly max cents", input: "92233720368547758.07", want: 9223372036854775807},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmountToCents(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmountToCents(%q) = %d, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmountToCents(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmountToCents(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseAmountToCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1234, "12.34"},
		{100000, "1000.00"},
		{-1234, "-12.34"},
	}
	for _, tt := range tests {
		if got := (Money{Cents: tt.cents}).String(); got != tt.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

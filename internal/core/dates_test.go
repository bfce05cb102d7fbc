package core

import "testing"

func TestValidateStoredDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-03-05", false},
		{"2024-12-31", false},
		{"2024-13-40", true},
		{"05.03.2024", true},
		{"2024-3-5", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateStoredDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStoredDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestDisplayDate(t *testing.T) {
	if got := DisplayDate("2024-03-05"); got != "05.03.2024" {
		t.Errorf("DisplayDate = %q, want 05.03.2024", got)
	}
	// A malformed stored value degrades to the raw string.
	if got := DisplayDate("not-a-date"); got != "not-a-date" {
		t.Errorf("DisplayDate fallback = %q, want raw input", got)
	}
}

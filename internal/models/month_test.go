package models

import "testing"

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Month
		ok    bool
	}{
		{name: "lowercase", input: "march", want: March, ok: true},
		{name: "capitalized", input: "March", want: March, ok: true},
		{name: "uppercase", input: "DECEMBER", want: December, ok: true},
		{name: "padded", input: "  july ", want: July, ok: true},
		{name: "unknown", input: "smarch", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonth(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseMonth(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMonthOrder(t *testing.T) {
	if len(Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(Months))
	}
	for i, month := range Months {
		if month.Index() != i {
			t.Errorf("%s.Index() = %d, want %d", month, month.Index(), i)
		}
		if !month.Valid() {
			t.Errorf("%s should be valid", month)
		}
	}
	if January.Index() >= December.Index() {
		t.Error("calendar order broken")
	}
}

func TestMonthLabel(t *testing.T) {
	if got := March.Label(); got != "March" {
		t.Errorf("March.Label() = %q, want %q", got, "March")
	}
	if got := Month("").Label(); got != "" {
		t.Errorf("empty label = %q, want empty", got)
	}
}

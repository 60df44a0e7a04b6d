package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"250", "250"},
		{" 12.5 ", "12.5"},
		{"12,5", "12.5"},
		{"1,234.50", "1234.5"},
		{"0", "0"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error = %v", tt.in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "1.2.3"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestParsePositiveAmount(t *testing.T) {
	if _, err := ParsePositiveAmount("0"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ParsePositiveAmount(0) error = %v, want ErrInvalidAmount", err)
	}
	if d, err := ParsePositiveAmount("0.01"); err != nil || !d.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("ParsePositiveAmount(0.01) = %s, %v", d, err)
	}
}

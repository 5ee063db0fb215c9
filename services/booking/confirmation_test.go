package booking

import (
	"strings"
	"testing"
	"time"
)

func TestNewConfirmationCodeShape(t *testing.T) {
	now := time.Date(2026, 9, 5, 10, 0, 0, 123456000, time.UTC)
	code := NewConfirmationCode("ts", now)

	if len(code) != 11 {
		t.Fatalf("code %q has length %d, want 11", code, len(code))
	}
	if !strings.HasPrefix(code, "TS") {
		t.Errorf("code %q should start with the uppercased prefix", code)
	}
	for i, r := range code[2:8] {
		if r < '0' || r > '9' {
			t.Errorf("code %q position %d is %q, want a digit", code, i+2, r)
		}
	}
	for _, r := range code[8:] {
		if !strings.ContainsRune(confirmationAlphabet, r) {
			t.Errorf("code %q suffix contains %q, outside the base-36 alphabet", code, r)
		}
	}
}

func TestNewConfirmationCodeVariesWithTime(t *testing.T) {
	a := NewConfirmationCode("CF", time.Date(2026, 9, 5, 10, 0, 0, 111111000, time.UTC))
	b := NewConfirmationCode("CF", time.Date(2026, 9, 5, 10, 0, 0, 222222000, time.UTC))

	if a[2:8] == b[2:8] {
		t.Errorf("distinct instants produced identical digit sections: %q vs %q", a, b)
	}
}

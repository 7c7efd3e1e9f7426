package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.34", 1234},
		{"12", 1200},
		{"0.01", 1},
		{"12.345", 1235}, // rounds half up
		{"12.344", 1234},
		{"100.00", 10000},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := Cents(d); got != tc.want {
			t.Fatalf("Cents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFromCentsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 1234, 1000000} {
		if got := Cents(FromCents(cents)); got != cents {
			t.Fatalf("round trip %d cents = %d", cents, got)
		}
	}
	if !FromCents(6000).Equal(decimal.NewFromInt(60)) {
		t.Fatalf("FromCents(6000) = %s, want 60", FromCents(6000))
	}
}

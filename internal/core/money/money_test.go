package money

import (
	"testing"
)

func TestRoundCurrencyHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "1.01"},
		{"1.004", "1"},
		{"2.675", "2.68"},
		{"0.125", "0.13"},
		{"10.994", "10.99"},
		{"10.995", "11"},
		{"0", "0"},
	}
	for _, tc := range cases {
		got := RoundCurrency(Must(tc.in))
		if !got.Equal(Must(tc.want)) {
			t.Errorf("RoundCurrency(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

// Per-increment rounding is observable: rounding after each step can differ
// from rounding the exact sum once at the end.
func TestRunningRoundingDrift(t *testing.T) {
	price := Must("0.015")

	running := Zero()
	for i := 0; i < 3; i++ {
		running = RoundCurrency(running.Add(price))
	}
	// 0.015 -> 0.02 -> 0.035 -> 0.04 -> 0.055 -> 0.06
	if want := Must("0.06"); !running.Equal(want) {
		t.Errorf("running total = %s, want %s", running, want)
	}

	exact := RoundCurrency(price.Mul(New(3)))
	if want := Must("0.05"); !exact.Equal(want) {
		t.Errorf("single rounding = %s, want %s", exact, want)
	}
}

func TestMulRound(t *testing.T) {
	got := MulRound(Must("12.99"), 2.5)
	if want := Must("32.48"); !got.Equal(want) {
		t.Errorf("MulRound = %s, want %s", got, want)
	}
}

package measure

import (
	"math"
	"testing"
)

func TestParseLocaleNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1500", 1500},
		{"1500,5", 1500.5},
		{"1500.5", 1500.5},
		{"1.234,56", 1234.56},
		{"R$ 120,00", 120},
		{"  900 mm ", 900},
	}

	for _, c := range cases {
		got := ParseLocaleNumber(c.in)
		if got != c.want {
			t.Errorf("ParseLocaleNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseLocaleNumber_Unparsable(t *testing.T) {
	for _, in := range []string{"", "abc", "   ", "..", ",,"} {
		if got := ParseLocaleNumber(in); !math.IsNaN(got) {
			t.Errorf("ParseLocaleNumber(%q) = %v, want NaN", in, got)
		}
	}
}

func TestRoundUpToGrid(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 50},
		{49, 50},
		{50, 50},
		{750, 750},
		{751, 800},
		{1000, 1000},
		{1865, 1900},
	}

	for _, c := range cases {
		if got := RoundUpToGrid(c.in); got != c.want {
			t.Errorf("RoundUpToGrid(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRoundUpToGrid_Idempotent(t *testing.T) {
	for _, v := range []float64{0, 1, 49, 50, 751, 1865, 2000} {
		once := RoundUpToGrid(v)
		twice := RoundUpToGrid(float64(once))
		if once != twice {
			t.Errorf("RoundUpToGrid não é idempotente para %v: %d != %d", v, once, twice)
		}
		if once%GridMM != 0 {
			t.Errorf("RoundUpToGrid(%v) = %d não é múltiplo de %d", v, once, GridMM)
		}
		if float64(once) < v {
			t.Errorf("RoundUpToGrid(%v) = %d é menor que a entrada", v, once)
		}
	}
}

func TestAreaM2(t *testing.T) {
	// 750x1865 arredonda para 750x1900 antes de multiplicar.
	got := AreaM2(750, 1865)
	want := 750.0 * 1900.0 / 1_000_000
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("AreaM2(750, 1865) = %v, want %v", got, want)
	}
}

func TestAreaM2_Monotonic(t *testing.T) {
	base := AreaM2(800, 1900)
	if AreaM2(801, 1900) < base {
		t.Error("aumentar a largura reduziu a área")
	}
	if AreaM2(800, 1901) < base {
		t.Error("aumentar a altura reduziu a área")
	}
}

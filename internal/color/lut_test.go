package color

import (
	"math"
	"testing"
)

func TestToLinearMatchesFormula(t *testing.T) {
	for i := range 256 {
		got := float64(ToLinear(uint8(i)))
		want := decodeSRGB(float64(i) / 255)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("ToLinear(%d) = %f, want %f", i, got, want)
		}
	}
}

func TestFromLinearRoundTrip(t *testing.T) {
	for i := range 256 {
		got := FromLinear(ToLinear(uint8(i)))
		diff := int(got) - i
		if diff < -1 || diff > 1 {
			t.Errorf("FromLinear(ToLinear(%d)) = %d, want within 1", i, got)
		}
	}
}

func TestFromLinearClamps(t *testing.T) {
	if got := FromLinear(-0.5); got != 0 {
		t.Errorf("FromLinear(-0.5) = %d, want 0", got)
	}
	if got := FromLinear(2); got != 255 {
		t.Errorf("FromLinear(2) = %d, want 255", got)
	}
}

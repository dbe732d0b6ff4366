package creature

import (
	"math/rand"
	"testing"
)

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h, s, v int
		want    RGB
	}{
		{0, 100, 100, RGB{255, 0, 0}},
		{0, 50, 100, RGB{255, 127, 127}},
		{67, 65, 34, RGB{80, 86, 30}},
		{236, 66, 63, RGB{54, 61, 160}},
		{0, 0, 100, RGB{255, 255, 255}},
		{0, 0, 0, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		if got := HSVToRGB(tt.h, tt.s, tt.v); got != tt.want {
			t.Errorf("HSVToRGB(%d, %d, %d) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestColorsFromHueDerivesAll(t *testing.T) {
	c := ColorsFromHue(120)

	if c.Hue != 120 {
		t.Errorf("hue = %d, want 120", c.Hue)
	}
	if c.Node != HSVToRGB(120, 75, 100) {
		t.Errorf("node color not derived from hue")
	}
	if c.MuscleExtended != HSVToRGB(120, 75, 75) {
		t.Errorf("extended color not derived from hue")
	}
	if c.MuscleContracted != HSVToRGB(120, 75, 50) {
		t.Errorf("contracted color not derived from hue")
	}
	if c.ScoreText != HSVToRGB(120, 75, 95) {
		t.Errorf("score text color not derived from hue")
	}
}

func TestMutateColorsWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	// Near both ends of the circle, mutation stays in [0, 360) and the
	// derived colors always match the new hue.
	for _, start := range []int{0, 3, 357, 359} {
		c := ColorsFromHue(start)
		for i := 0; i < 200; i++ {
			c = MutateColors(c, rng, 10)
			if c.Hue < 0 || c.Hue >= 360 {
				t.Fatalf("hue %d escaped [0, 360)", c.Hue)
			}
			if c != ColorsFromHue(c.Hue) {
				t.Fatal("derived colors out of sync with hue")
			}
		}
	}
}

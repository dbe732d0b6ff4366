package creature

import "math/rand"

// RGB is an 8-bit color triple, kept engine-independent so the rendering
// layer decides how to realize it.
type RGB struct {
	R, G, B uint8
}

// Colors is a creature's palette: a single hue plus the four colors derived
// from it. Colors are never mutated independently of the hue.
type Colors struct {
	Hue              int
	Node             RGB
	MuscleExtended   RGB
	MuscleContracted RGB
	ScoreText        RGB
}

// NewColors creates a random palette with hue in [0, maxHue].
func NewColors(rng *rand.Rand, maxHue int) Colors {
	return ColorsFromHue(rng.Intn(maxHue + 1))
}

// ColorsFromHue derives the full palette from a hue in [0, 360).
func ColorsFromHue(hue int) Colors {
	return Colors{
		Hue:              hue,
		Node:             HSVToRGB(hue, 75, 100),
		MuscleExtended:   HSVToRGB(hue, 75, 75),
		MuscleContracted: HSVToRGB(hue, 75, 50),
		ScoreText:        HSVToRGB(hue, 75, 95),
	}
}

// MutateColors derives a new palette whose hue is perturbed by at most
// maxDelta degrees, wrapping modulo 360.
func MutateColors(c Colors, rng *rand.Rand, maxDelta int) Colors {
	delta := rng.Intn(2*maxDelta+1) - maxDelta
	return ColorsFromHue(((c.Hue+delta)%360 + 360) % 360)
}

// HSVToRGB converts h in [0, 360], s in [0, 100], v in [0, 100] to 8-bit RGB.
func HSVToRGB(h, s, v int) RGB {
	deltaS := float64(s) / 100.0
	deltaV := float64(v) / 100.0

	i := (h % 360) / 60
	dh := float64(h%360)/60.0 - float64(i)
	rv := uint8(deltaV * 255.0)

	if s == 0 {
		return RGB{rv, rv, rv}
	}

	p := uint8(deltaV * (1.0 - deltaS) * 255.0)
	q := uint8(deltaV * (1.0 - deltaS*dh) * 255.0)
	t := uint8(deltaV * (1.0 - deltaS*(1.0-dh)) * 255.0)

	switch i {
	case 0:
		return RGB{rv, t, p}
	case 1:
		return RGB{q, rv, p}
	case 2:
		return RGB{p, rv, t}
	case 3:
		return RGB{p, q, rv}
	case 4:
		return RGB{t, p, rv}
	default:
		return RGB{rv, p, q}
	}
}

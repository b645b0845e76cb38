package color

// Stop identifies one step of an 11-stop shade scale.
type Stop int

// Scale stops, lightest first.
const (
	Stop50  Stop = 50
	Stop100 Stop = 100
	Stop200 Stop = 200
	Stop300 Stop = 300
	Stop400 Stop = 400
	Stop500 Stop = 500
	Stop600 Stop = 600
	Stop700 Stop = 700
	Stop800 Stop = 800
	Stop900 Stop = 900
	Stop950 Stop = 950
)

// Stops lists every scale stop in ascending order.
var Stops = []Stop{
	Stop50, Stop100, Stop200, Stop300, Stop400, Stop500,
	Stop600, Stop700, Stop800, Stop900, Stop950,
}

// Scale maps each stop to a canonical #RRGGBB colour.
type Scale map[Stop]string

// Base returns the 500 stop.
func (s Scale) Base() string {
	return s[Stop500]
}

type stopOffset struct {
	lightness  float64
	saturation float64
}

// Offsets applied to the base HSL for each non-base stop. Lighter stops shed
// saturation so tints do not look neon; darker stops keep it fixed.
var scaleOffsets = map[Stop]stopOffset{
	Stop50:  {lightness: 45, saturation: -30},
	Stop100: {lightness: 35, saturation: -20},
	Stop200: {lightness: 25, saturation: -10},
	Stop300: {lightness: 15},
	Stop400: {lightness: 5},
	Stop600: {lightness: -5},
	Stop700: {lightness: -15},
	Stop800: {lightness: -25},
	Stop900: {lightness: -35},
	Stop950: {lightness: -45},
}

// GenerateScale derives an 11-stop tint/shade ramp from base. Stop 500 is the
// normalised base itself, never round-tripped through HSL.
func GenerateScale(base string) (Scale, error) {
	rgb, err := HexToRGB(base)
	if err != nil {
		return nil, err
	}
	hsl := RGBToHSL(rgb)

	scale := make(Scale, len(Stops))
	for _, stop := range Stops {
		if stop == Stop500 {
			scale[stop] = RGBToHex(rgb)
			continue
		}
		offset := scaleOffsets[stop]
		scale[stop] = HSLToHex(HSL{
			H: hsl.H,
			S: clamp(hsl.S+offset.saturation, 0, 100),
			L: clamp(hsl.L+offset.lightness, 0, 100),
		})
	}
	return scale, nil
}

// MustGenerateScale panics when base is not a valid colour. Intended for
// package-level palettes built from constants.
func MustGenerateScale(base string) Scale {
	scale, err := GenerateScale(base)
	if err != nil {
		panic(err)
	}
	return scale
}

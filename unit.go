package figure

// Physical is the physical type of a unit.
type Physical int

const (
	Dimensionless Physical = iota
	Time
	Frequency
	Amplitude
)

// String returns the name of the physical type.
func (p Physical) String() string {
	return []string{"dimensionless", "time", "frequency", "amplitude"}[int(p)]
}

// A Unit names the quantity a data axis is measured in.
type Unit struct {
	Name     string
	Physical Physical
}

// Common units.
var (
	Second = Unit{Name: "s", Physical: Time}
	Hertz  = Unit{Name: "Hz", Physical: Frequency}
)

// XUniter is implemented by datasets that know the unit of their x values.
type XUniter interface {
	XUnit() Unit
}

// probeXScale inspects the flat dataset list for a common x-axis unit.
// If exactly one distinct unit is exposed and it is a time unit, the
// relative-time scale is the right default and probeXScale returns
// (ScaleAutoTime, true). In every other case there is no default.
func probeXScale(data []Dataset) (ScaleType, bool) {
	units := make(map[Unit]bool)
	for _, d := range data {
		if u, ok := d.(XUniter); ok {
			units[u.XUnit()] = true
		}
	}
	if len(units) != 1 {
		return ScaleDefault, false
	}
	for u := range units {
		if u.Physical == Time {
			return ScaleAutoTime, true
		}
	}
	return ScaleDefault, false
}

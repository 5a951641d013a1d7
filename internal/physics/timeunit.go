package physics

// TimeUnit is the unit a cooling time is reported in. Minutes is canonical.
type TimeUnit int

const (
	Minutes TimeUnit = iota
	Seconds
	Hours
)

// String returns the label written to the log file.
func (u TimeUnit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Hours:
		return "hours"
	default:
		return "minutes"
	}
}

// FromMinutes converts a canonical time into u.
func (u TimeUnit) FromMinutes(minutes float64) float64 {
	switch u {
	case Seconds:
		return minutes * 60
	case Hours:
		return minutes / 60
	default:
		return minutes
	}
}

// ParseTimeUnit maps a menu choice (1-3) to a unit. Anything else falls back
// to minutes and reports ok=false.
func ParseTimeUnit(choice string) (TimeUnit, bool) {
	switch choice {
	case "1":
		return Minutes, true
	case "2":
		return Seconds, true
	case "3":
		return Hours, true
	default:
		return Minutes, false
	}
}

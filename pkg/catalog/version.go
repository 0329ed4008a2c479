package catalog

// Version is the schema generation of a catalog.
type Version int

const (
	VersionUnknown Version = iota
	Lr2
	Lr3
	Lr4
	Lr6
)

// ParseVersion maps the Adobe_DBVersion variable to a schema generation.
// Only the first two characters are significant: "0400020" is Lr4.
func ParseVersion(s string) Version {
	if len(s) < 2 {
		return VersionUnknown
	}
	switch s[:2] {
	case "02":
		return Lr2
	case "03":
		return Lr3
	case "04":
		return Lr4
	case "06":
		return Lr6
	default:
		return VersionUnknown
	}
}

// IsSupported reports whether entities can be loaded for this generation.
// Lr3 is recognized but has no query plan.
func (v Version) IsSupported() bool {
	switch v {
	case Lr2, Lr4, Lr6:
		return true
	default:
		return false
	}
}

func (v Version) String() string {
	switch v {
	case Lr2:
		return "Lr2"
	case Lr3:
		return "Lr3"
	case Lr4:
		return "Lr4"
	case Lr6:
		return "Lr6"
	default:
		return "Unknown"
	}
}

package printer

// SupplyColor identifies the colorant of a supply, used by the web
// interface to pick the level-bar color.
type SupplyColor int

const (
	SupplyColorNone SupplyColor = iota
	SupplyColorBlack
	SupplyColorCyan
	SupplyColorGray
	SupplyColorGreen
	SupplyColorLightCyan
	SupplyColorLightGray
	SupplyColorLightMagenta
	SupplyColorMagenta
	SupplyColorOrange
	SupplyColorViolet
	SupplyColorYellow
)

// String returns the IPP colorant keyword.
func (c SupplyColor) String() string {
	switch c {
	case SupplyColorNone:
		return "no-color"
	case SupplyColorBlack:
		return "black"
	case SupplyColorCyan:
		return "cyan"
	case SupplyColorGray:
		return "gray"
	case SupplyColorGreen:
		return "green"
	case SupplyColorLightCyan:
		return "light-cyan"
	case SupplyColorLightGray:
		return "light-gray"
	case SupplyColorLightMagenta:
		return "light-magenta"
	case SupplyColorMagenta:
		return "magenta"
	case SupplyColorOrange:
		return "orange"
	case SupplyColorViolet:
		return "violet"
	case SupplyColorYellow:
		return "yellow"
	}
	return "no-color"
}

// Supply describes one marker supply (ink/toner cartridge, waste tank).
type Supply struct {
	Color       SupplyColor
	Description string
	Level       int // 0-100 percent
	IsConsumed  bool
}

package router

import "fmt"

// Mode selects which top-level view is shown.
type Mode int

const (
	Home Mode = iota // Default
	Apply
)

// String returns the view name.
func (m Mode) String() string {
	switch m {
	case Home:
		return "home"
	case Apply:
		return "apply"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts "home" or "apply" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "home", "":
		return Home, nil
	case "apply":
		return Apply, nil
	default:
		return Home, fmt.Errorf("unknown view %q (want home or apply)", s)
	}
}

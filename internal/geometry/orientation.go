package geometry

import "fmt"

// Orientation is the direction a divider runs in.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// ParseOrientation accepts "vertical"/"v" and "horizontal"/"h".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "vertical", "v", "V":
		return Vertical, nil
	case "horizontal", "h", "H":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown orientation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

package encounter

import "fmt"

// Special is the predicted next special attack.
type Special int

const (
	SpecialUnknown Special = iota
	SpecialIceBarrage
	SpecialPoisonPool
)

var specialNames = map[Special]string{
	SpecialUnknown:    "unknown",
	SpecialIceBarrage: "ice_barrage",
	SpecialPoisonPool: "poison_pool",
}

// Specials lists every value in declaration order.
func Specials() []Special {
	return []Special{SpecialUnknown, SpecialIceBarrage, SpecialPoisonPool}
}

func (s Special) String() string {
	if name, ok := specialNames[s]; ok {
		return name
	}
	return fmt.Sprintf("special(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Special) MarshalText() ([]byte, error) {
	if _, ok := specialNames[s]; !ok {
		return nil, fmt.Errorf("unknown special %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so config keys decode
// straight into a Special.
func (s *Special) UnmarshalText(text []byte) error {
	v, err := ParseSpecial(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSpecial returns the Special named by its text form.
func ParseSpecial(name string) (Special, error) {
	for s, n := range specialNames {
		if n == name {
			return s, nil
		}
	}
	return SpecialUnknown, fmt.Errorf("unknown special %q", name)
}

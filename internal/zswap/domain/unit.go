package domain

import (
	"fmt"
	"strings"
)

// Unit is the exponent applied to a Base when scaling byte counts.
type Unit uint8

const (
	Bytes Unit = iota
	Kilo
	Mega
	Giga
	Tera
	Peta
	Exa
	Zetta
	Yotta
)

// unitCodes are the single-letter selectors accepted on the command line, indexed by Unit.
var unitCodes = [...]string{"b", "k", "m", "g", "t", "p", "e", "z", "y"}

var iecLabels = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

var siLabels = [...]string{"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// UnitCodes returns the accepted unit selectors in ascending order.
func UnitCodes() []string {
	return append([]string(nil), unitCodes[:]...)
}

// ParseUnit converts a single-letter selector such as "m" to its Unit.
func ParseUnit(code string) (Unit, error) {
	for i, c := range unitCodes {
		if c == code {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("invalid unit %q (choose from %s)", code, strings.Join(unitCodes[:], ", "))
}

// IsValid returns true if u has a selector and a label.
func (u Unit) IsValid() bool {
	return int(u) < len(unitCodes)
}

// String returns the command line selector of u.
func (u Unit) String() string {
	if !u.IsValid() {
		return fmt.Sprintf("UNKNOWN(%d)", u)
	}
	return unitCodes[u]
}

// Label returns the unit symbol for u: IEC symbols for BaseIEC, SI symbols otherwise.
func (u Unit) Label(base Base) string {
	if !u.IsValid() {
		return u.String()
	}
	if base == BaseIEC {
		return iecLabels[u]
	}
	return siLabels[u]
}

// Base is the multiplier between consecutive units.
type Base int64

const (
	BaseIEC Base = 1024
	BaseSI  Base = 1000
)

// BaseFor returns BaseSI when si is set and BaseIEC otherwise.
func BaseFor(si bool) Base {
	if si {
		return BaseSI
	}
	return BaseIEC
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		unit Unit
		base Base
		want string
	}{
		{"one mebibyte", 1048576, Mega, BaseIEC, "1 MiB"},
		{"two mebibytes", 2097152, Mega, BaseIEC, "2 MiB"},
		{"fractional mebibytes", 1572864, Mega, BaseIEC, "1.5 MiB"},
		{"rounded to one decimal", 123456789, Mega, BaseIEC, "117.7 MiB"},
		{"bytes untouched", 512, Bytes, BaseIEC, "512 B"},
		{"kibibytes truncate", 2047, Kilo, BaseIEC, "1 KiB"},
		{"below one kibibyte", 1023, Kilo, BaseIEC, "0 KiB"},
		{"si kilobyte", 1000, Kilo, BaseSI, "1 kB"},
		{"si kilobytes truncate", 1999, Kilo, BaseSI, "1 kB"},
		{"si megabytes", 2500000, Mega, BaseSI, "2.5 MB"},
		{"si gigabyte", 1000000000, Giga, BaseSI, "1 GB"},
		{"pebibyte label", 1 << 50, Peta, BaseIEC, "1 PiB"},
		{"exbibyte label", 1 << 60, Exa, BaseIEC, "1 EiB"},
		{"tiny in gibibytes", 1024, Giga, BaseIEC, "0 GiB"},
		{"negative mebibytes", -1572864, Mega, BaseIEC, "-1.5 MiB"},
		{"tie rounds down to even", 1310720, Mega, BaseIEC, "1.2 MiB"},
		{"tie rounds up to even", 1835008, Mega, BaseIEC, "1.8 MiB"},
		{"gibibyte tie", 1342177280, Giga, BaseIEC, "1.2 GiB"},
		{"si tie rounds down to even", 1250000, Mega, BaseSI, "1.2 MB"},
		{"si tie rounds up to even", 2750000, Mega, BaseSI, "2.8 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.n, tt.unit, tt.base))
		})
	}
}

func TestFormatSize_ZeroEveryUnit(t *testing.T) {
	for _, base := range []Base{BaseIEC, BaseSI} {
		for u := Bytes; u <= Yotta; u++ {
			assert.Equal(t, "0 "+u.Label(base), FormatSize(0, u, base), "unit %s base %d", u, base)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "0.5", FormatDecimal(0.5, 3))
	assert.Equal(t, "0.667", FormatDecimal(2.0/3.0, 3))
	assert.Equal(t, "-0.25", FormatDecimal(-0.25, 3))
	assert.Equal(t, "0", FormatDecimal(-0.0001, 3))
	assert.Equal(t, "0", FormatDecimal(0, 3))
	assert.Equal(t, "3", FormatDecimal(2.96, 1))
}

func TestFormatDecimal_TiesToEven(t *testing.T) {
	assert.Equal(t, "0.812", FormatDecimal(0.8125, 3))
	assert.Equal(t, "0.938", FormatDecimal(0.9375, 3))
	assert.Equal(t, "0.062", FormatDecimal(0.0625, 3))
	assert.Equal(t, "0.12", FormatDecimal(0.125, 2))
	assert.Equal(t, "0.38", FormatDecimal(0.375, 2))
	assert.Equal(t, "2", FormatDecimal(2.5, 0))
	assert.Equal(t, "-1.2", FormatDecimal(-1.25, 1))
}

func TestRoundDecimal(t *testing.T) {
	assert.Equal(t, 0.812, RoundDecimal(0.8125, 3))
	assert.Equal(t, 0.667, RoundDecimal(2.0/3.0, 3))

	zero := RoundDecimal(-0.0004, 3)
	assert.Equal(t, 0.0, zero)
	assert.False(t, math.Signbit(zero))
}

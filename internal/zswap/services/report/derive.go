package report

import "github.com/haukened/zswapstat/internal/zswap/domain"

// Derived holds the figures computed from the raw counters.
type Derived struct {
	// Compressed is the pool size in bytes.
	Compressed int64
	// Uncompressed is the size the stored pages would occupy uncompressed, in bytes.
	Uncompressed int64
	// Savings is 1 - Compressed/Uncompressed rounded to three decimals.
	// It is negative when compression expanded the data and 0 unless Uncompressed is positive.
	Savings float64
}

// Derive computes the report figures from counters and the system page size.
func Derive(counters domain.Counters, pageSize int64) Derived {
	d := Derived{
		Compressed:   counters.PoolTotalSize,
		Uncompressed: counters.StoredPages * pageSize,
	}
	if d.Uncompressed > 0 {
		ratio := 1 - float64(d.Compressed)/float64(d.Uncompressed)
		d.Savings = domain.RoundDecimal(ratio, 3)
	}
	return d
}

// FormatRatio prints a savings ratio in its shortest form, e.g. "0.5".
func FormatRatio(f float64) string {
	return domain.FormatDecimal(f, 3)
}

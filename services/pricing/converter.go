package pricing

import "math"

// KRWPerUSD is the fixed conversion rate used whenever a catalog entry
// carries no explicit USD amount. Only the KRW price is authoritative.
const KRWPerUSD = 1250

const (
	// Defaults applied when a booking references no package or an
	// unresolvable one: the basic checkup price.
	DefaultPackagePriceKRW = 250000
	DefaultPackagePriceUSD = 200

	AccommodationNightlyKRW = 80000
)

// ConvertKRW returns the USD view of a KRW amount. An explicit non-zero USD
// value takes precedence; otherwise the amount is derived at the fixed rate,
// rounded to the nearest dollar. Zero is treated as absent.
func ConvertKRW(krw int, explicitUSD *int) int {
	if explicitUSD != nil && *explicitUSD != 0 {
		return *explicitUSD
	}
	return int(math.Round(float64(krw) / KRWPerUSD))
}

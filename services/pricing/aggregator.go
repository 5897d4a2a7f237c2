package pricing

import (
	"errors"
	"fmt"

	"tourism-booking/models/catalog"
	"tourism-booking/services/validation"
)

// ErrUnresolvedReference is returned under the strict policy when a booking
// references a catalog item that does not exist. The permissive policy
// degrades to defaults instead.
var ErrUnresolvedReference = errors.New("referenced catalog item does not exist")

// PriceComponents is the committed two-currency total of a booking. Every
// selected component adds in; nothing subtracts.
type PriceComponents struct {
	TotalKRW int `json:"total_krw"`
	TotalUSD int `json:"total_usd"`
}

// ItemStore is the catalog lookup the aggregator consumes. A missing id
// yields (nil, nil): absence is a normal outcome, not an error.
type ItemStore interface {
	FindItem(id string) (*catalog.Item, error)
}

// Aggregator composes booking totals from a base package selection, an
// optional add-on and an accommodation surcharge. It is pure over resolved
// catalog data: identical inputs always produce identical components.
type Aggregator struct {
	Items  ItemStore
	Policy validation.Policy
}

func NewAggregator(items ItemStore, policy validation.Policy) *Aggregator {
	return &Aggregator{Items: items, Policy: policy}
}

// Quote prices a selection. packageID and addonID may be nil or empty;
// an absent or unresolvable package falls back to the default checkup price
// under the permissive policy.
func (a *Aggregator) Quote(packageID, addonID *string, accommodation bool, nights int) (PriceComponents, error) {
	totalKRW := DefaultPackagePriceKRW
	totalUSD := DefaultPackagePriceUSD

	if ref(packageID) {
		item, err := a.Items.FindItem(*packageID)
		if err != nil {
			return PriceComponents{}, fmt.Errorf("lookup package %s: %w", *packageID, err)
		}
		switch {
		case item != nil:
			totalKRW = item.PriceKRW
			totalUSD = ConvertKRW(item.PriceKRW, item.PriceUSD)
		case a.Policy == validation.Strict:
			return PriceComponents{}, fmt.Errorf("%w: %s", ErrUnresolvedReference, *packageID)
		}
	}

	if ref(addonID) {
		item, err := a.Items.FindItem(*addonID)
		if err != nil {
			return PriceComponents{}, fmt.Errorf("lookup addon %s: %w", *addonID, err)
		}
		switch {
		case item != nil:
			totalKRW += item.PriceKRW
			totalUSD += ConvertKRW(item.PriceKRW, item.PriceUSD)
		case a.Policy == validation.Strict:
			return PriceComponents{}, fmt.Errorf("%w: %s", ErrUnresolvedReference, *addonID)
		}
	}

	if accommodation && nights > 0 {
		surcharge := nights * AccommodationNightlyKRW
		totalKRW += surcharge
		totalUSD += ConvertKRW(surcharge, nil)
	}

	return PriceComponents{TotalKRW: totalKRW, TotalUSD: totalUSD}, nil
}

func ref(id *string) bool {
	return id != nil && *id != ""
}

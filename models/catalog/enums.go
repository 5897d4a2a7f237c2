package catalog

// ItemKind distinguishes the three bookable product lines.
type ItemKind string

const (
	KindHealthPackage   ItemKind = "health_package"
	KindWellnessProgram ItemKind = "wellness_program"
	KindTourPackage     ItemKind = "tour_package"
)

func (k ItemKind) IsValid() bool {
	switch k {
	case KindHealthPackage, KindWellnessProgram, KindTourPackage:
		return true
	default:
		return false
	}
}

// ItemStatus is the sales state of a catalog entry. Only on-sale items are
// listed publicly; the booking flow itself does not gate on status.
type ItemStatus string

const (
	ItemStatusOnSale    ItemStatus = "on_sale"
	ItemStatusSuspended ItemStatus = "suspended"
	ItemStatusSoldOut   ItemStatus = "sold_out"
)

func (s ItemStatus) String() string {
	return string(s)
}

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusOnSale, ItemStatusSuspended, ItemStatusSoldOut:
		return true
	default:
		return false
	}
}

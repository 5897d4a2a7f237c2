package validation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tourism-booking/models/restaurant"
)

// Policy controls how unrecognized enumeration values are treated. The
// permissive mode mirrors the operator import flow: unknown values land in a
// fixed fallback bucket instead of rejecting the row.
type Policy int

const (
	Permissive Policy = iota
	Strict
)

// ErrUnknownValue is returned under the strict policy for enumeration values
// outside the recognized set.
var ErrUnknownValue = errors.New("unrecognized enumeration value")

// PolicyFromEnv reads VALIDATION_POLICY. Anything other than "strict"
// selects the permissive default.
func PolicyFromEnv() Policy {
	if strings.EqualFold(os.Getenv("VALIDATION_POLICY"), "strict") {
		return Strict
	}
	return Permissive
}

// ParseCertifiedFlag maps the CSV certification column. Only an exact "Y"
// counts as certified.
func ParseCertifiedFlag(raw string) bool {
	return strings.TrimSpace(raw) == "Y"
}

// ParseListingStatus maps operator status codes onto listing statuses.
// ACTIVE and HOLD are recognized; everything else is bucketed as closed
// under the permissive policy and rejected under the strict one.
func (p Policy) ParseListingStatus(raw string) (restaurant.ListingStatus, error) {
	switch strings.TrimSpace(raw) {
	case "ACTIVE":
		return restaurant.ListingStatusOpen, nil
	case "HOLD":
		return restaurant.ListingStatusPaused, nil
	default:
		if p == Strict {
			return "", fmt.Errorf("%w: listing status %q", ErrUnknownValue, raw)
		}
		return restaurant.ListingStatusClosed, nil
	}
}

package domain

const (
	// DefaultSimilarBand is the symmetric price window around the source listing.
	DefaultSimilarBand = 0.30
	// DefaultSimilarLimit caps the similar-listings result.
	DefaultSimilarLimit = 4
)

// PriceBand returns the inclusive [lo, hi] price window around price.
func PriceBand(price, band float64) (float64, float64) {
	if band < 0 {
		band = -band
	}
	delta := price * band
	return price - delta, price + delta
}

// SimilarTo builds the comparable-listings predicate: same property type and
// city, available, within the price band and never the source itself.
func SimilarTo(l Listing, band float64) Predicate {
	lo, hi := PriceBand(l.Price, band)
	return And(
		Eq(FieldPropertyType, string(l.PropertyType)),
		Eq(FieldCity, l.Location.City),
		Eq(FieldStatus, string(StatusAvailable)),
		Ne(FieldID, l.ID),
		Gte(FieldPrice, lo),
		Lte(FieldPrice, hi),
	)
}

// Restrict narrows a predicate to what the caller is allowed to see.
func Restrict(p Predicate, caller Caller) Predicate {
	visibility := VisibilityFor(caller, "", "")
	if len(visibility) == 0 {
		return p
	}
	return And(append([]Predicate{p}, visibility...)...)
}

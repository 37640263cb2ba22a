package adapters

import (
	listingsdomain "property_catalog_backend/internal/listings/domain"
	statsdomain "property_catalog_backend/internal/stats/domain"
)

// StatsListingFacts converts catalog listings into the facts the in-memory
// statistics source aggregates. Active follows the storage definition:
// approved and switched on.
func StatsListingFacts(listings []listingsdomain.Listing) []statsdomain.ListingFacts {
	out := make([]statsdomain.ListingFacts, 0, len(listings))
	for _, l := range listings {
		out = append(out, statsdomain.ListingFacts{
			PropertyType: string(l.PropertyType),
			City:         l.Location.City,
			Price:        l.Price,
			Views:        l.ViewCount,
			Featured:     l.Featured,
			Active:       l.ApprovalStatus == listingsdomain.ApprovalApproved && l.IsActive,
			CreatedAt:    l.CreatedAt,
		})
	}
	return out
}

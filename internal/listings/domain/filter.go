package domain

import "strings"

// searchFields are the text fields a free-text search is matched against.
var searchFields = []Field{FieldTitle, FieldDescription, FieldAddress, FieldCity, FieldState}

// Build turns criteria into a predicate tree for the given caller. Every read
// path goes through here so visibility cannot drift between endpoints.
func Build(c Criteria, caller Caller) Predicate {
	clauses := VisibilityFor(caller, c.ApprovalStatus, c.Status)

	if search := strings.TrimSpace(c.Search); search != "" {
		alternatives := make([]Predicate, 0, len(searchFields))
		for _, field := range searchFields {
			alternatives = append(alternatives, ContainsFold(field, search))
		}
		clauses = append(clauses, Or(alternatives...))
	}

	if c.PropertyType != "" {
		clauses = append(clauses, Eq(FieldPropertyType, string(c.PropertyType)))
	}
	if c.Category != "" {
		clauses = append(clauses, Eq(FieldCategory, string(c.Category)))
	}
	if c.Intent != "" {
		clauses = append(clauses, Eq(FieldIntent, string(c.Intent)))
	}
	if city := strings.TrimSpace(c.City); city != "" {
		clauses = append(clauses, ContainsFold(FieldCity, city))
	}
	if state := strings.TrimSpace(c.State); state != "" {
		clauses = append(clauses, ContainsFold(FieldState, state))
	}

	if c.MinPrice != nil {
		clauses = append(clauses, Gte(FieldPrice, *c.MinPrice))
	}
	if c.MaxPrice != nil {
		clauses = append(clauses, Lte(FieldPrice, *c.MaxPrice))
	}
	if c.MinArea != nil {
		clauses = append(clauses, Gte(FieldArea, *c.MinArea))
	}
	if c.MaxArea != nil {
		clauses = append(clauses, Lte(FieldArea, *c.MaxArea))
	}

	if c.Bedrooms != nil {
		if c.Bedrooms.AtLeast {
			clauses = append(clauses, Gte(FieldBedrooms, c.Bedrooms.Count))
		} else {
			clauses = append(clauses, Eq(FieldBedrooms, c.Bedrooms.Count))
		}
	}
	if c.Bathrooms != nil {
		clauses = append(clauses, Eq(FieldBathrooms, *c.Bathrooms))
	}
	if c.Featured != nil {
		clauses = append(clauses, Eq(FieldFeatured, *c.Featured))
	}

	return And(clauses...)
}

// PublicVisibility is the clause every anonymous result set is held to.
func PublicVisibility() []Predicate {
	return []Predicate{
		Eq(FieldApprovalStatus, string(ApprovalApproved)),
		Eq(FieldIsActive, true),
		Eq(FieldStatus, string(StatusAvailable)),
	}
}

// VisibilityFor returns the visibility clauses for a caller. Callers without
// the unpublished capability always get the public clause and cannot
// override it. Privileged callers get the requested approval and status
// filters as given, or no constraint when they are omitted.
func VisibilityFor(caller Caller, approval ApprovalStatus, status Status) []Predicate {
	if !caller.CanSeeUnpublished() {
		return PublicVisibility()
	}
	var clauses []Predicate
	if approval != "" {
		clauses = append(clauses, Eq(FieldApprovalStatus, string(approval)))
	}
	if status != "" {
		clauses = append(clauses, Eq(FieldStatus, string(status)))
	}
	return clauses
}

// Featured returns the predicate for the public featured strip.
func Featured() Predicate {
	return And(append(PublicVisibility(), Eq(FieldFeatured, true))...)
}

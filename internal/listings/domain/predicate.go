package domain

// Field names a filterable listing attribute.
type Field string

const (
	FieldID             Field = "id"
	FieldTitle          Field = "title"
	FieldDescription    Field = "description"
	FieldAddress        Field = "address"
	FieldCity           Field = "city"
	FieldState          Field = "state"
	FieldPropertyType   Field = "propertyType"
	FieldCategory       Field = "category"
	FieldIntent         Field = "intent"
	FieldPrice          Field = "price"
	FieldBedrooms       Field = "bedrooms"
	FieldBathrooms      Field = "bathrooms"
	FieldArea           Field = "sqft"
	FieldFeatured       Field = "featured"
	FieldStatus         Field = "status"
	FieldApprovalStatus Field = "approvalStatus"
	FieldIsActive       Field = "isActive"
)

// Op is a predicate operator.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpEq
	OpNe
	OpGte
	OpLte
	OpContainsFold
)

// Predicate is a node of a filter tree. Leaf nodes compare Field with Value,
// OpAnd and OpOr combine Children. An OpAnd without children matches
// everything, an OpOr without children matches nothing.
//
// Value holds a string for text and enum fields, float64 for price and area,
// int for room counts, bool for flags and uuid.UUID for FieldID.
type Predicate struct {
	Op       Op
	Field    Field
	Value    any
	Children []Predicate
}

// And combines predicates with logical AND.
func And(children ...Predicate) Predicate {
	return Predicate{Op: OpAnd, Children: children}
}

// Or combines predicates with logical OR.
func Or(children ...Predicate) Predicate {
	return Predicate{Op: OpOr, Children: children}
}

func Eq(field Field, value any) Predicate  { return Predicate{Op: OpEq, Field: field, Value: value} }
func Ne(field Field, value any) Predicate  { return Predicate{Op: OpNe, Field: field, Value: value} }
func Gte(field Field, value any) Predicate { return Predicate{Op: OpGte, Field: field, Value: value} }
func Lte(field Field, value any) Predicate { return Predicate{Op: OpLte, Field: field, Value: value} }

// ContainsFold matches a case-insensitive substring.
func ContainsFold(field Field, value string) Predicate {
	return Predicate{Op: OpContainsFold, Field: field, Value: value}
}

// IsMatchAll reports whether the predicate places no constraint.
func (p Predicate) IsMatchAll() bool {
	return p.Op == OpAnd && len(p.Children) == 0
}

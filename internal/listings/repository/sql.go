package repository

import (
	"fmt"
	"strings"

	"property_catalog_backend/internal/listings/domain"
)

var filterColumns = map[domain.Field]string{
	domain.FieldID:             "id",
	domain.FieldTitle:          "title",
	domain.FieldDescription:    "description",
	domain.FieldAddress:        "address",
	domain.FieldCity:           "city",
	domain.FieldState:          "state",
	domain.FieldPropertyType:   "property_type",
	domain.FieldCategory:       "category",
	domain.FieldIntent:         "intent",
	domain.FieldPrice:          "price",
	domain.FieldBedrooms:       "bedrooms",
	domain.FieldBathrooms:      "bathrooms",
	domain.FieldArea:           "area_sqft",
	domain.FieldFeatured:       "featured",
	domain.FieldStatus:         "status",
	domain.FieldApprovalStatus: "approval_status",
	domain.FieldIsActive:       "is_active",
}

// argCasts pins the parameter type where the column type would otherwise
// reject a fractional bound.
var argCasts = map[domain.Field]string{
	domain.FieldPrice: "::numeric",
	domain.FieldArea:  "::numeric",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereBuilder compiles a predicate tree into a parameterised SQL condition.
type whereBuilder struct {
	args   []interface{}
	argIdx int
}

func newWhereBuilder(firstArg int) *whereBuilder {
	return &whereBuilder{argIdx: firstArg}
}

func (w *whereBuilder) bind(value interface{}) string {
	w.args = append(w.args, value)
	placeholder := fmt.Sprintf("$%d", w.argIdx)
	w.argIdx++
	return placeholder
}

func (w *whereBuilder) compile(p domain.Predicate) (string, error) {
	switch p.Op {
	case domain.OpAnd, domain.OpOr:
		if len(p.Children) == 0 {
			if p.Op == domain.OpAnd {
				return "TRUE", nil
			}
			return "FALSE", nil
		}
		parts := make([]string, 0, len(p.Children))
		for _, child := range p.Children {
			part, err := w.compile(child)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		joiner := " AND "
		if p.Op == domain.OpOr {
			joiner = " OR "
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, joiner) + ")", nil
	}

	column, ok := filterColumns[p.Field]
	if !ok {
		return "", fmt.Errorf("unsupported filter field %q", p.Field)
	}

	cast := argCasts[p.Field]

	switch p.Op {
	case domain.OpEq:
		return fmt.Sprintf("%s = %s%s", column, w.bind(p.Value), cast), nil
	case domain.OpNe:
		return fmt.Sprintf("%s <> %s%s", column, w.bind(p.Value), cast), nil
	case domain.OpGte:
		return fmt.Sprintf("%s >= %s%s", column, w.bind(p.Value), cast), nil
	case domain.OpLte:
		return fmt.Sprintf("%s <= %s%s", column, w.bind(p.Value), cast), nil
	case domain.OpContainsFold:
		text, _ := p.Value.(string)
		return fmt.Sprintf("%s ILIKE %s", column, w.bind("%"+likeEscaper.Replace(text)+"%")), nil
	default:
		return "", fmt.Errorf("unsupported filter operator %d", p.Op)
	}
}

// compileWhere returns the condition and its arguments, numbering
// placeholders from $1.
func compileWhere(p domain.Predicate) (string, []interface{}, error) {
	w := newWhereBuilder(1)
	clause, err := w.compile(p)
	if err != nil {
		return "", nil, err
	}
	return clause, w.args, nil
}

func sortColumn(sortBy string) string {
	switch sortBy {
	case "price":
		return "price"
	case "sqft":
		return "area_sqft"
	case "updatedAt":
		return "updated_at"
	case "title":
		return "title"
	case "bedrooms":
		return "bedrooms"
	case "views":
		return "view_count"
	default:
		return "created_at"
	}
}

func orderBy(page domain.Page) string {
	direction := "ASC"
	if page.Descending {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s, id ASC", sortColumn(page.SortBy), direction)
}

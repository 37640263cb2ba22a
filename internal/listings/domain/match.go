package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Matches evaluates the predicate against a listing in memory. It is the
// reference semantics the SQL compiler must agree with.
func (p Predicate) Matches(l Listing) bool {
	switch p.Op {
	case OpAnd:
		for _, child := range p.Children {
			if !child.Matches(l) {
				return false
			}
		}
		return true
	case OpOr:
		for _, child := range p.Children {
			if child.Matches(l) {
				return true
			}
		}
		return false
	case OpEq:
		return equalValues(FieldValue(l, p.Field), p.Value)
	case OpNe:
		return !equalValues(FieldValue(l, p.Field), p.Value)
	case OpGte:
		left, lok := toFloat(FieldValue(l, p.Field))
		right, rok := toFloat(p.Value)
		return lok && rok && left >= right
	case OpLte:
		left, lok := toFloat(FieldValue(l, p.Field))
		right, rok := toFloat(p.Value)
		return lok && rok && left <= right
	case OpContainsFold:
		text, ok := FieldValue(l, p.Field).(string)
		needle, nok := p.Value.(string)
		return ok && nok && strings.Contains(strings.ToLower(text), strings.ToLower(needle))
	default:
		return false
	}
}

// FieldValue reads a filterable attribute off a listing.
func FieldValue(l Listing, field Field) any {
	switch field {
	case FieldID:
		return l.ID
	case FieldTitle:
		return l.Title
	case FieldDescription:
		return l.Description
	case FieldAddress:
		return l.Location.Address
	case FieldCity:
		return l.Location.City
	case FieldState:
		return l.Location.State
	case FieldPropertyType:
		return string(l.PropertyType)
	case FieldCategory:
		return string(l.Category)
	case FieldIntent:
		return string(l.Intent)
	case FieldPrice:
		return l.Price
	case FieldBedrooms:
		return l.Bedrooms
	case FieldBathrooms:
		return l.Bathrooms
	case FieldArea:
		return l.AreaSqft
	case FieldFeatured:
		return l.Featured
	case FieldStatus:
		return string(l.Status)
	case FieldApprovalStatus:
		return string(l.ApprovalStatus)
	case FieldIsActive:
		return l.IsActive
	default:
		return nil
	}
}

func equalValues(left, right any) bool {
	if lf, ok := toFloat(left); ok {
		rf, rok := toFloat(right)
		return rok && lf == rf
	}
	switch lv := left.(type) {
	case uuid.UUID:
		rv, ok := right.(uuid.UUID)
		return ok && lv == rv
	default:
		return left == right
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	default:
		return 0, false
	}
}

package domain

import (
	"math"
	"strconv"
	"strings"
)

// BedroomsAtLeastToken is the literal that turns the bedroom filter into a
// lower bound.
const BedroomsAtLeastToken = "4+"

// RoomFilter constrains a room count. AtLeast switches exact match to >=.
type RoomFilter struct {
	Count   int
	AtLeast bool
}

// Criteria is the typed set of optional catalog filters. Nil pointers and
// empty strings mean "no constraint on that dimension".
type Criteria struct {
	Search         string
	PropertyType   PropertyType
	Category       Category
	Intent         Intent
	City           string
	State          string
	MinPrice       *float64
	MaxPrice       *float64
	Bedrooms       *RoomFilter
	Bathrooms      *int
	MinArea        *float64
	MaxArea        *float64
	Featured       *bool
	Status         Status
	ApprovalStatus ApprovalStatus
}

// ParseBedrooms reads the bedroom filter. "4+" yields an at-least filter,
// a plain integer an exact one. Anything else is absent.
func ParseBedrooms(raw string) *RoomFilter {
	raw = strings.TrimSpace(raw)
	if raw == BedroomsAtLeastToken {
		return &RoomFilter{Count: 4, AtLeast: true}
	}
	n := ParseOptionalInt(raw)
	if n == nil {
		return nil
	}
	return &RoomFilter{Count: *n}
}

// ParseOptionalInt returns nil for empty or malformed input.
func ParseOptionalInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// ParseOptionalFloat returns nil for empty, malformed or non-finite input.
func ParseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseOptionalBool accepts true/false and 1/0. Anything else is absent.
func ParseOptionalBool(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	default:
		return nil
	}
}

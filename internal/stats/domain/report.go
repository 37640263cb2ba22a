// Package domain holds the catalog statistics model and the pure rollups
// used when the data is already in memory.
package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Scope selects which listings feed the listing rollups.
type Scope string

const (
	// ScopeActive covers approved, active listings.
	ScopeActive Scope = "active"
	// ScopeAll covers every listing, including inactive and unapproved ones.
	ScopeAll Scope = "all"
)

// ParseScope returns ScopeAll only for the literal "all", ignoring case.
func ParseScope(value string) Scope {
	if strings.EqualFold(strings.TrimSpace(value), string(ScopeAll)) {
		return ScopeAll
	}
	return ScopeActive
}

// NormalizeDays parses a lookback window. Missing, malformed and
// non-positive values fall back to def; values above limit are clamped.
func NormalizeDays(raw string, def, limit int) int {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || days < 1 {
		days = def
	}
	if limit > 0 && days > limit {
		days = limit
	}
	return days
}

// WindowStart returns the start of a lookback of days ending at now.
func WindowStart(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

// ListingCounts is the listing part of the overview.
type ListingCounts struct {
	Total       int
	Active      int
	Featured    int
	NewInWindow int
}

// Counts is the overview shape for users and contacts.
type Counts struct {
	Total       int
	NewInWindow int
}

// Overview holds headline counts per collaborator.
type Overview struct {
	Listings ListingCounts
	Users    Counts
	Contacts Counts
}

// PriceRollup summarises listing prices and accumulated views.
type PriceRollup struct {
	Count      int
	Sum        float64
	Average    float64
	Min        float64
	Max        float64
	TotalViews int64
}

// Group is one bucket of a grouped rollup.
type Group struct {
	Key          string
	Count        int
	AveragePrice float64
}

// MonthBucket counts creations in one calendar month.
type MonthBucket struct {
	Year  int
	Month int
	Count int
}

// TimeSeries holds the monthly creation series per collaborator.
type TimeSeries struct {
	Users    []MonthBucket
	Listings []MonthBucket
	Contacts []MonthBucket
}

// Report is the full statistics payload.
type Report struct {
	Days        int
	Scope       Scope
	Since       time.Time
	GeneratedAt time.Time
	Overview    Overview
	Prices      PriceRollup
	ByType      []Group
	ByCity      []Group
	Series      TimeSeries
}

// Round2 rounds to two decimals. NaN and infinities become zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

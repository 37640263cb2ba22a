// Package transport holds the statistics request and response payloads.
package transport

import (
	"time"

	"property_catalog_backend/internal/stats/domain"
)

// StatsQuery carries the raw query string. Values are parsed leniently.
type StatsQuery struct {
	Days  string `form:"days"`
	Scope string `form:"scope"`
}

type ListingCountsResponse struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Featured    int `json:"featured"`
	NewInWindow int `json:"newInWindow"`
}

type CountsResponse struct {
	Total       int `json:"total"`
	NewInWindow int `json:"newInWindow"`
}

type OverviewResponse struct {
	Listings ListingCountsResponse `json:"listings"`
	Users    CountsResponse        `json:"users"`
	Contacts CountsResponse        `json:"contacts"`
}

type PriceRollupResponse struct {
	Count      int     `json:"count"`
	Sum        float64 `json:"sum"`
	Average    float64 `json:"average"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	TotalViews int64   `json:"totalViews"`
}

type GroupResponse struct {
	Key          string  `json:"key"`
	Count        int     `json:"count"`
	AveragePrice float64 `json:"averagePrice"`
}

type MonthBucketResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

type TimeSeriesResponse struct {
	Users    []MonthBucketResponse `json:"users"`
	Listings []MonthBucketResponse `json:"listings"`
	Contacts []MonthBucketResponse `json:"contacts"`
}

// StatsResponse is the full statistics payload.
type StatsResponse struct {
	Days        int                 `json:"days"`
	Scope       string              `json:"scope"`
	Since       string              `json:"since"`
	GeneratedAt string              `json:"generatedAt"`
	Overview    OverviewResponse    `json:"overview"`
	PriceRollup PriceRollupResponse `json:"priceRollup"`
	ByType      []GroupResponse     `json:"byType"`
	ByCity      []GroupResponse     `json:"byCity"`
	TimeSeries  TimeSeriesResponse  `json:"timeSeries"`
}

// ToStatsResponse maps a report to its wire shape.
func ToStatsResponse(r domain.Report) StatsResponse {
	return StatsResponse{
		Days:        r.Days,
		Scope:       string(r.Scope),
		Since:       r.Since.UTC().Format(time.RFC3339),
		GeneratedAt: r.GeneratedAt.UTC().Format(time.RFC3339),
		Overview: OverviewResponse{
			Listings: ListingCountsResponse(r.Overview.Listings),
			Users:    CountsResponse(r.Overview.Users),
			Contacts: CountsResponse(r.Overview.Contacts),
		},
		PriceRollup: PriceRollupResponse(r.Prices),
		ByType:      toGroups(r.ByType),
		ByCity:      toGroups(r.ByCity),
		TimeSeries: TimeSeriesResponse{
			Users:    toBuckets(r.Series.Users),
			Listings: toBuckets(r.Series.Listings),
			Contacts: toBuckets(r.Series.Contacts),
		},
	}
}

func toGroups(groups []domain.Group) []GroupResponse {
	out := make([]GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupResponse(g))
	}
	return out
}

func toBuckets(buckets []domain.MonthBucket) []MonthBucketResponse {
	out := make([]MonthBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MonthBucketResponse(b))
	}
	return out
}

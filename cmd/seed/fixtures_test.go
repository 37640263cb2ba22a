package main

import (
	"context"
	"os"
	"strings"
	"testing"

	"property_catalog_backend/internal/listings/domain"
	"property_catalog_backend/platform/logger"
)

func TestDecodeFixtures(t *testing.T) {
	f, err := os.Open("testdata/listings.yaml")
	if err != nil {
		t.Fatalf("open fixtures: %v", err)
	}
	defer f.Close()

	listings, err := decodeFixtures(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(listings))
	}

	first := listings[0]
	if first.PropertyType != domain.PropertyHouse {
		t.Fatalf("expected case-insensitive property type, got %q", first.PropertyType)
	}
	if first.Location.City != "Austin" || first.Location.PostalCode != "78704" {
		t.Fatalf("unexpected location %+v", first.Location)
	}
	if len(first.Images) != 1 || first.Images[0].Caption != "Front" {
		t.Fatalf("unexpected images %+v", first.Images)
	}
	if !first.IsActive || first.Category != domain.CategoryResidential {
		t.Fatalf("expected defaults to apply, got active=%v category=%q", first.IsActive, first.Category)
	}

	retail := listings[2]
	if retail.IsActive || retail.Status != domain.StatusUnderContract {
		t.Fatalf("expected explicit status and isActive, got %+v", retail)
	}
}

func TestDecodeFixturesReportsEveryBadEntry(t *testing.T) {
	input := `
listings:
  - title: ""
    propertyType: House
    sqft: 10
  - title: Castle
    propertyType: Castle
    sqft: 10
`
	_, err := decodeFixtures(strings.NewReader(input))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "listing 1") || !strings.Contains(err.Error(), "listing 2") {
		t.Fatalf("expected both entries to be reported, got %v", err)
	}
}

func TestDecodeFixturesRejectsUnknownFields(t *testing.T) {
	_, err := decodeFixtures(strings.NewReader("listings:\n  - title: A\n    colour: red\n"))
	if err == nil {
		t.Fatalf("expected unknown field to fail")
	}
}

func TestSummariseDryRun(t *testing.T) {
	f, err := os.Open("testdata/listings.yaml")
	if err != nil {
		t.Fatalf("open fixtures: %v", err)
	}
	defer f.Close()
	listings, err := decodeFixtures(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := summarise(context.Background(), listings, logger.Discard()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

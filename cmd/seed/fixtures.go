package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"property_catalog_backend/internal/listings/domain"
)

type fixtureFile struct {
	Listings []fixture `yaml:"listings"`
}

type fixture struct {
	Title        string          `yaml:"title"`
	Description  string          `yaml:"description"`
	Price        float64         `yaml:"price"`
	PropertyType string          `yaml:"propertyType"`
	Category     string          `yaml:"category"`
	Intent       string          `yaml:"intent"`
	Bedrooms     int             `yaml:"bedrooms"`
	Bathrooms    int             `yaml:"bathrooms"`
	Sqft         int             `yaml:"sqft"`
	YearBuilt    *int            `yaml:"yearBuilt"`
	Location     domain.Location `yaml:"location"`
	Images       []domain.Media  `yaml:"images"`
	Documents    []domain.Media  `yaml:"documents"`
	Status       string          `yaml:"status"`
	Featured     bool            `yaml:"featured"`
	IsActive     *bool           `yaml:"isActive"`
}

// decodeFixtures parses a fixture file. Every entry is checked so that one
// bad entry fails the whole import before anything is written.
func decodeFixtures(r io.Reader) ([]domain.Listing, error) {
	var file fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	out := make([]domain.Listing, 0, len(file.Listings))
	var problems []string
	for i, f := range file.Listings {
		l, err := f.toListing()
		if err != nil {
			problems = append(problems, fmt.Sprintf("listing %d (%q): %v", i+1, f.Title, err))
			continue
		}
		out = append(out, l)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid fixtures:\n  %s", strings.Join(problems, "\n  "))
	}
	return out, nil
}

func (f fixture) toListing() (domain.Listing, error) {
	if strings.TrimSpace(f.Title) == "" {
		return domain.Listing{}, fmt.Errorf("title is required")
	}
	if f.Price < 0 {
		return domain.Listing{}, fmt.Errorf("price must not be negative")
	}
	if f.Sqft < 1 {
		return domain.Listing{}, fmt.Errorf("sqft must be at least 1")
	}

	propertyType := domain.ParsePropertyType(f.PropertyType)
	if propertyType == "" {
		return domain.Listing{}, fmt.Errorf("unknown property type %q", f.PropertyType)
	}
	category := domain.ParseCategory(f.Category)
	if category == "" {
		category = domain.CategoryResidential
	}
	intent := domain.ParseIntent(f.Intent)
	if intent == "" {
		intent = domain.IntentBuy
	}

	var status domain.Status
	if f.Status != "" {
		if status = domain.ParseStatus(f.Status); status == "" {
			return domain.Listing{}, fmt.Errorf("unknown status %q", f.Status)
		}
	}

	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}

	return domain.Listing{
		Title:        strings.TrimSpace(f.Title),
		Description:  f.Description,
		Price:        f.Price,
		PropertyType: propertyType,
		Category:     category,
		Intent:       intent,
		Bedrooms:     f.Bedrooms,
		Bathrooms:    f.Bathrooms,
		AreaSqft:     f.Sqft,
		YearBuilt:    f.YearBuilt,
		Location:     f.Location,
		Images:       f.Images,
		Documents:    f.Documents,
		Status:       status,
		IsActive:     active,
		Featured:     f.Featured,
	}, nil
}

package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuildPriceRangeIsInclusive(t *testing.T) {
	var listings []Listing
	for _, price := range []float64{100, 200, 300, 400, 500} {
		listings = append(listings, publicListing(price))
	}

	got := filter(listings, Build(Criteria{MinPrice: floatPtr(150), MaxPrice: floatPtr(450)}, Anonymous()))
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	for _, l := range got {
		if l.Price < 150 || l.Price > 450 {
			t.Fatalf("expected price within [150,450], got %v", l.Price)
		}
	}

	edges := filter(listings, Build(Criteria{MinPrice: floatPtr(200), MaxPrice: floatPtr(400)}, Anonymous()))
	if len(edges) != 3 {
		t.Fatalf("expected bounds to be inclusive, got %d matches", len(edges))
	}
}

func TestBuildSingleBounds(t *testing.T) {
	listings := []Listing{publicListing(100), publicListing(900)}

	if got := filter(listings, Build(Criteria{MinPrice: floatPtr(500)}, Anonymous())); len(got) != 1 || got[0].Price != 900 {
		t.Fatalf("expected only the 900 listing, got %+v", got)
	}
	if got := filter(listings, Build(Criteria{MaxPrice: floatPtr(500)}, Anonymous())); len(got) != 1 || got[0].Price != 100 {
		t.Fatalf("expected only the 100 listing, got %+v", got)
	}

	small := publicListing(100)
	small.AreaSqft = 700
	listings = append(listings, small)
	if got := filter(listings, Build(Criteria{MaxArea: floatPtr(800)}, Anonymous())); len(got) != 1 {
		t.Fatalf("expected one small listing, got %d", len(got))
	}
}

func TestAnonymousVisibilityCannotBeOverridden(t *testing.T) {
	visible := publicListing(100)

	pending := publicListing(100)
	pending.ApprovalStatus = ApprovalPending

	inactive := publicListing(100)
	inactive.IsActive = false

	sold := publicListing(100)
	sold.Status = StatusSold

	listings := []Listing{visible, pending, inactive, sold}

	attempts := []Criteria{
		{},
		{ApprovalStatus: ApprovalPending},
		{Status: StatusSold},
		{ApprovalStatus: ApprovalRejected, Status: StatusOffMarket},
	}
	callers := []Caller{Anonymous(), {Role: RoleAdmin}, {UserID: uuid.New(), Role: RoleUser}}

	for _, caller := range callers {
		for _, criteria := range attempts {
			got := filter(listings, Build(criteria, caller))
			for _, l := range got {
				if !l.IsPubliclyVisible() {
					t.Fatalf("caller %+v with %+v received hidden listing %+v", caller, criteria, l)
				}
			}
		}
	}
}

func TestPrivilegedCallerSeesAllStatusesUnlessFiltered(t *testing.T) {
	visible := publicListing(100)
	pending := publicListing(100)
	pending.ApprovalStatus = ApprovalPending
	sold := publicListing(100)
	sold.Status = StatusSold
	listings := []Listing{visible, pending, sold}

	for _, caller := range []Caller{agentCaller(), adminCaller()} {
		if got := filter(listings, Build(Criteria{}, caller)); len(got) != 3 {
			t.Fatalf("expected all 3 listings for %s, got %d", caller.Role, len(got))
		}
		got := filter(listings, Build(Criteria{ApprovalStatus: ApprovalPending}, caller))
		if len(got) != 1 || got[0].ID != pending.ID {
			t.Fatalf("expected only the pending listing, got %+v", got)
		}
		got = filter(listings, Build(Criteria{Status: StatusSold}, caller))
		if len(got) != 1 || got[0].ID != sold.ID {
			t.Fatalf("expected only the sold listing, got %+v", got)
		}
	}
}

func TestBuildSearchMatchesAnyTextField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Listing)
		search string
	}{
		{"title", func(l *Listing) { l.Title = "Sunset Villa" }, "sunset"},
		{"description", func(l *Listing) { l.Description = "Has a POOL" }, "pool"},
		{"address", func(l *Listing) { l.Location.Address = "9 Harbor Road" }, "HARBOR"},
		{"city", func(l *Listing) { l.Location.City = "San Diego" }, "diego"},
		{"state", func(l *Listing) { l.Location.State = "California" }, "fornia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := publicListing(100)
			tt.mutate(&l)
			if !Build(Criteria{Search: tt.search}, Anonymous()).Matches(l) {
				t.Fatalf("expected search %q to match on %s", tt.search, tt.name)
			}
		})
	}

	if Build(Criteria{Search: "penthouse"}, Anonymous()).Matches(publicListing(100)) {
		t.Fatal("expected unrelated search to miss")
	}
}

func TestBuildCityAndStateAreSubstringFold(t *testing.T) {
	l := publicListing(100)
	if !Build(Criteria{City: "aus", State: "tx"}, Anonymous()).Matches(l) {
		t.Fatal("expected case-insensitive substring match on city and state")
	}
	if Build(Criteria{City: "Dallas"}, Anonymous()).Matches(l) {
		t.Fatal("expected other city to miss")
	}
}

func TestBuildPropertyTypeIsExact(t *testing.T) {
	l := publicListing(100)
	if !Build(Criteria{PropertyType: PropertyHouse}, Anonymous()).Matches(l) {
		t.Fatal("expected house to match")
	}
	if Build(Criteria{PropertyType: PropertyCondo}, Anonymous()).Matches(l) {
		t.Fatal("expected condo to miss")
	}
}

func TestBedroomsAtLeast(t *testing.T) {
	var listings []Listing
	for beds := 2; beds <= 6; beds++ {
		l := publicListing(100)
		l.Bedrooms = beds
		listings = append(listings, l)
	}

	got := filter(listings, Build(Criteria{Bedrooms: ParseBedrooms("4+")}, Anonymous()))
	if len(got) != 3 {
		t.Fatalf("expected bedrooms 4,5,6, got %d listings", len(got))
	}
	for _, l := range got {
		if l.Bedrooms < 4 {
			t.Fatalf("expected no listing below 4 bedrooms, got %d", l.Bedrooms)
		}
	}

	exact := filter(listings, Build(Criteria{Bedrooms: ParseBedrooms("3")}, Anonymous()))
	if len(exact) != 1 || exact[0].Bedrooms != 3 {
		t.Fatalf("expected exactly one 3-bedroom listing, got %+v", exact)
	}
}

func TestBuildBathroomsAndFeatured(t *testing.T) {
	l := publicListing(100)
	l.Featured = true

	if !Build(Criteria{Bathrooms: intPtr(2), Featured: boolPtr(true)}, Anonymous()).Matches(l) {
		t.Fatal("expected bathrooms and featured to match")
	}
	if Build(Criteria{Bathrooms: intPtr(3)}, Anonymous()).Matches(l) {
		t.Fatal("expected bathroom count mismatch to miss")
	}
	if Build(Criteria{Featured: boolPtr(false)}, Anonymous()).Matches(l) {
		t.Fatal("expected featured=false to miss a featured listing")
	}
}

func TestEmptyCriteriaForPrivilegedCallerMatchesAll(t *testing.T) {
	if !Build(Criteria{}, adminCaller()).IsMatchAll() {
		t.Fatal("expected admin with no criteria to produce a match-all predicate")
	}
	if Build(Criteria{}, Anonymous()).IsMatchAll() {
		t.Fatal("expected anonymous predicate to carry the visibility clause")
	}
}

func TestCallerCapabilities(t *testing.T) {
	owner := uuid.New()
	l := publicListing(100)
	l.AgentID = &owner

	if !(Caller{UserID: owner, Role: RoleAgent}).CanManage(l) {
		t.Fatal("expected owning agent to manage listing")
	}
	if agentCaller().CanManage(l) {
		t.Fatal("expected foreign agent to be refused")
	}
	if !adminCaller().CanManage(l) {
		t.Fatal("expected admin to manage any listing")
	}
	if (Caller{UserID: uuid.New(), Role: RoleUser}).CanSeeUnpublished() {
		t.Fatal("expected plain user to lack unpublished visibility")
	}
	if (Caller{Role: RoleAgent}).CanSeeUnpublished() {
		t.Fatal("expected role without user id to be treated as anonymous")
	}
}

package itinerary

import (
	"reflect"
	"testing"
	"time"
)

func goaRequest() TripRequest {
	return TripRequest{
		Destination: "Goa",
		Duration:    "3 days 2 nights",
		Travelers:   2,
		OriginCity:  "Mumbai",
		Budget: Budget{
			Total: 50000,
			Breakdown: BudgetSplit{
				Accommodation:  40,
				Transportation: 20,
				Food:           20,
				Activities:     15,
				Shopping:       5,
			},
		},
	}
}

func TestNormalizeNilParsedProducesCompleteItinerary(t *testing.T) {
	req := goaRequest()
	it := normalize(nil, req)

	if it.ID == "" {
		t.Error("ID must be assigned")
	}
	if it.Title != "Trip to Goa" {
		t.Errorf("Title = %q, want %q", it.Title, "Trip to Goa")
	}
	if it.TotalCost != 50000 {
		t.Errorf("TotalCost = %v, want 50000", it.TotalCost)
	}
	if it.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", it.Currency, DefaultCurrency)
	}
	if it.Days == nil || len(it.Days) != 0 {
		t.Errorf("Days = %v, want empty non-nil slice", it.Days)
	}
	if it.PackingList == nil {
		t.Error("PackingList must be non-nil")
	}
	if it.Recommendations.Restaurants == nil || it.Recommendations.HiddenGems == nil {
		t.Error("Recommendations slices must be non-nil")
	}
	if it.Images.Destination == nil || it.Images.Activities == nil {
		t.Error("Images slices must be non-nil")
	}
	if it.Emergency.Hospitals == nil {
		t.Error("Emergency.Hospitals must be non-nil")
	}
	if it.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}

	// Goa scenario: accommodation fallback is 40% of 50000.
	if got := it.BudgetBreakdown.Accommodation.Budgeted; got != 20000 {
		t.Errorf("Accommodation.Budgeted = %v, want 20000", got)
	}
	if got := it.BudgetBreakdown.Miscellaneous.Budgeted; got != 2500 {
		t.Errorf("Miscellaneous.Budgeted = %v, want 2500 (5%% of total)", got)
	}
}

func TestNormalizeBudgetFallbackFormula(t *testing.T) {
	req := goaRequest()
	req.Budget.Total = 100000
	req.Budget.Breakdown.Accommodation = 30

	bb := normalizeBudget(nil, req)
	if bb.Total != 100000 {
		t.Errorf("Total = %v, want 100000", bb.Total)
	}
	acc := bb.Accommodation
	if acc.Budgeted != 30000 || acc.Estimated != 30000 {
		t.Errorf("Accommodation = %+v, want Budgeted=Estimated=30000", acc)
	}
	if acc.Percentage != 30 {
		t.Errorf("Percentage = %v, want 30", acc.Percentage)
	}
	if acc.Items == nil || len(acc.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", acc.Items)
	}
}

func TestNormalizeBudgetKeepsParsedCategories(t *testing.T) {
	req := goaRequest()
	total := 60000.0
	parsed := &parsedBudgetBreakdown{
		Total: &total,
		Food: &BudgetCategory{
			Budgeted:  9000,
			Estimated: 8400,
			Items:     []BudgetItem{{Name: "Beach shack dinner", Cost: 1200, Day: 1}},
		},
	}

	bb := normalizeBudget(parsed, req)
	if bb.Total != 60000 {
		t.Errorf("Total = %v, want the parsed total 60000", bb.Total)
	}
	if bb.Food.Budgeted != 9000 || bb.Food.Estimated != 8400 {
		t.Errorf("Food = %+v, want the parsed values kept", bb.Food)
	}
	if len(bb.Food.Items) != 1 {
		t.Errorf("Food.Items = %v, want the single parsed item", bb.Food.Items)
	}
	// Missing categories fall back against the PARSED total.
	if got := bb.Accommodation.Budgeted; got != 24000 {
		t.Errorf("Accommodation.Budgeted = %v, want 24000 (40%% of 60000)", got)
	}
}

func TestNormalizeCoalescesPartialReply(t *testing.T) {
	req := goaRequest()
	title := "Goa Beach Escape"
	cost := 47500.0
	currency := "EUR"
	parsed := &parsedItinerary{
		Title:     &title,
		TotalCost: &cost,
		Currency:  &currency,
		Days: []Day{
			{Day: 1, Theme: "Arrival and North Goa beaches"},
			{Day: 2, Theme: "Old Goa heritage"},
		},
	}

	it := normalize(parsed, req)
	if it.Title != title {
		t.Errorf("Title = %q, want %q", it.Title, title)
	}
	if it.TotalCost != cost {
		t.Errorf("TotalCost = %v, want %v", it.TotalCost, cost)
	}
	if it.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", it.Currency)
	}
	if len(it.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(it.Days))
	}
	// Fields the reply omitted still come out populated.
	if it.PackingList == nil || it.Recommendations.Restaurants == nil {
		t.Error("omitted fields must still default to non-nil values")
	}
}

func TestNormalizeDefaultingIsIdempotent(t *testing.T) {
	req := goaRequest()

	a := normalize(nil, req)
	b := normalize(nil, req)

	// Identity fields differ per run by design.
	a.ID, b.ID = "", ""
	a.CreatedAt, b.CreatedAt = time.Time{}, time.Time{}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("two default-shaped runs differ:\n%+v\n%+v", a, b)
	}
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5 days 4 nights", 5},
		{"1 day", 1},
		{"10 Days", 10},
		{"weekend getaway", 1},
		{"", 1},
	}
	for _, tc := range cases {
		if got := durationDays(tc.in); got != tc.want {
			t.Errorf("durationDays(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

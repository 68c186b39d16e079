// README: Shape normalizer — the pipeline's guaranteed recovery boundary.
package itinerary

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// miscPercent is the fixed share reserved for the miscellaneous category when
// the model omits a usable breakdown. It is computed from the total alone, not
// from a caller-supplied percentage.
const miscPercent = 5.0

// normalize merges the (possibly nil or partial) parsed model reply with
// computed defaults into a complete GeneratedItinerary. It is total: any
// input, including parsed == nil, yields a fully-populated result.
func normalize(parsed *parsedItinerary, req TripRequest) GeneratedItinerary {
	it := GeneratedItinerary{
		ID:          uuid.NewString(),
		Title:       fmt.Sprintf("Trip to %s", req.Destination),
		TotalCost:   req.Budget.Total,
		Currency:    DefaultCurrency,
		Days:        []Day{},
		PackingList: []string{},
		Weather:     []WeatherInfo{},
		CreatedAt:   time.Now().UTC(),
	}
	it.Recommendations = Recommendations{
		Restaurants: []string{},
		Experiences: []string{},
		Shopping:    []string{},
		HiddenGems:  []string{},
	}
	it.Images = ImageSet{Destination: []string{}, Activities: []string{}}
	it.LocalInsights = LocalInsights{
		Customs:       []string{},
		Phrases:       []string{},
		TransportTips: []string{},
		SafetyTips:    []string{},
	}
	it.Emergency = EmergencyInfo{Hospitals: []string{}}

	// Field-by-field coalescing, not a blanket replace.
	if parsed != nil {
		if parsed.Title != nil {
			it.Title = *parsed.Title
		}
		if parsed.Description != nil {
			it.Description = *parsed.Description
		}
		if parsed.Overview != nil {
			it.Overview = *parsed.Overview
		}
		if parsed.TotalCost != nil {
			it.TotalCost = *parsed.TotalCost
		}
		if parsed.Currency != nil {
			it.Currency = *parsed.Currency
		}
		if parsed.Days != nil {
			it.Days = parsed.Days
		}
		if parsed.Recommendations != nil {
			it.Recommendations = *parsed.Recommendations
		}
		if parsed.Images != nil {
			it.Images = *parsed.Images
		}
		if parsed.LocalInsights != nil {
			it.LocalInsights = *parsed.LocalInsights
		}
		if parsed.Emergency != nil {
			it.Emergency = *parsed.Emergency
		}
		if parsed.PackingList != nil {
			it.PackingList = parsed.PackingList
		}
		if parsed.Weather != nil {
			it.Weather = parsed.Weather
		}
	}

	var pb *parsedBudgetBreakdown
	if parsed != nil {
		pb = parsed.BudgetBreakdown
	}
	it.BudgetBreakdown = normalizeBudget(pb, req)

	return it
}

// normalizeBudget coalesces each category separately. Missing categories are
// synthesized as (total * percentage) / 100; miscellaneous always uses the
// fixed miscPercent share of the total.
func normalizeBudget(pb *parsedBudgetBreakdown, req TripRequest) BudgetBreakdown {
	total := req.Budget.Total
	if pb != nil && pb.Total != nil {
		total = *pb.Total
	}

	split := req.Budget.Breakdown
	bb := BudgetBreakdown{Total: total}
	bb.Accommodation = coalesceCategory(categoryOf(pb, func(p *parsedBudgetBreakdown) *BudgetCategory { return p.Accommodation }), total, split.Accommodation)
	bb.Transportation = coalesceCategory(categoryOf(pb, func(p *parsedBudgetBreakdown) *BudgetCategory { return p.Transportation }), total, split.Transportation)
	bb.Food = coalesceCategory(categoryOf(pb, func(p *parsedBudgetBreakdown) *BudgetCategory { return p.Food }), total, split.Food)
	bb.Activities = coalesceCategory(categoryOf(pb, func(p *parsedBudgetBreakdown) *BudgetCategory { return p.Activities }), total, split.Activities)
	bb.Shopping = coalesceCategory(categoryOf(pb, func(p *parsedBudgetBreakdown) *BudgetCategory { return p.Shopping }), total, split.Shopping)
	bb.Miscellaneous = coalesceCategory(categoryOf(pb, func(p *parsedBudgetBreakdown) *BudgetCategory { return p.Miscellaneous }), total, miscPercent)
	return bb
}

func categoryOf(pb *parsedBudgetBreakdown, pick func(*parsedBudgetBreakdown) *BudgetCategory) *BudgetCategory {
	if pb == nil {
		return nil
	}
	return pick(pb)
}

func coalesceCategory(c *BudgetCategory, total, percentage float64) BudgetCategory {
	if c != nil {
		out := *c
		if out.Items == nil {
			out.Items = []BudgetItem{}
		}
		return out
	}
	amount := total * percentage / 100
	return BudgetCategory{
		Budgeted:   amount,
		Estimated:  amount,
		Items:      []BudgetItem{},
		Percentage: percentage,
	}
}

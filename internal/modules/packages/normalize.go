// README: Package normalizer — total, mirrors the itinerary recovery boundary.
package packages

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"venueplus/internal/modules/pricing"
	"venueplus/internal/types"
)

// normalize merges the (possibly nil or partial) parsed model reply with
// computed defaults. When the model omits a price the pricing service quotes
// one from the trip budget and travel style.
func normalize(parsed *parsedPackage, req PackageRequest, pricer *pricing.Service) TravelPackage {
	pkg := TravelPackage{
		ID:           uuid.NewString(),
		Name:         fmt.Sprintf("%s %s", req.Destination, req.Theme),
		Theme:        req.Theme,
		Currency:     pricing.DefaultCurrency,
		DurationDays: req.DurationDays,
		Highlights:   []string{},
		Inclusions:   []string{},
		Exclusions:   []string{},
		Outline:      []OutlineDay{},
		CreatedAt:    time.Now().UTC(),
	}

	quote := pricer.Quote(req.BudgetTotal, req.TravelStyle)
	pkg.Price = float64(quote.Amount)

	if parsed != nil {
		if parsed.Name != nil {
			pkg.Name = *parsed.Name
		}
		if parsed.Tagline != nil {
			pkg.Tagline = *parsed.Tagline
		}
		if parsed.Description != nil {
			pkg.Description = *parsed.Description
		}
		if parsed.Price != nil {
			pkg.Price = *parsed.Price
		}
		if parsed.Currency != nil {
			pkg.Currency = *parsed.Currency
		}
		if parsed.Highlights != nil {
			pkg.Highlights = parsed.Highlights
		}
		if parsed.Inclusions != nil {
			pkg.Inclusions = parsed.Inclusions
		}
		if parsed.Exclusions != nil {
			pkg.Exclusions = parsed.Exclusions
		}
		if parsed.Outline != nil {
			pkg.Outline = parsed.Outline
		}
	}

	per := pricer.PerTraveler(moneyOf(pkg.Price, pkg.Currency), req.Travelers)
	pkg.PricePerHead = float64(per.Amount)

	return pkg
}

func moneyOf(amount float64, currency string) types.Money {
	return types.Money{Amount: int64(math.Round(amount)), Currency: currency}
}

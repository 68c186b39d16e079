// README: Pricing service computes package price quotes.
package pricing

import (
	"math"

	"venueplus/internal/types"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Quote computes a fallback package price from the trip budget when the
// generation model omits one: budget total scaled by the travel-style tier,
// plus the packaging margin, rounded to whole currency units. Unknown styles
// fall back to the balanced tier.
func (s *Service) Quote(budgetTotal float64, style string) types.Money {
	tier, ok := tiers[style]
	if !ok {
		tier = tiers["balanced"]
	}

	base := budgetTotal * tier.Multiplier
	total := base * (1 + marginPercent/100)
	return types.Money{
		Amount:   int64(math.Round(total)),
		Currency: DefaultCurrency,
	}
}

// PerTraveler splits a quoted price evenly, rounding up so the sum never
// undercuts the quote.
func (s *Service) PerTraveler(quote types.Money, travelers int) types.Money {
	if travelers < 1 {
		travelers = 1
	}
	per := math.Ceil(float64(quote.Amount) / float64(travelers))
	return types.Money{Amount: int64(per), Currency: quote.Currency}
}

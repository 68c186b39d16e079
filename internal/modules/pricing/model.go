// README: Package pricing tiers per travel style.
package pricing

// Tier scales a per-trip base price for a travel style.
type Tier struct {
	Style      string
	Multiplier float64
}

// Style multipliers relative to the balanced baseline. The packaging margin
// is applied on top of the scaled base.
var tiers = map[string]Tier{
	"budget":   {Style: "budget", Multiplier: 0.85},
	"balanced": {Style: "balanced", Multiplier: 1.0},
	"luxury":   {Style: "luxury", Multiplier: 1.6},
}

// marginPercent is the packaging margin added to every quote.
const marginPercent = 10.0

// DefaultCurrency for quoted package prices.
const DefaultCurrency = "INR"

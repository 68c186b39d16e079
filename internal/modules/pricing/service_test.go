package pricing

import "testing"

func TestQuoteTiers(t *testing.T) {
	svc := NewService()
	cases := []struct {
		name   string
		total  float64
		style  string
		want   int64
	}{
		{"balanced", 50000, "balanced", 55000},  // 50000 * 1.0 * 1.10
		{"budget", 50000, "budget", 46750},      // 50000 * 0.85 * 1.10
		{"luxury", 50000, "luxury", 88000},      // 50000 * 1.6 * 1.10
		{"unknown style falls back", 50000, "opulent", 55000},
		{"zero budget", 0, "balanced", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.Quote(tc.total, tc.style)
			if got.Amount != tc.want {
				t.Errorf("Quote(%v, %q).Amount = %d, want %d", tc.total, tc.style, got.Amount, tc.want)
			}
			if got.Currency != DefaultCurrency {
				t.Errorf("Currency = %q, want %q", got.Currency, DefaultCurrency)
			}
		})
	}
}

func TestPerTravelerRoundsUp(t *testing.T) {
	svc := NewService()
	quote := svc.Quote(50000, "balanced") // 55000

	per := svc.PerTraveler(quote, 3)
	if per.Amount != 18334 { // ceil(55000/3)
		t.Errorf("PerTraveler = %d, want 18334", per.Amount)
	}
	if per.Amount*3 < quote.Amount {
		t.Error("per-head sum must never undercut the quote")
	}
}

func TestPerTravelerGuardsZeroTravelers(t *testing.T) {
	svc := NewService()
	quote := svc.Quote(10000, "balanced")

	per := svc.PerTraveler(quote, 0)
	if per.Amount != quote.Amount {
		t.Errorf("PerTraveler with 0 travelers = %d, want the full quote %d", per.Amount, quote.Amount)
	}
}

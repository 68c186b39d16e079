// README: Prompt construction for itinerary generation (pure string interpolation).
package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var leadingDaysRe = regexp.MustCompile(`(\d+)\s*[Dd]ays?`)

// durationDays extracts the day count from a duration like "5 days 4 nights".
// Falls back to 1 when no day count is present.
func durationDays(duration string) int {
	m := leadingDaysRe.FindStringSubmatch(duration)
	if len(m) < 2 {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// buildPrompt assembles the generation prompt for a trip request.
// Deterministic for identical input: plain interpolation, no randomness.
func buildPrompt(req TripRequest) string {
	cities := strings.Join(req.Cities, ", ")
	if cities == "" {
		cities = req.Destination
	}

	startDate := "flexible"
	if !req.StartDate.IsZero() {
		startDate = req.StartDate.Format("2006-01-02")
	}

	var prefs strings.Builder
	if p := req.Preferences; p != nil {
		if len(p.Interests) > 0 {
			fmt.Fprintf(&prefs, "- Interests: %s\n", strings.Join(p.Interests, ", "))
		}
		if p.TravelStyle != "" {
			fmt.Fprintf(&prefs, "- Travel style: %s\n", p.TravelStyle)
		}
		if p.Accommodation != "" {
			fmt.Fprintf(&prefs, "- Preferred accommodation: %s\n", p.Accommodation)
		}
		if p.Transport != "" {
			fmt.Fprintf(&prefs, "- Preferred transport: %s\n", p.Transport)
		}
	}
	if prefs.Len() == 0 {
		prefs.WriteString("- None specified\n")
	}

	return fmt.Sprintf(`Role: You are an expert travel planner for "VenuePlus", a travel booking platform.

Plan a complete trip with the following constraints:
- Destination: %s
- Cities to cover: %s
- Duration: %s (%d days)
- Start date: %s
- Travelers: %d
- Origin city: %s
- Total budget: %.0f (stay within it)
- Budget split (%% of total): accommodation %.0f, transportation %.0f, food %.0f, activities %.0f, shopping %.0f

Traveler preferences:
%s
RULES:
1. Respect the total budget and the requested split. Per-day estimated costs must be realistic for the destination.
2. Produce exactly one entry in "days" per trip day, numbered from 1, each with a calendar date starting at the start date.
3. Every activity, meal and accommodation needs a name, a short description and a cost.
4. Reply with ONE JSON object only, matching the schema below. No prose before or after it.

Output JSON Schema:
{
  "title": "string",
  "description": "string",
  "overview": "string",
  "totalCost": number,
  "currency": "string (ISO code)",
  "days": [{
    "day": number,
    "date": "YYYY-MM-DD",
    "city": "string",
    "theme": "string",
    "weather": "string",
    "activities": [{"name": "string", "description": "string", "location": {"name": "string", "address": "string", "lat": number, "lng": number}, "cost": number, "duration": "string", "bookingUrl": "string"}],
    "meals": [{"name": "string", "cuisine": "string", "location": {"name": "string", "address": "string", "lat": number, "lng": number}, "cost": number, "description": "string"}],
    "transport": [{"mode": "string", "from": "string", "to": "string", "cost": number, "provider": "string", "departure": "string", "arrival": "string"}],
    "accommodation": {"name": "string", "location": {"name": "string", "address": "string", "lat": number, "lng": number}, "costPerNight": number, "rating": number, "bookingUrl": "string"},
    "estimatedCost": number,
    "tips": ["string"],
    "culturalNotes": ["string"]
  }],
  "budgetBreakdown": {
    "total": number,
    "accommodation": {"budgeted": number, "estimated": number, "items": [{"name": "string", "cost": number, "day": number}], "percentage": number},
    "transportation": {"budgeted": number, "estimated": number, "items": [], "percentage": number},
    "food": {"budgeted": number, "estimated": number, "items": [], "percentage": number},
    "activities": {"budgeted": number, "estimated": number, "items": [], "percentage": number},
    "shopping": {"budgeted": number, "estimated": number, "items": [], "percentage": number},
    "miscellaneous": {"budgeted": number, "estimated": number, "items": [], "percentage": number}
  },
  "recommendations": {"restaurants": ["string"], "experiences": ["string"], "shopping": ["string"], "hiddenGems": ["string"]},
  "localInsights": {"customs": ["string"], "phrases": ["string"], "transportTips": ["string"], "safetyTips": ["string"], "bestTimeToVisit": "string"},
  "emergencyInfo": {"police": "string", "ambulance": "string", "touristHelpline": "string", "embassy": "string", "hospitals": ["string"]},
  "packingList": ["string"],
  "weatherInfo": [{"day": number, "date": "YYYY-MM-DD", "summary": "string", "highC": number, "lowC": number}]
}
`,
		req.Destination,
		cities,
		req.Duration,
		durationDays(req.Duration),
		startDate,
		req.Travelers,
		req.OriginCity,
		req.Budget.Total,
		req.Budget.Breakdown.Accommodation,
		req.Budget.Breakdown.Transportation,
		req.Budget.Breakdown.Food,
		req.Budget.Breakdown.Activities,
		req.Budget.Breakdown.Shopping,
		prefs.String(),
	)
}

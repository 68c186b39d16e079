// README: Prompt construction for package generation.
package packages

import "fmt"

// buildPrompt assembles the generation prompt for a themed package.
// Deterministic for identical input.
func buildPrompt(req PackageRequest) string {
	style := req.TravelStyle
	if style == "" {
		style = "balanced"
	}

	return fmt.Sprintf(`Role: You are a travel product designer for "VenuePlus", a travel booking platform.

Design a sellable travel package:
- Destination: %s
- Theme: %s
- Duration: %d days
- Travelers: %d
- Trip budget: %.0f
- Travel style: %s

RULES:
1. The package name should be short and marketable; the tagline one sentence.
2. Price the package within the trip budget for the whole party.
3. "outline" must have exactly one entry per day, numbered from 1.
4. Reply with ONE JSON object only, matching the schema below. No prose before or after it.

Output JSON Schema:
{
  "name": "string",
  "tagline": "string",
  "description": "string",
  "price": number,
  "currency": "string (ISO code)",
  "highlights": ["string"],
  "inclusions": ["string"],
  "exclusions": ["string"],
  "outline": [{"day": number, "title": "string", "summary": "string"}]
}
`,
		req.Destination,
		req.Theme,
		req.DurationDays,
		req.Travelers,
		req.BudgetTotal,
		style,
	)
}

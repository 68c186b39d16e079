// README: Destination analysis with a bounded in-memory memoization cache.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"venueplus/internal/ai"
)

// DefaultAnalyzerCapacity bounds the destination cache. Entries for the same
// destination are interchangeable, so last-writer-wins under concurrent
// misses is fine.
const DefaultAnalyzerCapacity = 256

// DestinationAnalyzer produces LocalInsights for a destination via the
// generation model and memoizes results by destination name. A cache hit
// never re-invokes the generator.
type DestinationAnalyzer struct {
	gen      ai.TextGenerator
	capacity int

	mu    sync.Mutex
	cache map[string]LocalInsights
	order []string // insertion order, oldest first
}

func NewDestinationAnalyzer(gen ai.TextGenerator, capacity int) *DestinationAnalyzer {
	if capacity <= 0 {
		capacity = DefaultAnalyzerCapacity
	}
	return &DestinationAnalyzer{
		gen:      gen,
		capacity: capacity,
		cache:    make(map[string]LocalInsights),
	}
}

// Analyze returns cultural insights for destination, from cache when possible.
func (a *DestinationAnalyzer) Analyze(ctx context.Context, destination string) (LocalInsights, error) {
	key := strings.ToLower(strings.TrimSpace(destination))
	if key == "" {
		return LocalInsights{}, fmt.Errorf("empty destination")
	}

	a.mu.Lock()
	if ins, ok := a.cache[key]; ok {
		a.mu.Unlock()
		return ins, nil
	}
	a.mu.Unlock()

	raw, err := a.gen.Generate(ctx, buildInsightsPrompt(destination))
	if err != nil {
		return LocalInsights{}, fmt.Errorf("destination analysis: %w", err)
	}

	span, ok := ai.ExtractJSON(raw)
	if !ok {
		return LocalInsights{}, fmt.Errorf("destination analysis: no JSON in reply")
	}
	var ins LocalInsights
	if err := json.Unmarshal([]byte(span), &ins); err != nil {
		return LocalInsights{}, fmt.Errorf("destination analysis: parse reply: %w", err)
	}

	a.mu.Lock()
	if _, exists := a.cache[key]; !exists {
		if len(a.order) >= a.capacity {
			oldest := a.order[0]
			a.order = a.order[1:]
			delete(a.cache, oldest)
		}
		a.order = append(a.order, key)
	}
	a.cache[key] = ins
	a.mu.Unlock()

	return ins, nil
}

func buildInsightsPrompt(destination string) string {
	return fmt.Sprintf(`Role: You are a local culture expert for "VenuePlus", a travel booking platform.

Describe practical local knowledge for travelers visiting %s.

Reply with ONE JSON object only, no prose:
{
  "customs": ["string"],
  "phrases": ["string (local phrase with meaning)"],
  "transportTips": ["string"],
  "safetyTips": ["string"],
  "bestTimeToVisit": "string"
}
`, destination)
}

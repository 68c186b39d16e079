package ai

import (
	"context"
	"encoding/json"
	"log"
)

// Pipeline is the generic prompt -> generate -> parse -> normalize flow shared
// by the itinerary and package generators. Parsed is the schema of the model's
// JSON reply with every field optional; Normalize must be total — it receives
// nil when the reply held no parseable JSON and still has to produce a complete
// Out from the request alone.
type Pipeline[Req any, Parsed any, Out any] struct {
	Generator TextGenerator
	Prompt    func(Req) string
	Normalize func(parsed *Parsed, req Req) Out
}

// Run executes one generation request. Transport and quota errors from the
// generator propagate; malformed model output does not.
func (p *Pipeline[Req, Parsed, Out]) Run(ctx context.Context, req Req) (Out, error) {
	var zero Out
	raw, err := p.Generator.Generate(ctx, p.Prompt(req))
	if err != nil {
		return zero, err
	}
	return p.Normalize(p.decode(raw), req), nil
}

func (p *Pipeline[Req, Parsed, Out]) decode(raw string) *Parsed {
	span, ok := ExtractJSON(raw)
	if !ok {
		log.Printf("ai: model reply contained no JSON object, falling back to defaults")
		return nil
	}
	var parsed Parsed
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		log.Printf("ai: model reply JSON did not parse, falling back to defaults: %v", err)
		return nil
	}
	return &parsed
}

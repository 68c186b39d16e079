// README: Itinerary service — runs the generation pipeline and enhancement stages.
package itinerary

import (
	"context"
	"log"
	"strings"

	"venueplus/internal/ai"
)

// Service orchestrates prompt building, generation, normalization, the
// enhancement stages, and persistence of the result.
type Service struct {
	pipeline ai.Pipeline[TripRequest, parsedItinerary, GeneratedItinerary]
	stages   []Stage
	store    *Store
}

// NewService wires the pipeline. photos and analyzer may be nil; the
// corresponding stages then leave the itinerary unchanged.
func NewService(gen ai.TextGenerator, store *Store, photos PhotoFinder, analyzer *DestinationAnalyzer) *Service {
	return &Service{
		pipeline: ai.Pipeline[TripRequest, parsedItinerary, GeneratedItinerary]{
			Generator: gen,
			Prompt:    buildPrompt,
			Normalize: normalize,
		},
		stages: []Stage{
			imageStage(photos),
			insightsStage(analyzer),
			weatherStage(),
		},
		store: store,
	}
}

// Generate runs one full pipeline pass for req. Transport and quota errors
// propagate; malformed model output yields a valid default-shaped itinerary.
func (s *Service) Generate(ctx context.Context, req TripRequest) (*GeneratedItinerary, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, ErrBadRequest
	}

	it, err := s.pipeline.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	for _, stage := range s.stages {
		it = stage(ctx, it, req)
	}

	// The itinerary is the caller's result either way; a failed save must not
	// discard a successful generation.
	if s.store != nil {
		if err := s.store.Save(ctx, &it); err != nil {
			log.Printf("itinerary: save %s failed: %v", it.ID, err)
		}
	}

	return &it, nil
}

// Get fetches a stored itinerary by ID.
func (s *Service) Get(ctx context.Context, id string) (*GeneratedItinerary, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

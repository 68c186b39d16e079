// README: Package service — second instantiation of the generation pipeline.
package packages

import (
	"context"
	"log"
	"strings"

	"venueplus/internal/ai"
	"venueplus/internal/modules/pricing"
)

type Service struct {
	pipeline ai.Pipeline[PackageRequest, parsedPackage, TravelPackage]
	store    *Store
}

func NewService(gen ai.TextGenerator, store *Store, pricer *pricing.Service) *Service {
	return &Service{
		pipeline: ai.Pipeline[PackageRequest, parsedPackage, TravelPackage]{
			Generator: gen,
			Prompt:    buildPrompt,
			Normalize: func(parsed *parsedPackage, req PackageRequest) TravelPackage {
				return normalize(parsed, req, pricer)
			},
		},
		store: store,
	}
}

// Generate produces one themed package. Same failure contract as the
// itinerary pipeline: transport/quota errors propagate, malformed model
// output falls back to defaults.
func (s *Service) Generate(ctx context.Context, req PackageRequest) (*TravelPackage, error) {
	if strings.TrimSpace(req.Destination) == "" || strings.TrimSpace(req.Theme) == "" {
		return nil, ErrBadRequest
	}
	if req.DurationDays < 1 {
		req.DurationDays = 1
	}

	pkg, err := s.pipeline.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.Save(ctx, &pkg); err != nil {
			log.Printf("packages: save %s failed: %v", pkg.ID, err)
		}
	}

	return &pkg, nil
}

// Get fetches a stored package by ID.
func (s *Service) Get(ctx context.Context, id string) (*TravelPackage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

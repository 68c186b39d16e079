// README: Best-effort enhancement stages decorating a normalized itinerary.
package itinerary

import (
	"context"
	"log"
)

// Stage decorates an already-valid itinerary with one additional concern.
// Stages are order-insensitive and must never fail the core result: on any
// internal error a stage returns its input unchanged.
type Stage func(ctx context.Context, it GeneratedItinerary, req TripRequest) GeneratedItinerary

// PhotoFinder supplies destination photo URLs for the image stage.
type PhotoFinder interface {
	DestinationPhotos(ctx context.Context, destination string, limit int) ([]string, error)
}

// imageStage attaches destination photos when the model supplied none.
func imageStage(photos PhotoFinder) Stage {
	return func(ctx context.Context, it GeneratedItinerary, req TripRequest) GeneratedItinerary {
		if photos == nil || len(it.Images.Destination) > 0 {
			return it
		}
		urls, err := photos.DestinationPhotos(ctx, req.Destination, 6)
		if err != nil {
			log.Printf("itinerary: image stage skipped: %v", err)
			return it
		}
		if len(urls) == 0 {
			return it
		}
		it.Images.Destination = urls
		return it
	}
}

// insightsStage fills LocalInsights from the destination analyzer when the
// model left them empty.
func insightsStage(analyzer *DestinationAnalyzer) Stage {
	return func(ctx context.Context, it GeneratedItinerary, req TripRequest) GeneratedItinerary {
		if analyzer == nil || len(it.LocalInsights.Customs) > 0 || it.LocalInsights.BestTimeToVisit != "" {
			return it
		}
		ins, err := analyzer.Analyze(ctx, req.Destination)
		if err != nil {
			log.Printf("itinerary: insights stage skipped: %v", err)
			return it
		}
		it.LocalInsights = ins
		return it
	}
}

// weatherStage guarantees one WeatherInfo entry per requested trip day,
// filling real-time placeholders for days the model did not cover.
func weatherStage() Stage {
	return func(ctx context.Context, it GeneratedItinerary, req TripRequest) GeneratedItinerary {
		days := durationDays(req.Duration)
		if len(it.Weather) >= days {
			return it
		}
		covered := make(map[int]bool, len(it.Weather))
		for _, w := range it.Weather {
			covered[w.Day] = true
		}
		for d := 1; d <= days; d++ {
			if covered[d] {
				continue
			}
			entry := WeatherInfo{Day: d, Summary: "Forecast not yet available"}
			if !req.StartDate.IsZero() {
				entry.Date = req.StartDate.AddDate(0, 0, d-1).Format("2006-01-02")
			}
			it.Weather = append(it.Weather, entry)
		}
		return it
	}
}

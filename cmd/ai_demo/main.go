package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"venueplus/internal/ai"
	"venueplus/internal/modules/itinerary"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey, ai.GenerationConfig{
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
		TopP:        0.95,
		TopK:        40,
	})
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	generator := ai.NewRetryingGenerator(provider)
	svc := itinerary.NewService(generator, nil, nil, itinerary.NewDestinationAnalyzer(generator, 0))

	req := itinerary.TripRequest{
		Destination: "Goa",
		Duration:    "5 days 4 nights",
		StartDate:   time.Now().AddDate(0, 1, 0),
		Travelers:   2,
		OriginCity:  "Mumbai",
		Budget: itinerary.Budget{
			Total: 50000,
			Breakdown: itinerary.BudgetSplit{
				Accommodation:  40,
				Transportation: 20,
				Food:           20,
				Activities:     15,
				Shopping:       5,
			},
		},
	}

	fmt.Printf("Generating itinerary for %s (%s)...\n", req.Destination, req.Duration)

	it, err := svc.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Error generating itinerary: %v", err)
	}

	out, _ := json.MarshalIndent(it, "", "  ")
	fmt.Println(string(out))
}

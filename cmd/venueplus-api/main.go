// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"venueplus/internal/ai"
	"venueplus/internal/config"
	httptransport "venueplus/internal/http"
	"venueplus/internal/infra"
	"venueplus/internal/modules/booking"
	"venueplus/internal/modules/itinerary"
	"venueplus/internal/modules/packages"
	"venueplus/internal/modules/pricing"
	"venueplus/internal/modules/quota"
	"venueplus/internal/places"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, ai.GenerationConfig{
		Model:           cfg.AI.Model,
		Temperature:     cfg.AI.Temperature,
		TopP:            cfg.AI.TopP,
		TopK:            cfg.AI.TopK,
		MaxOutputTokens: cfg.AI.MaxOutputTokens,
	})
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	generator := ai.NewRetryingGenerator(provider)

	var photoFinder itinerary.PhotoFinder
	if cfg.Maps.APIKey != "" {
		placesSvc, err := places.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
		photoFinder = placesSvc
	} else {
		log.Printf("MAPS_API_KEY not set; itinerary image enhancement disabled")
	}

	analyzer := itinerary.NewDestinationAnalyzer(generator, itinerary.DefaultAnalyzerCapacity)

	itineraryStore := itinerary.NewStore(dbPool, redisClient)
	itinerarySvc := itinerary.NewService(generator, itineraryStore, photoFinder, analyzer)

	pricingSvc := pricing.NewService()
	packageStore := packages.NewStore(dbPool)
	packageSvc := packages.NewService(generator, packageStore, pricingSvc)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore)

	quotaSvc := quota.NewService(quota.NewStore(dbPool))

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Itinerary: itinerarySvc,
		Packages:  packageSvc,
		Booking:   bookingSvc,
		Quota:     quotaSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

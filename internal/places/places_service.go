// README: Google Places lookups feeding the image enhancement stage.
package places

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// maxPhotoWidth is the width requested from the Places photo endpoint.
const maxPhotoWidth = 1200

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
	apiKey string
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client, apiKey: apiKey}, nil
}

// DestinationPhotos searches for tourist attractions around destination and
// returns up to limit photo URLs. Results without photos are skipped.
func (s *PlacesService) DestinationPhotos(ctx context.Context, destination string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 6
	}

	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("tourist attractions in %s", destination),
		Type:     "tourist_attraction",
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var urls []string
	for _, result := range resp.Results {
		if len(result.Photos) == 0 {
			continue
		}
		urls = append(urls, s.photoURL(result.Photos[0].PhotoReference))
		if len(urls) >= limit {
			break
		}
	}

	return urls, nil
}

// photoURL builds a fetchable URL for a Places photo reference.
func (s *PlacesService) photoURL(ref string) string {
	return fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/photo?maxwidth=%d&photo_reference=%s&key=%s",
		maxPhotoWidth, ref, s.apiKey,
	)
}

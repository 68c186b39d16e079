// README: Travel package model — themed, priced bundles for the marketplace.
package packages

import (
	"errors"
	"time"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("package not found")
)

// PackageRequest is the input to one package generation run.
type PackageRequest struct {
	Destination  string  `json:"destination"`
	Theme        string  `json:"theme"` // e.g. "Cultural Explorer", "Beach Escape"
	DurationDays int     `json:"durationDays"`
	Travelers    int     `json:"travelers"`
	BudgetTotal  float64 `json:"budgetTotal"`
	TravelStyle  string  `json:"travelStyle"` // budget | balanced | luxury
}

// TravelPackage is a themed, priced bundling of an itinerary outline.
type TravelPackage struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Theme        string       `json:"theme"`
	Tagline      string       `json:"tagline"`
	Description  string       `json:"description"`
	Price        float64      `json:"price"`
	PricePerHead float64      `json:"pricePerHead"`
	Currency     string       `json:"currency"`
	DurationDays int          `json:"durationDays"`
	Highlights   []string     `json:"highlights"`
	Inclusions   []string     `json:"inclusions"`
	Exclusions   []string     `json:"exclusions"`
	Outline      []OutlineDay `json:"outline"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// OutlineDay is a one-line day summary, not a full itinerary day.
type OutlineDay struct {
	Day     int    `json:"day"` // 1-based
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// parsedPackage mirrors TravelPackage with every field optional; the
// normalizer coalesces it against computed defaults.
type parsedPackage struct {
	Name        *string      `json:"name"`
	Tagline     *string      `json:"tagline"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"`
	Currency    *string      `json:"currency"`
	Highlights  []string     `json:"highlights"`
	Inclusions  []string     `json:"inclusions"`
	Exclusions  []string     `json:"exclusions"`
	Outline     []OutlineDay `json:"outline"`
}

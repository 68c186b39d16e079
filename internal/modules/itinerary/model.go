// README: Trip request input and generated itinerary aggregate.
package itinerary

import (
	"errors"
	"time"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("itinerary not found")
)

// DefaultCurrency is used whenever the model reply omits one.
const DefaultCurrency = "INR"

type TravelStyle string

const (
	StyleBudget   TravelStyle = "budget"
	StyleBalanced TravelStyle = "balanced"
	StyleLuxury   TravelStyle = "luxury"
)

// BudgetSplit holds caller-supplied category percentages. They are NOT
// validated to sum to 100; the normalizer tolerates whatever it gets.
type BudgetSplit struct {
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Shopping       float64 `json:"shopping"`
}

type Budget struct {
	Total     float64     `json:"total"`
	Breakdown BudgetSplit `json:"breakdown"`
}

type Preferences struct {
	Interests     []string    `json:"interests"`
	TravelStyle   TravelStyle `json:"travelStyle"`
	Accommodation string      `json:"accommodation"`
	Transport     string      `json:"transport"`
}

// TripRequest is the input to one generation run.
type TripRequest struct {
	Destination string       `json:"destination"`
	Duration    string       `json:"duration"` // e.g. "5 days 4 nights"
	StartDate   time.Time    `json:"startDate"`
	Travelers   int          `json:"travelers"`
	OriginCity  string       `json:"originCity"`
	Cities      []string     `json:"cities"`
	Budget      Budget       `json:"budget"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// GeneratedItinerary is the fully-populated pipeline output. Every field is
// guaranteed present after normalization, whatever the model returned.
type GeneratedItinerary struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Overview        string          `json:"overview"`
	TotalCost       float64         `json:"totalCost"`
	Currency        string          `json:"currency"`
	Days            []Day           `json:"days"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
	Recommendations Recommendations `json:"recommendations"`
	Images          ImageSet        `json:"images"`
	LocalInsights   LocalInsights   `json:"localInsights"`
	Emergency       EmergencyInfo   `json:"emergencyInfo"`
	PackingList     []string        `json:"packingList"`
	Weather         []WeatherInfo   `json:"weatherInfo"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Day is exclusively owned by its parent itinerary.
type Day struct {
	Day           int           `json:"day"` // 1-based
	Date          string        `json:"date"`
	City          string        `json:"city"`
	Theme         string        `json:"theme"`
	Weather       string        `json:"weather"`
	Activities    []Activity    `json:"activities"`
	Meals         []Meal        `json:"meals"`
	Transport     []Transport   `json:"transport"`
	Accommodation Accommodation `json:"accommodation"`
	EstimatedCost float64       `json:"estimatedCost"`
	Tips          []string      `json:"tips"`
	CulturalNotes []string      `json:"culturalNotes"`
}

type Location struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Activity struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Cost        float64  `json:"cost"`
	Duration    string   `json:"duration"`
	BookingURL  string   `json:"bookingUrl"`
}

type Meal struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Location    Location `json:"location"`
	Cost        float64  `json:"cost"`
	Description string   `json:"description"`
}

type Transport struct {
	Mode      string  `json:"mode"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Cost      float64 `json:"cost"`
	Provider  string  `json:"provider"`
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
}

type Accommodation struct {
	Name         string   `json:"name"`
	Location     Location `json:"location"`
	CostPerNight float64  `json:"costPerNight"`
	Rating       float64  `json:"rating"`
	BookingURL   string   `json:"bookingUrl"`
}

type BudgetItem struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
	Day  int     `json:"day"`
}

type BudgetCategory struct {
	Budgeted   float64      `json:"budgeted"`
	Estimated  float64      `json:"estimated"`
	Items      []BudgetItem `json:"items"`
	Percentage float64      `json:"percentage"`
}

// BudgetBreakdown has six fixed categories. When the model omits usable
// numbers each category falls back to (total * percentage) / 100.
type BudgetBreakdown struct {
	Total          float64        `json:"total"`
	Accommodation  BudgetCategory `json:"accommodation"`
	Transportation BudgetCategory `json:"transportation"`
	Food           BudgetCategory `json:"food"`
	Activities     BudgetCategory `json:"activities"`
	Shopping       BudgetCategory `json:"shopping"`
	Miscellaneous  BudgetCategory `json:"miscellaneous"`
}

type Recommendations struct {
	Restaurants []string `json:"restaurants"`
	Experiences []string `json:"experiences"`
	Shopping    []string `json:"shopping"`
	HiddenGems  []string `json:"hiddenGems"`
}

type ImageSet struct {
	Destination []string `json:"destination"`
	Activities  []string `json:"activities"`
}

type LocalInsights struct {
	Customs         []string `json:"customs"`
	Phrases         []string `json:"phrases"`
	TransportTips   []string `json:"transportTips"`
	SafetyTips      []string `json:"safetyTips"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
}

type EmergencyInfo struct {
	Police          string   `json:"police"`
	Ambulance       string   `json:"ambulance"`
	TouristHelpline string   `json:"touristHelpline"`
	Embassy         string   `json:"embassy"`
	Hospitals       []string `json:"hospitals"`
}

type WeatherInfo struct {
	Day     int     `json:"day"`
	Date    string  `json:"date"`
	Summary string  `json:"summary"`
	HighC   float64 `json:"highC"`
	LowC    float64 `json:"lowC"`
}

// parsedItinerary is the schema of the model's JSON reply. Every field is
// optional so the normalizer's coalescing is explicit and exhaustive.
type parsedItinerary struct {
	Title           *string                `json:"title"`
	Description     *string                `json:"description"`
	Overview        *string                `json:"overview"`
	TotalCost       *float64               `json:"totalCost"`
	Currency        *string                `json:"currency"`
	Days            []Day                  `json:"days"`
	BudgetBreakdown *parsedBudgetBreakdown `json:"budgetBreakdown"`
	Recommendations *Recommendations       `json:"recommendations"`
	Images          *ImageSet              `json:"images"`
	LocalInsights   *LocalInsights         `json:"localInsights"`
	Emergency       *EmergencyInfo         `json:"emergencyInfo"`
	PackingList     []string               `json:"packingList"`
	Weather         []WeatherInfo          `json:"weatherInfo"`
}

type parsedBudgetBreakdown struct {
	Total          *float64        `json:"total"`
	Accommodation  *BudgetCategory `json:"accommodation"`
	Transportation *BudgetCategory `json:"transportation"`
	Food           *BudgetCategory `json:"food"`
	Activities     *BudgetCategory `json:"activities"`
	Shopping       *BudgetCategory `json:"shopping"`
	Miscellaneous  *BudgetCategory `json:"miscellaneous"`
}

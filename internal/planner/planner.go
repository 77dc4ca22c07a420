package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Divya-010704/TripTeller/internal/models"
)

// PlanRequest defines the request body for the trip planner.
type PlanRequest struct {
	StartLocation string `json:"start_location" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	Days          int    `json:"days" validate:"required,min=1"`
	Budget        int    `json:"budget" validate:"required,min=0"`
	Travelers     int    `json:"travelers"`
}

// Attraction is a point of interest at the destination.
type Attraction struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RouteOption is one way of getting to the destination.
type RouteOption struct {
	Mode     string `json:"mode"`
	Duration string `json:"duration"`
	Distance string `json:"distance"`
	Cost     int    `json:"cost"`
}

// StayOption is an accommodation tier.
type StayOption struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	CostPerNight int    `json:"cost_per_night"`
}

// FoodOption is a dining tier with an average per-meal cost.
type FoodOption struct {
	Type    string   `json:"type"`
	AvgMeal int      `json:"avg_meal"`
	MustTry []string `json:"must_try"`
}

// Weather is the current forecast snapshot for the destination.
type Weather struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
}

// BudgetBreakdown itemizes the estimated trip cost.
type BudgetBreakdown struct {
	Travel     int `json:"travel"`
	Stay       int `json:"stay"`
	Food       int `json:"food"`
	Activities int `json:"activities"`
	Misc       int `json:"misc"`
	Total      int `json:"total"`
}

// Plan is the assembled trip plan.
type Plan struct {
	Attractions     []Attraction    `json:"attractions"`
	Routes          []RouteOption   `json:"routes"`
	Stay            []StayOption    `json:"stay"`
	Food            []FoodOption    `json:"food"`
	Weather         Weather         `json:"weather"`
	BudgetBreakdown BudgetBreakdown `json:"budget_breakdown"`
	Suggestion      string          `json:"suggestion"`
	StartLocation   string          `json:"start_location"`
	Destination     string          `json:"destination"`
	Days            int             `json:"days"`
	Travelers       int             `json:"travelers"`
	Budget          int             `json:"budget"`
}

// WeatherProvider supplies current conditions for a city. Aggregating the
// upstream weather API is a collaborator's job.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*Weather, error)
}

// PlacesProvider supplies attractions for a city.
type PlacesProvider interface {
	Attractions(ctx context.Context, city string) ([]Attraction, error)
}

// Service assembles trip plans. Collaborators are optional: when one is nil
// or unreachable the service answers from its built-in sample data so the
// planner never blocks a response on an upstream.
type Service struct {
	weather WeatherProvider
	places  PlacesProvider
}

// NewService creates a new planner Service
func NewService(weather WeatherProvider, places PlacesProvider) *Service {
	return &Service{weather: weather, places: places}
}

// defaultCities maps state names to the default city used for lookups when
// a whole state is given as the destination.
var defaultCities = map[string]string{
	"kerala":            "Kochi",
	"tamil nadu":        "Chennai",
	"karnataka":         "Bengaluru",
	"maharashtra":       "Mumbai",
	"rajasthan":         "Jaipur",
	"uttar pradesh":     "Lucknow",
	"telangana":         "Hyderabad",
	"andhra pradesh":    "Vijayawada",
	"gujarat":           "Ahmedabad",
	"punjab":            "Amritsar",
	"west bengal":       "Kolkata",
	"madhya pradesh":    "Bhopal",
	"odisha":            "Bhubaneswar",
	"bihar":             "Patna",
	"assam":             "Guwahati",
	"goa":               "Panaji",
	"haryana":           "Gurgaon",
	"chhattisgarh":      "Raipur",
	"jharkhand":         "Ranchi",
	"uttarakhand":       "Dehradun",
	"himachal pradesh":  "Shimla",
	"tripura":           "Agartala",
	"manipur":           "Imphal",
	"meghalaya":         "Shillong",
	"mizoram":           "Aizawl",
	"nagaland":          "Kohima",
	"sikkim":            "Gangtok",
	"arunachal pradesh": "Itanagar",
}

var sampleAttractions = []Attraction{
	{Name: "Baga Beach", Type: "Beach", Description: "Popular beach for water sports and nightlife."},
	{Name: "Dudhsagar Falls", Type: "Waterfall", Description: "Scenic four-tiered waterfall."},
	{Name: "Aguada Fort", Type: "Fort", Description: "Historic fort with sea views."},
	{Name: "Casino Cruise", Type: "Entertainment", Description: "Floating casino experience."},
}

var sampleRoutes = []RouteOption{
	{Mode: "Bus", Duration: "12h", Distance: "600 km", Cost: 1200},
	{Mode: "Train", Duration: "10h", Distance: "600 km", Cost: 1500},
	{Mode: "Cab", Duration: "9h", Distance: "600 km", Cost: 7000},
	{Mode: "Flight", Duration: "2h", Distance: "600 km", Cost: 4000},
}

var sampleStay = []StayOption{
	{Type: "Budget", Name: "Goa Hostel", CostPerNight: 600},
	{Type: "Standard", Name: "Goa Comfort Hotel", CostPerNight: 2000},
	{Type: "Luxury", Name: "Goa Beach Resort", CostPerNight: 8000},
}

var sampleFood = []FoodOption{
	{Type: "Budget", AvgMeal: 200, MustTry: []string{"Goan Fish Curry", "Prawn Balchao"}},
	{Type: "Mid-range", AvgMeal: 500, MustTry: []string{"Chicken Cafreal", "Bebinca"}},
	{Type: "Premium", AvgMeal: 1500, MustTry: []string{"Seafood Platter", "Feni"}},
}

var sampleWeather = Weather{
	Temperature: "29°C",
	Condition:   "Humid, Chance of rain showers",
	Humidity:    "80%",
}

// CityFor resolves a destination to a lookup city, mapping known state names
// to their default city.
func CityFor(destination string) string {
	if city, ok := defaultCities[strings.ToLower(strings.TrimSpace(destination))]; ok {
		return city
	}
	return destination
}

// Plan assembles a plan for the request. The budget breakdown assumes train
// travel, standard stay and three mid-range meals a day.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*Plan, error) {
	if req.StartLocation == "" || req.Destination == "" || req.Days <= 0 || req.Budget <= 0 {
		return nil, models.NewValidationError("missing required fields")
	}
	travelers := req.Travelers
	if travelers < 1 {
		travelers = 1
	}
	city := CityFor(req.Destination)

	attractions := sampleAttractions
	if s.places != nil {
		if fetched, err := s.places.Attractions(ctx, city); err != nil {
			log.Printf("places lookup failed for %s, using samples: %v", city, err)
		} else if len(fetched) > 0 {
			attractions = fetched
		}
	}

	weather := sampleWeather
	if s.weather != nil {
		if fetched, err := s.weather.CurrentWeather(ctx, city); err != nil {
			log.Printf("weather lookup failed for %s, using samples: %v", city, err)
		} else if fetched != nil {
			weather = *fetched
		}
	}

	travelCost := sampleRoutes[1].Cost * travelers
	stayCost := sampleStay[1].CostPerNight * req.Days * travelers
	foodCost := sampleFood[1].AvgMeal * 3 * req.Days * travelers
	activitiesCost := 3000
	miscCost := 2000
	total := travelCost + stayCost + foodCost + activitiesCost + miscCost

	suggestion := "Your budget covers the estimated cost of this trip."
	if total > req.Budget {
		suggestion = fmt.Sprintf("Estimated cost %d exceeds your budget of %d. Consider budget stay or fewer days.", total, req.Budget)
	}

	return &Plan{
		Attractions: attractions,
		Routes:      sampleRoutes,
		Stay:        sampleStay,
		Food:        sampleFood,
		Weather:     weather,
		BudgetBreakdown: BudgetBreakdown{
			Travel:     travelCost,
			Stay:       stayCost,
			Food:       foodCost,
			Activities: activitiesCost,
			Misc:       miscCost,
			Total:      total,
		},
		Suggestion:    suggestion,
		StartLocation: req.StartLocation,
		Destination:   req.Destination,
		Days:          req.Days,
		Travelers:     travelers,
		Budget:        req.Budget,
	}, nil
}

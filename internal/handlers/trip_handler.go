package handlers

import (
	"net/http"

	"github.com/Divya-010704/TripTeller/internal/models"
	"github.com/Divya-010704/TripTeller/internal/planner"
	"github.com/Divya-010704/TripTeller/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TripHandler handles quick trip saves and trip planning
type TripHandler struct {
	tripRepository repositories.TripRepository
	planner        *planner.Service
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(tripRepo repositories.TripRepository, plannerService *planner.Service) *TripHandler {
	return &TripHandler{
		tripRepository: tripRepo,
		planner:        plannerService,
	}
}

// RegisterTripRoutes registers trip-related routes
func (h *TripHandler) RegisterTripRoutes(g *echo.Group) {
	g.POST("/trips", h.CreateTrip)
	g.POST("/trip/plan", h.PlanTrip)
}

// CreateTrip quick-saves a trip idea
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	trip := &models.Trip{
		Budget: req.Budget,
		City:   req.City,
		Days:   req.Days,
	}
	if err := h.tripRepository.CreateTrip(c.Request().Context(), trip); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(http.StatusCreated, trip)
}

// PlanTrip assembles a trip plan with budget breakdown
func (h *TripHandler) PlanTrip(c echo.Context) error {
	var req planner.PlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	plan, err := h.planner.Plan(c.Request().Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}

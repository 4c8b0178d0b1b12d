package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/triply-app/triply-backend/internal/domain"
	"github.com/triply-app/triply-backend/internal/service"
	"github.com/triply-app/triply-backend/internal/util"
)

type ItineraryHandler struct {
	itineraries *service.ItineraryService
}

func RegisterItineraries(e *echo.Echo, itineraries *service.ItineraryService, jwtManager *util.JWTManager) {
	handler := &ItineraryHandler{itineraries: itineraries}

	group := e.Group("/api/v1/itineraries", ResolveUser(jwtManager))
	group.POST("", handler.create)
	group.GET("", handler.list)
	group.GET("/:id", handler.getByID)
}

func (h *ItineraryHandler) create(c echo.Context) error {
	var req struct {
		UserID      string          `json:"user_id"`
		Title       string          `json:"title"`
		Destination string          `json:"destination"`
		TripType    string          `json:"trip_type"`
		Activity    json.RawMessage `json:"activity"`
		ImageURL    string          `json:"image_url"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	itinerary, err := h.itineraries.Create(c.Request().Context(), service.ItineraryCreateInput{
		UserID:      requestUserID(c, req.UserID),
		Title:       req.Title,
		Destination: req.Destination,
		TripType:    req.TripType,
		Activity:    req.Activity,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrItineraryValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("an error occurred while creating the itinerary"))
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"itinerary_id": itinerary.ID,
		"message":      "Itinerary created successfully.",
	})
}

func (h *ItineraryHandler) list(c echo.Context) error {
	userID := requestUserID(c, c.QueryParam("user_id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, util.Error("user_id is required"))
	}

	var filter domain.ItineraryFilter
	if tripType := strings.TrimSpace(c.QueryParam("trip_type")); tripType != "" {
		filter.TripType = &tripType
	}
	if destination := strings.TrimSpace(c.QueryParam("destination")); destination != "" {
		filter.DestinationPrefix = &destination
	}

	itineraries, err := h.itineraries.List(c.Request().Context(), userID, filter)
	if err != nil {
		if errors.Is(err, service.ErrItineraryValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("an error occurred while fetching itineraries"))
	}

	return c.JSON(http.StatusOK, util.Envelope{"itineraries": itineraries})
}

func (h *ItineraryHandler) getByID(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("id must be a valid UUID"))
	}

	itinerary, err := h.itineraries.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItineraryNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("itinerary not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("an error occurred while fetching the itinerary"))
	}

	return c.JSON(http.StatusOK, util.Envelope{"itinerary": itinerary})
}

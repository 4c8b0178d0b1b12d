package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/triply-app/triply-backend/internal/service"
	"github.com/triply-app/triply-backend/internal/util"
)

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func RegisterFavorites(e *echo.Echo, favorites *service.FavoriteService, jwtManager *util.JWTManager) {
	handler := &FavoriteHandler{favorites: favorites}

	group := e.Group("/api/v1/favorites", ResolveUser(jwtManager))
	group.POST("", handler.save)
	group.DELETE("", handler.remove)
	group.GET("", handler.list)
}

type favoritePairRequest struct {
	UserID      string `json:"user_id"`
	ItineraryID string `json:"itinerary_id"`
}

func (h *FavoriteHandler) bindPair(c echo.Context) (string, uuid.UUID, error) {
	var req favoritePairRequest
	if err := c.Bind(&req); err != nil {
		return "", uuid.Nil, errors.New("invalid request body")
	}

	userID := requestUserID(c, req.UserID)
	if userID == "" {
		return "", uuid.Nil, errors.New("user_id is required")
	}
	if strings.TrimSpace(req.ItineraryID) == "" {
		return "", uuid.Nil, errors.New("itinerary_id is required")
	}
	itineraryID, err := uuid.Parse(strings.TrimSpace(req.ItineraryID))
	if err != nil {
		return "", uuid.Nil, errors.New("itinerary_id must be a valid UUID")
	}
	return userID, itineraryID, nil
}

func (h *FavoriteHandler) save(c echo.Context) error {
	userID, itineraryID, err := h.bindPair(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	favorite, err := h.favorites.Save(c.Request().Context(), userID, itineraryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteAlreadyExists):
			return c.JSON(http.StatusConflict, util.Error("itinerary is already in favorites"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("an error occurred while adding to favorites"))
		}
	}

	return c.JSON(http.StatusCreated, util.Envelope{
		"itinerary_id": favorite.ItineraryID,
		"saved_at":     favorite.CreatedAt.UTC().Format(time.RFC3339),
		"message":      "Itinerary added to favorites.",
	})
}

func (h *FavoriteHandler) remove(c echo.Context) error {
	userID, itineraryID, err := h.bindPair(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	if err := h.favorites.Remove(c.Request().Context(), userID, itineraryID); err != nil {
		switch {
		case errors.Is(err, service.ErrFavoriteNotFound):
			return c.JSON(http.StatusNotFound, util.Error("favorite not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("an error occurred while removing from favorites"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"itinerary_id": itineraryID,
		"message":      "Itinerary removed from favorites.",
	})
}

func (h *FavoriteHandler) list(c echo.Context) error {
	userID := requestUserID(c, c.QueryParam("user_id"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, util.Error("user_id is required"))
	}

	itineraries, err := h.favorites.ListItineraries(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("an error occurred while fetching favorites"))
	}

	return c.JSON(http.StatusOK, util.Envelope{"itineraries": itineraries})
}

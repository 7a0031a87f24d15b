package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wayfarer-app/api-go/places"
)

type SearchController struct {
	Places *places.Service
}

func NewSearchController(service *places.Service) *SearchController {
	return &SearchController{Places: service}
}

// FindPlaces godoc
// @Summary Search places through the unified orchestration endpoint
// @Description Accepts one populated parameter group (proximity, text query, place id or input fragment) and routes to the matching upstream operation
// @Tags places
// @Accept json
// @Produce json
// @Param request body places.UnifiedPlaceRequest true "Unified place request"
// @Success 200 {object} places.UnifiedPlaceResult
// @Failure 400 {object} ErrorBody
// @Router /places/search [post]
func (sc *SearchController) FindPlaces(c *gin.Context) {
	var req places.UnifiedPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorBody{
			Kind:    string(places.KindInvalidRequestShape),
			Message: err.Error(),
		})
		return
	}

	result, err := sc.Places.Find(c.Request.Context(), &req)
	if err != nil {
		writePlacesError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writePlacesError maps the engine's error taxonomy onto HTTP statuses.
func writePlacesError(c *gin.Context, err error) {
	var placesErr *places.Error
	if errors.As(err, &placesErr) {
		c.JSON(placesErr.HTTPStatus(), ErrorBody{
			Kind:    string(placesErr.Kind),
			Message: placesErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Kind:    "internal",
		Message: "unexpected error",
	})
}

package api

import (
	"errors"
	"net/http"

	reqdto "hostel-booking/internal/handler/dto/request"
	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/handler/httperr"
	"hostel-booking/internal/handler/middleware"
	"hostel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Search availability
// @Description List rooms with free beds for a date range
// @Tags availability
// @Produce json
// @Param checkin query string true "Check-in date (YYYY-MM-DD)"
// @Param checkout query string true "Check-out date (YYYY-MM-DD)"
// @Param room_id query string false "Restrict to one room"
// @Success 200 {array} resdto.RoomAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	checkin, err := reqdto.ParseDate(c.Query("checkin"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid checkin date", nil)
		return
	}
	checkout, err := reqdto.ParseDate(c.Query("checkout"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid checkout date", nil)
		return
	}

	var roomID *uuid.UUID
	if raw := c.Query("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid room_id", nil)
			return
		}
		roomID = &id
	}

	var requester *uuid.UUID
	if userID, ok := middleware.GetUserID(c); ok {
		requester = &userID
	}

	views, err := h.q.Search(c.Request.Context(), checkin, checkout, roomID, requester)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidSearchRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid search range", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Availability search failed", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomAvailability(views))
}

package api

import (
	"net/http"

	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/handler/httperr"
	"hostel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	rooms   queries.RoomQueries
	reviews queries.ReviewQueries
}

func NewRoomHandler(rooms queries.RoomQueries, reviews queries.ReviewQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms, reviews: reviews}
}

// @Summary List rooms
// @Description List active rooms with their rating stats
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomListResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	items, err := h.rooms.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to list rooms", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomListItems(items))
}

// @Summary Get room
// @Description Get a room with its beds and packages
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid room id", nil)
		return
	}

	view, err := h.rooms.GetByID(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Room not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List room reviews
// @Description List reviews for a room, newest first
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/{id}/reviews [get]
func (h *RoomHandler) ListReviews(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid room id", nil)
		return
	}

	views, err := h.reviews.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to list reviews", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Room rating stats
// @Description Average rating and review count for a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RatingStatsResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/{id}/rating-stats [get]
func (h *RoomHandler) RatingStats(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid room id", nil)
		return
	}

	stats, err := h.reviews.RatingStats(c.Request.Context(), roomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to load rating stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingStats(stats))
}

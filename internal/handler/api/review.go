package api

import (
	"errors"
	"net/http"

	reqdto "hostel-booking/internal/handler/dto/request"
	"hostel-booking/internal/handler/httperr"
	"hostel-booking/internal/handler/middleware"
	"hostel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Create review
// @Description Review a completed stay; one review per reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	reviewID, err := h.cmds.CreateReview(c.Request.Context(), userID, req.ReservationID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Reservation not found", nil)
		case errors.Is(err, commands.ErrNotReservationOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, httperr.CodeForbidden, "Reservation belongs to another user", nil)
		case errors.Is(err, commands.ErrNotEligibleForReview):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeNotReviewable, "Reservation is not eligible for review", nil)
		case errors.Is(err, commands.ErrReviewAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDuplicateReview, "Reservation already has a review", nil)
		case errors.Is(err, commands.ErrInvalidReview):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeValidation, "Invalid review", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to create review", nil)
		}
		return
	}

	c.Header("Location", "/api/reviews/"+reviewID.String())
	c.JSON(http.StatusCreated, gin.H{"id": reviewID.String()})
}

package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "hostel-booking/internal/handler/dto/request"
	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/handler/httperr"
	"hostel-booking/internal/handler/middleware"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/commands"
	"hostel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUser = errs.New("authenticated user missing from context")

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Commit reservation
// @Description Convert the whole cart into a reservation, atomically
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CommitReservationRequest true "Commit request"
// @Success 201 {object} resdto.CommitReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Commit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CommitReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CommitReservation(c.Request.Context(), userID, req.AcceptTerms)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTermsNotAccepted):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeTermsNotAccepted, "Terms must be accepted", nil)
		case errors.Is(err, commands.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeEmptyCart, "Cart is empty", nil)
		case errors.Is(err, commands.ErrBedUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeBedUnavailable, "A held bed is no longer available", nil)
		case errors.Is(err, commands.ErrBedNotFound), errors.Is(err, commands.ErrPolicyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to commit reservation", nil)
		}
		return
	}

	middleware.CountReservationCommitted()
	c.Header("Location", "/api/reservations/"+result.ReservationID.String())
	c.JSON(http.StatusCreated, resdto.FromCommitResult(result))
}

// @Summary Cancel reservation
// @Description Cancel an owned reservation; the fee follows the attached policy
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid reservation id", nil)
		return
	}

	result, err := h.cmds.CancelReservation(c.Request.Context(), userID, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Reservation not found", nil)
		case errors.Is(err, commands.ErrNotReservationOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, httperr.CodeForbidden, "Reservation belongs to another user", nil)
		case errors.Is(err, commands.ErrNotCancellable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeNotCancellable, "Reservation cannot be cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to cancel reservation", nil)
		}
		return
	}

	middleware.CountReservationCancelled()
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Get reservation
// @Description Get an owned reservation with its items
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid reservation id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, reservationID)
	if err != nil {
		if errors.Is(err, queries.ErrReservationAccessDenied) {
			httperr.AbortWithError(c, http.StatusForbidden, err, httperr.CodeForbidden, "Reservation belongs to another user", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Reservation not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List the user's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to list reservations", nil)
		return
	}

	result := make([]*resdto.ReservationListResponse, 0, len(items))
	for _, item := range items {
		result = append(result, resdto.FromReservationListItem(item))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Confirm reservation
// @Description Mark a pending reservation as confirmed, e.g. once payment clears
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmReservation, "Failed to confirm reservation")
}

// @Summary Check out reservation
// @Description Close a confirmed reservation after the stay, enabling reviews
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/reservations/{id}/checkout [post]
func (h *ReservationHandler) Checkout(c *gin.Context) {
	h.transition(c, h.cmds.CheckoutReservation, "Failed to check out reservation")
}

func (h *ReservationHandler) transition(c *gin.Context, apply func(ctx context.Context, reservationID uuid.UUID) error, failMsg string) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid reservation id", nil)
		return
	}

	if err := apply(c.Request.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Reservation not found", nil)
		case errors.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeInvalidStatus, "Reservation status does not allow this transition", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, failMsg, nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

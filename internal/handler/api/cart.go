package api

import (
	"errors"
	"net/http"

	reqdto "hostel-booking/internal/handler/dto/request"
	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/handler/httperr"
	"hostel-booking/internal/handler/middleware"
	"hostel-booking/internal/usecase/commands"
	"hostel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Add bed to cart
// @Description Hold a bed for a date range in the user's cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Cart item request"
// @Success 201 {object} resdto.CartItemCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}
	checkin, checkout, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid dates", nil)
		return
	}

	itemID, err := h.cmds.AddToCart(c.Request.Context(), userID, req.BedID, checkin, checkout)
	if err != nil {
		abortCartError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CartItemCreatedResponse{ID: itemID})
}

// @Summary Add package to cart
// @Description Hold all beds of a room for a fixed-date package
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartPackageRequest true "Cart package request"
// @Success 201 {object} resdto.CartPackageCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cart/packages [post]
func (h *CartHandler) AddPackage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.AddCartPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid request", nil)
		return
	}
	checkin, checkout, err := req.Dates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid dates", nil)
		return
	}

	itemIDs, err := h.cmds.AddPackageToCart(c.Request.Context(), userID, req.PackageID, checkin, checkout)
	if err != nil {
		abortCartError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CartPackageCreatedResponse{ItemIDs: itemIDs})
}

// @Summary Remove cart item
// @Description Remove one item from the user's cart; removing a missing item succeeds
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid cart item id", nil)
		return
	}

	if err := h.cmds.RemoveFromCart(c.Request.Context(), userID, itemID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to remove cart item", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Clear cart
// @Description Remove every item from the user's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	if err := h.cmds.ClearCart(c.Request.Context(), userID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to clear cart", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get cart
// @Description List the user's cart items with the running total
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, httperr.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	summary, err := h.q.GetCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to load cart", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartSummary(summary))
}

func abortCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBedNotFound), errors.Is(err, commands.ErrPackageNotFound), errors.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Not found", nil)
	case errors.Is(err, commands.ErrBedUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeBedUnavailable, "Bed unavailable for the requested dates", nil)
	case errors.Is(err, commands.ErrDuplicateCartItem):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeDuplicateItem, "Cart already holds this bed for these dates", nil)
	case errors.Is(err, commands.ErrCartConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeCartConflict, "Cart holds a conflicting stay on this bed", nil)
	case errors.Is(err, commands.ErrInvalidStayRange),
		errors.Is(err, commands.ErrPackageRangeMismatch),
		errors.Is(err, commands.ErrUnsupportedPackage),
		errors.Is(err, commands.ErrPackageWithoutBeds),
		errors.Is(err, commands.ErrRoomInactive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, httperr.CodeValidation, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Cart operation failed", nil)
	}
}

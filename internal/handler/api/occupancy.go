package api

import (
	"errors"
	"net/http"

	reqdto "hostel-booking/internal/handler/dto/request"
	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/handler/httperr"
	"hostel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OccupancyHandler struct {
	q queries.OccupancyQueries
}

func NewOccupancyHandler(q queries.OccupancyQueries) *OccupancyHandler {
	return &OccupancyHandler{q: q}
}

// @Summary Occupancy report
// @Description Per-room occupied bed-nights over a date window, staff only
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomOccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/occupancy [get]
func (h *OccupancyHandler) Report(c *gin.Context) {
	from, err := reqdto.ParseDate(c.Query("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid from date", nil)
		return
	}
	to, err := reqdto.ParseDate(c.Query("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid to date", nil)
		return
	}

	rows, err := h.q.Report(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidReportWindow) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, "Invalid report window", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Failed to build occupancy report", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomOccupancies(rows))
}

package api

import (
	"net/http"

	reqdto "sameday-trips/internal/handler/dto/request"
	resdto "sameday-trips/internal/handler/dto/response"
	"sameday-trips/internal/handler/httperr"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	discovery usecase.DiscoveryUseCase
	search    config.SearchConfig
}

func NewTripHandler(discovery usecase.DiscoveryUseCase, cfg config.Config) *TripHandler {
	return &TripHandler{discovery: discovery, search: cfg.Search}
}

// @Summary Search same-day trips
// @Description Search every catalog destination for same-day round trips and rank them by total cost
// @Tags trips
// @Accept json
// @Produce json
// @Param request body reqdto.SearchTripsRequest true "Search window"
// @Success 200 {object} resdto.TripSearchResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/trips/search [post]
func (h *TripHandler) Search(c *gin.Context) {
	var req reqdto.SearchTripsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	opts, err := req.ToOptions(h.search)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	result, err := h.discovery.Search(c.Request.Context(), opts)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidSearchWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search window", nil)
		case httperr.AbortWithSourceError(c, err):
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	resp, err := resdto.FromDiscoveryResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

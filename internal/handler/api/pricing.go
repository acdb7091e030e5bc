package api

import (
	"net/http"

	resdto "sameday-trips/internal/handler/dto/response"
	"sameday-trips/internal/handler/httperr"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricing usecase.PricingUseCase
}

func NewPricingHandler(pricing usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

// @Summary List pricing records
// @Description List every stored pricing record, optionally for one destination
// @Tags pricing
// @Produce json
// @Param destination query string false "Destination airport code"
// @Success 200 {array} resdto.PricingRecordResponse
// @Failure 500 {object} map[string]string
// @Router /api/pricing [get]
func (h *PricingHandler) List(c *gin.Context) {
	records, err := h.pricing.Records(c.Request.Context(), c.Query("destination"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pricing records", nil)
		return
	}
	resp, err := resdto.FromPricingRecords(records)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": resp})
}

// @Summary Latest pricing record
// @Description Get the most recently updated pricing record of a destination
// @Tags pricing
// @Produce json
// @Param destination path string true "Destination airport code"
// @Success 200 {object} resdto.PricingRecordResponse
// @Failure 404 {object} map[string]string
// @Router /api/pricing/{destination} [get]
func (h *PricingHandler) Latest(c *gin.Context) {
	record, err := h.pricing.Latest(c.Request.Context(), c.Param("destination"))
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load pricing record", nil)
		return
	}
	resp, err := resdto.FromPricingRecord(record)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

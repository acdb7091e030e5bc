package httperr

import (
	"net/http"

	"sameday-trips/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithSourceError answers 502 when err came from an external price
// source and reports whether it did.
func AbortWithSourceError(c *gin.Context, err error) bool {
	switch {
	case errs.Is(err, errs.ErrAuthentication):
		AbortWithError(c, http.StatusBadGateway, err, "Fare source rejected credentials", nil)
	case errs.Is(err, errs.ErrSourceUnavailable):
		AbortWithError(c, http.StatusBadGateway, err, "Fare source unavailable", nil)
	default:
		return false
	}
	return true
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/application"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
	"github.com/oksasatya/restaurant-api/pkg/response"
	"github.com/oksasatya/restaurant-api/pkg/validation"
)

// respondError maps application errors onto the response envelope. Only
// unexpected errors are logged above debug and their text never leaves the server.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	entry := helpers.RequestEntry(logger, c).WithError(err)

	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		entry.Debug("validation failed")
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "validation failed", validation.Details(verr.Violations)))
	case errors.Is(err, application.ErrForbidden):
		entry.Debug("forbidden")
		response.JSON(c, response.Error[any](c, http.StatusForbidden, "forbidden", nil))
	case errors.Is(err, application.ErrNotFound):
		response.JSON(c, response.Error[any](c, http.StatusNotFound, err.Error(), nil))
	case errors.Is(err, application.ErrInvalidCredentials):
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, err.Error(), nil))
	case errors.Is(err, application.ErrUnavailable):
		entry.Warn("dependency unavailable")
		response.JSON(c, response.Error[any](c, http.StatusServiceUnavailable, "service unavailable", nil))
	default:
		entry.Error("request failed")
		response.JSON(c, response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil))
	}
}

func badRequest(c *gin.Context, err error) {
	response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)))
}

// pathID parses a positive integer route parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid "+name, nil))
		return 0, false
	}
	return id, true
}

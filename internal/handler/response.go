package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"feedrelay/backend/internal/discord"
	"feedrelay/backend/internal/logger"
	"feedrelay/backend/internal/service"
	"feedrelay/backend/internal/validation"
)

// FeatureUnavailableCode lets the dashboard tell an entitlement gate apart
// from a failure.
const FeatureUnavailableCode = "FEATURE_UNAVAILABLE"

type errorResponse struct {
	Error  string                  `json:"error"`
	Code   string                  `json:"code,omitempty"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

type countResponse struct {
	Count int `json:"count"`
}

func writeServiceError(c echo.Context, err error) error {
	var apiErr *discord.APIError
	switch {
	case errors.Is(err, service.ErrInvalid):
		resp := errorResponse{Error: "invalid request"}
		var verr *validation.Error
		if errors.As(err, &verr) {
			resp.Fields = verr.Fields
		}
		return c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
	case errors.Is(err, service.ErrFeatureUnavailable):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "feature unavailable", Code: FeatureUnavailableCode})
	case errors.Is(err, service.ErrStoreUnavailable):
		logError(c, "store unavailable", err)
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "store unavailable"})
	case errors.Is(err, service.ErrUpstreamUnavailable), errors.Is(err, discord.ErrUnavailable):
		logError(c, "upstream unavailable", err)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "upstream unavailable"})
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusUnauthorized {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "upstream authorization rejected"})
		}
		logError(c, "upstream error", err)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "upstream error"})
	default:
		logError(c, "unhandled error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func logError(c echo.Context, msg string, err error) {
	logger.Error(msg, "module", "handler", "action", "request", "resource", "http", "result", "failed", "method", c.Request().Method, "path", c.Path(), "error", err)
}

// ServiceError writes err using the API's error mapping.
func ServiceError(c echo.Context, err error) error {
	return writeServiceError(c, err)
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

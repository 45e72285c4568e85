package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/service"
	"feedrelay/backend/internal/validation"
)

const accessTokenKey = "accessToken"

// SetAccessToken stores the caller's upstream OAuth token for the handlers.
func SetAccessToken(c echo.Context, token string) {
	c.Set(accessTokenKey, token)
}

// AccessToken returns the token stored by SetAccessToken, or "".
func AccessToken(c echo.Context) string {
	token, _ := c.Get(accessTokenKey).(string)
	return token
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parseListQuery reads search, limit and offset. A missing limit uses the
// configured page size.
func parseListQuery(c echo.Context, cfg config.APIConfig) (service.FeedListOptions, error) {
	opts := service.FeedListOptions{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Limit:  cfg.DefaultPageSize,
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("%w: limit must be an integer", service.ErrInvalid)
		}
		opts.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("%w: offset must be an integer", service.ErrInvalid)
		}
		opts.Offset = offset
	}

	if err := validation.Var("limit", opts.Limit, fmt.Sprintf("min=1,max=%d", cfg.MaxPageSize)); err != nil {
		return opts, fmt.Errorf("%w: %w", service.ErrInvalid, err)
	}
	if err := validation.Var("offset", opts.Offset, "min=0"); err != nil {
		return opts, fmt.Errorf("%w: %w", service.ErrInvalid, err)
	}
	if err := validation.Var("search", opts.Search, "max=200"); err != nil {
		return opts, fmt.Errorf("%w: %w", service.ErrInvalid, err)
	}
	return opts, nil
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"feedrelay/backend/internal/discord"
	"feedrelay/backend/internal/service"
	"feedrelay/backend/internal/validation"
)

type UserHandler struct {
	service service.UserService
}

type userResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator,omitempty"`
	GlobalName    string `json:"globalName,omitempty"`
	AvatarURL     string `json:"avatarUrl,omitempty"`
}

type userServerResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	IconURL     string           `json:"iconUrl,omitempty"`
	Owner       bool             `json:"owner"`
	Permissions string           `json:"permissions"`
	Benefits    service.Benefits `json:"benefits"`
}

type userServersResponse struct {
	Results []userServerResponse `json:"results"`
	Total   int                  `json:"total"`
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/discord-users/@me", h.Me)
	g.GET("/discord-users/@me/servers", h.Servers)
}

// Me returns the signed-in user.
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse
// @Security BearerAuth
// @Router /discord-users/@me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), AccessToken(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, userResponse{
		ID:            user.ID,
		Username:      user.Username,
		Discriminator: user.Discriminator,
		GlobalName:    lo.FromPtr(user.GlobalName),
		AvatarURL:     discord.AvatarURL(user.ID, user.Avatar, discord.IconOptions{}),
	})
}

// Servers lists the servers the signed-in user can manage.
// @Summary List manageable servers
// @Tags users
// @Produce json
// @Param iconSize query int false "Icon size in pixels" default(128)
// @Param iconFormat query string false "Icon format" Enums(png, jpeg, webp, gif) default(png)
// @Success 200 {object} userServersResponse
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /discord-users/@me/servers [get]
func (h *UserHandler) Servers(c echo.Context) error {
	opts := discord.IconOptions{Format: "png", Size: 128}
	if raw := c.QueryParam("iconFormat"); raw != "" {
		if err := validation.Var("iconFormat", raw, "oneof=png jpeg webp gif"); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		opts.Format = raw
	}
	if raw := c.QueryParam("iconSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || validation.Var("iconSize", size, "oneof=16 32 64 128 256 512 1024 2048 4096") != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "iconSize must be a power of two between 16 and 4096"})
		}
		opts.Size = size
	}

	guilds, err := h.service.GetManagedGuilds(c.Request().Context(), AccessToken(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	benefits := h.service.Benefits()
	results := lo.Map(guilds, func(g discord.PartialGuild, _ int) userServerResponse {
		return userServerResponse{
			ID:          g.ID,
			Name:        g.Name,
			IconURL:     discord.GuildIconURL(g.ID, g.Icon, opts),
			Owner:       g.Owner,
			Permissions: g.Permissions,
			Benefits:    benefits,
		}
	})
	return c.JSON(http.StatusOK, userServersResponse{Results: results, Total: len(results)})
}

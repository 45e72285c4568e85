package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"feedrelay/backend/internal/discord"
	"feedrelay/backend/internal/service"
)

type ServerHandler struct {
	service service.ServerService
}

type serverResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	IconURL  string                `json:"iconUrl,omitempty"`
	Profile  service.ServerProfile `json:"profile"`
	Benefits service.Benefits      `json:"benefits"`
}

type channelResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     int    `json:"type"`
	ParentID string `json:"parentId,omitempty"`
	Position int    `json:"position"`
}

type roleResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    int    `json:"color"`
	Position int    `json:"position"`
	Managed  bool   `json:"managed"`
}

type webhookResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ChannelID string `json:"channelId"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func NewServerHandler(service service.ServerService) *ServerHandler {
	return &ServerHandler{service: service}
}

// RegisterRoutes expects g to be scoped to /discord-servers/:serverId.
func (h *ServerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Get)
	g.GET("/channels", h.Channels)
	g.GET("/roles", h.Roles)
	g.GET("/webhooks", h.Webhooks)
	g.GET("/profile", h.GetProfile)
	g.PATCH("/profile", h.UpdateProfile)
}

// Get returns the server with its effective profile and benefits.
// @Summary Get a server
// @Tags servers
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {object} serverResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId} [get]
func (h *ServerHandler) Get(c echo.Context) error {
	overview, err := h.service.GetOverview(c.Request().Context(), c.Param("serverId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, serverResponse{
		ID:       overview.Guild.ID,
		Name:     overview.Guild.Name,
		IconURL:  discord.GuildIconURL(overview.Guild.ID, overview.Guild.Icon, discord.IconOptions{}),
		Profile:  overview.Profile,
		Benefits: overview.Benefits,
	})
}

// Channels lists the server's channels.
// @Summary List server channels
// @Tags servers
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {array} channelResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/channels [get]
func (h *ServerHandler) Channels(c echo.Context) error {
	channels, err := h.service.GetChannels(c.Request().Context(), c.Param("serverId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, lo.Map(channels, func(ch discord.Channel, _ int) channelResponse {
		return channelResponse{ID: ch.ID, Name: ch.Name, Type: ch.Type, ParentID: lo.FromPtr(ch.ParentID), Position: ch.Position}
	}))
}

// Roles lists the server's roles.
// @Summary List server roles
// @Tags servers
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {array} roleResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/roles [get]
func (h *ServerHandler) Roles(c echo.Context) error {
	roles, err := h.service.GetRoles(c.Request().Context(), c.Param("serverId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, lo.Map(roles, func(r discord.Role, _ int) roleResponse {
		return roleResponse{ID: r.ID, Name: r.Name, Color: r.Color, Position: r.Position, Managed: r.Managed}
	}))
}

// Webhooks lists the server's webhooks when the webhooks benefit is enabled.
// @Summary List server webhooks
// @Tags servers
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {array} webhookResponse
// @Failure 403 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/webhooks [get]
func (h *ServerHandler) Webhooks(c echo.Context) error {
	webhooks, err := h.service.GetWebhooks(c.Request().Context(), c.Param("serverId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, lo.Map(webhooks, func(w discord.Webhook, _ int) webhookResponse {
		return webhookResponse{
			ID:        w.ID,
			Name:      w.Name,
			ChannelID: w.ChannelID,
			AvatarURL: discord.AvatarURL(w.ID, w.Avatar, discord.IconOptions{}),
		}
	}))
}

// GetProfile returns the server's effective settings.
// @Summary Get server profile
// @Tags servers
// @Produce json
// @Param serverId path string true "Server ID"
// @Success 200 {object} service.ServerProfile
// @Security BearerAuth
// @Router /discord-servers/{serverId}/profile [get]
func (h *ServerHandler) GetProfile(c echo.Context) error {
	profile, err := h.service.GetProfile(c.Request().Context(), c.Param("serverId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile stores the provided settings and returns the effective profile.
// @Summary Update server profile
// @Tags servers
// @Accept json
// @Produce json
// @Param serverId path string true "Server ID"
// @Param profile body service.ProfileUpdateInput true "Settings to change"
// @Success 200 {object} service.ServerProfile
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/profile [patch]
func (h *ServerHandler) UpdateProfile(c echo.Context) error {
	var req service.ProfileUpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	profile, err := h.service.UpdateProfile(c.Request().Context(), c.Param("serverId"), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/model"
	"feedrelay/backend/internal/service"
)

type FeedHandler struct {
	service            service.FeedService
	api                config.APIConfig
	refreshRateSeconds int
}

type feedResponse struct {
	ID                 string          `json:"id"`
	GuildID            string          `json:"guildId"`
	ChannelID          string          `json:"channelId"`
	URL                string          `json:"url"`
	Title              string          `json:"title"`
	Text               string          `json:"text"`
	Status             string          `json:"status"`
	Disabled           string          `json:"disabled,omitempty"`
	CheckTitles        bool            `json:"checkTitles"`
	CheckDates         bool            `json:"checkDates"`
	ImgPreviews        bool            `json:"imgPreviews"`
	ImgLinksExistence  bool            `json:"imgLinksExistence"`
	FormatTables       bool            `json:"formatTables"`
	SplitMessage       bool            `json:"splitMessage"`
	DirectSubscribers  bool            `json:"directSubscribers"`
	WebhookID          string          `json:"webhookId,omitempty"`
	NComparisons       []string        `json:"ncomparisons"`
	PComparisons       []string        `json:"pcomparisons"`
	Embeds             []embedResponse `json:"embeds"`
	RefreshRateSeconds int             `json:"refreshRateSeconds"`
	AddedAt            string          `json:"addedAt"`
}

type embedResponse struct {
	Title       string               `json:"title,omitempty"`
	Description string               `json:"description,omitempty"`
	URL         string               `json:"url,omitempty"`
	Color       string               `json:"color,omitempty"`
	Timestamp   string               `json:"timestamp,omitempty"`
	Thumbnail   *embedImageResponse  `json:"thumbnail,omitempty"`
	Image       *embedImageResponse  `json:"image,omitempty"`
	Author      *embedAuthorResponse `json:"author,omitempty"`
	Footer      *embedFooterResponse `json:"footer,omitempty"`
	Fields      []embedFieldResponse `json:"fields"`
}

type embedImageResponse struct {
	URL string `json:"url"`
}

type embedAuthorResponse struct {
	Name    string `json:"name,omitempty"`
	IconURL string `json:"iconUrl,omitempty"`
	URL     string `json:"url,omitempty"`
}

type embedFooterResponse struct {
	Text    string `json:"text,omitempty"`
	IconURL string `json:"iconUrl,omitempty"`
}

type embedFieldResponse struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type feedListResponse struct {
	Results []feedResponse `json:"results"`
	Total   int            `json:"total"`
}

func NewFeedHandler(service service.FeedService, api config.APIConfig, refreshRateSeconds int) *FeedHandler {
	return &FeedHandler{service: service, api: api, refreshRateSeconds: refreshRateSeconds}
}

// RegisterRoutes expects g to be scoped to /discord-servers/:serverId.
func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/feeds", h.List)
	g.GET("/feeds/count", h.Count)
	g.POST("/feeds", h.Create)
	g.GET("/feeds/:feedId", h.Get)
	g.PATCH("/feeds/:feedId", h.Update)
}

// List returns one page of a server's feeds with their delivery status.
// @Summary List server feeds
// @Description Feeds are ordered newest first. Total counts every match regardless of paging.
// @Tags feeds
// @Produce json
// @Param serverId path string true "Server ID"
// @Param search query string false "Case-insensitive match on title or URL"
// @Param limit query int false "Page size"
// @Param offset query int false "Number of feeds to skip"
// @Success 200 {object} feedListResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/feeds [get]
func (h *FeedHandler) List(c echo.Context) error {
	opts, err := parseListQuery(c, h.api)
	if err != nil {
		return writeServiceError(c, err)
	}
	serverID := c.Param("serverId")

	var (
		feeds []model.FeedWithStatus
		total int
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		feeds, err = h.service.List(ctx, serverID, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.service.Count(ctx, serverID, opts.Search)
		return err
	})
	if err := g.Wait(); err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, feedListResponse{
		Results: lo.Map(feeds, func(f model.FeedWithStatus, _ int) feedResponse { return h.toFeedResponse(f) }),
		Total:   total,
	})
}

// Count returns the number of feeds matching a search.
// @Summary Count server feeds
// @Tags feeds
// @Produce json
// @Param serverId path string true "Server ID"
// @Param search query string false "Case-insensitive match on title or URL"
// @Success 200 {object} countResponse
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/feeds/count [get]
func (h *FeedHandler) Count(c echo.Context) error {
	count, err := h.service.Count(c.Request().Context(), c.Param("serverId"), c.QueryParam("search"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, countResponse{Count: count})
}

// Get returns a single feed.
// @Summary Get a feed
// @Tags feeds
// @Produce json
// @Param serverId path string true "Server ID"
// @Param feedId path string true "Feed ID"
// @Success 200 {object} feedResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/feeds/{feedId} [get]
func (h *FeedHandler) Get(c echo.Context) error {
	feedID, err := parseIDParam(c, "feedId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Get(c.Request().Context(), c.Param("serverId"), feedID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.toFeedResponse(feed))
}

// Create subscribes a channel to a feed URL.
// @Summary Create a feed
// @Tags feeds
// @Accept json
// @Produce json
// @Param serverId path string true "Server ID"
// @Param feed body service.FeedCreateInput true "Feed creation request"
// @Success 201 {object} feedResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/feeds [post]
func (h *FeedHandler) Create(c echo.Context) error {
	var req service.FeedCreateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Create(c.Request().Context(), c.Param("serverId"), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, h.toFeedResponse(feed))
}

// Update changes the provided fields of a feed.
// @Summary Update a feed
// @Tags feeds
// @Accept json
// @Produce json
// @Param serverId path string true "Server ID"
// @Param feedId path string true "Feed ID"
// @Param feed body service.FeedUpdateInput true "Fields to change"
// @Success 200 {object} feedResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /discord-servers/{serverId}/feeds/{feedId} [patch]
func (h *FeedHandler) Update(c echo.Context) error {
	feedID, err := parseIDParam(c, "feedId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req service.FeedUpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Update(c.Request().Context(), c.Param("serverId"), feedID, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.toFeedResponse(feed))
}

func (h *FeedHandler) toFeedResponse(feed model.FeedWithStatus) feedResponse {
	return feedResponse{
		ID:                 strconv.FormatInt(feed.ID, 10),
		GuildID:            feed.GuildID,
		ChannelID:          feed.ChannelID,
		URL:                feed.URL,
		Title:              feed.Title,
		Text:               lo.FromPtr(feed.Text),
		Status:             string(feed.Status),
		Disabled:           lo.FromPtr(feed.Disabled),
		CheckTitles:        feed.CheckTitles,
		CheckDates:         feed.CheckDates,
		ImgPreviews:        feed.ImgPreviews,
		ImgLinksExistence:  feed.ImgLinksExistence,
		FormatTables:       feed.FormatTables,
		SplitMessage:       feed.SplitMessage,
		DirectSubscribers:  feed.DirectSubscribers,
		WebhookID:          lo.FromPtr(feed.WebhookID),
		NComparisons:       nonNil(feed.NComparisons),
		PComparisons:       nonNil(feed.PComparisons),
		Embeds:             lo.Map(feed.Embeds, func(e model.FeedEmbed, _ int) embedResponse { return toEmbedResponse(e) }),
		RefreshRateSeconds: h.refreshRateSeconds,
		AddedAt:            feed.AddedAt.UTC().Format(time.RFC3339),
	}
}

func toEmbedResponse(e model.FeedEmbed) embedResponse {
	out := embedResponse{
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Color:       e.Color,
		Timestamp:   e.Timestamp,
		Fields: lo.Map(e.Fields, func(f model.FeedEmbedField, _ int) embedFieldResponse {
			return embedFieldResponse{Name: f.Name, Value: f.Value, Inline: f.Inline}
		}),
	}
	if e.ThumbnailURL != "" {
		out.Thumbnail = &embedImageResponse{URL: e.ThumbnailURL}
	}
	if e.ImageURL != "" {
		out.Image = &embedImageResponse{URL: e.ImageURL}
	}
	if e.AuthorName != "" || e.AuthorIconURL != "" || e.AuthorURL != "" {
		out.Author = &embedAuthorResponse{Name: e.AuthorName, IconURL: e.AuthorIconURL, URL: e.AuthorURL}
	}
	if e.FooterText != "" || e.FooterIconURL != "" {
		out.Footer = &embedFooterResponse{Text: e.FooterText, IconURL: e.FooterIconURL}
	}
	return out
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}

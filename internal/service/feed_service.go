//go:generate mockgen -destination=mock/service_mock.go -package=mock feedrelay/backend/internal/service FeedService,ServerService,UserService

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/discord"
	"feedrelay/backend/internal/logger"
	"feedrelay/backend/internal/metrics"
	"feedrelay/backend/internal/model"
	"feedrelay/backend/internal/repository"
	"feedrelay/backend/internal/validation"
)

const maxSearchLength = 200

// postableChannelTypes are the channel types a feed may deliver into.
var postableChannelTypes = map[int]struct{}{
	discord.ChannelTypeGuildText:         {},
	discord.ChannelTypeGuildAnnouncement: {},
}

type FeedListOptions struct {
	Search string
	Limit  int
	Offset int
}

type FeedCreateInput struct {
	URL       string `json:"url" validate:"required,http_url"`
	ChannelID string `json:"channelId" validate:"required,numeric"`
	Title     string `json:"title" validate:"max=200"`
}

// FeedUpdateInput lists the fields to change. Nil fields are left as stored.
// An empty Disabled re-enables the feed and an empty WebhookID detaches it.
type FeedUpdateInput struct {
	Title             *string   `json:"title" validate:"omitempty,max=200"`
	Text              *string   `json:"text" validate:"omitempty,max=2048"`
	Disabled          *string   `json:"disabled"`
	CheckTitles       *bool     `json:"checkTitles"`
	CheckDates        *bool     `json:"checkDates"`
	ImgPreviews       *bool     `json:"imgPreviews"`
	ImgLinksExistence *bool     `json:"imgLinksExistence"`
	FormatTables      *bool     `json:"formatTables"`
	SplitMessage      *bool     `json:"splitMessage"`
	WebhookID         *string   `json:"webhookId"`
	NComparisons      *[]string `json:"ncomparisons"`
	PComparisons      *[]string `json:"pcomparisons"`
}

type FeedService interface {
	List(ctx context.Context, serverID string, opts FeedListOptions) ([]model.FeedWithStatus, error)
	Count(ctx context.Context, serverID string, search string) (int, error)
	Get(ctx context.Context, serverID string, feedID int64) (model.FeedWithStatus, error)
	Create(ctx context.Context, serverID string, input FeedCreateInput) (model.FeedWithStatus, error)
	Update(ctx context.Context, serverID string, feedID int64, input FeedUpdateInput) (model.FeedWithStatus, error)
}

type feedService struct {
	feeds       repository.FeedRepository
	failRecords repository.FailRecordRepository
	gateway     discord.Gateway
	benefits    Benefits
	httpClient  *http.Client
	sanitizer   *bluemonday.Policy
}

func NewFeedService(feeds repository.FeedRepository, failRecords repository.FailRecordRepository, gateway discord.Gateway, benefits Benefits, httpClient *http.Client) FeedService {
	client := httpClient
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &feedService{
		feeds:       feeds,
		failRecords: failRecords,
		gateway:     gateway,
		benefits:    benefits,
		httpClient:  client,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

func (s *feedService) List(ctx context.Context, serverID string, opts FeedListOptions) ([]model.FeedWithStatus, error) {
	filter, err := feedFilter(serverID, opts.Search)
	if err != nil {
		return nil, err
	}
	if opts.Limit < 1 {
		return nil, invalidf("limit must be a positive integer")
	}
	if opts.Offset < 0 {
		return nil, invalidf("offset must not be negative")
	}
	filter.Limit = opts.Limit
	filter.Offset = opts.Offset

	feeds, err := s.feeds.ListByGuild(ctx, filter)
	if err != nil {
		return nil, storeError("list feeds", err)
	}
	return s.withStatus(ctx, feeds)
}

func (s *feedService) Count(ctx context.Context, serverID string, search string) (int, error) {
	filter, err := feedFilter(serverID, search)
	if err != nil {
		return 0, err
	}
	count, err := s.feeds.CountByGuild(ctx, filter)
	if err != nil {
		return 0, storeError("count feeds", err)
	}
	return count, nil
}

func (s *feedService) Get(ctx context.Context, serverID string, feedID int64) (model.FeedWithStatus, error) {
	feed, err := s.getOwned(ctx, serverID, feedID)
	if err != nil {
		return model.FeedWithStatus{}, err
	}
	return s.singleWithStatus(ctx, feed)
}

func (s *feedService) Create(ctx context.Context, serverID string, input FeedCreateInput) (model.FeedWithStatus, error) {
	if strings.TrimSpace(serverID) == "" {
		return model.FeedWithStatus{}, invalidf("server id is required")
	}
	input.URL = strings.TrimSpace(input.URL)
	input.ChannelID = strings.TrimSpace(input.ChannelID)
	input.Title = strings.TrimSpace(input.Title)
	if err := validation.Struct(input); err != nil {
		return model.FeedWithStatus{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	count, err := s.feeds.CountByGuild(ctx, repository.FeedListFilter{GuildID: serverID})
	if err != nil {
		return model.FeedWithStatus{}, storeError("count feeds", err)
	}
	if count >= s.benefits.MaxFeeds {
		return model.FeedWithStatus{}, fmt.Errorf("%w: server has reached its limit of %d feeds", ErrFeatureUnavailable, s.benefits.MaxFeeds)
	}

	if err := s.checkChannel(ctx, serverID, input.ChannelID); err != nil {
		return model.FeedWithStatus{}, err
	}

	fetchedTitle, err := s.fetchFeedTitle(ctx, input.URL)
	if err != nil {
		return model.FeedWithStatus{}, err
	}

	title := input.Title
	if title == "" {
		title = fetchedTitle
	}
	if title == "" {
		title = input.URL
	}

	created, err := s.feeds.Create(ctx, model.Feed{
		GuildID:   serverID,
		ChannelID: input.ChannelID,
		URL:       input.URL,
		Title:     title,
	})
	if err != nil {
		return model.FeedWithStatus{}, storeError("create feed", err)
	}
	logger.Info("feed created", "module", "service", "action", "create", "resource", "feed", "result", "ok", "server_id", serverID, "feed_id", created.ID)
	return s.singleWithStatus(ctx, created)
}

func (s *feedService) Update(ctx context.Context, serverID string, feedID int64, input FeedUpdateInput) (model.FeedWithStatus, error) {
	if err := validation.Struct(input); err != nil {
		return model.FeedWithStatus{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	feed, err := s.getOwned(ctx, serverID, feedID)
	if err != nil {
		return model.FeedWithStatus{}, err
	}

	if input.WebhookID != nil {
		webhookID := strings.TrimSpace(*input.WebhookID)
		if webhookID != "" && !s.benefits.Webhooks {
			return model.FeedWithStatus{}, fmt.Errorf("%w: webhooks are not enabled for this server", ErrFeatureUnavailable)
		}
		feed.WebhookID = optionalString(webhookID)
	}
	if input.Title != nil {
		if title := strings.TrimSpace(*input.Title); title != "" {
			feed.Title = title
		}
	}
	if input.Text != nil {
		feed.Text = optionalString(*input.Text)
	}
	if input.Disabled != nil {
		feed.Disabled = optionalString(strings.TrimSpace(*input.Disabled))
	}
	applyBool(&feed.CheckTitles, input.CheckTitles)
	applyBool(&feed.CheckDates, input.CheckDates)
	applyBool(&feed.ImgPreviews, input.ImgPreviews)
	applyBool(&feed.ImgLinksExistence, input.ImgLinksExistence)
	applyBool(&feed.FormatTables, input.FormatTables)
	applyBool(&feed.SplitMessage, input.SplitMessage)
	if input.NComparisons != nil {
		feed.NComparisons = lo.Uniq(lo.Compact(*input.NComparisons))
	}
	if input.PComparisons != nil {
		feed.PComparisons = lo.Uniq(lo.Compact(*input.PComparisons))
	}

	updated, err := s.feeds.Update(ctx, feed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.FeedWithStatus{}, ErrNotFound
		}
		return model.FeedWithStatus{}, storeError("update feed", err)
	}
	return s.singleWithStatus(ctx, updated)
}

func (s *feedService) getOwned(ctx context.Context, serverID string, feedID int64) (model.Feed, error) {
	if strings.TrimSpace(serverID) == "" {
		return model.Feed{}, invalidf("server id is required")
	}
	if feedID <= 0 {
		return model.Feed{}, invalidf("feed id is required")
	}
	feed, err := s.feeds.GetByID(ctx, feedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Feed{}, ErrNotFound
		}
		return model.Feed{}, storeError("get feed", err)
	}
	if feed.GuildID != serverID {
		return model.Feed{}, ErrNotFound
	}
	return feed, nil
}

// withStatus looks up failure markers for the page's distinct URLs only.
func (s *feedService) withStatus(ctx context.Context, feeds []model.Feed) ([]model.FeedWithStatus, error) {
	if len(feeds) == 0 {
		return []model.FeedWithStatus{}, nil
	}
	urls := lo.Uniq(lo.Map(feeds, func(f model.Feed, _ int) string { return f.URL }))
	failed, err := s.failRecords.ExistingURLs(ctx, urls)
	if err != nil {
		return nil, storeError("lookup fail records", err)
	}

	return lo.Map(feeds, func(f model.Feed, _ int) model.FeedWithStatus {
		status := model.FeedStatusOK
		if _, ok := failed[f.URL]; ok {
			status = model.FeedStatusFailed
		}
		metrics.FeedStatusLookups.WithLabelValues(string(status)).Inc()
		return model.FeedWithStatus{Feed: f, Status: status}
	}), nil
}

func (s *feedService) singleWithStatus(ctx context.Context, feed model.Feed) (model.FeedWithStatus, error) {
	out, err := s.withStatus(ctx, []model.Feed{feed})
	if err != nil {
		return model.FeedWithStatus{}, err
	}
	return out[0], nil
}

// checkChannel requires channelID to be a text or announcement channel of serverID.
func (s *feedService) checkChannel(ctx context.Context, serverID, channelID string) error {
	channels, err := s.gateway.FetchChannels(ctx, serverID)
	if err != nil {
		return upstreamError(err)
	}
	channel, ok := lo.Find(channels, func(c discord.Channel) bool { return c.ID == channelID })
	if !ok {
		return invalidf("channel %s does not belong to this server", channelID)
	}
	if _, ok := postableChannelTypes[channel.Type]; !ok {
		return invalidf("channel %s cannot receive feed articles", channelID)
	}
	return nil
}

func (s *feedService) fetchFeedTitle(ctx context.Context, feedURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", invalidf("unable to request feed: %v", err)
	}
	req.Header.Set("User-Agent", config.AppName+"/"+config.AppVersion)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Warn("feed probe failed", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "host", hostOf(feedURL), "error", err)
		return "", invalidf("unable to fetch feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", invalidf("unable to fetch feed: status %d", resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return "", invalidf("url is not a valid feed")
	}
	// Sanitize re-escapes entities; titles are stored as plain text.
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(parsed.Title))), nil
}

func feedFilter(serverID, search string) (repository.FeedListFilter, error) {
	if strings.TrimSpace(serverID) == "" {
		return repository.FeedListFilter{}, invalidf("server id is required")
	}
	search = strings.TrimSpace(search)
	if len([]rune(search)) > maxSearchLength {
		return repository.FeedListFilter{}, invalidf("search must be at most %d characters", maxSearchLength)
	}
	return repository.FeedListFilter{GuildID: serverID, Search: search}, nil
}

func applyBool(dst *bool, update *bool) {
	if update != nil {
		*dst = *update
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Host
}

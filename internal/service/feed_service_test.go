package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"feedrelay/backend/internal/discord"
	discordmock "feedrelay/backend/internal/discord/mock"
	"feedrelay/backend/internal/model"
	"feedrelay/backend/internal/repository"
	"feedrelay/backend/internal/repository/mock"
	"feedrelay/backend/internal/repository/testutil"
	"feedrelay/backend/internal/service"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>&lt;b&gt;Go&lt;/b&gt; News &amp; Notes</title>
<link>https://example.com</link>
<item>
  <title>Item 1</title>
  <link>https://example.com/1</link>
</item>
</channel>
</rss>`

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func staticClient(status int, body string) *http.Client {
	return &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		}),
	}
}

var defaultBenefits = service.Benefits{MaxFeeds: 5}

// serverChannels lists a text, an announcement and a voice channel for server-1.
func serverChannels(ctrl *gomock.Controller) *discordmock.MockGateway {
	gateway := discordmock.NewMockGateway(ctrl)
	gateway.EXPECT().FetchChannels(gomock.Any(), "server-1").Return([]discord.Channel{
		{ID: "123", Name: "news", Type: discord.ChannelTypeGuildText},
		{ID: "456", Name: "announcements", Type: discord.ChannelTypeGuildAnnouncement},
		{ID: "789", Name: "voice", Type: 2},
	}, nil).AnyTimes()
	return gateway
}

func TestFeedService_List_EmptyServerIDFailsBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewFeedService(mock.NewMockFeedRepository(ctrl), mock.NewMockFailRecordRepository(ctrl), nil, defaultBenefits, nil)

	_, err := svc.List(context.Background(), "", service.FeedListOptions{Limit: 10})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Count(context.Background(), "  ", "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestFeedService_List_RejectsBadPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewFeedService(mock.NewMockFeedRepository(ctrl), mock.NewMockFailRecordRepository(ctrl), nil, defaultBenefits, nil)

	tests := []service.FeedListOptions{
		{Limit: 0},
		{Limit: -1},
		{Limit: 10, Offset: -1},
		{Limit: 10, Search: strings.Repeat("x", 201)},
	}
	for _, opts := range tests {
		_, err := svc.List(context.Background(), "server-1", opts)
		require.ErrorIs(t, err, service.ErrInvalid)
	}
}

func TestFeedService_List_DerivesStatusFromPageURLs(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	failRecords := mock.NewMockFailRecordRepository(ctrl)
	svc := service.NewFeedService(feeds, failRecords, nil, defaultBenefits, nil)

	page := []model.Feed{
		{ID: 1, GuildID: "server-1", URL: "https://a.example/rss"},
		{ID: 2, GuildID: "server-1", URL: "https://b.example/rss"},
		{ID: 3, GuildID: "server-1", URL: "https://a.example/rss"},
	}
	feeds.EXPECT().
		ListByGuild(gomock.Any(), repository.FeedListFilter{GuildID: "server-1", Search: "example", Limit: 3, Offset: 6}).
		Return(page, nil)
	failRecords.EXPECT().
		ExistingURLs(gomock.Any(), []string{"https://a.example/rss", "https://b.example/rss"}).
		Return(map[string]struct{}{"https://a.example/rss": {}}, nil)

	result, err := svc.List(context.Background(), "server-1", service.FeedListOptions{Search: " example ", Limit: 3, Offset: 6})
	require.NoError(t, err)
	require.Len(t, result, 3)
	require.Equal(t, model.FeedStatusFailed, result[0].Status)
	require.Equal(t, model.FeedStatusOK, result[1].Status)
	require.Equal(t, model.FeedStatusFailed, result[2].Status)
}

func TestFeedService_List_EmptyPageSkipsFailLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), nil, defaultBenefits, nil)

	feeds.EXPECT().ListByGuild(gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := svc.List(context.Background(), "server-1", service.FeedListOptions{Limit: 10, Offset: 50})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestFeedService_List_StoreErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), nil, defaultBenefits, nil)

	cause := errors.New("database is locked")
	feeds.EXPECT().ListByGuild(gomock.Any(), gomock.Any()).Return(nil, cause).Times(1)

	_, err := svc.List(context.Background(), "server-1", service.FeedListOptions{Limit: 10})
	require.ErrorIs(t, err, service.ErrStoreUnavailable)
	require.ErrorIs(t, err, cause)
}

func TestFeedService_List_FailLookupErrorSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	failRecords := mock.NewMockFailRecordRepository(ctrl)
	svc := service.NewFeedService(feeds, failRecords, nil, defaultBenefits, nil)

	feeds.EXPECT().ListByGuild(gomock.Any(), gomock.Any()).Return([]model.Feed{{ID: 1, URL: "u"}}, nil)
	failRecords.EXPECT().ExistingURLs(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.List(context.Background(), "server-1", service.FeedListOptions{Limit: 10})
	require.ErrorIs(t, err, service.ErrStoreUnavailable)
}

func TestFeedService_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), nil, defaultBenefits, nil)

	feeds.EXPECT().CountByGuild(gomock.Any(), repository.FeedListFilter{GuildID: "server-1", Search: "go"}).Return(7, nil)

	count, err := svc.Count(context.Background(), "server-1", "go")
	require.NoError(t, err)
	require.Equal(t, 7, count)
}

func TestFeedService_Get_OtherServerIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), nil, defaultBenefits, nil)

	feeds.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Feed{ID: 1, GuildID: "server-2"}, nil)
	feeds.EXPECT().GetByID(gomock.Any(), int64(2)).Return(model.Feed{}, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), "server-1", 1)
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Get(context.Background(), "server-1", 2)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestFeedService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	failRecords := mock.NewMockFailRecordRepository(ctrl)
	svc := service.NewFeedService(feeds, failRecords, serverChannels(ctrl), defaultBenefits, staticClient(http.StatusOK, sampleRSS))

	feeds.EXPECT().CountByGuild(gomock.Any(), repository.FeedListFilter{GuildID: "server-1"}).Return(1, nil)
	feeds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, feed model.Feed) (model.Feed, error) {
		require.Equal(t, "server-1", feed.GuildID)
		require.Equal(t, "123", feed.ChannelID)
		require.Equal(t, "https://example.com/rss", feed.URL)
		require.Equal(t, "Go News & Notes", feed.Title)
		feed.ID = 99
		feed.AddedAt = time.Now()
		return feed, nil
	})
	failRecords.EXPECT().ExistingURLs(gomock.Any(), []string{"https://example.com/rss"}).Return(map[string]struct{}{}, nil)

	created, err := svc.Create(context.Background(), "server-1", service.FeedCreateInput{URL: " https://example.com/rss ", ChannelID: "123"})
	require.NoError(t, err)
	require.Equal(t, int64(99), created.ID)
	require.Equal(t, model.FeedStatusOK, created.Status)
}

func TestFeedService_Create_TitleOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	failRecords := mock.NewMockFailRecordRepository(ctrl)
	svc := service.NewFeedService(feeds, failRecords, serverChannels(ctrl), defaultBenefits, staticClient(http.StatusOK, sampleRSS))

	feeds.EXPECT().CountByGuild(gomock.Any(), gomock.Any()).Return(0, nil)
	feeds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, feed model.Feed) (model.Feed, error) {
		require.Equal(t, "Custom", feed.Title)
		return feed, nil
	})
	failRecords.EXPECT().ExistingURLs(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := svc.Create(context.Background(), "server-1", service.FeedCreateInput{URL: "https://example.com/rss", ChannelID: "123", Title: "Custom"})
	require.NoError(t, err)
}

func TestFeedService_Create_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewFeedService(mock.NewMockFeedRepository(ctrl), mock.NewMockFailRecordRepository(ctrl), nil, defaultBenefits, nil)

	tests := []service.FeedCreateInput{
		{URL: "ftp://example.com/rss", ChannelID: "123"},
		{URL: "not a url", ChannelID: "123"},
		{URL: "https://example.com/rss"},
		{URL: "https://example.com/rss", ChannelID: "abc"},
	}
	for i, input := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := svc.Create(context.Background(), "server-1", input)
			require.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}

func TestFeedService_Create_MaxFeedsReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), nil, service.Benefits{MaxFeeds: 2}, nil)

	feeds.EXPECT().CountByGuild(gomock.Any(), gomock.Any()).Return(2, nil)

	_, err := svc.Create(context.Background(), "server-1", service.FeedCreateInput{URL: "https://example.com/rss", ChannelID: "123"})
	require.ErrorIs(t, err, service.ErrFeatureUnavailable)
}

func TestFeedService_Create_UnreachableFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), serverChannels(ctrl), defaultBenefits, staticClient(http.StatusNotFound, ""))

	feeds.EXPECT().CountByGuild(gomock.Any(), gomock.Any()).Return(0, nil)

	_, err := svc.Create(context.Background(), "server-1", service.FeedCreateInput{URL: "https://example.com/rss", ChannelID: "123"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestFeedService_Create_NotAFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), serverChannels(ctrl), defaultBenefits, staticClient(http.StatusOK, "not a feed"))

	feeds.EXPECT().CountByGuild(gomock.Any(), gomock.Any()).Return(0, nil)

	_, err := svc.Create(context.Background(), "server-1", service.FeedCreateInput{URL: "https://example.com/rss", ChannelID: "123"})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestFeedService_Create_ChannelChecks(t *testing.T) {
	tests := []struct {
		name      string
		channelID string
		wantErr   error
	}{
		{name: "announcement channel accepted", channelID: "456"},
		{name: "voice channel rejected", channelID: "789", wantErr: service.ErrInvalid},
		{name: "channel from another server rejected", channelID: "999", wantErr: service.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			feeds := mock.NewMockFeedRepository(ctrl)
			failRecords := mock.NewMockFailRecordRepository(ctrl)
			svc := service.NewFeedService(feeds, failRecords, serverChannels(ctrl), defaultBenefits, staticClient(http.StatusOK, sampleRSS))

			feeds.EXPECT().CountByGuild(gomock.Any(), gomock.Any()).Return(0, nil)
			if tt.wantErr == nil {
				feeds.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, feed model.Feed) (model.Feed, error) {
					feed.ID = 1
					return feed, nil
				})
				failRecords.EXPECT().ExistingURLs(gomock.Any(), gomock.Any()).Return(map[string]struct{}{}, nil)
			}

			created, err := svc.Create(context.Background(), "server-1", service.FeedCreateInput{URL: "https://example.com/rss", ChannelID: tt.channelID})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.channelID, created.ChannelID)
		})
	}
}

func TestFeedService_Create_GatewayUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	gateway := discordmock.NewMockGateway(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), gateway, defaultBenefits, staticClient(http.StatusOK, sampleRSS))

	feeds.EXPECT().CountByGuild(gomock.Any(), gomock.Any()).Return(0, nil)
	gateway.EXPECT().FetchChannels(gomock.Any(), "server-1").Return(nil, fmt.Errorf("%w: timeout", discord.ErrUnavailable))

	_, err := svc.Create(context.Background(), "server-1", service.FeedCreateInput{URL: "https://example.com/rss", ChannelID: "123"})
	require.ErrorIs(t, err, service.ErrUpstreamUnavailable)
}

func TestFeedService_Update_WebhookRequiresBenefit(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	svc := service.NewFeedService(feeds, mock.NewMockFailRecordRepository(ctrl), nil, service.Benefits{MaxFeeds: 5, Webhooks: false}, nil)

	feeds.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Feed{ID: 1, GuildID: "server-1"}, nil)

	webhookID := "555"
	_, err := svc.Update(context.Background(), "server-1", 1, service.FeedUpdateInput{WebhookID: &webhookID})
	require.ErrorIs(t, err, service.ErrFeatureUnavailable)
}

func TestFeedService_Update_AppliesProvidedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeds := mock.NewMockFeedRepository(ctrl)
	failRecords := mock.NewMockFailRecordRepository(ctrl)
	svc := service.NewFeedService(feeds, failRecords, nil, service.Benefits{MaxFeeds: 5, Webhooks: true}, nil)

	existingWebhook := "111"
	feeds.EXPECT().GetByID(gomock.Any(), int64(1)).Return(model.Feed{
		ID:          1,
		GuildID:     "server-1",
		URL:         "https://example.com/rss",
		Title:       "Before",
		CheckTitles: true,
		WebhookID:   &existingWebhook,
	}, nil)
	feeds.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, feed model.Feed) (model.Feed, error) {
		require.Equal(t, "After", feed.Title)
		require.True(t, feed.CheckTitles)
		require.True(t, feed.CheckDates)
		require.Nil(t, feed.WebhookID)
		require.Equal(t, "paused", *feed.Disabled)
		require.Equal(t, []string{"title", "link"}, feed.NComparisons)
		return feed, nil
	})
	failRecords.EXPECT().ExistingURLs(gomock.Any(), gomock.Any()).Return(map[string]struct{}{"https://example.com/rss": {}}, nil)

	title := " After "
	checkDates := true
	empty := ""
	disabled := "paused"
	comparisons := []string{"title", "", "link", "title"}
	updated, err := svc.Update(context.Background(), "server-1", 1, service.FeedUpdateInput{
		Title:        &title,
		CheckDates:   &checkDates,
		WebhookID:    &empty,
		Disabled:     &disabled,
		NComparisons: &comparisons,
	})
	require.NoError(t, err)
	require.Equal(t, model.FeedStatusFailed, updated.Status)
}

func TestFeedService_ListAgainstStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFeedService(repository.NewFeedRepository(db), repository.NewFailRecordRepository(db), nil, defaultBenefits, nil)
	ctx := context.Background()

	for _, year := range []int{2020, 2019, 2022, 2021} {
		testutil.SeedFeed(t, db, model.Feed{
			GuildID: "server-1",
			Title:   fmt.Sprint(year),
			AddedAt: time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	testutil.SeedFailRecord(t, db, "https://example.com/2021.xml")

	page, err := svc.List(ctx, "server-1", service.FeedListOptions{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "2021", page[0].Title)
	require.Equal(t, model.FeedStatusFailed, page[0].Status)
	require.Equal(t, "2020", page[1].Title)
	require.Equal(t, model.FeedStatusOK, page[1].Status)

	count, err := svc.Count(ctx, "server-1", "")
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

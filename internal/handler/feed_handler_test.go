package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/discord"
	"feedrelay/backend/internal/model"
	"feedrelay/backend/internal/service"
	servicemock "feedrelay/backend/internal/service/mock"
)

var testAPIConfig = config.APIConfig{DefaultPageSize: 10, MaxPageSize: 50}

func newFeedTestServer(t *testing.T, svc service.FeedService) *echo.Echo {
	t.Helper()
	e := echo.New()
	NewFeedHandler(svc, testAPIConfig, 600).RegisterRoutes(e.Group("/discord-servers/:serverId"))
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFeedHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	addedAt := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	svc.EXPECT().
		List(gomock.Any(), "server-1", service.FeedListOptions{Search: "go", Limit: 2, Offset: 1}).
		Return([]model.FeedWithStatus{
			{Feed: model.Feed{ID: 42, GuildID: "server-1", Title: "2021", URL: "https://a/rss", AddedAt: addedAt}, Status: model.FeedStatusFailed},
		}, nil)
	svc.EXPECT().Count(gomock.Any(), "server-1", "go").Return(4, nil)

	rec := serve(e, http.MethodGet, "/discord-servers/server-1/feeds?search=go&limit=2&offset=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []map[string]any `json:"results"`
		Total   int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 4, body.Total)
	require.Len(t, body.Results, 1)
	require.Equal(t, "42", body.Results[0]["id"])
	require.Equal(t, "failed", body.Results[0]["status"])
	require.Equal(t, "2021-03-04T05:06:07Z", body.Results[0]["addedAt"])
	require.Equal(t, "", body.Results[0]["text"])
	require.Equal(t, []any{}, body.Results[0]["ncomparisons"])
	require.Equal(t, []any{}, body.Results[0]["embeds"])
	require.Equal(t, float64(600), body.Results[0]["refreshRateSeconds"])
}

func TestFeedHandler_List_DefaultPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	svc.EXPECT().List(gomock.Any(), "server-1", service.FeedListOptions{Limit: 10}).Return(nil, nil)
	svc.EXPECT().Count(gomock.Any(), "server-1", "").Return(0, nil)

	rec := serve(e, http.MethodGet, "/discord-servers/server-1/feeds", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"results":[],"total":0}`, rec.Body.String())
}

func TestFeedHandler_List_InvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newFeedTestServer(t, servicemock.NewMockFeedService(ctrl))

	for _, query := range []string{"limit=0", "limit=51", "limit=abc", "offset=-1", "search=" + strings.Repeat("a", 201)} {
		t.Run(query, func(t *testing.T) {
			rec := serve(e, http.MethodGet, "/discord-servers/server-1/feeds?"+query, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFeedHandler_List_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	storeErr := fmt.Errorf("list feeds: %w: %w", service.ErrStoreUnavailable, errors.New("locked"))
	svc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)
	svc.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ string, _ string) (int, error) {
		return 0, ctx.Err()
	}).AnyTimes()

	rec := serve(e, http.MethodGet, "/discord-servers/server-1/feeds", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestFeedHandler_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	svc.EXPECT().Count(gomock.Any(), "server-1", "news").Return(3, nil)

	rec := serve(e, http.MethodGet, "/discord-servers/server-1/feeds/count?search=news", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestFeedHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	svc.EXPECT().Get(gomock.Any(), "server-1", int64(7)).Return(model.FeedWithStatus{}, service.ErrNotFound)

	rec := serve(e, http.MethodGet, "/discord-servers/server-1/feeds/7", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, http.MethodGet, "/discord-servers/server-1/feeds/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	svc.EXPECT().
		Create(gomock.Any(), "server-1", service.FeedCreateInput{URL: "https://example.com/rss", ChannelID: "123"}).
		Return(model.FeedWithStatus{
			Feed: model.Feed{
				ID:  1,
				URL: "https://example.com/rss",
				Embeds: []model.FeedEmbed{{
					Title:        "t",
					ThumbnailURL: "https://example.com/t.png",
					AuthorName:   "me",
				}},
			},
			Status: model.FeedStatusOK,
		}, nil)

	rec := serve(e, http.MethodPost, "/discord-servers/server-1/feeds", `{"url":"https://example.com/rss","channelId":"123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body feedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Embeds, 1)
	require.Equal(t, "https://example.com/t.png", body.Embeds[0].Thumbnail.URL)
	require.Equal(t, "me", body.Embeds[0].Author.Name)
	require.Nil(t, body.Embeds[0].Footer)
	require.NotNil(t, body.Embeds[0].Fields)
}

func TestFeedHandler_Create_FeatureUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.FeedWithStatus{}, fmt.Errorf("%w: limit", service.ErrFeatureUnavailable))

	rec := serve(e, http.MethodPost, "/discord-servers/server-1/feeds", `{"url":"https://example.com/rss","channelId":"123"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"feature unavailable","code":"FEATURE_UNAVAILABLE"}`, rec.Body.String())
}

func TestFeedHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockFeedService(ctrl)
	e := newFeedTestServer(t, svc)

	svc.EXPECT().Update(gomock.Any(), "server-1", int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ int64, input service.FeedUpdateInput) (model.FeedWithStatus, error) {
			require.NotNil(t, input.CheckDates)
			require.True(t, *input.CheckDates)
			require.Nil(t, input.Title)
			return model.FeedWithStatus{Feed: model.Feed{ID: 5, CheckDates: true}, Status: model.FeedStatusOK}, nil
		})

	rec := serve(e, http.MethodPatch, "/discord-servers/server-1/feeds/5", `{"checkDates":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", service.ErrInvalid, http.StatusBadRequest},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"feature", service.ErrFeatureUnavailable, http.StatusForbidden},
		{"store", service.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"upstream", service.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"breaker", discord.ErrUnavailable, http.StatusBadGateway},
		{"api 500", &discord.APIError{StatusCode: 500}, http.StatusBadGateway},
		{"api 401", &discord.APIError{StatusCode: 401}, http.StatusUnauthorized},
		{"unhandled", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			require.NoError(t, writeServiceError(c, tt.err))
			require.Equal(t, tt.want, rec.Code)
		})
	}
}

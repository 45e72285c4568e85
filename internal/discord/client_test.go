package discord

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/network"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, failures uint32) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.DiscordConfig{
		APIBaseURL:      srv.URL + "/",
		BotToken:        "bot-token",
		Timeout:         5 * time.Second,
		BreakerFailures: failures,
		BreakerTimeout:  time.Minute,
	}, network.NewClientFactory(""))
}

func TestClient_FetchGuild_UsesBotAuthorization(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/guilds/123", r.URL.Path)
		require.Equal(t, "Bot bot-token", r.Header.Get("Authorization"))
		require.Equal(t, config.UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"123","name":"Guild","icon":"abc","owner_id":"9"}`))
	}, 5)

	guild, err := client.FetchGuild(context.Background(), "123")
	require.NoError(t, err)
	require.Equal(t, "Guild", guild.Name)
	require.Equal(t, "abc", *guild.Icon)
	require.Equal(t, "9", guild.OwnerID)
}

func TestClient_FetchUserGuilds_UsesBearerAuthorization(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/@me/guilds", r.URL.Path)
		require.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":"1","name":"A","owner":true,"permissions":"0"},{"id":"2","name":"B","permissions":"8"}]`))
	}, 5)

	guilds, err := client.FetchUserGuilds(context.Background(), "user-token")
	require.NoError(t, err)
	require.Len(t, guilds, 2)
	require.True(t, guilds[0].Owner)
	require.Equal(t, "8", guilds[1].Permissions)
}

func TestClient_APIErrorCarriesStatusAndMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Missing Access","code":50001}`))
	}, 5)

	_, err := client.FetchChannels(context.Background(), "123")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Equal(t, "Missing Access", apiErr.Message)
	require.Equal(t, 50001, apiErr.Code)
	require.Equal(t, http.StatusForbidden, StatusOf(err))
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, 2)

	for i := 0; i < 5; i++ {
		_, err := client.FetchRoles(context.Background(), "123")
		require.Equal(t, http.StatusNotFound, StatusOf(err))
	}
	require.Equal(t, int32(5), calls.Load())
}

func TestClient_ServerErrorsOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, 2)

	for i := 0; i < 2; i++ {
		_, err := client.FetchWebhooks(context.Background(), "123")
		require.Equal(t, http.StatusBadGateway, StatusOf(err))
	}

	_, err := client.FetchWebhooks(context.Background(), "123")
	require.ErrorIs(t, err, ErrUnavailable)
	require.Equal(t, int32(2), calls.Load())
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := NewClient(config.DiscordConfig{APIBaseURL: baseURL, Timeout: time.Second}, network.NewClientFactory(""))
	_, err := client.FetchUser(context.Background(), "token")
	require.ErrorIs(t, err, ErrUnavailable)
	require.Zero(t, StatusOf(err))
}

func TestIsBreakerSuccess(t *testing.T) {
	require.True(t, isBreakerSuccess(nil))
	require.True(t, isBreakerSuccess(&APIError{StatusCode: http.StatusForbidden}))
	require.True(t, isBreakerSuccess(context.Canceled))
	require.False(t, isBreakerSuccess(&APIError{StatusCode: http.StatusInternalServerError}))
	require.False(t, isBreakerSuccess(ErrUnavailable))
}

//go:generate mockgen -destination=mock/gateway_mock.go -package=mock feedrelay/backend/internal/discord Gateway

// Package discord talks to the chat platform's REST API on behalf of the bot
// and of signed-in users.
package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/logger"
	"feedrelay/backend/internal/metrics"
	"feedrelay/backend/internal/network"
)

const maxResponseBytes = 4 << 20

// ErrUnavailable is returned when the API could not be reached or the circuit
// breaker is open.
var ErrUnavailable = errors.New("discord api unavailable")

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
	Code       int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("discord api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("discord api error: status %d: %s (code %d)", e.StatusCode, e.Message, e.Code)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an APIError.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Gateway is the set of upstream lookups the services depend on.
type Gateway interface {
	FetchGuild(ctx context.Context, guildID string) (Guild, error)
	FetchChannels(ctx context.Context, guildID string) ([]Channel, error)
	FetchRoles(ctx context.Context, guildID string) ([]Role, error)
	FetchWebhooks(ctx context.Context, guildID string) ([]Webhook, error)
	FetchUser(ctx context.Context, accessToken string) (User, error)
	FetchUserGuilds(ctx context.Context, accessToken string) ([]PartialGuild, error)
}

type Client struct {
	baseURL    string
	botToken   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg config.DiscordConfig, factory *network.ClientFactory) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = cfg.RequestsPerSecond
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "discord",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.UpstreamBreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("circuit breaker state changed", "module", "discord", "action", "request", "resource", "breaker", "result", to.String(), "from", from.String())
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		botToken:   cfg.BotToken,
		userAgent:  config.UserAgent,
		httpClient: factory.NewHTTPClient(cfg.Timeout),
		limiter:    rate.NewLimiter(limit, burst),
		breaker:    breaker,
	}
}

// isBreakerSuccess treats 4xx answers and caller cancellation as successes.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode < http.StatusInternalServerError
	}
	return errors.Is(err, context.Canceled)
}

func (c *Client) FetchGuild(ctx context.Context, guildID string) (Guild, error) {
	var guild Guild
	err := c.executeBotRequest(ctx, "/guilds/{id}", "/guilds/"+guildID, &guild)
	return guild, err
}

func (c *Client) FetchChannels(ctx context.Context, guildID string) ([]Channel, error) {
	var channels []Channel
	err := c.executeBotRequest(ctx, "/guilds/{id}/channels", "/guilds/"+guildID+"/channels", &channels)
	return channels, err
}

func (c *Client) FetchRoles(ctx context.Context, guildID string) ([]Role, error) {
	var roles []Role
	err := c.executeBotRequest(ctx, "/guilds/{id}/roles", "/guilds/"+guildID+"/roles", &roles)
	return roles, err
}

func (c *Client) FetchWebhooks(ctx context.Context, guildID string) ([]Webhook, error) {
	var webhooks []Webhook
	err := c.executeBotRequest(ctx, "/guilds/{id}/webhooks", "/guilds/"+guildID+"/webhooks", &webhooks)
	return webhooks, err
}

func (c *Client) FetchUser(ctx context.Context, accessToken string) (User, error) {
	var user User
	err := c.executeBearerRequest(ctx, accessToken, "/users/@me", &user)
	return user, err
}

func (c *Client) FetchUserGuilds(ctx context.Context, accessToken string) ([]PartialGuild, error) {
	var guilds []PartialGuild
	err := c.executeBearerRequest(ctx, accessToken, "/users/@me/guilds", &guilds)
	return guilds, err
}

func (c *Client) executeBotRequest(ctx context.Context, route, path string, out any) error {
	return c.do(ctx, route, path, "Bot "+c.botToken, out)
}

func (c *Client) executeBearerRequest(ctx context.Context, accessToken, path string, out any) error {
	return c.do(ctx, path, path, "Bearer "+accessToken, out)
}

func (c *Client) do(ctx context.Context, route, path, authorization string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limit: %w", err)
	}

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.send(ctx, path, authorization)
	})
	metrics.UpstreamRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(route, outcome(err)).Inc()

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		logger.Debug("discord request failed", "module", "discord", "action", "request", "resource", route, "result", "failed", "status", StatusOf(err), "error", err)
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", route, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, path, authorization string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var payload struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Code = payload.Code
	}
	return apiErr
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if status := StatusOf(err); status != 0 {
		return fmt.Sprintf("%dxx", status/100)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "breaker_open"
	}
	return "error"
}

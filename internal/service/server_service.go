package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"feedrelay/backend/internal/config"
	"feedrelay/backend/internal/defaults"
	"feedrelay/backend/internal/discord"
	"feedrelay/backend/internal/logger"
	"feedrelay/backend/internal/model"
	"feedrelay/backend/internal/repository"
	"feedrelay/backend/internal/validation"
)

// ServerProfile is a server's effective settings after falling back to defaults.
type ServerProfile struct {
	DateFormat   string `json:"dateFormat"`
	DateLanguage string `json:"dateLanguage"`
	Timezone     string `json:"timezone"`
}

// ProfileUpdateInput lists the settings to change. Nil or empty fields are not written.
type ProfileUpdateInput struct {
	DateFormat   *string `json:"dateFormat" validate:"omitempty,max=100"`
	DateLanguage *string `json:"dateLanguage" validate:"omitempty,max=16"`
	Timezone     *string `json:"timezone" validate:"omitempty,timezone"`
}

type ServerOverview struct {
	Guild    discord.Guild
	Profile  ServerProfile
	Benefits Benefits
}

type ServerService interface {
	GetProfile(ctx context.Context, serverID string) (ServerProfile, error)
	UpdateProfile(ctx context.Context, serverID string, input ProfileUpdateInput) (ServerProfile, error)
	// GetServer returns nil when the bot cannot see the server.
	GetServer(ctx context.Context, serverID string) (*discord.Guild, error)
	GetOverview(ctx context.Context, serverID string) (ServerOverview, error)
	GetChannels(ctx context.Context, serverID string) ([]discord.Channel, error)
	GetRoles(ctx context.Context, serverID string) ([]discord.Role, error)
	GetWebhooks(ctx context.Context, serverID string) ([]discord.Webhook, error)
}

// absentGuildStatuses are the upstream answers that mean the bot is not in the
// server or may not read it.
var absentGuildStatuses = map[int]struct{}{
	http.StatusNotFound:  {},
	http.StatusForbidden: {},
}

type serverService struct {
	profiles repository.ServerProfileRepository
	gateway  discord.Gateway
	defaults config.DefaultsConfig
	benefits Benefits
}

func NewServerService(profiles repository.ServerProfileRepository, gateway discord.Gateway, cfg config.DefaultsConfig) ServerService {
	return &serverService{
		profiles: profiles,
		gateway:  gateway,
		defaults: cfg,
		benefits: BenefitsFromConfig(cfg),
	}
}

func (s *serverService) GetProfile(ctx context.Context, serverID string) (ServerProfile, error) {
	if strings.TrimSpace(serverID) == "" {
		return ServerProfile{}, invalidf("server id is required")
	}
	stored, err := s.profiles.Get(ctx, serverID)
	if err != nil {
		return ServerProfile{}, storeError("get server profile", err)
	}
	return s.resolve(stored), nil
}

func (s *serverService) UpdateProfile(ctx context.Context, serverID string, input ProfileUpdateInput) (ServerProfile, error) {
	if strings.TrimSpace(serverID) == "" {
		return ServerProfile{}, invalidf("server id is required")
	}

	var update repository.ProfileUpdate
	defaults.Apply(&update.DateFormat, trimmed(input.DateFormat))
	defaults.Apply(&update.DateLanguage, trimmed(input.DateLanguage))
	defaults.Apply(&update.Timezone, trimmed(input.Timezone))

	if err := validation.Struct(ProfileUpdateInput(update)); err != nil {
		return ServerProfile{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	stored, err := s.profiles.Upsert(ctx, serverID, update)
	if err != nil {
		return ServerProfile{}, storeError("upsert server profile", err)
	}
	logger.Info("server profile updated", "module", "service", "action", "update", "resource", "profile", "result", "ok", "server_id", serverID)
	return s.resolve(&stored), nil
}

func (s *serverService) resolve(stored *model.ServerProfile) ServerProfile {
	if stored == nil {
		stored = &model.ServerProfile{}
	}
	return ServerProfile{
		DateFormat:   defaults.Value(stored.DateFormat, s.defaults.DateFormat),
		DateLanguage: defaults.Value(stored.DateLanguage, s.defaults.DateLanguage),
		Timezone:     defaults.Value(stored.Timezone, s.defaults.Timezone),
	}
}

func (s *serverService) GetServer(ctx context.Context, serverID string) (*discord.Guild, error) {
	if strings.TrimSpace(serverID) == "" {
		return nil, invalidf("server id is required")
	}
	guild, err := s.gateway.FetchGuild(ctx, serverID)
	if err != nil {
		if _, absent := absentGuildStatuses[discord.StatusOf(err)]; absent {
			logger.Debug("server not visible to bot", "module", "service", "action", "fetch", "resource", "server", "result", "absent", "server_id", serverID, "status", discord.StatusOf(err))
			return nil, nil
		}
		return nil, upstreamError(err)
	}
	return &guild, nil
}

func (s *serverService) GetOverview(ctx context.Context, serverID string) (ServerOverview, error) {
	var (
		guild   *discord.Guild
		profile ServerProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guild, err = s.GetServer(gctx, serverID)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.GetProfile(gctx, serverID)
		return err
	})
	if err := g.Wait(); err != nil {
		return ServerOverview{}, err
	}
	if guild == nil {
		return ServerOverview{}, ErrNotFound
	}
	return ServerOverview{Guild: *guild, Profile: profile, Benefits: s.benefits}, nil
}

func (s *serverService) GetChannels(ctx context.Context, serverID string) ([]discord.Channel, error) {
	if strings.TrimSpace(serverID) == "" {
		return nil, invalidf("server id is required")
	}
	channels, err := s.gateway.FetchChannels(ctx, serverID)
	if err != nil {
		return nil, upstreamError(err)
	}
	return channels, nil
}

func (s *serverService) GetRoles(ctx context.Context, serverID string) ([]discord.Role, error) {
	if strings.TrimSpace(serverID) == "" {
		return nil, invalidf("server id is required")
	}
	roles, err := s.gateway.FetchRoles(ctx, serverID)
	if err != nil {
		return nil, upstreamError(err)
	}
	return roles, nil
}

func (s *serverService) GetWebhooks(ctx context.Context, serverID string) ([]discord.Webhook, error) {
	if strings.TrimSpace(serverID) == "" {
		return nil, invalidf("server id is required")
	}
	if !s.benefits.Webhooks {
		return nil, fmt.Errorf("%w: webhooks are not enabled for this server", ErrFeatureUnavailable)
	}
	webhooks, err := s.gateway.FetchWebhooks(ctx, serverID)
	if err != nil {
		return nil, upstreamError(err)
	}
	return webhooks, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	out := strings.TrimSpace(*v)
	return &out
}

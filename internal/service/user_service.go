package service

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"feedrelay/backend/internal/discord"
)

type UserService interface {
	GetUser(ctx context.Context, accessToken string) (discord.User, error)
	// GetManagedGuilds returns the guilds the user owns or may manage channels in.
	GetManagedGuilds(ctx context.Context, accessToken string) ([]discord.PartialGuild, error)
	// ManagesGuild reports whether guildID is among the user's managed guilds.
	ManagesGuild(ctx context.Context, accessToken, guildID string) (bool, error)
	Benefits() Benefits
}

type userService struct {
	gateway  discord.Gateway
	benefits Benefits
}

func NewUserService(gateway discord.Gateway, benefits Benefits) UserService {
	return &userService{gateway: gateway, benefits: benefits}
}

func (s *userService) GetUser(ctx context.Context, accessToken string) (discord.User, error) {
	if strings.TrimSpace(accessToken) == "" {
		return discord.User{}, invalidf("access token is required")
	}
	user, err := s.gateway.FetchUser(ctx, accessToken)
	if err != nil {
		return discord.User{}, upstreamError(err)
	}
	return user, nil
}

func (s *userService) GetManagedGuilds(ctx context.Context, accessToken string) ([]discord.PartialGuild, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, invalidf("access token is required")
	}
	guilds, err := s.gateway.FetchUserGuilds(ctx, accessToken)
	if err != nil {
		return nil, upstreamError(err)
	}
	return lo.Filter(guilds, func(g discord.PartialGuild, _ int) bool {
		return g.Owner || discord.HasManagePermissions(g.Permissions)
	}), nil
}

func (s *userService) ManagesGuild(ctx context.Context, accessToken, guildID string) (bool, error) {
	guilds, err := s.GetManagedGuilds(ctx, accessToken)
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(guilds, func(g discord.PartialGuild) bool { return g.ID == guildID }), nil
}

func (s *userService) Benefits() Benefits {
	return s.benefits
}

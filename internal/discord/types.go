package discord

// Guild is the bot's view of a server.
type Guild struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        *string  `json:"icon"`
	OwnerID     string   `json:"owner_id"`
	Features    []string `json:"features"`
	Description *string  `json:"description"`
}

type Channel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     int     `json:"type"`
	Position int     `json:"position"`
	ParentID *string `json:"parent_id"`
}

type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       int    `json:"color"`
	Position    int    `json:"position"`
	Permissions string `json:"permissions"`
	Managed     bool   `json:"managed"`
}

type Webhook struct {
	ID            string  `json:"id"`
	Type          int     `json:"type"`
	Name          string  `json:"name"`
	Avatar        *string `json:"avatar"`
	ChannelID     string  `json:"channel_id"`
	GuildID       string  `json:"guild_id"`
	ApplicationID *string `json:"application_id"`
}

// PartialGuild is an entry of the user's own guild list.
type PartialGuild struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        *string  `json:"icon"`
	Owner       bool     `json:"owner"`
	Permissions string   `json:"permissions"`
	Features    []string `json:"features"`
}

type User struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Discriminator string  `json:"discriminator"`
	GlobalName    *string `json:"global_name"`
	Avatar        *string `json:"avatar"`
}

// Channel types that a feed may post into.
const (
	ChannelTypeGuildText         = 0
	ChannelTypeGuildAnnouncement = 5
)

// Permission bits used for dashboard access checks.
const (
	PermissionAdministrator  int64 = 1 << 3
	PermissionManageChannels int64 = 1 << 4
)

package discord

import (
	"fmt"
	"strconv"
	"strings"
)

const cdnBaseURL = "https://cdn.discordapp.com"

// IconOptions selects the rendition of a CDN image. Zero values mean 128px png.
type IconOptions struct {
	Format string
	Size   int
}

// GuildIconURL returns "" when the guild has no icon.
func GuildIconURL(guildID string, icon *string, opts IconOptions) string {
	if icon == nil || *icon == "" {
		return ""
	}
	return cdnURL("icons", guildID, *icon, opts)
}

// AvatarURL returns "" when the user or webhook has no avatar.
func AvatarURL(ownerID string, avatar *string, opts IconOptions) string {
	if avatar == nil || *avatar == "" {
		return ""
	}
	return cdnURL("avatars", ownerID, *avatar, opts)
}

func cdnURL(kind, ownerID, hash string, opts IconOptions) string {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "png"
	}
	size := opts.Size
	if size <= 0 {
		size = 128
	}
	return fmt.Sprintf("%s/%s/%s/%s.%s?size=%s", cdnBaseURL, kind, ownerID, hash, format, strconv.Itoa(size))
}

// HasManagePermissions reports whether a permission bitfield string grants
// Administrator or Manage Channels. Unparsable values grant nothing.
func HasManagePermissions(permissions string) bool {
	bits, err := strconv.ParseInt(permissions, 10, 64)
	if err != nil {
		return false
	}
	return bits&PermissionAdministrator != 0 || bits&PermissionManageChannels != 0
}

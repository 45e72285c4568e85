package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"feedrelay/backend/internal/model"
)

// ProfileUpdate lists the fields to write. Nil fields keep their stored value.
type ProfileUpdate struct {
	DateFormat   *string
	DateLanguage *string
	Timezone     *string
}

type ServerProfileRepository interface {
	// Get returns nil when the server has no stored profile.
	Get(ctx context.Context, guildID string) (*model.ServerProfile, error)
	// Upsert applies update, creating the profile if needed, and returns the stored row.
	Upsert(ctx context.Context, guildID string, update ProfileUpdate) (model.ServerProfile, error)
}

type serverProfileRepository struct {
	db dbtx
}

func NewServerProfileRepository(db dbtx) ServerProfileRepository {
	return &serverProfileRepository{db: db}
}

func (r *serverProfileRepository) Get(ctx context.Context, guildID string) (*model.ServerProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT guild_id, date_format, date_language, timezone, updated_at FROM server_profiles WHERE guild_id = ?`,
		guildID,
	)
	profile, err := scanServerProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get server profile: %w", err)
	}
	return &profile, nil
}

func (r *serverProfileRepository) Upsert(ctx context.Context, guildID string, update ProfileUpdate) (model.ServerProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO server_profiles (guild_id, date_format, date_language, timezone, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
		  date_format = COALESCE(excluded.date_format, server_profiles.date_format),
		  date_language = COALESCE(excluded.date_language, server_profiles.date_language),
		  timezone = COALESCE(excluded.timezone, server_profiles.timezone),
		  updated_at = excluded.updated_at
		RETURNING guild_id, date_format, date_language, timezone, updated_at
	`,
		guildID,
		nullableString(update.DateFormat),
		nullableString(update.DateLanguage),
		nullableString(update.Timezone),
		formatTime(time.Now()),
	)
	profile, err := scanServerProfile(row)
	if err != nil {
		return model.ServerProfile{}, fmt.Errorf("upsert server profile: %w", err)
	}
	return profile, nil
}

func scanServerProfile(row *sql.Row) (model.ServerProfile, error) {
	var (
		profile                            model.ServerProfile
		dateFormat, dateLanguage, timezone sql.NullString
		updatedAt                          string
	)
	if err := row.Scan(&profile.GuildID, &dateFormat, &dateLanguage, &timezone, &updatedAt); err != nil {
		return model.ServerProfile{}, err
	}
	profile.DateFormat = stringPtr(dateFormat)
	profile.DateLanguage = stringPtr(dateLanguage)
	profile.Timezone = stringPtr(timezone)
	var err error
	profile.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.ServerProfile{}, fmt.Errorf("parse server profile updated_at: %w", err)
	}
	return profile, nil
}

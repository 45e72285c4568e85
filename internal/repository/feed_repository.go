package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	sqlbuilder "github.com/huandu/go-sqlbuilder"

	"feedrelay/backend/internal/db"
	"feedrelay/backend/internal/model"
	"feedrelay/backend/internal/snowflake"
)

// FeedListFilter selects a server's feeds. Search is a case-insensitive
// substring match on title or URL. Limit <= 0 means unbounded.
type FeedListFilter struct {
	GuildID string
	Search  string
	Limit   int
	Offset  int
}

type FeedRepository interface {
	Create(ctx context.Context, feed model.Feed) (model.Feed, error)
	GetByID(ctx context.Context, id int64) (model.Feed, error)
	ListByGuild(ctx context.Context, filter FeedListFilter) ([]model.Feed, error)
	CountByGuild(ctx context.Context, filter FeedListFilter) (int, error)
	Update(ctx context.Context, feed model.Feed) (model.Feed, error)
}

var feedColumns = []string{
	"id", "guild_id", "channel_id", "url", "title", "text", "disabled",
	"check_titles", "check_dates", "img_previews", "img_links_existence",
	"format_tables", "split_message", "direct_subscribers", "webhook_id",
	"ncomparisons", "pcomparisons", "embeds", "added_at", "updated_at",
}

type feedRepository struct {
	db dbtx
}

func NewFeedRepository(db dbtx) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Create(ctx context.Context, feed model.Feed) (model.Feed, error) {
	feed.ID = snowflake.NextID()
	now := time.Now().UTC()
	if feed.AddedAt.IsZero() {
		feed.AddedAt = now
	}
	feed.UpdatedAt = now

	docs, err := encodeFeedDocuments(feed)
	if err != nil {
		return model.Feed{}, fmt.Errorf("create feed: %w", err)
	}

	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("feeds").Cols(feedColumns...)
	ib.Values(
		feed.ID,
		feed.GuildID,
		feed.ChannelID,
		feed.URL,
		feed.Title,
		nullableString(feed.Text),
		nullableString(feed.Disabled),
		boolToInt(feed.CheckTitles),
		boolToInt(feed.CheckDates),
		boolToInt(feed.ImgPreviews),
		boolToInt(feed.ImgLinksExistence),
		boolToInt(feed.FormatTables),
		boolToInt(feed.SplitMessage),
		boolToInt(feed.DirectSubscribers),
		nullableString(feed.WebhookID),
		docs.ncomparisons,
		docs.pcomparisons,
		docs.embeds,
		formatTime(feed.AddedAt),
		formatTime(feed.UpdatedAt),
	)
	query, args := ib.BuildWithFlavor(sqlbuilder.SQLite)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return model.Feed{}, fmt.Errorf("create feed: %w", err)
	}
	return normalizeFeed(feed), nil
}

func (r *feedRepository) GetByID(ctx context.Context, id int64) (model.Feed, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(feedColumns...).From("feeds").Where(sb.Equal("id", id))
	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)
	return scanFeed(r.db.QueryRowContext(ctx, query, args...))
}

func (r *feedRepository) ListByGuild(ctx context.Context, filter FeedListFilter) ([]model.Feed, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(feedColumns...).From("feeds")
	applyFeedFilter(sb, filter)
	// id is a snowflake, so it follows insertion order for equal timestamps.
	sb.OrderBy("added_at DESC", "id ASC")
	if filter.Limit > 0 {
		sb.Limit(filter.Limit)
		if filter.Offset > 0 {
			sb.Offset(filter.Offset)
		}
	}

	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	defer rows.Close()

	feeds := make([]model.Feed, 0)
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}
	return feeds, nil
}

func (r *feedRepository) CountByGuild(ctx context.Context, filter FeedListFilter) (int, error) {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("COUNT(*)").From("feeds")
	applyFeedFilter(sb, filter)

	query, args := sb.BuildWithFlavor(sqlbuilder.SQLite)
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count feeds: %w", err)
	}
	return count, nil
}

func (r *feedRepository) Update(ctx context.Context, feed model.Feed) (model.Feed, error) {
	feed.UpdatedAt = time.Now().UTC()
	docs, err := encodeFeedDocuments(feed)
	if err != nil {
		return model.Feed{}, fmt.Errorf("update feed: %w", err)
	}

	ub := sqlbuilder.NewUpdateBuilder()
	ub.Update("feeds").Set(
		ub.Assign("channel_id", feed.ChannelID),
		ub.Assign("url", feed.URL),
		ub.Assign("title", feed.Title),
		ub.Assign("text", nullableString(feed.Text)),
		ub.Assign("disabled", nullableString(feed.Disabled)),
		ub.Assign("check_titles", boolToInt(feed.CheckTitles)),
		ub.Assign("check_dates", boolToInt(feed.CheckDates)),
		ub.Assign("img_previews", boolToInt(feed.ImgPreviews)),
		ub.Assign("img_links_existence", boolToInt(feed.ImgLinksExistence)),
		ub.Assign("format_tables", boolToInt(feed.FormatTables)),
		ub.Assign("split_message", boolToInt(feed.SplitMessage)),
		ub.Assign("direct_subscribers", boolToInt(feed.DirectSubscribers)),
		ub.Assign("webhook_id", nullableString(feed.WebhookID)),
		ub.Assign("ncomparisons", docs.ncomparisons),
		ub.Assign("pcomparisons", docs.pcomparisons),
		ub.Assign("embeds", docs.embeds),
		ub.Assign("updated_at", formatTime(feed.UpdatedAt)),
	).Where(ub.Equal("id", feed.ID))

	query, args := ub.BuildWithFlavor(sqlbuilder.SQLite)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Feed{}, fmt.Errorf("update feed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Feed{}, fmt.Errorf("update feed: %w", err)
	}
	if n == 0 {
		return model.Feed{}, sql.ErrNoRows
	}
	return normalizeFeed(feed), nil
}

// applyFeedFilter is shared by list and count so both always see the same rows.
func applyFeedFilter(sb *sqlbuilder.SelectBuilder, filter FeedListFilter) {
	sb.Where(sb.Equal("guild_id", filter.GuildID))
	if search := db.Fold(strings.TrimSpace(filter.Search)); search != "" {
		sb.Where(sb.Or(
			fmt.Sprintf("instr(%s(title), %s) > 0", db.FoldFunc, sb.Var(search)),
			fmt.Sprintf("instr(%s(url), %s) > 0", db.FoldFunc, sb.Var(search)),
		))
	}
}

type feedDocuments struct {
	ncomparisons string
	pcomparisons string
	embeds       string
}

func encodeFeedDocuments(feed model.Feed) (feedDocuments, error) {
	feed = normalizeFeed(feed)
	ncomparisons, err := json.Marshal(feed.NComparisons)
	if err != nil {
		return feedDocuments{}, fmt.Errorf("encode ncomparisons: %w", err)
	}
	pcomparisons, err := json.Marshal(feed.PComparisons)
	if err != nil {
		return feedDocuments{}, fmt.Errorf("encode pcomparisons: %w", err)
	}
	embeds, err := json.Marshal(feed.Embeds)
	if err != nil {
		return feedDocuments{}, fmt.Errorf("encode embeds: %w", err)
	}
	return feedDocuments{
		ncomparisons: string(ncomparisons),
		pcomparisons: string(pcomparisons),
		embeds:       string(embeds),
	}, nil
}

func normalizeFeed(feed model.Feed) model.Feed {
	if feed.NComparisons == nil {
		feed.NComparisons = []string{}
	}
	if feed.PComparisons == nil {
		feed.PComparisons = []string{}
	}
	if feed.Embeds == nil {
		feed.Embeds = []model.FeedEmbed{}
	}
	return feed
}

func scanFeed(scanner interface {
	Scan(dest ...any) error
}) (model.Feed, error) {
	var (
		feed                               model.Feed
		text, disabled, webhookID          sql.NullString
		checkTitles, checkDates            int
		imgPreviews, imgLinksExistence     int
		formatTables, splitMessage         int
		directSubscribers                  int
		ncomparisons, pcomparisons, embeds string
		addedAt, updatedAt                 string
	)
	if err := scanner.Scan(
		&feed.ID,
		&feed.GuildID,
		&feed.ChannelID,
		&feed.URL,
		&feed.Title,
		&text,
		&disabled,
		&checkTitles,
		&checkDates,
		&imgPreviews,
		&imgLinksExistence,
		&formatTables,
		&splitMessage,
		&directSubscribers,
		&webhookID,
		&ncomparisons,
		&pcomparisons,
		&embeds,
		&addedAt,
		&updatedAt,
	); err != nil {
		return model.Feed{}, err
	}

	feed.Text = stringPtr(text)
	feed.Disabled = stringPtr(disabled)
	feed.WebhookID = stringPtr(webhookID)
	feed.CheckTitles = checkTitles == 1
	feed.CheckDates = checkDates == 1
	feed.ImgPreviews = imgPreviews == 1
	feed.ImgLinksExistence = imgLinksExistence == 1
	feed.FormatTables = formatTables == 1
	feed.SplitMessage = splitMessage == 1
	feed.DirectSubscribers = directSubscribers == 1

	if err := json.Unmarshal([]byte(ncomparisons), &feed.NComparisons); err != nil {
		return model.Feed{}, fmt.Errorf("decode feed ncomparisons: %w", err)
	}
	if err := json.Unmarshal([]byte(pcomparisons), &feed.PComparisons); err != nil {
		return model.Feed{}, fmt.Errorf("decode feed pcomparisons: %w", err)
	}
	if err := json.Unmarshal([]byte(embeds), &feed.Embeds); err != nil {
		return model.Feed{}, fmt.Errorf("decode feed embeds: %w", err)
	}

	var err error
	feed.AddedAt, err = parseTime(addedAt)
	if err != nil {
		return model.Feed{}, fmt.Errorf("parse feed added_at: %w", err)
	}
	feed.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.Feed{}, fmt.Errorf("parse feed updated_at: %w", err)
	}
	return normalizeFeed(feed), nil
}

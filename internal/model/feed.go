package model

import "time"

// Feed is a server's subscription to an external source URL.
type Feed struct {
	ID                int64
	GuildID           string
	ChannelID         string
	URL               string
	Title             string
	Text              *string
	Disabled          *string // reason; nil means enabled
	CheckTitles       bool
	CheckDates        bool
	ImgPreviews       bool
	ImgLinksExistence bool
	FormatTables      bool
	SplitMessage      bool
	DirectSubscribers bool
	WebhookID         *string
	NComparisons      []string
	PComparisons      []string
	Embeds            []FeedEmbed
	AddedAt           time.Time
	UpdatedAt         time.Time
}

// FeedEmbed is the stored shape of one embed template. Field names follow
// the flat storage document; the API nests them.
type FeedEmbed struct {
	Title         string           `json:"title,omitempty"`
	Description   string           `json:"description,omitempty"`
	URL           string           `json:"url,omitempty"`
	Color         string           `json:"color,omitempty"`
	ThumbnailURL  string           `json:"thumbnailURL,omitempty"`
	ImageURL      string           `json:"imageURL,omitempty"`
	AuthorName    string           `json:"authorName,omitempty"`
	AuthorIconURL string           `json:"authorIconURL,omitempty"`
	AuthorURL     string           `json:"authorURL,omitempty"`
	FooterText    string           `json:"footerText,omitempty"`
	FooterIconURL string           `json:"footerIconURL,omitempty"`
	Timestamp     string           `json:"timestamp,omitempty"`
	Fields        []FeedEmbedField `json:"fields,omitempty"`
}

type FeedEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// FeedStatus is derived at read time and never stored.
type FeedStatus string

const (
	FeedStatusOK     FeedStatus = "ok"
	FeedStatusFailed FeedStatus = "failed"
)

// FeedWithStatus pairs a feed with its derived delivery status.
type FeedWithStatus struct {
	Feed
	Status FeedStatus
}

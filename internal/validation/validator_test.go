package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type listQuery struct {
	Search string `query:"search" validate:"max=5"`
	Limit  int    `query:"limit" validate:"min=1,max=10"`
	Offset int    `query:"offset" validate:"min=0"`
}

type createBody struct {
	URL       string `json:"url" validate:"required,http_url"`
	ChannelID string `json:"channelId" validate:"required,numeric"`
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, Struct(listQuery{Search: "go", Limit: 10}))
	require.NoError(t, Struct(createBody{URL: "https://example.com/rss", ChannelID: "123"}))
}

func TestStruct_UsesTagNames(t *testing.T) {
	err := Struct(listQuery{Search: "too long", Limit: 0, Offset: -1})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)
	require.Equal(t, "search", verr.Fields[0].Field)
	require.Equal(t, "search must be at most 5 characters", verr.Fields[0].Message)
	require.Equal(t, "limit must be at least 1", verr.Fields[1].Message)
	require.Equal(t, "offset must be at least 0", verr.Fields[2].Message)
}

func TestStruct_RequiredAndURL(t *testing.T) {
	err := Struct(createBody{URL: "not a url"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "url must be a valid http(s) URL")
	require.Contains(t, err.Error(), "channelId is required")
}

func TestVar(t *testing.T) {
	require.NoError(t, Var("iconFormat", "png", "oneof=png jpeg webp gif"))

	err := Var("iconFormat", "bmp", "oneof=png jpeg webp gif")
	require.EqualError(t, err, "iconFormat must be one of: png jpeg webp gif")
}

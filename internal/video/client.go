package video

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

const (
	querySuffix = " tutorial education"
	pageSize    = 12
)

// KeySource resolves the API key of a provider.
type KeySource interface {
	APIKey(ctx context.Context, provider string) (string, error)
}

// Client searches YouTube for study videos.
type Client struct {
	keys     KeySource
	endpoint string
	timeout  time.Duration
	log      logging.Logger
}

type Option func(*Client)

// WithEndpoint overrides the API root, e.g. for a local fake.
func WithEndpoint(u string) Option { return func(c *Client) { c.endpoint = u } }

func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

func WithLogger(l logging.Logger) Option { return func(c *Client) { c.log = l } }

func NewClient(keys KeySource, opts ...Option) *Client {
	c := &Client{keys: keys, log: logging.NopLogger{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search returns up to 12 medium-length videos for topic. A search without
// results is an empty slice and no error.
func (c *Client) Search(ctx context.Context, topic string) ([]models.Video, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, common.NewValidationError("topic", "")
	}

	key, err := c.keys.APIKey(ctx, common.ProviderYouTube)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, &common.MissingCredentialError{Provider: common.ProviderYouTube}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	opts := []option.ClientOption{option.WithAPIKey(key)}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, &common.RemoteError{Provider: common.ProviderYouTube, Err: err}
	}

	resp, err := svc.Search.List([]string{"snippet"}).
		Q(topic + querySuffix).
		MaxResults(pageSize).
		Type("video").
		VideoDuration("medium").
		Context(ctx).
		Do()
	if err != nil {
		remote := &common.RemoteError{Provider: common.ProviderYouTube, Err: err}
		var gErr *googleapi.Error
		if errors.As(err, &gErr) {
			remote.StatusCode = gErr.Code
		}
		c.log.Error(ctx, "video search failed", "status", remote.StatusCode, "error", err)
		return nil, remote
	}

	return mapResults(ctx, c.log, resp.Items), nil
}

func mapResults(ctx context.Context, log logging.Logger, items []*youtube.SearchResult) []models.Video {
	videos := make([]models.Video, 0, len(items))
	for _, it := range items {
		if it == nil || it.Id == nil || it.Id.VideoId == "" || it.Snippet == nil ||
			it.Snippet.Thumbnails == nil || it.Snippet.Thumbnails.Medium == nil {
			log.Debug(ctx, "skipping incomplete search result")
			continue
		}
		videos = append(videos, models.Video{
			VideoID:      it.Id.VideoId,
			ThumbnailURL: it.Snippet.Thumbnails.Medium.Url,
			Title:        it.Snippet.Title,
			ChannelTitle: it.Snippet.ChannelTitle,
		})
	}
	return videos
}

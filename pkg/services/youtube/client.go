package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	serviceName      = "YouTube"
	apiKeyHeader     = "X-Goog-Api-Key"
	maxErrorBodySize = 4 << 10
)

// Searcher finds videos for a topic/subtopic pair.
type Searcher interface {
	Search(ctx context.Context, topic, subtopic string) ([]domain.Video, error)
}

type Config struct {
	APIKey      string
	BaseURL     string
	MaxResults  int
	QueryPrefix string
	QuerySuffix string
	Timeout     time.Duration
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// Query composes the free-text search query for a topic/subtopic pair.
func (c *Client) Query(topic, subtopic string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.config.QueryPrefix, topic, subtopic, c.config.QuerySuffix} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Search returns up to MaxResults videos. The returned videos carry topic and
// subtopic but no TopicID; callers tag them with the originating record.
func (c *Client) Search(ctx context.Context, topic, subtopic string) ([]domain.Video, error) {
	logger := zerolog.Ctx(ctx)

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", c.Query(topic, subtopic))
	params.Set("maxResults", strconv.Itoa(c.config.MaxResults))
	params.Set("type", "video")

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error repeats the full request URL; keep only the cause.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("search request: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("youtube search failed")
		return nil, &domain.UpstreamServiceError{Service: serviceName, StatusCode: resp.StatusCode}
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w: %w", domain.ErrUpstream, domain.ErrMalformedResponse)
	}

	videos := make([]domain.Video, 0, len(decoded.Items))
	for i, item := range decoded.Items {
		v, err := mapSearchItem(item, topic, subtopic)
		if err != nil {
			return nil, fmt.Errorf("search item %d: %w: %w", i, domain.ErrUpstream, err)
		}
		videos = append(videos, v)
	}

	return videos, nil
}

func mapSearchItem(item searchItem, topic, subtopic string) (domain.Video, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: missing %s", domain.ErrMalformedResponse, field)
	}

	if item.ID.VideoID == "" {
		return domain.Video{}, missing("id.videoId")
	}
	s := item.Snippet
	if s == nil {
		return domain.Video{}, missing("snippet")
	}
	if s.Title == "" {
		return domain.Video{}, missing("snippet.title")
	}
	if s.ChannelTitle == "" {
		return domain.Video{}, missing("snippet.channelTitle")
	}
	if s.Thumbnails == nil || s.Thumbnails.Default == nil || s.Thumbnails.Default.URL == "" {
		return domain.Video{}, missing("snippet.thumbnails.default.url")
	}
	if s.PublishedAt == "" {
		return domain.Video{}, missing("snippet.publishedAt")
	}
	publishedAt, err := time.Parse(time.RFC3339, s.PublishedAt)
	if err != nil {
		return domain.Video{}, fmt.Errorf("%w: snippet.publishedAt: %w", domain.ErrMalformedResponse, err)
	}

	return domain.Video{
		VideoID:      item.ID.VideoID,
		ChannelName:  s.ChannelTitle,
		Title:        s.Title,
		Description:  s.Description,
		ThumbnailURL: s.Thumbnails.Default.URL,
		PublishedAt:  publishedAt,
		Topic:        topic,
		Subtopic:     subtopic,
	}, nil
}

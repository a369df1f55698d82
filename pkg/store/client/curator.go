package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/video-curator/pkg/adapters"
	"github.com/de-tools/video-curator/pkg/models/api"
	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/rs/zerolog"
)

type CuratorConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// CuratorClient calls the curate endpoint of a (possibly remote) curator service.
type CuratorClient struct {
	config     CuratorConfig
	httpClient *http.Client
}

func NewCuratorClient(cfg CuratorConfig, httpClient *http.Client) (*CuratorClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("curator url is empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &CuratorClient{
		config:     cfg,
		httpClient: httpClient,
	}, nil
}

// Process posts item to the curate endpoint. Any 2xx status is a success;
// other statuses are reported failures carrying the response's error message.
// Transport failures and undecodable bodies are returned as errors.
func (c *CuratorClient) Process(ctx context.Context, item domain.WorkItem) (domain.WorkerResult, error) {
	logger := zerolog.Ctx(ctx)

	body, err := json.Marshal(adapters.MapWorkItemDomainToApi(item))
	if err != nil {
		return domain.WorkerResult{}, fmt.Errorf("encode curate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return domain.WorkerResult{}, fmt.Errorf("build curate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WorkerResult{}, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close curate response body")
		}
	}()

	var decoded api.WorkerResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.WorkerResult{}, fmt.Errorf("decode curate response (status %d): %w", resp.StatusCode, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	message := decoded.Message
	if message == "" {
		message = decoded.Error
	}

	return domain.WorkerResult{
		OK:      ok,
		Message: message,
		Count:   decoded.Count,
	}, nil
}

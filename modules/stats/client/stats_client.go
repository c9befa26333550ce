package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"event-hub/core/config"
	coredto "event-hub/core/dto"
	"event-hub/modules/stats/dto"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StatsClient talks to the stats service.
type StatsClient interface {
	RecordHit(ctx context.Context, hit dto.EndpointHit) error
	QueryViews(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.ViewStats, error)
}

type httpStatsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPStatsClient(cfg config.StatsConfig) StatsClient {
	return &httpStatsClient{
		baseURL:    strings.TrimRight(cfg.ServerURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *httpStatsClient) RecordHit(ctx context.Context, hit dto.EndpointHit) error {
	body, err := json.Marshal(hit)
	if err != nil {
		return fmt.Errorf("encode hit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post hit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *httpStatsClient) QueryViews(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]dto.ViewStats, error) {
	q := url.Values{}
	q.Set("start", coredto.FormatDateTime(start))
	q.Set("end", coredto.FormatDateTime(end))
	for _, uri := range uris {
		q.Add("uris", uri)
	}
	q.Set("unique", strconv.FormatBool(unique))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp)
	}

	var stats []dto.ViewStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("stats service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}

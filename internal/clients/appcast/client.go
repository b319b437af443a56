package appcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

var (
	// ErrUnavailable — транспортная/HTTP-ошибка шлюза. Поисковый путь
	// деградирует на этой ошибке; get/save/unsave её пробрасывают.
	ErrUnavailable = errors.New("appcast unavailable")
	// ErrJobNotFound — запрос по id вернул не ровно одну вакансию.
	ErrJobNotFound = errors.New("appcast job not found")
)

// New создаёт клиент Appcast API.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("appcast: base_url and api_key are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// Search выполняет поиск вакансий по плоскому списку параметров.
//
// Ошибки: ErrUnavailable на любой транспортной/HTTP-ошибке (обёрнутая,
// с кодом ответа), иначе ошибка декодирования как есть.
func (c *Client) Search(ctx context.Context, params []Param) (*SearchResult, error) {
	const op = "clients/appcast/Search"

	payload, err := c.get(ctx, "/v1/jobs/search", params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	result := SearchResult{
		Page:       resp.Page,
		TotalPages: resp.TotalPages,
		JobsCount:  resp.JobsCount,
		Jobs:       make([]Job, 0, len(resp.Jobs)),
	}
	for _, posting := range resp.Jobs {
		result.Jobs = append(result.Jobs, mapPosting(posting))
	}

	return &result, nil
}

// JobByID возвращает вакансию по её идентификатору у провайдера.
//
// Протокол Appcast не имеет точечного GET: выполняется поиск по job_id,
// и любой ответ, где вакансий не ровно одна, трактуется как ErrJobNotFound.
func (c *Client) JobByID(ctx context.Context, externalID string) (*Job, error) {
	const op = "clients/appcast/JobByID"

	if externalID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrJobNotFound)
	}

	payload, err := c.get(ctx, "/v1/jobs/search", []Param{{Key: ParamJobID, Value: externalID}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	if len(resp.Jobs) != 1 {
		return nil, fmt.Errorf("%s: %d jobs for id %s: %w", op, len(resp.Jobs), externalID, ErrJobNotFound)
	}

	job := mapPosting(resp.Jobs[0])
	return &job, nil
}

// get выполняет GET-запрос и классифицирует отказ шлюза.
func (c *Client) get(ctx context.Context, path string, params []Param) ([]byte, error) {
	values := url.Values{}
	values.Set("api_key", c.apiKey)
	for _, p := range params {
		values.Set(p.Key, p.Value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w: %w", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("status %d: %s: %w", resp.StatusCode, strings.TrimSpace(string(body)), ErrUnavailable)
	}

	return body, nil
}

func mapPosting(posting jobPosting) Job {
	job := Job{
		ID:          posting.ID,
		Title:       posting.Title,
		Company:     posting.Employer.Name,
		Description: posting.Body,
		City:        posting.City,
		State:       posting.State,
		URL:         posting.URL,
		Category:    posting.Function,
		LogoURL:     posting.Employer.LogoURL,
	}

	if posting.PostedAt != "" {
		if ts, err := time.Parse(time.RFC3339, posting.PostedAt); err == nil {
			job.PostedAt = ts
		}
	}

	return job
}

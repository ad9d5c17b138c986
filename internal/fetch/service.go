package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mvvm-samples/post-viewer/internal/config"
	"github.com/mvvm-samples/post-viewer/internal/models"
)

// Result is the single outcome of one FetchPosts call: either a decoded
// batch, in wire order, or an error. Never both.
type Result struct {
	Posts []models.Post
	Err   error
}

// Service fetches post batches from the upstream API.
type Service struct {
	config     config.FetchConfig
	httpClient *http.Client
}

// NewService creates a new fetch service
func NewService(cfg config.FetchConfig) *Service {
	return &Service{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout),
		},
	}
}

// FetchPosts issues one GET against the configured endpoint and delivers
// exactly one Result on the returned channel, then closes it. Delivery is
// always asynchronous; the channel is buffered so the send never blocks on
// a slow consumer. No retries, no caching: one call, one outbound request.
func (s *Service) FetchPosts(ctx context.Context) <-chan Result {
	results := make(chan Result, 1)
	go func() {
		defer close(results)
		posts, err := s.fetchOnce(ctx)
		if err != nil {
			results <- Result{Err: err}
			return
		}
		results <- Result{Posts: posts}
	}()
	return results
}

// fetchOnce performs the single fetch attempt
func (s *Service) fetchOnce(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.Endpoint, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: fmt.Errorf("failed to make request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindTransport, Err: fmt.Errorf("API returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// A 2xx with no body would otherwise complete with neither posts nor
	// a meaningful error, so it gets its own failure kind.
	if len(body) == 0 {
		return nil, &Error{Kind: KindEmptyResponse, Err: errors.New("response body is empty")}
	}

	var posts []models.Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, &Error{Kind: KindDecode, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	return posts, nil
}

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"TrioChat/internal/config"
	"TrioChat/internal/lib/sl"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries a non-2xx backend response that is neither a 401/403 nor
// a 404.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// Service is the typed client for the backend message store. It holds no
// local state; the remote store is the source of truth.
type Service struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// NewStoreService builds the store client. When a token URL is configured
// the client authenticates service-to-service with OAuth2 client
// credentials; otherwise requests go out unauthenticated (local setups).
func NewStoreService(conf *config.Config, logger *slog.Logger) *Service {
	client := &http.Client{Timeout: 10 * time.Second}
	if conf.Backend.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     conf.Backend.ClientID,
			ClientSecret: conf.Backend.ClientSecret,
			TokenURL:     conf.Backend.TokenURL,
		}
		client = cc.Client(context.Background())
		client.Timeout = 10 * time.Second
	}

	return &Service{
		baseURL: conf.Backend.BaseURL,
		client:  client,
		log:     logger.With(sl.Module("store service")),
	}
}

// do executes one backend call and decodes the JSON response into out (when
// out is non-nil). Status codes are mapped to the client's error taxonomy;
// there is no retry at this layer.
func (s *Service) do(method, path string, body, out any) error {
	url := s.baseURL + path

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log := s.log.With(
		slog.String("method", method),
		slog.String("url", url),
	)

	t := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		log.Error("backend request", sl.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	log = log.With(
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(t)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		log.Error("backend request unauthorized")
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		log.Debug("backend resource not found")
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		log.Error("backend request failed", slog.String("body", string(raw)))
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	log.Debug("backend request")

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

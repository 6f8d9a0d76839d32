package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"TrioChat/entity"
	"TrioChat/internal/config"
	"TrioChat/internal/lib/sl"
)

var ErrInvalidToken = errors.New("invalid token")

// Service resolves bearer tokens against the marketplace identity provider.
// Session management lives there, not here.
type Service struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewAuthService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		baseURL: conf.Auth.BaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
		log:     logger.With(sl.Module("auth service")),
	}
}

// AuthenticateByToken trades a bearer token for the caller's identity.
func (s *Service) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/identity", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("identity request", sl.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	// Identity payloads predate the canonical role tags, so the role is
	// parsed through entity.ParseRole rather than trusted verbatim.
	var payload struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	role, err := entity.ParseRole(payload.Role)
	if err != nil {
		return nil, err
	}

	user := &entity.UserAuth{
		ID:   payload.ID,
		Name: payload.Name,
		Role: role,
	}
	s.log.With(
		slog.String("user", user.ID),
		slog.String("role", string(role)),
	).Debug("token resolved")

	return user, nil
}

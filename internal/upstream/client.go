package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/swiftmart/storefront/internal/config"
	"github.com/swiftmart/storefront/pkg/errors"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new storefront API client
func NewClient(cfg config.StoreAPIConfig, logger *zap.Logger) *Client {
	// Normalize base URL - remove trailing slashes
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// envelope is the storefront API response wrapper. Message is opaque
// display text; it is carried to the caller, never parsed.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// do executes a single API call and decodes the response envelope into
// out when out is non-nil. Returns the server's display message.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) (string, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", &errors.ErrSessionExpired{}
	}

	var env envelope
	if unmarshalErr := json.Unmarshal(respBody, &env); unmarshalErr != nil && resp.StatusCode == http.StatusOK {
		return "", fmt.Errorf("failed to unmarshal response: %w", unmarshalErr)
	}

	if resp.StatusCode == http.StatusNotFound {
		return "", &errors.ErrNotFound{Resource: op, ID: path}
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		return "", &errors.ErrRemote{Op: op, Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return env.Message, nil
}

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/domain/messages"
	"github.com/theeman05/keypost/internal/pkg/config"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// defaultTimeout bounds a single store round trip.
const defaultTimeout = 30 * time.Second

// HTTPDirectory talks to the shared remote store over its plain HTTP
// protocol. It implements both keys.RemoteKeyDirectory and
// messages.RemoteMessageDirectory. The channel carries no authentication.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

var (
	_ keys.RemoteKeyDirectory         = (*HTTPDirectory)(nil)
	_ messages.RemoteMessageDirectory = (*HTTPDirectory)(nil)
)

// NewHTTPDirectory creates a directory client for the store at
// settings.BaseURL.
func NewHTTPDirectory(settings *config.RemoteSettings, logger logger.Logger) (*HTTPDirectory, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPDirectory{
		baseURL: strings.TrimRight(settings.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// GetKey fetches the public key published for email, or (nil, nil) when
// the store holds none.
func (d *HTTPDirectory) GetKey(ctx context.Context, email string) (*keys.PublicKey, error) {
	var key keys.PublicKey
	found, err := d.get(ctx, "/Key/"+url.PathEscape(email), &key)
	if err != nil || !found {
		return nil, err
	}
	return &key, nil
}

// PutKey stores or overwrites the public key published for email.
func (d *HTTPDirectory) PutKey(ctx context.Context, email string, key *keys.PublicKey) error {
	return d.put(ctx, "/Key/"+url.PathEscape(email), key)
}

// GetMessage fetches the message stored for email, or (nil, nil) when the
// store holds none.
func (d *HTTPDirectory) GetMessage(ctx context.Context, email string) (*messages.Message, error) {
	var message messages.Message
	found, err := d.get(ctx, "/Message/"+url.PathEscape(email), &message)
	if err != nil || !found {
		return nil, err
	}
	return &message, nil
}

// PutMessage stores or overwrites the message for email.
func (d *HTTPDirectory) PutMessage(ctx context.Context, email string, message *messages.Message) error {
	return d.put(ctx, "/Message/"+url.PathEscape(email), message)
}

// get performs a GET and decodes the JSON body into out. It reports false
// without error when the store answers 204, 404 or an empty body.
func (d *HTTPDirectory) get(ctx context.Context, path string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("store request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			d.logger.Warn("failed to close response body: ", err)
		}
	}()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("store answered %s for GET %s", resp.Status, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("failed to parse store response: %w", err)
	}
	return true, nil
}

func (d *HTTPDirectory) put(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, d.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("store request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			d.logger.Warn("failed to close response body: ", err)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("store answered %s for PUT %s", resp.Status, path)
	}

	d.logger.Debug("PUT ", path, " accepted with ", resp.Status)
	return nil
}

package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgertree/internal/config"
	"github.com/cleared-dev/ledgertree/internal/model"
)

// ErrUnauthorized is returned when the backend rejects the credentials.
var ErrUnauthorized = errors.New("unauthorized")

const maxBodySize = 5 * 1024 * 1024

// HTTPClient talks to the REST backend that owns the taxonomy and tenant
// ledgers.
type HTTPClient struct {
	base          *url.URL
	hierarchyPath string
	ledgersPath   string
	token         string
	client        *http.Client
	log           *zap.Logger
}

// NewHTTPClient returns a client for cfg.BaseURL.
func NewHTTPClient(cfg config.SourceConfig, log *zap.Logger) (*HTTPClient, error) {
	if log == nil {
		log = zap.NewNop()
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %q", base.Scheme)
	}
	return &HTTPClient{
		base:          base,
		hierarchyPath: cfg.HierarchyPath,
		ledgersPath:   cfg.LedgersPath,
		token:         cfg.Token,
		client:        &http.Client{Timeout: cfg.Timeout},
		log:           log,
	}, nil
}

// Hierarchy fetches the global taxonomy rows.
func (c *HTTPClient) Hierarchy(ctx context.Context) ([]model.HierarchyRow, error) {
	var rows []model.HierarchyRow
	if err := c.do(ctx, http.MethodGet, c.hierarchyPath, nil, &rows); err != nil {
		return nil, fmt.Errorf("fetching hierarchy: %w", err)
	}
	return rows, nil
}

// Ledgers fetches the tenant's ledgers. Records failing validation are dropped.
func (c *HTTPClient) Ledgers(ctx context.Context) ([]model.TenantLedger, error) {
	var ledgers []model.TenantLedger
	if err := c.do(ctx, http.MethodGet, c.ledgersPath, nil, &ledgers); err != nil {
		return nil, fmt.Errorf("fetching ledgers: %w", err)
	}
	return validLedgers(ledgers, c.log), nil
}

// CreateLedger posts n and returns the ledger the backend stored.
func (c *HTTPClient) CreateLedger(ctx context.Context, n model.NewLedger) (model.TenantLedger, error) {
	n.Name = strings.TrimSpace(n.Name)
	if err := validateNewLedger(n); err != nil {
		return model.TenantLedger{}, err
	}

	var created model.TenantLedger
	if err := c.do(ctx, http.MethodPost, c.ledgersPath, n, &created); err != nil {
		return model.TenantLedger{}, fmt.Errorf("creating ledger: %w", err)
	}
	if err := validate.Struct(created); err != nil {
		return model.TenantLedger{}, fmt.Errorf("backend returned invalid ledger: %w", err)
	}
	return created, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("HTTP %d: %w", resp.StatusCode, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return decode(data, out)
}

// decode accepts a bare JSON value or one wrapped in {"data": ...}.
func decode(data []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 {
			trimmed = envelope.Data
		}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

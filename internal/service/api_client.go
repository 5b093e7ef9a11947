package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/onewindow/helpdesk-go/internal/model"
	"go.uber.org/zap"
)

// HelpdeskClient HTTP client for the helpdesk API, used by front-end
// transports (telegram bot)
type HelpdeskClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHelpdeskClient creates a helpdesk API client.
func NewHelpdeskClient(baseURL string, logger *zap.Logger) *HelpdeskClient {
	return &HelpdeskClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Ingest submits a support request to the API and returns the outcome.
func (c *HelpdeskClient) Ingest(ctx context.Context, req model.IngestRequest) (*model.IngestResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal ingest request: %w", err)
	}

	apiURL := c.baseURL + "/api/ingest"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create ingest request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ingest request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read ingest response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("helpdesk API error: %d, body: %s", resp.StatusCode, string(body))
	}

	var ingestResp model.IngestResponse
	if err := json.Unmarshal(body, &ingestResp); err != nil {
		return nil, fmt.Errorf("parse ingest response: %w", err)
	}

	c.logger.Info("ingest submitted",
		zap.String("ticketId", ingestResp.TicketID),
		zap.String("status", ingestResp.Status))

	return &ingestResp, nil
}

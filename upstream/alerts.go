package upstream

import (
	"context"

	"github.com/monigate/monigate/config"
	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/types"
)

// AlertsClient talks to the Alertmanager-style alerts source.
type AlertsClient struct {
	*Client
}

// NewAlertsClient creates a client for the alerts source.
func NewAlertsClient(src *config.Source, log *logger.Logger) *AlertsClient {
	return &AlertsClient{Client: newClient("alerts-source", src, log)}
}

// AlertListOptions narrows the upstream alert listing. Anything finer
// grained is handled client-side by the query pipeline.
type AlertListOptions struct {
	Active    *bool    `url:"active,omitempty"`
	Silenced  *bool    `url:"silenced,omitempty"`
	Inhibited *bool    `url:"inhibited,omitempty"`
	Filter    []string `url:"filter,omitempty"`
}

// ListAlerts fetches the current alerts.
func (c *AlertsClient) ListAlerts(ctx context.Context, opts *AlertListOptions) ([]types.JSON, error) {
	var out []types.JSON
	if err := c.get(ctx, "/api/v2/alerts", opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSilences fetches all silences.
func (c *AlertsClient) ListSilences(ctx context.Context) ([]types.JSON, error) {
	var out []types.JSON
	if err := c.get(ctx, "/api/v2/silences", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSilence fetches one silence by id.
func (c *AlertsClient) GetSilence(ctx context.Context, id string) (types.JSON, error) {
	var out types.JSON
	if err := c.get(ctx, "/api/v2/silence/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSilence creates a silence and returns the upstream's response,
// which carries the new silence id.
func (c *AlertsClient) CreateSilence(ctx context.Context, silence types.JSON) (types.JSON, error) {
	var out types.JSON
	if err := c.post(ctx, "/api/v2/silences", silence, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSilence expires a silence by id.
func (c *AlertsClient) DeleteSilence(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v2/silence/"+id)
}

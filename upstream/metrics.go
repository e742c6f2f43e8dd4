package upstream

import (
	"context"

	"github.com/monigate/monigate/config"
	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/types"
)

// MetricsClient talks to the Prometheus-style metrics source.
type MetricsClient struct {
	*Client
}

// NewMetricsClient creates a client for the metrics source.
func NewMetricsClient(src *config.Source, log *logger.Logger) *MetricsClient {
	return &MetricsClient{Client: newClient("metrics-source", src, log)}
}

// RuleListOptions narrows the upstream rule listing by rule type.
type RuleListOptions struct {
	Type string `url:"type,omitempty"` // "alert" or "record"
}

// rulesEnvelope mirrors the metrics source's rules response shape.
type rulesEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Groups []struct {
			Name  string       `json:"name"`
			File  string       `json:"file"`
			Rules []types.JSON `json:"rules"`
		} `json:"groups"`
	} `json:"data"`
}

// ListRules fetches alerting and recording rules, flattened across rule
// groups. Each record is annotated with its group and file so those are
// filterable like any other field.
func (c *MetricsClient) ListRules(ctx context.Context, opts *RuleListOptions) ([]types.JSON, error) {
	var env rulesEnvelope
	if err := c.get(ctx, "/api/v1/rules", opts, &env); err != nil {
		return nil, err
	}

	rules := make([]types.JSON, 0)
	for _, group := range env.Data.Groups {
		for _, rule := range group.Rules {
			rec := make(types.JSON, len(rule)+2)
			for k, v := range rule {
				rec[k] = v
			}
			rec["group"] = group.Name
			rec["file"] = group.File
			rules = append(rules, rec)
		}
	}
	return rules, nil
}

// alertsEnvelope mirrors the metrics source's alerts response shape.
type alertsEnvelope struct {
	Status string `json:"status"`
	Data   struct {
		Alerts []types.JSON `json:"alerts"`
	} `json:"data"`
}

// ListAlerts fetches the alerts currently firing on the metrics source.
func (c *MetricsClient) ListAlerts(ctx context.Context) ([]types.JSON, error) {
	var env alertsEnvelope
	if err := c.get(ctx, "/api/v1/alerts", nil, &env); err != nil {
		return nil, err
	}
	if env.Data.Alerts == nil {
		return []types.JSON{}, nil
	}
	return env.Data.Alerts, nil
}

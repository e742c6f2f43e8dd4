package service

import (
	"context"

	"github.com/monigate/monigate/cache"
	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/query"
	"github.com/monigate/monigate/types"
	"github.com/monigate/monigate/upstream"
)

// RuleService serves alerting and recording rules from the metrics source.
type RuleService struct {
	metrics *upstream.MetricsClient
	lists   *cache.Cache[[]types.JSON]
	logger  *logger.Logger
}

// NewRuleService creates a new rule service.
func NewRuleService(metrics *upstream.MetricsClient, lists *cache.Cache[[]types.JSON], log *logger.Logger) *RuleService {
	return &RuleService{metrics: metrics, lists: lists, logger: log}
}

// List fetches all rules and applies the caller's query spec. Rule type,
// group, severity and the rest are plain filterable fields.
func (s *RuleService) List(ctx context.Context, spec query.Spec) ([]types.JSON, query.Meta, error) {
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, query.Meta{}, err
	}
	page, meta := query.Apply(records, spec)
	return page, meta, nil
}

func (s *RuleService) fetch(ctx context.Context) ([]types.JSON, error) {
	if cached, err := s.lists.Get(ctx, "rules"); err == nil {
		return *cached, nil
	}

	records, err := s.metrics.ListRules(ctx, nil)
	if err != nil {
		return nil, err
	}

	if err := s.lists.Set(ctx, "rules", &records); err != nil {
		s.logger.Warnf(ctx, "caching rules failed: %v", err)
	}
	return records, nil
}

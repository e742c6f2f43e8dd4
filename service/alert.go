package service

import (
	"context"

	"github.com/monigate/monigate/cache"
	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/query"
	"github.com/monigate/monigate/types"
	"github.com/monigate/monigate/upstream"
)

// AlertService serves the alert listing of the alerts source.
type AlertService struct {
	alerts *upstream.AlertsClient
	lists  *cache.Cache[[]types.JSON]
	logger *logger.Logger
}

// NewAlertService creates a new alert service.
func NewAlertService(alerts *upstream.AlertsClient, lists *cache.Cache[[]types.JSON], log *logger.Logger) *AlertService {
	return &AlertService{alerts: alerts, lists: lists, logger: log}
}

// List fetches the current alerts and applies the caller's query spec.
func (s *AlertService) List(ctx context.Context, spec query.Spec) ([]types.JSON, query.Meta, error) {
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, query.Meta{}, err
	}
	page, meta := query.Apply(records, spec)
	return page, meta, nil
}

func (s *AlertService) fetch(ctx context.Context) ([]types.JSON, error) {
	if cached, err := s.lists.Get(ctx, "alerts"); err == nil {
		return *cached, nil
	}

	records, err := s.alerts.ListAlerts(ctx, nil)
	if err != nil {
		return nil, err
	}

	if err := s.lists.Set(ctx, "alerts", &records); err != nil {
		s.logger.Warnf(ctx, "caching alerts failed: %v", err)
	}
	return records, nil
}

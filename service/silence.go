package service

import (
	"context"

	"github.com/monigate/monigate/cache"
	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/query"
	"github.com/monigate/monigate/types"
	"github.com/monigate/monigate/upstream"
)

// SilenceService serves and manages silences on the alerts source.
type SilenceService struct {
	alerts *upstream.AlertsClient
	lists  *cache.Cache[[]types.JSON]
	logger *logger.Logger
}

// NewSilenceService creates a new silence service.
func NewSilenceService(alerts *upstream.AlertsClient, lists *cache.Cache[[]types.JSON], log *logger.Logger) *SilenceService {
	return &SilenceService{alerts: alerts, lists: lists, logger: log}
}

// List fetches all silences and applies the caller's query spec.
func (s *SilenceService) List(ctx context.Context, spec query.Spec) ([]types.JSON, query.Meta, error) {
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, query.Meta{}, err
	}
	page, meta := query.Apply(records, spec)
	return page, meta, nil
}

// Get fetches one silence by id.
func (s *SilenceService) Get(ctx context.Context, id string) (types.JSON, error) {
	return s.alerts.GetSilence(ctx, id)
}

// Create creates a silence upstream and drops the cached listing.
func (s *SilenceService) Create(ctx context.Context, silence types.JSON) (types.JSON, error) {
	created, err := s.alerts.CreateSilence(ctx, silence)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Delete expires a silence upstream and drops the cached listing.
func (s *SilenceService) Delete(ctx context.Context, id string) error {
	if err := s.alerts.DeleteSilence(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *SilenceService) fetch(ctx context.Context) ([]types.JSON, error) {
	if cached, err := s.lists.Get(ctx, "silences"); err == nil {
		return *cached, nil
	}

	records, err := s.alerts.ListSilences(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.lists.Set(ctx, "silences", &records); err != nil {
		s.logger.Warnf(ctx, "caching silences failed: %v", err)
	}
	return records, nil
}

func (s *SilenceService) invalidate(ctx context.Context) {
	if err := s.lists.Delete(ctx, "silences"); err != nil {
		s.logger.Warnf(ctx, "invalidating silence cache failed: %v", err)
	}
}

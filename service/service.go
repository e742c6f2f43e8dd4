// Package service fetches record sets from the upstream sources and runs
// the query pipeline over them on behalf of the handlers.
package service

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/monigate/monigate/cache"
	"github.com/monigate/monigate/config"
	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/types"
	"github.com/monigate/monigate/upstream"
)

// ErrUpstreamNotConfigured is returned when a required upstream source is
// missing from the configuration.
var ErrUpstreamNotConfigured = errors.New("upstream source not configured")

// Service bundles the per-resource services.
type Service struct {
	Alert   *AlertService
	Rule    *RuleService
	Silence *SilenceService
}

// New wires the upstream clients, the optional redis cache and the
// per-resource services. The returned cleanup closes the redis client.
func New(cfg *config.Config, log *logger.Logger) (*Service, func(), error) {
	if cfg.Upstream == nil || cfg.Upstream.Alerts == nil || cfg.Upstream.Metrics == nil {
		return nil, nil, ErrUpstreamNotConfigured
	}

	var rc *redis.Client
	ttl := 30 * time.Second
	if cfg.Cache != nil {
		if cfg.Cache.TTL > 0 {
			ttl = cfg.Cache.TTL
		}
		if cfg.Cache.Addr != "" {
			rc = redis.NewClient(&redis.Options{
				Addr:     cfg.Cache.Addr,
				Password: cfg.Cache.Password,
				DB:       cfg.Cache.DB,
			})
		}
	}

	alerts := upstream.NewAlertsClient(cfg.Upstream.Alerts, log)
	metrics := upstream.NewMetricsClient(cfg.Upstream.Metrics, log)
	lists := cache.New[[]types.JSON](rc, "monigate:list", ttl)

	svc := &Service{
		Alert:   NewAlertService(alerts, lists, log),
		Rule:    NewRuleService(metrics, lists, log),
		Silence: NewSilenceService(alerts, lists, log),
	}
	cleanup := func() {
		if rc != nil {
			_ = rc.Close()
		}
	}
	return svc, cleanup, nil
}

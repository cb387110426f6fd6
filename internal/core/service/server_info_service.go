package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quantumstudy/study-api/internal/core/domain"
	"github.com/quantumstudy/study-api/internal/core/ports"
	"github.com/quantumstudy/study-api/internal/pkg/metrics"
)

type serverInfoService struct {
	settings ports.SettingsRepository
	cache    ports.ServerInfoCache
	defaults domain.ServerInfo
	appName  string
	log      zerolog.Logger
}

// NewServerInfoService returns a ServerInfoService that layers stored settings
// over defaults. cache may be nil.
func NewServerInfoService(
	settings ports.SettingsRepository,
	cache ports.ServerInfoCache,
	defaults domain.ServerInfo,
	appName string,
	log zerolog.Logger,
) ports.ServerInfoService {
	return &serverInfoService{
		settings: settings,
		cache:    cache,
		defaults: defaults,
		appName:  appName,
		log:      log,
	}
}

// Get returns the resolved server info. Cache failures are logged and
// otherwise ignored.
func (s *serverInfoService) Get(ctx context.Context) (domain.ServerInfo, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.ServerInfoCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Msg("server info cache read failed")
		case cached != nil:
			metrics.ServerInfoCacheTotal.WithLabelValues("hit").Inc()
			return *cached, nil
		default:
			metrics.ServerInfoCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	info := s.defaults
	stored, err := s.settings.FindServerInfo(ctx)
	switch {
	case err == nil:
		info = stored.Merge(s.defaults)
	case errors.Is(err, domain.ErrSettingsNotFound):
		s.log.Debug().Msg("no stored server info, using defaults")
	default:
		return domain.ServerInfo{}, fmt.Errorf("server info: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, info); err != nil {
			s.log.Warn().Err(err).Msg("server info cache write failed")
		}
	}

	return info, nil
}

func (s *serverInfoService) ContactLinks(ctx context.Context) (domain.ContactLinks, error) {
	info, err := s.Get(ctx)
	if err != nil {
		return domain.ContactLinks{}, err
	}
	return info.ContactLinks(s.appName), nil
}

package ports

import (
	"context"

	"github.com/quantumstudy/study-api/internal/core/domain"
)

// SettingsRepository reads operator-managed settings.
type SettingsRepository interface {
	// FindServerInfo returns the stored server info document, or
	// domain.ErrSettingsNotFound when none has been saved.
	FindServerInfo(ctx context.Context) (*domain.ServerInfo, error)
}

// ServerInfoCache is a short-lived cache for the resolved server info.
// Get returns (nil, nil) on a miss.
type ServerInfoCache interface {
	Get(ctx context.Context) (*domain.ServerInfo, error)
	Set(ctx context.Context, info domain.ServerInfo) error
}

// ServerInfoService resolves branding and contact metadata.
type ServerInfoService interface {
	Get(ctx context.Context) (domain.ServerInfo, error)
	ContactLinks(ctx context.Context) (domain.ContactLinks, error)
}

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

// UserService implements admin operations on user records.
type UserService struct {
	repo      ports.UserRepository
	normalize bool
	logger    zerolog.Logger
}

// NewUserService returns a UserService. When normalizeTags is true the
// canonical lower-case tag is stored; otherwise the caller's casing is kept.
func NewUserService(repo ports.UserRepository, normalizeTags bool, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, normalize: normalizeTags, logger: logger}
}

// UpdateTag validates the requested tag and sets it on the user with a single
// write. Nothing is written when validation fails.
func (s *UserService) UpdateTag(ctx context.Context, input ports.UpdateTagInput) (*domain.User, error) {
	if input.UserID == "" {
		metrics.TagUpdatesTotal.WithLabelValues("invalid_input").Inc()
		return nil, domain.ErrInvalidInput
	}

	tag, err := domain.ParseTag(input.Tag)
	if err != nil {
		metrics.TagUpdatesTotal.WithLabelValues("invalid_tag").Inc()
		return nil, err
	}

	value := input.Tag
	if s.normalize {
		value = string(tag)
	}

	user, err := s.repo.SetTag(ctx, input.UserID, value)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.TagUpdatesTotal.WithLabelValues("not_found").Inc()
			return nil, err
		}
		metrics.TagUpdatesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("update tag: %w", err)
	}

	metrics.TagUpdatesTotal.WithLabelValues("updated").Inc()
	s.logger.Info().Str("user_id", input.UserID).Str("tag", value).Msg("user tag updated")

	return user, nil
}

package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/moderation-service/internal/domain"
	"github.com/spec-kit/moderation-service/internal/observability"
	"github.com/spec-kit/moderation-service/internal/repository"
)

const (
	// minQueryLength guards against table scans on trivial input.
	minQueryLength   = 3
	maxSearchResults = 5
)

// DirectoryService looks up candidate profiles by partial text match.
// Search is fail-soft: any storage failure degrades to an empty result so
// the admin page renders instead of breaking.
type DirectoryService struct {
	profiles repository.ProfileRepository
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewDirectoryService constructs the service.
func NewDirectoryService(profiles repository.ProfileRepository, logger *zap.Logger, metrics *observability.Metrics) *DirectoryService {
	return &DirectoryService{profiles: profiles, logger: logger, metrics: metrics}
}

// Search returns up to five profiles whose email or full name contains the
// query, case-insensitively. Queries shorter than three characters return
// an empty result without contacting storage.
func (s *DirectoryService) Search(ctx context.Context, query string) []domain.SearchResult {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return []domain.SearchResult{}
	}

	results, err := s.profiles.Search(ctx, query, maxSearchResults)
	s.metrics.RecordSearch(err != nil)
	if err != nil {
		s.logger.Warn("profile search degraded to empty result",
			zap.String("query", query),
			zap.Error(err))
		return []domain.SearchResult{}
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/cmd/qboard/repository"
	"github.com/qboard/qboard/common/cache"
	"github.com/qboard/qboard/common/logger"
)

const tagCountsCacheKey = "tags:counts"

// TagService handles tag operations
type TagService struct {
	repo     *repository.TagRepository
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewTagService creates a new tag service. cache may be nil to disable
// caching of the tag listing.
func NewTagService(repo *repository.TagRepository, c cache.Cache, cacheTTL time.Duration, log *logger.Logger) *TagService {
	return &TagService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// EnsureTags normalizes the given names and creates any that are missing.
// Tag names are stored lower-cased so search lookups never miss on case.
func (s *TagService) EnsureTags(ctx context.Context, names []string) ([]models.Tag, error) {
	normalized := NormalizeTagNames(names)
	if len(normalized) == 0 {
		return nil, nil
	}

	tags, err := s.repo.EnsureByNames(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure tags: %w", err)
	}

	// Tag listing counts are stale now
	if s.cache != nil {
		_ = s.cache.Delete(ctx, tagCountsCacheKey)
	}

	return tags, nil
}

// List returns all tags with question counts. Served from cache when
// fresh; the retrieval engine never goes through here.
func (s *TagService) List(ctx context.Context) ([]models.TagCount, error) {
	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, tagCountsCacheKey); err == nil && ok {
			var cached []models.TagCount
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	tags, err := s.repo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(tags); err == nil {
			_ = s.cache.Set(ctx, tagCountsCacheKey, data, s.cacheTTL)
		}
	}

	return tags, nil
}

// NormalizeTagNames lower-cases, trims, and deduplicates tag names,
// dropping empties. Order of first appearance is preserved.
func NormalizeTagNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}

	return out
}

// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package recommend

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/careercanvas/internal/metrics"
	"github.com/tomtom215/careercanvas/internal/models"
)

// PreferenceSource is the read side of the preference store.
type PreferenceSource interface {
	ListLikedElements(ctx context.Context, userID int) ([]models.LikedElement, error)
}

// CatalogSource is the read-only career catalog.
type CatalogSource interface {
	ListAll() []*models.Career
	GetByID(id int) (*models.Career, bool)
}

// SnapshotCache stores snapshots between requests. Implementations must be
// safe for concurrent use. Cache errors never fail a request.
type SnapshotCache interface {
	Get(ctx context.Context, userID int) (*Snapshot, bool, error)
	Set(ctx context.Context, userID int, s *Snapshot) error
	Invalidate(ctx context.Context, userID int) error
	Backend() string
}

// ScoredCareer is a catalog career with the score it was ranked by.
type ScoredCareer struct {
	*models.Career
	Score int `json:"score"`
}

// CareerPath groups the advancement and previous steps of a career.
type CareerPath struct {
	Career      *models.Career `json:"career"`
	Advancement []ScoredCareer `json:"advancement"`
	Previous    []ScoredCareer `json:"previous"`
}

// snapshotStripes is the number of invalidation counters. Users sharing a
// stripe only cost each other a skipped cache write.
const snapshotStripes = 256

// Assembler scores the catalog for feeds, related careers and career paths.
// It keeps no per-request state and is safe for concurrent use.
type Assembler struct {
	cfg     Config
	catalog CatalogSource
	prefs   PreferenceSource
	cache   SnapshotCache
	logger  zerolog.Logger

	// generations is bumped by InvalidateSnapshot. A load only writes to
	// the cache if its stripe did not move while it read the store.
	generations [snapshotStripes]atomic.Uint64
}

// NewAssembler creates an assembler. cache may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAssembler(cfg Config, catalog CatalogSource, prefs PreferenceSource, cache SnapshotCache, logger zerolog.Logger) (*Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil || prefs == nil {
		return nil, errors.New("catalog and preference source are required")
	}
	return &Assembler{
		cfg:     cfg,
		catalog: catalog,
		prefs:   prefs,
		cache:   cache,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// DefaultRelatedLimit is the limit used when a request omits one.
func (a *Assembler) DefaultRelatedLimit() int {
	return a.cfg.RelatedLimit
}

// Snapshot returns the user's current preference snapshot, from the cache
// when possible.
func (a *Assembler) Snapshot(ctx context.Context, userID int) (*Snapshot, error) {
	if a.cache != nil {
		s, ok, err := a.cache.Get(ctx, userID)
		switch {
		case err != nil:
			a.logger.Warn().Err(err).Int("user_id", userID).Str("backend", a.cache.Backend()).
				Msg("snapshot cache read failed")
		case ok:
			metrics.RecordSnapshotCache(a.cache.Backend(), true)
			return s, nil
		default:
			metrics.RecordSnapshotCache(a.cache.Backend(), false)
		}
	}

	gen := a.generation(userID).Load()
	elements, err := a.prefs.ListLikedElements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: liked elements for user %d: %w", ErrUnavailable, userID, err)
	}
	s := BuildSnapshot(elements)

	if a.cache != nil {
		a.storeSnapshot(ctx, userID, s, gen)
	}
	return s, nil
}

func (a *Assembler) generation(userID int) *atomic.Uint64 {
	return &a.generations[uint(userID)%snapshotStripes]
}

// storeSnapshot writes s unless an invalidation happened since gen was
// read. An invalidation racing the write itself is undone afterwards.
func (a *Assembler) storeSnapshot(ctx context.Context, userID int, s *Snapshot, gen uint64) {
	counter := a.generation(userID)
	if counter.Load() != gen {
		return
	}
	if err := a.cache.Set(ctx, userID, s); err != nil {
		a.logger.Warn().Err(err).Int("user_id", userID).Msg("snapshot cache write failed")
		return
	}
	if counter.Load() != gen {
		a.dropSnapshot(ctx, userID)
	}
}

// InvalidateSnapshot drops the cached snapshot after a preference change.
func (a *Assembler) InvalidateSnapshot(ctx context.Context, userID int) {
	a.generation(userID).Add(1)
	if a.cache == nil {
		return
	}
	a.dropSnapshot(ctx, userID)
}

func (a *Assembler) dropSnapshot(ctx context.Context, userID int) {
	if err := a.cache.Invalidate(ctx, userID); err != nil {
		a.logger.Warn().Err(err).Int("user_id", userID).Msg("snapshot cache invalidation failed")
	}
}

// PersonalizedFeed ranks the whole catalog for userID. Without any liked
// elements the catalog is returned in its natural order with zero scores,
// whatever the user's liked-careers list holds.
func (a *Assembler) PersonalizedFeed(ctx context.Context, userID int) ([]ScoredCareer, error) {
	start := time.Now()

	snapshot, err := a.Snapshot(ctx, userID)
	if err != nil {
		metrics.RecordRecommendation("preference", time.Since(start), "unavailable")
		return nil, err
	}

	careers := a.catalog.ListAll()
	out := make([]ScoredCareer, 0, len(careers))
	if snapshot.Empty() {
		for _, c := range careers {
			out = append(out, ScoredCareer{Career: c})
		}
		metrics.RecordRecommendation("preference", time.Since(start), "")
		return out, nil
	}

	for _, c := range careers {
		score, err := ScorePreference(c, snapshot)
		if err != nil {
			metrics.RecordRecommendation("preference", time.Since(start), "invalid_input")
			return nil, err
		}
		out = append(out, ScoredCareer{Career: c, Score: score})
	}
	sortByScore(out)

	metrics.RecordRecommendation("preference", time.Since(start), "")
	a.logger.Debug().
		Int("user_id", userID).
		Int("candidates", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("personalized feed ranked")
	return out, nil
}

// Related returns up to limit careers most similar to careerID, excluding
// the career itself.
func (a *Assembler) Related(ctx context.Context, careerID, limit int) ([]ScoredCareer, error) {
	start := time.Now()
	if limit < 0 {
		metrics.RecordRecommendation("similarity", time.Since(start), "invalid_input")
		return nil, fmt.Errorf("%w: limit %d is negative", ErrInvalidInput, limit)
	}
	source, ok := a.catalog.GetByID(careerID)
	if !ok {
		metrics.RecordRecommendation("similarity", time.Since(start), "not_found")
		return nil, fmt.Errorf("%w: %d", ErrNotFound, careerID)
	}

	related, err := a.rankSimilar(ctx, source)
	if err != nil {
		metrics.RecordRecommendation("similarity", time.Since(start), "invalid_input")
		return nil, err
	}
	if len(related) > limit {
		related = related[:limit]
	}
	metrics.RecordRecommendation("similarity", time.Since(start), "")
	return related, nil
}

// CareerPath selects advancement and previous steps from the careers most
// similar to careerID.
func (a *Assembler) CareerPath(ctx context.Context, careerID int) (*CareerPath, error) {
	start := time.Now()
	source, ok := a.catalog.GetByID(careerID)
	if !ok {
		metrics.RecordRecommendation("career_path", time.Since(start), "not_found")
		return nil, fmt.Errorf("%w: %d", ErrNotFound, careerID)
	}
	related, err := a.rankSimilar(ctx, source)
	if err != nil {
		metrics.RecordRecommendation("career_path", time.Since(start), "invalid_input")
		return nil, err
	}
	if len(related) > a.cfg.CareerPathPool {
		related = related[:a.cfg.CareerPathPool]
	}

	metrics.RecordRecommendation("career_path", time.Since(start), "")
	return &CareerPath{
		Career:      source,
		Advancement: Advancement(source, related),
		Previous:    PreviousSteps(source, related),
	}, nil
}

func (a *Assembler) rankSimilar(ctx context.Context, source *models.Career) ([]ScoredCareer, error) {
	careers := a.catalog.ListAll()
	out := make([]ScoredCareer, 0, len(careers))
	for _, c := range careers {
		if c.ID == source.ID {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		score, err := ScoreSimilarity(source, c)
		if err != nil {
			return nil, err
		}
		out = append(out, ScoredCareer{Career: c, Score: score})
	}
	sortByScore(out)
	return out, nil
}

// Advancement keeps same-field careers whose minimum salary is more than
// AdvancementRatio times the source's, in input order, at most
// MaxAdvancement.
func Advancement(source *models.Career, related []ScoredCareer) []ScoredCareer {
	threshold := source.SalaryMin * AdvancementRatio
	return filterSteps(related, MaxAdvancement, func(c *models.Career) bool {
		return c.Field == source.Field && c.SalaryMin > threshold
	})
}

// PreviousSteps keeps same-field careers whose maximum salary is below
// PreviousStepRatio times the source's minimum, at most MaxPreviousSteps.
func PreviousSteps(source *models.Career, related []ScoredCareer) []ScoredCareer {
	threshold := source.SalaryMin * PreviousStepRatio
	return filterSteps(related, MaxPreviousSteps, func(c *models.Career) bool {
		return c.Field == source.Field && c.SalaryMax < threshold
	})
}

func filterSteps(related []ScoredCareer, limit int, keep func(*models.Career) bool) []ScoredCareer {
	out := make([]ScoredCareer, 0, limit)
	for _, sc := range related {
		if len(out) == limit {
			break
		}
		if keep(sc.Career) {
			out = append(out, sc)
		}
	}
	return out
}

// sortByScore sorts descending; equal scores keep their relative order.
func sortByScore(items []ScoredCareer) {
	slices.SortStableFunc(items, func(x, y ScoredCareer) int {
		return cmp.Compare(y.Score, x.Score)
	})
}

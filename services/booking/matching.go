package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"impulso/apperrors"
	jovemRepo "impulso/database/repository/jovem"
	"impulso/models"
	"impulso/services/availability"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ratingTieThreshold: when two ratings are this close, the less-utilized
// jovem wins the tie (load balancing among near-equal quality).
const ratingTieThreshold = 0.5

// matchCacheTTL bounds staleness of the cached candidate (location + skill)
// set. Availability is never cached: it changes with every booking write.
const matchCacheTTL = 5 * time.Minute

// Matcher computes the eligible-jovem set for a request and ranks it.
type Matcher struct {
	Jovens       jovemRepo.JovemRepository
	Availability *availability.Evaluator

	// CacheClient is optional; nil disables result caching.
	CacheClient *redis.Client
	Logger      *zap.Logger
}

// EligibleJovens returns the ranked jovens able to serve the service for the
// client at date/time. The client location narrows the set only when known.
// Only the candidate (location + skill) set is cache-eligible; the schedule
// screen runs on every call so a booking created seconds ago already blocks
// the slot.
func (m *Matcher) EligibleJovens(ctx context.Context, svc *models.Service, clientLoc models.Location, date, timeStr string) ([]models.Jovem, error) {
	cacheKey := m.cacheKey(svc.ID, clientLoc)
	candidates, ok := m.fromCache(ctx, cacheKey)
	if !ok {
		all, err := m.Jovens.ListAvailable(ctx)
		if err != nil {
			return nil, apperrors.Storage(err, "failed to load jovens for matching")
		}
		for _, j := range all {
			if clientLoc.Known() && j.Location.Known() && !j.Location.Matches(clientLoc) {
				continue
			}
			if !j.Skills.Allows(svc.ID, svc.Category) {
				continue
			}
			candidates = append(candidates, j)
		}
		m.toCache(ctx, cacheKey, candidates)
	}

	eligible, err := m.screenSchedules(ctx, candidates, date, timeStr)
	if err != nil {
		return nil, err
	}
	RankJovens(eligible)
	return eligible, nil
}

// screenSchedules drops every candidate with a schedule conflict at date/time.
func (m *Matcher) screenSchedules(ctx context.Context, candidates []models.Jovem, date, timeStr string) ([]models.Jovem, error) {
	var eligible []models.Jovem
	for _, j := range candidates {
		ok, err := m.Availability.IsAvailable(ctx, &j, date, timeStr)
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, j)
		}
	}
	return eligible, nil
}

// RankJovens sorts in place: descending by rating, except that ratings within
// the tie threshold are broken by ascending completed-service count. The sort
// is stable, so fully equal jovens keep discovery order.
func RankJovens(jovens []models.Jovem) {
	sort.SliceStable(jovens, func(i, j int) bool {
		a, b := jovens[i].Stats, jovens[j].Stats
		diff := a.Rating - b.Rating
		if diff < 0 {
			diff = -diff
		}
		if diff <= ratingTieThreshold {
			return a.CompletedServices < b.CompletedServices
		}
		return a.Rating > b.Rating
	})
}

// Snapshot copies the top n ranked jovens into the bounded recommendation
// snapshot stored on the booking.
func Snapshot(ranked []models.Jovem, n int) []models.RecommendedJovem {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]models.RecommendedJovem, 0, n)
	for _, j := range ranked[:n] {
		out = append(out, models.RecommendedJovem{
			ID:                j.ID,
			Name:              j.Name,
			Rating:            j.Stats.Rating,
			CompletedServices: j.Stats.CompletedServices,
			OngID:             j.OngID,
		})
	}
	return out
}

func (m *Matcher) cacheKey(serviceID string, loc models.Location) string {
	return fmt.Sprintf("match:%s:%s:%s", serviceID, loc.State, loc.City)
}

func (m *Matcher) fromCache(ctx context.Context, key string) ([]models.Jovem, bool) {
	if m.CacheClient == nil {
		return nil, false
	}
	cached, err := m.CacheClient.Get(ctx, key).Result()
	if err != nil || cached == "" {
		return nil, false
	}
	var jovens []models.Jovem
	if err := json.Unmarshal([]byte(cached), &jovens); err != nil {
		return nil, false
	}
	return jovens, true
}

func (m *Matcher) toCache(ctx context.Context, key string, jovens []models.Jovem) {
	if m.CacheClient == nil {
		return
	}
	b, err := json.Marshal(jovens)
	if err != nil {
		return
	}
	if err := m.CacheClient.Set(ctx, key, b, matchCacheTTL).Err(); err != nil && m.Logger != nil {
		m.Logger.Warn("failed to cache matching result", zap.Error(err))
	}
}

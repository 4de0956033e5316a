// Package review records append-only reviews and rolls a jovem's derived
// statistics up from them.
package review

import (
	"context"

	"impulso/apperrors"
	jovemRepo "impulso/database/repository/jovem"
	reviewRepo "impulso/database/repository/review"
	"impulso/models"
)

// Service manages reviews and the statistics rollup.
type Service interface {
	// Complete appends the completion review and applies the full rollup:
	// the rating average is recomputed as a re-scan over every review
	// attributed to the jovem, completed count is incremented, rating*10
	// points are granted, and finalPrice is added to cumulative earnings.
	// All four fields land in one write.
	Complete(ctx context.Context, rev models.Review, finalPrice float64) (*models.Review, error)

	// Create appends a standalone review. Jovem-targeted reviews refresh the
	// rating average; counters and earnings are untouched.
	Create(ctx context.Context, rev models.Review) (*models.Review, error)

	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Reviews reviewRepo.ReviewRepository
	Jovens  jovemRepo.JovemRepository
}

func (s *DefaultService) Complete(ctx context.Context, rev models.Review, finalPrice float64) (*models.Review, error) {
	if rev.Rating < 1 || rev.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5, got %d", rev.Rating)
	}
	rev.TargetType = models.ReviewTargetJovem

	jovem, err := s.Jovens.GetByID(ctx, rev.JovemID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load jovem %s", rev.JovemID)
	}
	if jovem == nil {
		return nil, apperrors.NotFound("jovem %s not found", rev.JovemID)
	}

	id, err := s.Reviews.Create(ctx, rev)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to persist review")
	}
	rev.ID = id

	average, err := s.rescanAverage(ctx, rev.JovemID)
	if err != nil {
		return nil, err
	}

	stats := jovem.Stats
	stats.Rating = average
	stats.CompletedServices++
	stats.Points += rev.Rating * 10
	stats.TotalEarnings += finalPrice
	if err := s.Jovens.UpdateStats(ctx, jovem.ID, stats); err != nil {
		return nil, apperrors.Storage(err, "failed to update jovem statistics")
	}

	return &rev, nil
}

func (s *DefaultService) Create(ctx context.Context, rev models.Review) (*models.Review, error) {
	if rev.Rating < 1 || rev.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5, got %d", rev.Rating)
	}
	if rev.TargetType == "" {
		rev.TargetType = models.ReviewTargetJovem
	}

	id, err := s.Reviews.Create(ctx, rev)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to persist review")
	}
	rev.ID = id

	if rev.TargetType != models.ReviewTargetJovem {
		return &rev, nil
	}

	jovem, err := s.Jovens.GetByID(ctx, rev.JovemID)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to load jovem %s", rev.JovemID)
	}
	if jovem == nil {
		return nil, apperrors.NotFound("jovem %s not found", rev.JovemID)
	}

	average, err := s.rescanAverage(ctx, rev.JovemID)
	if err != nil {
		return nil, err
	}
	stats := jovem.Stats
	stats.Rating = average
	if err := s.Jovens.UpdateStats(ctx, jovem.ID, stats); err != nil {
		return nil, apperrors.Storage(err, "failed to update jovem statistics")
	}

	return &rev, nil
}

func (s *DefaultService) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	reviews, err := s.Reviews.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to list reviews")
	}
	return reviews, nil
}

// rescanAverage recomputes the mean over every historical review attributed
// to the jovem. Deliberately not an incremental running average: a re-scan
// cannot drift.
func (s *DefaultService) rescanAverage(ctx context.Context, jovemID string) (float64, error) {
	reviews, err := s.Reviews.GetByJovemID(ctx, jovemID)
	if err != nil {
		return 0, apperrors.Storage(err, "failed to load reviews for jovem %s", jovemID)
	}
	if len(reviews) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}

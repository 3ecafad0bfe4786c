package application

import (
	"context"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/healthdiary/api/internal/domain/entity"
	repo "github.com/healthdiary/api/internal/domain/repository"
	"github.com/healthdiary/api/pkg/helpers"
)

const (
	recentSymptomLimit = 5
	statsCacheTTL      = 30 * time.Second
)

func statsCacheKey(userID string) string {
	return "stats:overview:" + userID
}

// StatsService computes per-user summary metrics. Overviews are cached in
// Redis for a short window and invalidated on every diary mutation.
type StatsService struct {
	Symptoms    repo.SymptomRepository
	Medications repo.MedicationRepository
	Cache       *redis.Client
	Logger      *logrus.Logger
}

func NewStatsService(symptoms repo.SymptomRepository, medications repo.MedicationRepository, cache *redis.Client, logger *logrus.Logger) *StatsService {
	return &StatsService{Symptoms: symptoms, Medications: medications, Cache: cache, Logger: logger}
}

// Overview aggregates counts, the intensity histogram, and the five most
// recent symptoms. A user with no records gets zero counts and empty lists.
func (s *StatsService) Overview(ctx context.Context, userID string) (*entity.StatsOverview, error) {
	if s.Cache != nil {
		var cached entity.StatsOverview
		if ok, err := helpers.RedisGetJSON(ctx, s.Cache, statsCacheKey(userID), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	symptomCount, err := s.Symptoms.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	medicationCount, err := s.Medications.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	intensityCounts, err := s.Symptoms.IntensityCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.Symptoms.RecentByUser(ctx, userID, recentSymptomLimit)
	if err != nil {
		return nil, err
	}

	overview := &entity.StatsOverview{
		IntensityStats: histogram(intensityCounts),
		RecentSymptoms: recent,
		Timestamp:      time.Now().UTC(),
	}
	overview.Counts.Symptoms = symptomCount
	overview.Counts.Medications = medicationCount

	if s.Cache != nil {
		if err := helpers.RedisSetJSON(ctx, s.Cache, statsCacheKey(userID), overview, statsCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("stats cache write failed")
		}
	}
	return overview, nil
}

// histogram turns raw per-intensity counts into buckets with percentages
// over all intensity-tagged rows, rounded to two decimals.
func histogram(counts []entity.IntensityCount) []entity.IntensityBucket {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	buckets := make([]entity.IntensityBucket, 0, len(counts))
	for _, c := range counts {
		buckets = append(buckets, entity.IntensityBucket{
			Intensity:  c.Intensity,
			Count:      c.Count,
			Percentage: round2(float64(c.Count) * 100 / float64(total)),
		})
	}
	return buckets
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

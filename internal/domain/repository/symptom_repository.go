package repository

import (
	"context"

	"github.com/healthdiary/api/internal/domain/entity"
)

// SymptomRepository defines owner-scoped symptom persistence. Every query
// carries the owner predicate; callers never filter after the fact.
type SymptomRepository interface {
	Create(ctx context.Context, s *entity.Symptom) error
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.Symptom, error)
	// DeleteOwned removes the row only when it belongs to userID and
	// returns ErrNotFound otherwise.
	DeleteOwned(ctx context.Context, id, userID string) error
	CountByUser(ctx context.Context, userID string) (int, error)
	IntensityCounts(ctx context.Context, userID string) ([]entity.IntensityCount, error)
	RecentByUser(ctx context.Context, userID string, limit int) ([]entity.RecentSymptom, error)
}

package repository

import (
	"context"

	"github.com/healthdiary/api/internal/domain/entity"
)

// MedicationRepository defines owner-scoped medication persistence.
type MedicationRepository interface {
	Create(ctx context.Context, m *entity.Medication) error
	ListByUser(ctx context.Context, userID string, limit int) ([]entity.Medication, error)
	DeleteOwned(ctx context.Context, id, userID string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

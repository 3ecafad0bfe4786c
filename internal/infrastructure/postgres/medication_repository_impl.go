package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthdiary/api/internal/domain/entity"
	"github.com/healthdiary/api/internal/domain/repository"
)

type MedicationRepository struct {
	pool *pgxpool.Pool
}

func NewMedicationRepository(pool *pgxpool.Pool) *MedicationRepository {
	return &MedicationRepository{pool: pool}
}

func (r *MedicationRepository) Create(ctx context.Context, m *entity.Medication) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO medications (user_id, name, dosage, frequency, taken_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, m.UserID, m.Name, m.Dosage, m.Frequency, m.TakenAt, m.Notes)

	return row.Scan(&m.ID, &m.CreatedAt)
}

// ListByUser orders by intake time when recorded, falling back to the row
// timestamp. Medications logged for a past intake sort accordingly.
func (r *MedicationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.Medication, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, dosage, frequency, taken_at, notes, created_at
		FROM medications
		WHERE user_id = $1
		ORDER BY COALESCE(taken_at, created_at) DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Medication, 0)
	for rows.Next() {
		var m entity.Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.TakenAt, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicationRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM medications WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MedicationRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM medications WHERE user_id = $1
	`, userID).Scan(&n)
	return n, err
}

var _ repository.MedicationRepository = (*MedicationRepository)(nil)

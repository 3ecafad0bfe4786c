package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthdiary/api/internal/domain/entity"
	"github.com/healthdiary/api/internal/domain/repository"
)

type SymptomRepository struct {
	pool *pgxpool.Pool
}

func NewSymptomRepository(pool *pgxpool.Pool) *SymptomRepository {
	return &SymptomRepository{pool: pool}
}

func (r *SymptomRepository) Create(ctx context.Context, s *entity.Symptom) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO symptoms (user_id, description, intensity, location, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, s.UserID, s.Description, s.Intensity, s.Location, s.Notes)

	return row.Scan(&s.ID, &s.CreatedAt)
}

func (r *SymptomRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entity.Symptom, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, description, intensity, location, notes, created_at
		FROM symptoms
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Symptom, 0)
	for rows.Next() {
		var s entity.Symptom
		if err := rows.Scan(&s.ID, &s.UserID, &s.Description, &s.Intensity, &s.Location, &s.Notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SymptomRepository) DeleteOwned(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM symptoms WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SymptomRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM symptoms WHERE user_id = $1
	`, userID).Scan(&n)
	return n, err
}

func (r *SymptomRepository) IntensityCounts(ctx context.Context, userID string) ([]entity.IntensityCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT intensity, COUNT(*)
		FROM symptoms
		WHERE intensity IS NOT NULL AND user_id = $1
		GROUP BY intensity
		ORDER BY intensity
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.IntensityCount, 0)
	for rows.Next() {
		var c entity.IntensityCount
		if err := rows.Scan(&c.Intensity, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SymptomRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]entity.RecentSymptom, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT description, intensity, created_at
		FROM symptoms
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.RecentSymptom, 0)
	for rows.Next() {
		var s entity.RecentSymptom
		if err := rows.Scan(&s.Description, &s.Intensity, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

var _ repository.SymptomRepository = (*SymptomRepository)(nil)

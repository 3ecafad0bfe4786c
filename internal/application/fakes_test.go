package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/healthdiary/api/internal/domain/entity"
	"github.com/healthdiary/api/internal/domain/repository"
)

// In-memory repository fakes. They reproduce the owner predicates of the
// real queries so isolation behavior can be exercised without Postgres.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{} }

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.ID == id {
			u := e
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == email {
			u := e
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeSymptomRepo struct {
	mu   sync.Mutex
	rows []entity.Symptom
	seq  int
}

func newFakeSymptomRepo() *fakeSymptomRepo { return &fakeSymptomRepo{} }

// nextTime spaces row timestamps one second apart so ordering is stable.
func (r *fakeSymptomRepo) nextTime() time.Time {
	r.seq++
	return time.Unix(1700000000, 0).Add(time.Duration(r.seq) * time.Second)
}

func (r *fakeSymptomRepo) Create(_ context.Context, s *entity.Symptom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = uuid.NewString()
	s.CreatedAt = r.nextTime()
	r.rows = append(r.rows, *s)
	return nil
}

func (r *fakeSymptomRepo) ListByUser(_ context.Context, userID string, limit int) ([]entity.Symptom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Symptom, 0)
	for _, e := range r.rows {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSymptomRepo) DeleteOwned(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.rows {
		if e.ID == id && e.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeSymptomRepo) CountByUser(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.rows {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSymptomRepo) IntensityCounts(_ context.Context, userID string) ([]entity.IntensityCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byIntensity := map[int]int{}
	for _, e := range r.rows {
		if e.UserID == userID && e.Intensity != nil {
			byIntensity[*e.Intensity]++
		}
	}
	out := make([]entity.IntensityCount, 0, len(byIntensity))
	for intensity, count := range byIntensity {
		out = append(out, entity.IntensityCount{Intensity: intensity, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Intensity < out[j].Intensity })
	return out, nil
}

func (r *fakeSymptomRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]entity.RecentSymptom, error) {
	rows, err := r.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]entity.RecentSymptom, 0, len(rows))
	for _, e := range rows {
		out = append(out, entity.RecentSymptom{Description: e.Description, Intensity: e.Intensity, CreatedAt: e.CreatedAt})
	}
	return out, nil
}

type fakeMedicationRepo struct {
	mu   sync.Mutex
	rows []entity.Medication
	seq  int
}

func newFakeMedicationRepo() *fakeMedicationRepo { return &fakeMedicationRepo{} }

func (r *fakeMedicationRepo) nextTime() time.Time {
	r.seq++
	return time.Unix(1700000000, 0).Add(time.Duration(r.seq) * time.Second)
}

func (r *fakeMedicationRepo) Create(_ context.Context, m *entity.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = uuid.NewString()
	m.CreatedAt = r.nextTime()
	r.rows = append(r.rows, *m)
	return nil
}

func (r *fakeMedicationRepo) ListByUser(_ context.Context, userID string, limit int) ([]entity.Medication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Medication, 0)
	for _, e := range r.rows {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sortKey := func(m entity.Medication) time.Time {
		if m.TakenAt != nil {
			return *m.TakenAt
		}
		return m.CreatedAt
	}
	sort.Slice(out, func(i, j int) bool { return sortKey(out[i]).After(sortKey(out[j])) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMedicationRepo) DeleteOwned(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.rows {
		if e.ID == id && e.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeMedicationRepo) CountByUser(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.rows {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

var (
	_ repository.UserRepository       = (*fakeUserRepo)(nil)
	_ repository.SymptomRepository    = (*fakeSymptomRepo)(nil)
	_ repository.MedicationRepository = (*fakeMedicationRepo)(nil)
)

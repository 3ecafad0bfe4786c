package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/healthdiary/api/internal/application"
	"github.com/healthdiary/api/internal/domain/entity"
	"github.com/healthdiary/api/internal/domain/repository"
	"github.com/healthdiary/api/internal/interface/middleware"
	"github.com/healthdiary/api/pkg/helpers"
	"github.com/healthdiary/api/pkg/response"
	"github.com/healthdiary/api/pkg/validation"
)

// Full-stack fixture: real services and handlers over in-memory
// repositories, exercised through the actual routes and auth gateway.

type memUserRepo struct {
	mu    sync.Mutex
	users []entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
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

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
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

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
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

type memSymptomRepo struct {
	mu   sync.Mutex
	rows []entity.Symptom
	seq  int
}

func (r *memSymptomRepo) Create(_ context.Context, s *entity.Symptom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	s.ID = uuid.NewString()
	s.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(r.seq) * time.Second)
	r.rows = append(r.rows, *s)
	return nil
}

func (r *memSymptomRepo) ListByUser(_ context.Context, userID string, limit int) ([]entity.Symptom, error) {
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

func (r *memSymptomRepo) DeleteOwned(_ context.Context, id, userID string) error {
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

func (r *memSymptomRepo) CountByUser(_ context.Context, userID string) (int, error) {
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

func (r *memSymptomRepo) IntensityCounts(_ context.Context, userID string) ([]entity.IntensityCount, error) {
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

func (r *memSymptomRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]entity.RecentSymptom, error) {
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

type memMedicationRepo struct {
	mu   sync.Mutex
	rows []entity.Medication
	seq  int
}

func (r *memMedicationRepo) Create(_ context.Context, m *entity.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = uuid.NewString()
	m.CreatedAt = time.Unix(1700000000, 0).Add(time.Duration(r.seq) * time.Second)
	r.rows = append(r.rows, *m)
	return nil
}

func (r *memMedicationRepo) ListByUser(_ context.Context, userID string, limit int) ([]entity.Medication, error) {
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

func (r *memMedicationRepo) DeleteOwned(_ context.Context, id, userID string) error {
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

func (r *memMedicationRepo) CountByUser(_ context.Context, userID string) (int, error) {
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

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := testLogger()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	users := &memUserRepo{}
	symptoms := &memSymptomRepo{}
	medications := &memMedicationRepo{}

	authSvc := application.NewAuthService(users, jwt, logger)
	diarySvc := application.NewDiaryService(symptoms, medications, nil, logger)
	statsSvc := application.NewStatsService(symptoms, medications, nil, logger)

	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "resource not found")
	})

	api := r.Group("/api")
	authHandler := NewAuthHandler(authSvc, logger)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.Auth(jwt))
	{
		protected.GET("/auth/me", authHandler.Me)

		symptomHandler := NewSymptomHandler(diarySvc, logger)
		protected.GET("/symptoms", symptomHandler.List)
		protected.POST("/symptoms", symptomHandler.Create)
		protected.DELETE("/symptoms/:id", symptomHandler.Delete)

		medicationHandler := NewMedicationHandler(diarySvc, logger)
		protected.GET("/medications", medicationHandler.List)
		protected.POST("/medications", medicationHandler.Create)
		protected.DELETE("/medications/:id", medicationHandler.Delete)

		protected.GET("/stats", NewStatsHandler(statsSvc, logger).Overview)
	}
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

// registerUser creates an account through the API and returns (userID, token).
func registerUser(t *testing.T, r *gin.Engine, email string) (string, string) {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "abcdef",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var data struct {
		User  struct{ ID string `json:"id"` } `json:"user"`
		Token string                          `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.User.ID, data.Token
}

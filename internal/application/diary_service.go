package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/healthdiary/api/internal/domain/entity"
	repo "github.com/healthdiary/api/internal/domain/repository"
	"github.com/healthdiary/api/pkg/helpers"
)

const (
	listLimit        = 100
	defaultIntensity = 5
	minIntensity     = 1
	maxIntensity     = 10
)

// DiaryService performs owner-scoped CRUD on symptoms and medications.
// The owner always comes from the authenticated identity, never from the
// request body.
type DiaryService struct {
	Symptoms    repo.SymptomRepository
	Medications repo.MedicationRepository
	Cache       *redis.Client
	Logger      *logrus.Logger
}

func NewDiaryService(symptoms repo.SymptomRepository, medications repo.MedicationRepository, cache *redis.Client, logger *logrus.Logger) *DiaryService {
	return &DiaryService{Symptoms: symptoms, Medications: medications, Cache: cache, Logger: logger}
}

type SymptomInput struct {
	Description string
	Intensity   *int
	Location    string
	Notes       string
}

func (s *DiaryService) AddSymptom(ctx context.Context, userID string, in SymptomInput) (*entity.Symptom, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, invalid("description is required")
	}
	intensity := defaultIntensity
	if in.Intensity != nil {
		intensity = *in.Intensity
	}
	if intensity < minIntensity || intensity > maxIntensity {
		return nil, invalid("intensity must be between 1 and 10")
	}
	sym := &entity.Symptom{
		UserID:      userID,
		Description: desc,
		Intensity:   &intensity,
		Location:    in.Location,
		Notes:       in.Notes,
	}
	if err := s.Symptoms.Create(ctx, sym); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, userID)
	return sym, nil
}

func (s *DiaryService) ListSymptoms(ctx context.Context, userID string) ([]entity.Symptom, error) {
	return s.Symptoms.ListByUser(ctx, userID, listLimit)
}

func (s *DiaryService) DeleteSymptom(ctx context.Context, userID, id string) error {
	// An unparseable id cannot match any row; report it the same way as a
	// foreign or missing one.
	if _, err := uuid.Parse(id); err != nil {
		return ErrRecordNotFound
	}
	if err := s.Symptoms.DeleteOwned(ctx, id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	s.invalidateStats(ctx, userID)
	return nil
}

type MedicationInput struct {
	Name      string
	Dosage    string
	Frequency string
	TakenAt   *time.Time
	Notes     string
}

func (s *DiaryService) AddMedication(ctx context.Context, userID string, in MedicationInput) (*entity.Medication, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	takenAt := in.TakenAt
	if takenAt == nil {
		now := time.Now()
		takenAt = &now
	}
	med := &entity.Medication{
		UserID:    userID,
		Name:      name,
		Dosage:    in.Dosage,
		Frequency: in.Frequency,
		TakenAt:   takenAt,
		Notes:     in.Notes,
	}
	if err := s.Medications.Create(ctx, med); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, userID)
	return med, nil
}

func (s *DiaryService) ListMedications(ctx context.Context, userID string) ([]entity.Medication, error) {
	return s.Medications.ListByUser(ctx, userID, listLimit)
}

func (s *DiaryService) DeleteMedication(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrRecordNotFound
	}
	if err := s.Medications.DeleteOwned(ctx, id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	s.invalidateStats(ctx, userID)
	return nil
}

// invalidateStats drops the cached stats overview after any mutation.
// Best effort; the cache repopulates on the next read.
func (s *DiaryService) invalidateStats(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Cache, statsCacheKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("stats cache invalidation failed")
	}
}

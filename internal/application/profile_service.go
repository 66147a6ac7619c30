package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

// ProfileService manages the saved profile so repeat evaluations only need
// the current measurements.
type ProfileService struct {
	store domain.ProfileStore
	now   func() time.Time
}

func NewProfileService(store domain.ProfileStore) *ProfileService {
	return &ProfileService{store: store, now: time.Now}
}

// Save validates and stores p, stamping UpdatedAt.
func (s *ProfileService) Save(dataDir string, p domain.Profile) (*domain.Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = s.now().UTC()
	if err := s.store.Save(dataDir, p); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return &p, nil
}

// Load returns the saved profile or domain.ErrProfileNotFound.
func (s *ProfileService) Load(dataDir string) (*domain.Profile, error) {
	return s.store.Load(dataDir)
}

// Delete removes the saved profile. Deleting a missing profile is not an
// error.
func (s *ProfileService) Delete(dataDir string) error {
	return s.store.Delete(dataDir)
}

// BaseInput returns an evaluation input prefilled from the saved profile,
// together with that profile. Without a saved profile only the measurements
// and reference date are set and the returned profile is nil.
func (s *ProfileService) BaseInput(dataDir string, weightKg, waistCm float64, reference jalali.Date) (domain.EvaluationInput, *domain.Profile, error) {
	p, err := s.store.Load(dataDir)
	switch {
	case err == nil:
		return InputFromProfile(*p, weightKg, waistCm, reference), p, nil
	case errors.Is(err, domain.ErrProfileNotFound):
		return domain.EvaluationInput{ReferenceDate: reference, WeightKg: weightKg, WaistCm: waistCm}, nil, nil
	default:
		return domain.EvaluationInput{}, nil, fmt.Errorf("loading profile: %w", err)
	}
}

// InputFromProfile combines a profile with today's measurements.
func InputFromProfile(p domain.Profile, weightKg, waistCm float64, reference jalali.Date) domain.EvaluationInput {
	return domain.EvaluationInput{
		Gender:        p.Gender,
		BirthDate:     p.BirthDate,
		ReferenceDate: reference,
		HeightCm:      p.HeightCm,
		WeightKg:      weightKg,
		WaistCm:       waistCm,
		ActivityLevel: p.ActivityLevel,
	}
}

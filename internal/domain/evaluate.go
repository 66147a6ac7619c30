package domain

import (
	"fmt"
	"math"

	"github.com/abdidvp/growthcheck/internal/domain/growth"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

type bounds struct{ min, max float64 }

var (
	heightRange = bounds{50, 250}
	weightRange = bounds{2, 300}
	waistRange  = bounds{30, 250}
)

func checkRange(name string, v float64, b bounds) error {
	if math.IsNaN(v) || v < b.min || v > b.max {
		return fmt.Errorf("%w: %s = %g (must be between %g and %g)", ErrOutOfRangeInput, name, v, b.min, b.max)
	}
	return nil
}

// EvaluationInput is everything one evaluation needs. ReferenceDate is the
// caller's "today"; the core never reads the clock. WaistCm is optional and
// zero means not measured.
type EvaluationInput struct {
	Gender        Gender        `json:"gender"`
	BirthDate     jalali.Date   `json:"birth_date"`
	ReferenceDate jalali.Date   `json:"reference_date"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	WaistCm       float64       `json:"waist_cm,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// Validate checks enumerations and plausible ranges. Calendar checks happen
// in NormalizeAge.
func (in EvaluationInput) Validate() error {
	if !in.Gender.IsValid() {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, in.Gender)
	}
	if !in.ActivityLevel.IsValid() {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, in.ActivityLevel)
	}
	if err := checkRange("height_cm", in.HeightCm, heightRange); err != nil {
		return err
	}
	if err := checkRange("weight_kg", in.WeightKg, weightRange); err != nil {
		return err
	}
	if in.WaistCm != 0 {
		if err := checkRange("waist_cm", in.WaistCm, waistRange); err != nil {
			return err
		}
	}
	return nil
}

// Evaluation is the complete, immutable result of one evaluation. Values keep
// full precision; rounding is left to presentation.
type Evaluation struct {
	Input EvaluationInput `json:"input"`

	BMI            float64 `json:"bmi"`
	AgeYears       int     `json:"age_years"`
	AgeMonths      int     `json:"age_months"`
	AgeDays        int     `json:"age_days"`
	AgeMonthsExact float64 `json:"age_months_exact"`
	AgeYearsExact  float64 `json:"age_years_exact"`

	Branch             Branch         `json:"branch"`
	Category           Category       `json:"category"`
	ZScore             *float64       `json:"z_score,omitempty"`
	LMS                *growth.Params `json:"lms,omitempty"`
	HealthyWeightRange HealthyRange   `json:"healthy_weight_range_kg"`
	WeightToHealthyKg  float64        `json:"weight_to_healthy_kg"`
	WaistToHeight      *WaistRatio    `json:"waist_to_height,omitempty"`

	BMR            float64        `json:"bmr"`
	TDEE           float64        `json:"tdee"`
	CalorieTargets CalorieTargets `json:"calorie_targets"`
}

// Evaluate runs the whole pipeline: age, branch, BMI classification, healthy
// range and energy needs. It either returns a complete Evaluation or an error
// wrapping one of the package sentinels. A nil table means growth.Default().
func Evaluate(in EvaluationInput, table *growth.Table, policy CaloriePolicy) (*Evaluation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	age, err := NormalizeAge(in.BirthDate, in.ReferenceDate)
	if err != nil {
		return nil, err
	}
	branch, err := age.Branch()
	if err != nil {
		return nil, err
	}
	if table == nil {
		table = growth.Default()
	}

	ev := &Evaluation{
		Input:          in,
		BMI:            BMI(in.WeightKg, in.HeightCm),
		AgeYears:       age.Years,
		AgeMonths:      age.Months,
		AgeDays:        age.Days,
		AgeMonthsExact: age.TotalMonths,
		AgeYearsExact:  age.TotalYears,
		Branch:         branch,
	}

	switch branch {
	case BranchMinor:
		p := table.Interpolate(in.Gender.Sex(), age.TotalMonths)
		z := growth.BMIToZ(ev.BMI, p)
		healthy, err := MinorHealthyRange(p, in.HeightCm)
		if err != nil {
			return nil, fmt.Errorf("healthy range at %.2f months: %w", age.TotalMonths, err)
		}
		ev.ZScore = &z
		ev.LMS = &p
		ev.Category = ClassifyMinor(z)
		ev.HealthyWeightRange = healthy
	default:
		ev.Category = ClassifyAdult(ev.BMI)
		ev.HealthyWeightRange = AdultHealthyRange(in.HeightCm)
	}
	ev.WeightToHealthyKg = ev.HealthyWeightRange.DistanceKg(in.WeightKg)

	if in.WaistCm != 0 {
		w := WaistToHeight(in.WaistCm, in.HeightCm)
		ev.WaistToHeight = &w
	}

	ev.BMR = BMR(in.WeightKg, in.HeightCm, age.TotalYears, in.Gender)
	ev.TDEE = TDEE(ev.BMR, in.ActivityLevel)
	ev.CalorieTargets = policy.Targets(ev.TDEE)
	return ev, nil
}

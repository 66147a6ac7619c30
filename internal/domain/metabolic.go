package domain

import "fmt"

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(weightKg, heightCm, ageYears float64, g Gender) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears
	if g == GenderFemale {
		return bmr - 161
	}
	return bmr + 5
}

// TDEE scales a BMR by the activity multiplier.
func TDEE(bmr float64, level ActivityLevel) float64 {
	return bmr * level.Multiplier()
}

// CaloriePolicy holds the offsets applied to TDEE for the gain and loss
// targets.
type CaloriePolicy struct {
	Surplus float64 `yaml:"surplus" json:"surplus"`
	Deficit float64 `yaml:"deficit" json:"deficit"`
}

// DefaultCaloriePolicy is +300 kcal to gain and -500 kcal to lose.
func DefaultCaloriePolicy() CaloriePolicy {
	return CaloriePolicy{Surplus: 300, Deficit: 500}
}

// Validate checks that both offsets are non-negative and at most 1500 kcal.
func (p CaloriePolicy) Validate() error {
	if p.Surplus < 0 || p.Surplus > 1500 {
		return fmt.Errorf("calories.surplus = %.0f (must be between 0 and 1500)", p.Surplus)
	}
	if p.Deficit < 0 || p.Deficit > 1500 {
		return fmt.Errorf("calories.deficit = %.0f (must be between 0 and 1500)", p.Deficit)
	}
	return nil
}

// CalorieTargets are daily intake goals in kcal.
type CalorieTargets struct {
	Maintain float64 `json:"maintain"`
	Surplus  float64 `json:"surplus"`
	Deficit  float64 `json:"deficit"`
}

// Targets applies the policy to a TDEE.
func (p CaloriePolicy) Targets(tdee float64) CalorieTargets {
	return CalorieTargets{
		Maintain: tdee,
		Surplus:  tdee + p.Surplus,
		Deficit:  tdee - p.Deficit,
	}
}

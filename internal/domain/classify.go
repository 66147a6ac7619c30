package domain

import (
	"fmt"

	"github.com/abdidvp/growthcheck/internal/domain/growth"
)

// Category is the weight status of an evaluation. Values are stable
// identifiers; presentation adapters choose the wording.
type Category string

const (
	CategorySevereUnderweight Category = "severe_underweight"
	CategoryUnderweight       Category = "underweight"
	CategoryNormal            Category = "normal"
	CategoryOverweight        Category = "overweight"
	CategoryObese             Category = "obese"
	CategoryObesityClass1     Category = "obesity_class_1"
	CategoryObesityClass2     Category = "obesity_class_2"
	CategoryObesityClass3     Category = "obesity_class_3"
)

// Z-score cut-offs of the WHO 2007 BMI-for-age reference.
const (
	minorSevereZ     = -3.0
	minorLowerZ      = -2.0
	minorUpperZ      = 1.0
	minorOverweightZ = 2.0
)

// Adult BMI cut-offs.
const (
	adultUnderweightBMI = 18.5
	adultOverweightBMI  = 25.0
	adultObesity1BMI    = 30.0
	adultObesity2BMI    = 35.0
	adultObesity3BMI    = 40.0

	adultHealthyMinBMI = 18.5
	adultHealthyMaxBMI = 24.9
)

// ClassifyMinor maps a BMI-for-age Z-score onto a category.
func ClassifyMinor(z float64) Category {
	switch {
	case z < minorSevereZ:
		return CategorySevereUnderweight
	case z < minorLowerZ:
		return CategoryUnderweight
	case z <= minorUpperZ:
		return CategoryNormal
	case z <= minorOverweightZ:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// ClassifyAdult maps an adult BMI onto a category.
func ClassifyAdult(bmi float64) Category {
	switch {
	case bmi < adultUnderweightBMI:
		return CategoryUnderweight
	case bmi < adultOverweightBMI:
		return CategoryNormal
	case bmi < adultObesity1BMI:
		return CategoryOverweight
	case bmi < adultObesity2BMI:
		return CategoryObesityClass1
	case bmi < adultObesity3BMI:
		return CategoryObesityClass2
	default:
		return CategoryObesityClass3
	}
}

// HealthyRange is the weight interval, in kg, considered healthy for the
// subject's height.
type HealthyRange struct {
	MinKg float64 `json:"min_kg"`
	MaxKg float64 `json:"max_kg"`
}

// MinorHealthyRange returns the weights whose BMI-for-age lies between
// z = -2 and z = +1 under p.
func MinorHealthyRange(p growth.Params, heightCm float64) (HealthyRange, error) {
	lo, err := growth.ZToBMI(minorLowerZ, p)
	if err != nil {
		return HealthyRange{}, fmt.Errorf("lower bound: %w", err)
	}
	hi, err := growth.ZToBMI(minorUpperZ, p)
	if err != nil {
		return HealthyRange{}, fmt.Errorf("upper bound: %w", err)
	}
	h := heightMeters(heightCm)
	return HealthyRange{MinKg: lo * h * h, MaxKg: hi * h * h}, nil
}

// AdultHealthyRange returns the weights for a BMI of 18.5 to 24.9.
func AdultHealthyRange(heightCm float64) HealthyRange {
	h := heightMeters(heightCm)
	return HealthyRange{MinKg: adultHealthyMinBMI * h * h, MaxKg: adultHealthyMaxBMI * h * h}
}

// Contains reports whether weightKg lies inside the range.
func (r HealthyRange) Contains(weightKg float64) bool {
	return weightKg >= r.MinKg && weightKg <= r.MaxKg
}

// DistanceKg is the signed change that brings weightKg into the range:
// positive to gain, negative to lose, zero when already inside.
func (r HealthyRange) DistanceKg(weightKg float64) float64 {
	switch {
	case weightKg < r.MinKg:
		return r.MinKg - weightKg
	case weightKg > r.MaxKg:
		return r.MaxKg - weightKg
	default:
		return 0
	}
}

// BMI returns weight over height squared.
func BMI(weightKg, heightCm float64) float64 {
	h := heightMeters(heightCm)
	return weightKg / (h * h)
}

func heightMeters(cm float64) float64 { return cm / 100 }

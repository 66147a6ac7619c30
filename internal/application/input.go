package application

import "github.com/abdidvp/growthcheck/internal/domain"

// InputOverrides are raw user-supplied fields laid over a base input.
// Empty strings and zero numbers keep the base value.
type InputOverrides struct {
	Gender        string
	BirthDate     string
	ReferenceDate string
	ActivityLevel string
	HeightCm      float64
}

// Apply parses every non-empty field into in.
func (o InputOverrides) Apply(in *domain.EvaluationInput) error {
	var err error
	if o.Gender != "" {
		if in.Gender, err = domain.ParseGender(o.Gender); err != nil {
			return err
		}
	}
	if o.BirthDate != "" {
		if in.BirthDate, err = domain.ParseDate(o.BirthDate); err != nil {
			return err
		}
	}
	if o.ReferenceDate != "" {
		if in.ReferenceDate, err = domain.ParseDate(o.ReferenceDate); err != nil {
			return err
		}
	}
	if o.ActivityLevel != "" {
		if in.ActivityLevel, err = domain.ParseActivityLevel(o.ActivityLevel); err != nil {
			return err
		}
	}
	if o.HeightCm != 0 {
		in.HeightCm = o.HeightCm
	}
	return nil
}

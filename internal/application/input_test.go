package application_test

import (
	"testing"

	"github.com/abdidvp/growthcheck/internal/application"
	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputOverrides_Apply(t *testing.T) {
	in := application.InputFromProfile(sampleProfile(), 32, 0, jalali.Date{Year: 1404, Month: 1, Day: 1})

	err := application.InputOverrides{
		Gender:        "m",
		BirthDate:     "1393-06-15",
		ReferenceDate: "1404/02/01",
		ActivityLevel: "veryActive",
		HeightCm:      150,
	}.Apply(&in)
	require.NoError(t, err)

	assert.Equal(t, domain.GenderMale, in.Gender)
	assert.Equal(t, jalali.Date{Year: 1393, Month: 6, Day: 15}, in.BirthDate)
	assert.Equal(t, jalali.Date{Year: 1404, Month: 2, Day: 1}, in.ReferenceDate)
	assert.Equal(t, domain.ActivityVeryActive, in.ActivityLevel)
	assert.Equal(t, 150.0, in.HeightCm)
	assert.Equal(t, 32.0, in.WeightKg)
}

func TestInputOverrides_EmptyKeepsBase(t *testing.T) {
	base := application.InputFromProfile(sampleProfile(), 32, 0, jalali.Date{Year: 1404, Month: 1, Day: 1})
	in := base
	require.NoError(t, application.InputOverrides{}.Apply(&in))
	assert.Equal(t, base, in)
}

func TestInputOverrides_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides application.InputOverrides
		want      error
	}{
		{"gender", application.InputOverrides{Gender: "x"}, domain.ErrInvalidInput},
		{"birth date", application.InputOverrides{BirthDate: "1404/13/01"}, domain.ErrInvalidCalendarDate},
		{"reference date", application.InputOverrides{ReferenceDate: "today"}, domain.ErrInvalidCalendarDate},
		{"activity", application.InputOverrides{ActivityLevel: "couch"}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in domain.EvaluationInput
			assert.ErrorIs(t, tt.overrides.Apply(&in), tt.want)
		})
	}
}

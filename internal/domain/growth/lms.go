package growth

import (
	"errors"
	"fmt"
	"math"
)

// lambdaEpsilon is the |L| below which the Box-Cox transform is replaced by its
// logarithmic limit.
const lambdaEpsilon = 1e-8

// ErrUndefinedInverse is returned by ZToBMI when 1 + L·S·z is not positive,
// i.e. the requested Z-score lies outside the range the curve can express.
var ErrUndefinedInverse = errors.New("lms inverse undefined for z-score")

// Params is one point on a growth reference curve: the Box-Cox power (L),
// the median (M) and the coefficient of variation (S).
type Params struct {
	L float64 `json:"l"`
	M float64 `json:"m"`
	S float64 `json:"s"`
}

// BMIToZ converts a BMI into a Z-score under the LMS distribution p.
func BMIToZ(bmi float64, p Params) float64 {
	if math.Abs(p.L) < lambdaEpsilon {
		return math.Log(bmi/p.M) / p.S
	}
	return (math.Pow(bmi/p.M, p.L) - 1) / (p.L * p.S)
}

// ZToBMI returns the BMI that sits at Z-score z under the LMS distribution p.
func ZToBMI(z float64, p Params) (float64, error) {
	if math.Abs(p.L) < lambdaEpsilon {
		return p.M * math.Exp(p.S*z), nil
	}
	base := 1 + p.L*p.S*z
	if base <= 0 {
		return 0, fmt.Errorf("%w: z=%.3f L=%.4f S=%.5f", ErrUndefinedInverse, z, p.L, p.S)
	}
	return p.M * math.Pow(base, 1/p.L), nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpParams(a, b Params, t float64) Params {
	return Params{
		L: lerp(a.L, b.L, t),
		M: lerp(a.M, b.M, t),
		S: lerp(a.S, b.S, t),
	}
}

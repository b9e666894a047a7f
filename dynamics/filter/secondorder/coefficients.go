package secondorder

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
)

// Coefficients holds the constants derived from a (f, zeta, r) tuning.
//
//	W  = 2*pi*f                     angular natural frequency
//	D  = W*sqrt(max(zeta²-1, 0))    overdamped decay spread
//	K1 = zeta/(pi*f)
//	K2 = 1/W²
//	K3 = r*zeta/W
type Coefficients struct {
	W, Z, D    float64
	K1, K2, K3 float64
}

// NewCoefficients derives coefficients for the given tuning. The inputs are
// not validated; f must be > 0 for the result to be meaningful.
func NewCoefficients(f, zeta, r float64) Coefficients {
	w := 2 * math.Pi * f

	return Coefficients{
		W:  w,
		Z:  zeta,
		D:  w * math.Sqrt(math.Max(zeta*zeta-1, 0)),
		K1: zeta / (math.Pi * f),
		K2: 1 / (w * w),
		K3: r * zeta / w,
	}
}

// Boundary returns the tick length at which the integration switches from
// [RegimeClamped] to [RegimePoleZero].
func (c Coefficients) Boundary() float64 {
	if c.W == 0 {
		return math.Inf(1)
	}
	return c.Z / c.W
}

// RegimeFor reports which integration regime a tick of length t uses.
func (c Coefficients) RegimeFor(t float64) Regime {
	_, _, regime := c.Stable(t)
	return regime
}

// Stable returns the per-step k1 and k2 that replace K1 and K2 in the
// integration step for a tick of length t, together with the chosen regime.
//
// Ticks with W*t >= zeta use the pole-zero mapping. When that mapping
// degenerates (zeta == 0 makes its denominator 1+beta-alpha zero) the clamped
// coefficients are used instead.
func (c Coefficients) Stable(t float64) (k1, k2 float64, regime Regime) {
	if c.W*t < c.Z {
		return c.clamped(t)
	}

	decay := math.Exp(-c.Z * c.W * t)

	var alpha float64
	if c.Z <= 1 {
		alpha = 2 * decay * math.Cos(t*c.D)
	} else {
		alpha = 2 * decay * math.Cosh(t*c.D)
	}

	beta := decay * decay

	den := 1 + beta - alpha
	if !(den > 0) {
		return c.clamped(t)
	}

	t2 := t / den
	k1, k2 = (1-beta)*t2, t*t2

	if !core.IsFinite(k1) || !core.IsFinite(k2) || !(k2 > 0) {
		return c.clamped(t)
	}

	return k1, k2, RegimePoleZero
}

func (c Coefficients) clamped(t float64) (k1, k2 float64, regime Regime) {
	k2 = math.Max(c.K2, math.Max(t*t/2+t*c.K1/2, t*c.K1))
	return c.K1, k2, RegimeClamped
}

// Poles returns the two s-plane poles of the continuous system
//
//	K2*s² + K1*s + 1 = 0
//
// which equal W*(-zeta ± sqrt(zeta²-1)).
func (c Coefficients) Poles() [2]complex128 {
	if c.K2 == 0 {
		return [2]complex128{}
	}

	disc := cmplx.Sqrt(complex(c.K1*c.K1-4*c.K2, 0))
	den := complex(2*c.K2, 0)

	return [2]complex128{
		(complex(-c.K1, 0) + disc) / den,
		(complex(-c.K1, 0) - disc) / den,
	}
}

// Zero returns the s-plane zero -1/K3 introduced by the response term, and
// false when r or zeta is zero so the system has no finite zero.
func (c Coefficients) Zero() (float64, bool) {
	if c.K3 == 0 {
		return 0, false
	}
	return -1 / c.K3, true
}

package secondorder

// Regime identifies the integration scheme used for one tick.
type Regime int

const (
	// RegimeClamped integrates with k2 clamped for unconditional stability.
	RegimeClamped Regime = iota
	// RegimePoleZero integrates with pole-zero matched k1/k2 for coarse ticks.
	RegimePoleZero
)

func (r Regime) String() string {
	switch r {
	case RegimeClamped:
		return "clamped"
	case RegimePoleZero:
		return "pole_zero"
	default:
		return "unknown"
	}
}

// Package secondorder provides a tunable second-order dynamics filter that
// drives a scalar toward a moving target with physically plausible motion.
//
// A [Filter] integrates the system
//
//	y + k1*y' + k2*y'' = x + k3*x'
//
// where x is the target and y the filtered output. The constants derive from
// three intuitive parameters: natural frequency f (Hz), damping ratio zeta and
// initial response r. See [Coefficients].
//
// Each call to [Filter.Update] advances the state by one tick of length t.
// Two integration regimes keep the explicit step stable for any t > 0:
//   - [RegimeClamped] for small steps (w*t < zeta): semi-implicit Euler with
//     k2 clamped to max(k2, t²/2 + t*k1/2, t*k1).
//   - [RegimePoleZero] for coarse steps: k1 and k2 are replaced by values
//     derived from the pole-zero matched discretization of the system.
//
// A [Bank] groups an ordered, fixed set of filters (one per channel) so that
// vectors and quaternions can be filtered component-wise.
//
// Filters are not safe for concurrent use. Independent filters may be updated
// from different goroutines.
package secondorder

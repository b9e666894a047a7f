// Package response measures how a second-order filter tuning behaves.
//
// It simulates the filter against canonical inputs and reduces the output
// to the numbers used when tuning motion by hand:
//
//   - Step metrics: overshoot, 10-90% rise time, 2% settling time, final
//     error, monotone approach
//   - Tracking error against an eased target trajectory
//   - Magnitude response from the FFT of the impulse response
//
// # Usage
//
//	tuning := core.Tuning{Frequency: 1, Damping: 0.5, Response: 2}
//	traj, err := response.SimulateStep(tuning, 1.0/60, 600, 0, 1)
//	metrics, err := response.NewAnalyzer(1.0/60).Analyze(traj, 0, 1)
//	fmt.Printf("overshoot %.1f%%, settles in %.2f s\n",
//		100*metrics.Overshoot, metrics.SettlingTime)
package response

// Package core holds the tuning value type and numeric helpers shared by the
// second-order filter, its drivers and the measurement packages.
package core

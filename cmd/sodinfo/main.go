// Command sodinfo prints coefficients and response metrics of second-order
// motion filter tunings.
//
// Usage:
//
//	sodinfo [flags]
//
// Without -preset it describes the tuning given by -f, -zeta and -r. With
// -preset it describes every profile of a YAML preset file, or only the one
// named by -profile.
//
// Examples:
//
//	sodinfo -f 2 -zeta 0.7 -r 0
//	sodinfo -dt 0.1 -ticks 60
//	sodinfo -preset presets.yaml
//	sodinfo -preset presets.yaml -profile camera -spectrum 2048
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/filter/secondorder"
	"github.com/cwbudde/algo-dynamics/dynamics/preset"
	"github.com/cwbudde/algo-dynamics/measure/response"
)

type namedTuning struct {
	name   string
	tuning core.Tuning
}

func main() {
	defaults := core.DefaultTuning()

	freq := flag.Float64("f", defaults.Frequency, "natural frequency in Hz")
	zeta := flag.Float64("zeta", defaults.Damping, "damping ratio")
	resp := flag.Float64("r", defaults.Response, "initial response factor")
	dt := flag.Float64("dt", 1.0/60, "tick length in seconds")
	ticks := flag.Int("ticks", 600, "ticks of step response to simulate")
	spectrum := flag.Int("spectrum", 0, "FFT length for the resonance columns (power of two, 0 disables)")
	presetPath := flag.String("preset", "", "YAML preset file")
	profile := flag.String("profile", "", "profile name within -preset")
	list := flag.Bool("list", false, "list profile names of -preset")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sodinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints coefficients and step response metrics of second-order filter tunings.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sodinfo -f 2 -zeta 0.7 -r 0\n")
		fmt.Fprintf(os.Stderr, "  sodinfo -preset presets.yaml -profile camera\n")
	}
	flag.Parse()

	entries := []namedTuning{{"flags", core.Tuning{Frequency: *freq, Damping: *zeta, Response: *resp}}}

	if *presetPath != "" {
		set, err := preset.LoadFile(*presetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		if *list {
			for _, name := range set.Names() {
				fmt.Println(name)
			}
			return
		}

		entries, err = resolveProfiles(set, *profile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	for _, e := range entries {
		if err := e.tuning.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			os.Exit(1)
		}
	}

	if err := printAnalysis(os.Stdout, entries, *dt, *ticks, *spectrum); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveProfiles(set *preset.Set, name string) ([]namedTuning, error) {
	names := set.Names()
	if name != "" {
		names = []string{name}
	}

	result := make([]namedTuning, 0, len(names))
	for _, n := range names {
		p, err := set.Profile(n)
		if err != nil {
			return nil, err
		}
		result = append(result, namedTuning{n, p.Tuning()})
	}

	return result, nil
}

func printAnalysis(w io.Writer, entries []namedTuning, dt float64, ticks, fftSize int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Name\tf [Hz]\tzeta\tr\tK1\tK2\tK3\tBoundary [s]\tRegime\tOvershoot [%]\tRise [s]\tSettle [s]\tFinal Error"
	rule := "----\t------\t----\t-\t--\t--\t--\t------------\t------\t-------------\t--------\t----------\t-----------"
	if fftSize > 0 {
		header += "\tPeak [Hz]\tPeak Gain"
		rule += "\t---------\t---------"
	}

	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	analyzer := response.NewAnalyzer(dt)

	for _, e := range entries {
		c := secondorder.NewCoefficients(e.tuning.Frequency, e.tuning.Damping, e.tuning.Response)

		traj, err := response.SimulateStep(e.tuning, dt, ticks, 0, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		m, err := analyzer.Analyze(traj, 0, 1)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		row := fmt.Sprintf("%s\t%.3f\t%.3f\t%.3f\t%.6f\t%.6f\t%.6f\t%.6f\t%s\t%.2f\t%s\t%s\t%.3g",
			e.name,
			e.tuning.Frequency,
			e.tuning.Damping,
			e.tuning.Response,
			c.K1,
			c.K2,
			c.K3,
			c.Boundary(),
			c.RegimeFor(dt),
			100*m.Overshoot,
			formatTime(m.RiseTime),
			formatTime(m.SettlingTime),
			m.FinalError,
		)

		if fftSize > 0 {
			s, err := response.FrequencyResponse(e.tuning, dt, fftSize)
			if err != nil {
				return fmt.Errorf("%s: %w", e.name, err)
			}

			freq, gain := s.Peak()
			row += fmt.Sprintf("\t%.3f\t%.3f", freq, gain)
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func formatTime(t float64) string {
	if t < 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f", t)
}

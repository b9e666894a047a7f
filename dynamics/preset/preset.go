package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cwbudde/algo-dynamics/dynamics/core"
	"github.com/cwbudde/algo-dynamics/dynamics/driver"
	"gopkg.in/yaml.v3"
)

// Errors returned by preset loading and lookup.
var (
	ErrNoProfiles     = errors.New("preset: document defines no profiles")
	ErrUnknownProfile = errors.New("preset: unknown profile")
	// ErrUnknownMode is wrapped when an update or rotation mode name is not
	// recognized.
	ErrUnknownMode = driver.ErrUnknownMode
)

// Spring is the YAML form of core.Tuning.
type Spring struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
	Response  float64 `yaml:"response"`
}

// Tilt is the YAML form of driver.TiltConfig.
type Tilt struct {
	Angle               float64 `yaml:"angle"`
	Spring              Spring  `yaml:"spring"`
	DeadSpeed           float64 `yaml:"dead_speed"`
	SwitchSpeed         float64 `yaml:"switch_speed"`
	SmoothingHz         float64 `yaml:"smoothing_hz"`
	MaxSpeedForFullTilt float64 `yaml:"max_speed_for_full_tilt"`
}

// Profile is one named driver configuration.
type Profile struct {
	Frequency     float64 `yaml:"frequency"`
	Damping       float64 `yaml:"damping"`
	Response      float64 `yaml:"response"`
	UpdateMode    string  `yaml:"update_mode"`
	RotationMode  string  `yaml:"rotation_mode"`
	SettleEpsilon float64 `yaml:"settle_epsilon"`
	Tilt          Tilt    `yaml:"tilt"`
}

// Set is a decoded preset document.
type Set struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// DefaultProfile mirrors the driver defaults.
func DefaultProfile() Profile {
	tuning := core.DefaultTuning()
	tilt := driver.DefaultTiltConfig()

	return Profile{
		Frequency:     tuning.Frequency,
		Damping:       tuning.Damping,
		Response:      tuning.Response,
		UpdateMode:    driver.ModeUpdate.String(),
		RotationMode:  driver.RotationDefault.String(),
		SettleEpsilon: driver.DefaultSettleEpsilon,
		Tilt: Tilt{
			Angle: tilt.Angle,
			Spring: Spring{
				Frequency: tilt.Spring.Frequency,
				Damping:   tilt.Spring.Damping,
				Response:  tilt.Spring.Response,
			},
			DeadSpeed:           tilt.DeadSpeed,
			SwitchSpeed:         tilt.SwitchSpeed,
			SmoothingHz:         tilt.SmoothingHz,
			MaxSpeedForFullTilt: tilt.MaxSpeedForFullTilt,
		},
	}
}

// UnmarshalYAML decodes a profile on top of DefaultProfile.
func (p *Profile) UnmarshalYAML(node *yaml.Node) error {
	type plain Profile

	raw := plain(DefaultProfile())
	if err := node.Decode(&raw); err != nil {
		return err
	}

	*p = Profile(raw)

	return nil
}

// Load decodes and validates a preset document. Unknown keys are rejected.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("preset: read: %w", err)
	}

	if err := checkKnownFields(data); err != nil {
		return nil, err
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("preset: decode: %w", err)
	}

	if len(set.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	for _, name := range set.Names() {
		if err := set.Profiles[name].Validate(); err != nil {
			return nil, fmt.Errorf("preset: profile %q: %w", name, err)
		}
	}

	return &set, nil
}

// strictProfile has Profile's fields without its defaulting unmarshaler, so
// a strict decoder reaches every nested key.
type strictProfile Profile

func checkKnownFields(data []byte) error {
	var doc struct {
		Profiles map[string]strictProfile `yaml:"profiles"`
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrNoProfiles
		}

		return fmt.Errorf("preset: decode: %w", err)
	}

	return nil
}

// LoadFile reads and decodes the preset document at path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}

	return Load(bytes.NewReader(data))
}

// Names returns the profile names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for name := range s.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Profile returns the named profile.
func (s *Set) Profile(name string) (Profile, error) {
	p, ok := s.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	return p, nil
}

// Tuning returns the main filter tuning.
func (p Profile) Tuning() core.Tuning {
	return core.Tuning{Frequency: p.Frequency, Damping: p.Damping, Response: p.Response}
}

// TiltConfig returns the tilt settings.
func (p Profile) TiltConfig() driver.TiltConfig {
	return driver.TiltConfig{
		Angle: p.Tilt.Angle,
		Spring: core.Tuning{
			Frequency: p.Tilt.Spring.Frequency,
			Damping:   p.Tilt.Spring.Damping,
			Response:  p.Tilt.Spring.Response,
		},
		DeadSpeed:           p.Tilt.DeadSpeed,
		SwitchSpeed:         p.Tilt.SwitchSpeed,
		SmoothingHz:         p.Tilt.SmoothingHz,
		MaxSpeedForFullTilt: p.Tilt.MaxSpeedForFullTilt,
	}
}

// Validate reports the first problem with the profile.
func (p Profile) Validate() error {
	_, err := p.Options()
	return err
}

// Options converts the profile into driver constructor options. Callers
// still supply WithMovement themselves.
func (p Profile) Options() ([]driver.Option, error) {
	if err := p.Tuning().Validate(); err != nil {
		return nil, err
	}

	update, err := driver.ParseUpdateMode(p.UpdateMode)
	if err != nil {
		return nil, err
	}

	rotation, err := driver.ParseRotationMode(p.RotationMode)
	if err != nil {
		return nil, err
	}

	if !core.IsFinite(p.SettleEpsilon) || p.SettleEpsilon < 0 {
		return nil, fmt.Errorf("settle_epsilon must be >= 0 and finite: %v", p.SettleEpsilon)
	}

	tilt := p.TiltConfig()
	if err := tilt.Validate(); err != nil {
		return nil, err
	}

	return []driver.Option{
		driver.WithTuning(p.Tuning()),
		driver.WithUpdateMode(update),
		driver.WithRotationMode(rotation),
		driver.WithSettleEpsilon(p.SettleEpsilon),
		driver.WithTilt(tilt),
	}, nil
}

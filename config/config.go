// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Converter families.
const (
	ConverterCurve    = "curve"
	ConverterShifters = "shifters"
	ConverterScan     = "scan"
)

// Config holds every tunable of a run. The zero value is not usable; start
// from Default or Load.
type Config struct {
	// Input is a video input string, see video.Open.
	Input string `yaml:"input"`
	// FPS is the frame rate of image sequences.
	FPS float64 `yaml:"fps,omitempty"`
	// Output is a WAV path. Empty plays through the audio device.
	Output string `yaml:"output,omitempty"`
	// OutputRate is the sink rate when it differs from SampleRate.
	OutputRate int    `yaml:"output_rate,omitempty"`
	LogLevel   string `yaml:"log_level"`

	SampleRate       int     `yaml:"sample_rate"`
	Scale            string  `yaml:"scale"`
	LowestFrequency  float64 `yaml:"lowest_frequency"`
	HighestFrequency float64 `yaml:"highest_frequency"`

	Converter string   `yaml:"converter"`
	Curve     Curve    `yaml:"curve"`
	Shifters  Shifters `yaml:"shifters"`
	Scan      Scan     `yaml:"scan"`
}

// Curve configures the curve converter.
type Curve struct {
	Type      string        `yaml:"type"`
	Order     int           `yaml:"order"`
	Transient time.Duration `yaml:"transient"`
}

// Shifters configures the shifters converter.
type Shifters struct {
	Curve           string        `yaml:"curve"`
	Order           int           `yaml:"order"`
	K               int           `yaml:"k"`
	IntensityLevels int           `yaml:"intensity_levels"`
	Transient       time.Duration `yaml:"transient"`
}

// Scan configures the scan converters.
type Scan struct {
	Orientation   string        `yaml:"orientation"`
	Strips        int           `yaml:"strips"`
	FreqsPerStrip int           `yaml:"freqs_per_strip"`
	FrameDuration time.Duration `yaml:"frame_duration"`
	Cue           bool          `yaml:"cue"`
	// CueFile replaces the generated cue with a decoded audio file.
	CueFile string `yaml:"cue_file,omitempty"`
}

// Default returns the stock configuration: a 48 kHz Mel-spaced 100-800 Hz
// Hilbert curve of order 1 played live.
func Default() Config {
	return Config{
		Input:            "",
		LogLevel:         "info",
		SampleRate:       48000,
		Scale:            "mel",
		LowestFrequency:  100,
		HighestFrequency: 800,
		Converter:        ConverterCurve,
		Curve: Curve{
			Type:      "hilbert",
			Order:     1,
			Transient: 10 * time.Millisecond,
		},
		Shifters: Shifters{
			Curve:           "hilbert",
			Order:           3,
			K:               4,
			IntensityLevels: 16,
			Transient:       10 * time.Millisecond,
		},
		Scan: Scan{
			Orientation:   "horizontal",
			Strips:        16,
			FreqsPerStrip: 16,
			FrameDuration: 500 * time.Millisecond,
			Cue:           true,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every problem found, each wrapping ErrInvalid or one of
// the unknown-name errors.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.SampleRate <= 0 {
		invalid("sample_rate %d", c.SampleRate)
	}
	if c.OutputRate < 0 {
		invalid("output_rate %d", c.OutputRate)
	}
	if c.FPS < 0 {
		invalid("fps %v", c.FPS)
	}
	if c.LowestFrequency < 0 || c.LowestFrequency >= c.HighestFrequency {
		invalid("frequency range %v..%v", c.LowestFrequency, c.HighestFrequency)
	}
	if c.SampleRate > 0 && c.HighestFrequency > float64(c.SampleRate)/2 {
		invalid("highest_frequency %v above Nyquist", c.HighestFrequency)
	}
	if _, ok := scales[c.Scale]; !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownScale, c.Scale))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	switch c.Converter {
	case ConverterCurve:
		errs = append(errs, checkCurve(c.Curve.Type, c.Curve.Order))
		if c.Curve.Transient < 0 {
			invalid("curve transient %v", c.Curve.Transient)
		}
	case ConverterShifters:
		errs = append(errs, checkCurve(c.Shifters.Curve, c.Shifters.Order))
		if c.Shifters.K <= 0 {
			invalid("shifters k %d", c.Shifters.K)
		}
		if c.Shifters.IntensityLevels <= 0 {
			invalid("shifters intensity_levels %d", c.Shifters.IntensityLevels)
		}
		if c.Shifters.Transient < 0 {
			invalid("shifters transient %v", c.Shifters.Transient)
		}
	case ConverterScan:
		if _, err := ParseOrientation(c.Scan.Orientation); err != nil {
			errs = append(errs, err)
		}
		if c.Scan.Strips <= 0 {
			invalid("scan strips %d", c.Scan.Strips)
		}
		if c.Scan.FreqsPerStrip <= 0 {
			invalid("scan freqs_per_strip %d", c.Scan.FreqsPerStrip)
		}
		if c.Scan.FrameDuration <= 0 {
			invalid("scan frame_duration %v", c.Scan.FrameDuration)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownConverter, c.Converter))
	}

	return errors.Join(errs...)
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
	return l, nil
}

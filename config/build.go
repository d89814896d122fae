// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"strings"

	"github.com/ik5/owl"
	"github.com/ik5/owl/audio"
	"github.com/ik5/owl/convert"
	"github.com/ik5/owl/curve"
	"github.com/ik5/owl/output"
	"github.com/ik5/owl/scale"
	"github.com/ik5/owl/synth"
	"github.com/ik5/owl/video"
)

var scales = map[string]func(lo, hi float64) (scale.Scale, error){
	"mel": func(lo, hi float64) (scale.Scale, error) {
		return scale.NewMel(lo, hi)
	},
	"bark": func(lo, hi float64) (scale.Scale, error) {
		return scale.NewBark(lo, hi)
	},
	"bark-asinh": func(lo, hi float64) (scale.Scale, error) {
		return scale.NewBarkAsinh(lo, hi)
	},
}

// BuildScale returns the configured frequency scale.
func BuildScale(c Config) (scale.Scale, error) {
	newScale, ok := scales[c.Scale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, c.Scale)
	}
	return newScale(c.LowestFrequency, c.HighestFrequency)
}

func checkCurve(kind string, order int) error {
	_, err := BuildCurve(kind, order)
	return err
}

// BuildCurve returns a hilbert or peano curve of the given order.
func BuildCurve(kind string, order int) (curve.Curve, error) {
	switch strings.ToLower(kind) {
	case "hilbert":
		return curve.NewHilbert(order)
	case "peano":
		return curve.NewPeano(order)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, kind)
}

// ParseOrientation maps a scan orientation name to its value.
func ParseOrientation(s string) (convert.Orientation, error) {
	for _, o := range []convert.Orientation{convert.Horizontal, convert.Vertical, convert.Circular} {
		if strings.EqualFold(s, o.String()) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// BuildConverter returns the configured converter. opts are passed through,
// typically a logger, hooks and the video frame interval.
func BuildConverter(c Config, opts ...convert.Option) (convert.Converter, error) {
	sc, err := BuildScale(c)
	if err != nil {
		return nil, err
	}

	switch c.Converter {
	case ConverterCurve:
		cv, err := BuildCurve(c.Curve.Type, c.Curve.Order)
		if err != nil {
			return nil, err
		}
		return convert.NewCurve(curve.FromScale(cv, sc), c.SampleRate, c.Curve.Transient, opts...)

	case ConverterShifters:
		cv, err := BuildCurve(c.Shifters.Curve, c.Shifters.Order)
		if err != nil {
			return nil, err
		}
		return convert.NewShifters(curve.FromScale(cv, sc), c.Shifters.K, c.Shifters.IntensityLevels,
			c.SampleRate, c.Shifters.Transient, opts...)

	case ConverterScan:
		o, err := ParseOrientation(c.Scan.Orientation)
		if err != nil {
			return nil, err
		}
		if c.Scan.Cue {
			cue, err := buildCue(c)
			if err != nil {
				return nil, err
			}
			opts = append(opts, convert.WithCue(cue))
		}
		return convert.NewScan(o, c.Scan.Strips, sc.Range(c.Scan.FreqsPerStrip),
			c.Scan.FrameDuration, c.SampleRate, opts...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, c.Converter)
}

func buildCue(c Config) ([]float64, error) {
	if c.Scan.CueFile == "" {
		return synth.Cue(c.SampleRate)
	}
	cue, err := owl.LoadCue(c.Scan.CueFile, c.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("cue file: %w", err)
	}
	return cue, nil
}

// SinkRate returns the rate the sink runs at.
func (c Config) SinkRate() int {
	if c.OutputRate > 0 {
		return c.OutputRate
	}
	return c.SampleRate
}

// BuildSink returns a WAV file sink when Output is set and the audio device
// otherwise. src is what the sink plays; a file sink accepts nil for push
// mode.
func BuildSink(c Config, src audio.Source, opts ...output.Option) (output.Sink, error) {
	if c.Output != "" {
		return output.NewFile(c.Output, c.SinkRate(), src, opts...)
	}
	return output.NewLive(src, c.SinkRate(), opts...)
}

// BuildSource opens the configured video input.
func BuildSource(c Config) (video.Source, error) {
	if c.Input == "" {
		return nil, fmt.Errorf("%w: no input", ErrInvalid)
	}
	return video.Open(c.Input, c.FPS)
}

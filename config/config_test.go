// SPDX-License-Identifier: EPL-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/owl/curve"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "owl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 48000, c.SampleRate)
	assert.Equal(t, 48000, c.SinkRate())
	assert.Equal(t, 10*time.Millisecond, c.Curve.Transient)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
converter: scan
scale: bark
output_rate: 44100
scan:
  orientation: circular
  strips: 8
  frame_duration: 750ms
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, ConverterScan, c.Converter)
	assert.Equal(t, "bark", c.Scale)
	assert.Equal(t, 8, c.Scan.Strips)
	assert.Equal(t, 750*time.Millisecond, c.Scan.FrameDuration)
	assert.Equal(t, 16, c.Scan.FreqsPerStrip, "default kept")
	assert.Equal(t, 100.0, c.LowestFrequency, "default kept")
	assert.Equal(t, 44100, c.SinkRate())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "sample_rate: [1, 2]"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	want := Default()
	want.Converter = ConverterShifters
	want.Shifters.K = 7

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"sample rate", func(c *Config) { c.SampleRate = 0 }, ErrInvalid},
		{"range", func(c *Config) { c.LowestFrequency = 900 }, ErrInvalid},
		{"nyquist", func(c *Config) { c.SampleRate = 1000 }, ErrInvalid},
		{"scale", func(c *Config) { c.Scale = "erb" }, ErrUnknownScale},
		{"converter", func(c *Config) { c.Converter = "spiral" }, ErrUnknownConverter},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalid},
		{"curve", func(c *Config) { c.Curve.Type = "zorder" }, ErrUnknownCurve},
		{"curve order", func(c *Config) { c.Curve.Order = -1 }, curve.ErrInvalidOrder},
		{"k", func(c *Config) {
			c.Converter = ConverterShifters
			c.Shifters.K = 0
		}, ErrInvalid},
		{"orientation", func(c *Config) {
			c.Converter = ConverterScan
			c.Scan.Orientation = "diagonal"
		}, ErrUnknownOrientation},
		{"strips", func(c *Config) {
			c.Converter = ConverterScan
			c.Scan.Strips = 0
		}, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	_, err = ParseLevel("")
	assert.ErrorIs(t, err, ErrInvalid)
}

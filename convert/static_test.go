// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/owl/curve"
	"github.com/ik5/owl/imaging"
)

const testRate = 48000

func hilbertCurve(t *testing.T, order int, freqs []float64) *curve.FrequencyCurve {
	t.Helper()

	h, err := curve.NewHilbert(order)
	require.NoError(t, err)
	fc, err := curve.NewFrequencyCurve(h, freqs)
	require.NoError(t, err)
	return fc
}

func TestCurve_UniformFrameGivesEqualVolumes(t *testing.T) {
	t.Parallel()

	fc := hilbertCurve(t, 1, []float64{440, 550, 660, 770})
	c, err := NewCurve(fc, testRate, DefaultTransient)
	require.NoError(t, err)

	require.NoError(t, c.OnFrame(imaging.Uniform(64, 48, 0.5)))
	Samples(c, 1024)

	assert.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, c.Volumes(), 1e-9)
	assert.Equal(t, []float64{440, 550, 660, 770}, c.Frequencies())
}

func TestCurve_VolumesFollowCurveOrder(t *testing.T) {
	t.Parallel()

	fc := hilbertCurve(t, 1, []float64{100, 200, 300, 400})
	c, err := NewCurve(fc, testRate, 0)
	require.NoError(t, err)

	frame := &imaging.Frame{Width: 2, Height: 2, Pix: []float64{
		0.1, 0.4,
		0.2, 0.3,
	}}
	require.NoError(t, c.OnFrame(frame))
	Samples(c, 1)

	// Hilbert order 1 visits (0,0) (0,1) (1,1) (1,0).
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, c.Volumes(), 1e-12)
}

func TestCurve_FirstFrameIsInstantThenRamps(t *testing.T) {
	t.Parallel()

	fc := hilbertCurve(t, 1, []float64{440, 550, 660, 770})
	c, err := NewCurve(fc, testRate, 10*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, c.OnFrame(imaging.Uniform(2, 2, 0.5)))
	Samples(c, 1)
	assert.InDelta(t, 0.5, c.Volumes()[0], 1e-12, "first frame has no ramp")

	require.NoError(t, c.OnFrame(imaging.Uniform(2, 2, 1)))
	Samples(c, 240)
	assert.InDelta(t, 0.75, c.Volumes()[0], 1e-9, "halfway through the transient")

	Samples(c, 240)
	assert.Equal(t, 1.0, c.Volumes()[0])
}

func TestCurve_IdleIsSilent(t *testing.T) {
	t.Parallel()

	fc := hilbertCurve(t, 1, []float64{440, 550, 660, 770})
	c, err := NewCurve(fc, testRate, DefaultTransient)
	require.NoError(t, err)

	assert.False(t, c.Active())
	for _, v := range Samples(c, 512) {
		require.Zero(t, v)
	}
}

func TestCurve_OutputBounded(t *testing.T) {
	t.Parallel()

	fc := hilbertCurve(t, 2, []float64{
		100, 150, 200, 250, 300, 350, 400, 450,
		500, 550, 600, 650, 700, 750, 800, 850,
	})
	c, err := NewCurve(fc, testRate, DefaultTransient)
	require.NoError(t, err)

	require.NoError(t, c.OnFrame(imaging.Uniform(8, 8, 1)))
	for _, n := range []int{1, 64, 1000, 4096} {
		out := Samples(c, n)
		require.Len(t, out, n)
		for _, v := range out {
			require.LessOrEqual(t, v, 1.0)
			require.GreaterOrEqual(t, v, -1.0)
		}
	}
}

func TestCurve_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewCurve(nil, testRate, 0)
	assert.ErrorIs(t, err, ErrNoFrequencies)

	fc := hilbertCurve(t, 1, []float64{1, 2, 3, 4})
	c, err := NewCurve(fc, testRate, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, c.OnFrame(nil), ErrEmptyFrame)
	assert.ErrorIs(t, c.OnFrame(imaging.NewFrame(0, 3)), ErrEmptyFrame)
	assert.False(t, c.Active())
}

func TestStatic_Hooks(t *testing.T) {
	t.Parallel()

	var pre, post *imaging.Frame
	fc := hilbertCurve(t, 1, []float64{1, 2, 3, 4})
	c, err := NewCurve(fc, testRate, 0, WithHooks(Hooks{
		Pre:  func(f *imaging.Frame) { pre = f },
		Post: func(f *imaging.Frame) { post = f },
	}))
	require.NoError(t, err)

	in := imaging.Uniform(10, 6, 0.2)
	require.NoError(t, c.OnFrame(in))
	assert.Same(t, in, pre)
	require.NotNil(t, post)
	assert.Equal(t, 2, post.Width)
	assert.Equal(t, 2, post.Height)
	assert.Equal(t, uint64(1), c.Stats().Frames)
}

func peanoCurve(t *testing.T) *curve.FrequencyCurve {
	t.Helper()

	p, err := curve.NewPeano(1)
	require.NoError(t, err)
	freqs := make([]float64, p.Len())
	for i := range freqs {
		freqs[i] = 100 * float64(i+1)
	}
	fc, err := curve.NewFrequencyCurve(p, freqs)
	require.NoError(t, err)
	return fc
}

func TestShifters_SingleSpot(t *testing.T) {
	t.Parallel()

	fc := peanoCurve(t)
	s, err := NewShifters(fc, 2, 16, testRate, DefaultTransient, WithKMeans(imaging.KMeansOptions{Seed: 3}))
	require.NoError(t, err)

	frame := imaging.NewFrame(3, 3)
	frame.Set(2, 0, 1)
	require.NoError(t, s.OnFrame(frame))
	Samples(s, 1)

	want, ok := fc.Frequency(curve.Point{X: 2, Y: 0})
	require.True(t, ok)
	assert.Equal(t, []float64{want, 0}, s.Frequencies())
	assert.Equal(t, []float64{1, 0}, s.Volumes())
}

func TestShifters_DarkFrameIsSilent(t *testing.T) {
	t.Parallel()

	s, err := NewShifters(peanoCurve(t), 3, 16, testRate, 0)
	require.NoError(t, err)

	require.NoError(t, s.OnFrame(imaging.Uniform(9, 9, 0.3)))
	for _, v := range Samples(s, 256) {
		require.Zero(t, v)
	}
}

func TestShifters_InvalidParameters(t *testing.T) {
	t.Parallel()

	fc := peanoCurve(t)
	_, err := NewShifters(fc, 0, 16, testRate, 0)
	assert.ErrorIs(t, err, ErrNoFrequencies)

	_, err = NewShifters(fc, 2, 0, testRate, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestVoices(t *testing.T) {
	t.Parallel()

	fc := peanoCurve(t)

	t.Run("ordered by frequency", func(t *testing.T) {
		t.Parallel()
		clusters := []imaging.Cluster{
			{X: 2.2, Y: 2.4, Weight: 0.5}, // (2,2), last Peano point
			{X: 0, Y: 0.3, Weight: 0.5},   // (0,0), first Peano point
		}
		got, err := voices(fc, clusters, 3)
		require.NoError(t, err)
		assert.Equal(t, []float64{100, 900, 0}, got.freqs)
		assert.Equal(t, []float64{0.25, 0.25, 0}, got.vols)
	})

	t.Run("out of bounds", func(t *testing.T) {
		t.Parallel()
		_, err := voices(fc, []imaging.Cluster{{X: 3.1, Y: 0, Weight: 1}}, 1)
		assert.ErrorIs(t, err, ErrOutOfBoundsCluster)
	})
}

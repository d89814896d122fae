// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestBank_StartsSilent(t *testing.T) {
	t.Parallel()

	bank, err := NewBank(testRate, []float64{440, 550, 660, 770})
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	for i, v := range bank.NextSamples(256) {
		if v != 0 {
			t.Fatalf("sample[%d] = %v, want 0", i, v)
		}
	}
}

func TestBank_MeanMix(t *testing.T) {
	t.Parallel()

	freqs := []float64{440, 550, 660, 770}
	bank, err := NewBank(testRate, freqs)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	if err := bank.SetVolumes([]float64{1, 1, 1, 1}, 0); err != nil {
		t.Fatalf("SetVolumes() error = %v", err)
	}

	got := bank.NextSamples(200)
	for i, v := range got {
		want := 0.0
		for _, f := range freqs {
			want += math.Sin(twoPi * f * float64(i) / testRate)
		}
		want /= float64(len(freqs))

		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("sample[%d] = %v, want %v", i, v, want)
		}
		if v > 1 || v < -1 {
			t.Fatalf("sample[%d] = %v outside [-1, 1]", i, v)
		}
	}
}

func TestBank_LengthMismatch(t *testing.T) {
	t.Parallel()

	bank, err := NewBank(testRate, []float64{100, 200})
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	if err := bank.SetVolumes([]float64{1}, 0); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("SetVolumes() error = %v, want ErrLengthMismatch", err)
	}
	if err := bank.SetFrequencies([]float64{1, 2, 3}, 0); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("SetFrequencies() error = %v, want ErrLengthMismatch", err)
	}
}

func TestBank_TargetsSettle(t *testing.T) {
	t.Parallel()

	bank, err := NewBlankBank(testRate, 3)
	if err != nil {
		t.Fatalf("NewBlankBank() error = %v", err)
	}

	freqs := []float64{300, 400, 500}
	vols := []float64{0.1, 0.2, 0.3}
	_ = bank.SetFrequencies(freqs, 0)
	_ = bank.SetVolumes(vols, 5*time.Millisecond)
	bank.Next(make([]float64, 240))

	gotF, gotV := bank.Frequencies(), bank.Volumes()
	for i := range freqs {
		if gotF[i] != freqs[i] {
			t.Errorf("Frequencies()[%d] = %v, want %v", i, gotF[i], freqs[i])
		}
		if gotV[i] != vols[i] {
			t.Errorf("Volumes()[%d] = %v, want %v", i, gotV[i], vols[i])
		}
	}
}

func TestBank_Empty(t *testing.T) {
	t.Parallel()

	bank, err := NewBank(testRate, nil)
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}

	buf := []float64{1, 2, 3}
	bank.Next(buf)
	for i, v := range buf {
		if v != 0 {
			t.Errorf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestBank_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	if _, err := NewBank(0, []float64{440}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("NewBank() error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestBank_VaryingBlockSizes(t *testing.T) {
	t.Parallel()

	a, _ := NewBank(testRate, []float64{440, 880})
	b, _ := NewBank(testRate, []float64{440, 880})
	_ = a.SetVolumes([]float64{0.5, 0.5}, 0)
	_ = b.SetVolumes([]float64{0.5, 0.5}, 0)

	whole := a.NextSamples(1000)

	var pieces []float64
	for _, n := range []int{1, 511, 64, 300, 124} {
		pieces = append(pieces, b.NextSamples(n)...)
	}

	for i := range whole {
		if whole[i] != pieces[i] {
			t.Fatalf("sample[%d] = %v in one block, %v in pieces", i, whole[i], pieces[i])
		}
	}
}

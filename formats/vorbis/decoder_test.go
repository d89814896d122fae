// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type fakeVorbis struct {
	rate     int
	channels int
	data     []float32
	fail     error
}

func (f *fakeVorbis) SampleRate() int { return f.rate }
func (f *fakeVorbis) Channels() int   { return f.channels }

func (f *fakeVorbis) Read(p []float32) (int, error) {
	if f.fail != nil {
		return 0, f.fail
	}
	if len(f.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("OggS but not really"))); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeVorbis{rate: 48000, channels: 2}}
	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Errorf("format = %d Hz x %d, want 48000 Hz x 2", src.SampleRate(), src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadWholeFrames(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeVorbis{rate: 8000, channels: 2, data: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}}}

	// Five slots hold two stereo frames.
	buf := make([]float32, 5)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v, want 4, nil", n, err)
	}
	for i, want := range []float32{0.1, 0.2, 0.3, 0.4} {
		if buf[i] != want {
			t.Errorf("sample %d = %v, want %v", i, buf[i], want)
		}
	}

	n, err = src.ReadSamples(buf)
	if err != nil || n != 2 {
		t.Fatalf("ReadSamples() = %d, %v, want 2, nil", n, err)
	}
	if n, err = src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_SmallBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeVorbis{rate: 8000, channels: 2, data: []float32{1, 1}}}
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1 slot) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_DecodeError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	src := &source{dec: &fakeVorbis{rate: 8000, channels: 1, fail: boom}}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

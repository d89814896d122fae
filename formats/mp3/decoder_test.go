// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// fakePCM serves fixed bytes, at most chunk per Read when chunk > 0.
type fakePCM struct {
	rate  int
	data  []byte
	chunk int
}

func (f *fakePCM) SampleRate() int { return f.rate }

func (f *fakePCM) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, io.EOF
	}
	n := len(p)
	if f.chunk > 0 {
		n = min(n, f.chunk)
	}
	n = copy(p[:n], f.data)
	f.data = f.data[n:]
	return n, nil
}

func pcmBytes(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("definitely not mpeg"))); err == nil {
		t.Error("Decode() error = nil, want error")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCM{rate: 44100})
	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCM{rate: 44100, data: pcmBytes(0, 16384, -16384, -32768)})

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	want := []float32{0, 0.5, -0.5, -1}
	if n != len(want) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(want))
	}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("sample %d = %v, want %v", i, buf[i], w)
		}
	}

	if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_OddByteReads(t *testing.T) {
	t.Parallel()

	want := []int16{1000, -1000, 2000, -2000, 3000}
	src := newSource(&fakePCM{rate: 8000, data: pcmBytes(want...), chunk: 3})

	var got []float32
	buf := make([]float32, 4)
	for range 100 {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != float32(w)/32768 {
			t.Errorf("sample %d = %v, want %v", i, got[i], float32(w)/32768)
		}
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(&fakePCM{rate: 8000, data: pcmBytes(1)})
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	data := pcmBytes(make([]int16, 4096)...)
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for range b.N {
		src := newSource(&fakePCM{rate: 44100, data: data})
		_, _ = src.ReadSamples(buf)
	}
}

// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/owl/formats/wav"
)

// Example_roundTrip writes a few samples and decodes them back.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "owl-wav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	w := wav.NewWriter(f, 16000)
	_ = w.Write([]float64{-1, -0.5, 0, 0.5, 1})
	_ = w.Close()
	_ = f.Close()

	r, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer r.Close()

	source, err := wav.Decoder{}.Decode(r)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	buf := make([]float32, 8)
	n, _ := source.ReadSamples(buf)

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())
	for _, v := range buf[:n] {
		fmt.Printf("%d ", int(v*32768))
	}
	fmt.Println()
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// -16383 -8192 0 8192 16383
}

// Example_errorNotWAV shows handling of invalid input.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("This is not a WAV file")))
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Detected: Not a valid WAV file")
	}
	// Output: Detected: Not a valid WAV file
}

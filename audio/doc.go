// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives shared by decoders, the
// converters and the output sinks.
//
// # Source
//
// Everything that produces sound implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. A read that returns
// n == 0 together with io.EOF ends the stream.
//
// # Processing
//
// Sources chain:
//
//	src, _ := registry.Decode("wav", file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 48000))
//
// The Resampler uses Catmull-Rom interpolation between source frames and
// low-pass filters the input when downsampling. The MonoMixer averages
// channels. ReadMono runs both and collects a whole stream, which is how
// short clips such as frame cues are loaded.
//
// # Registry
//
// A Registry maps format keys to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	src, err := reg.Decode("wav", file)
//
// Unknown keys fail with ErrUnknownFormat.
package audio

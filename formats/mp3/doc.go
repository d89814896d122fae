// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM, so the source
// reports two channels regardless of the file's channel mode. Mono files
// come back with both channels equal; wrap the source in
// audio.NewMonoMixer to fold them.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
package mp3

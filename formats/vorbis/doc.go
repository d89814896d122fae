// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Samples are produced as float32 by the codec itself and passed through
// unscaled. Reads always return whole frames.
package vorbis

// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into an audio.Source using
// github.com/go-audio/aiff.
//
// Signed PCM of 8, 16, 24 and 32 bits is supported; other depths fail with
// ErrUnsupportedBitDepth. Readers that cannot seek are buffered in memory,
// since the underlying decoder needs to seek between chunks.
package aiff

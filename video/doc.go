// SPDX-License-Identifier: EPL-2.0

// Package video supplies frames to the engine.
//
// Live capture is outside this module; the sources here read recorded
// input. GIFSource plays an animated GIF at the rate its frame delays
// imply. SequenceSource plays a directory of still images (PNG, JPEG, GIF,
// BMP, TIFF, WebP) at a fixed rate. Open picks one from an input string such
// as "file:clip.gif" or "dir:frames/".
package video

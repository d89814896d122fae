// SPDX-License-Identifier: EPL-2.0

// Package engine runs the frame loop.
//
// Run is the live mode: the sink is opened and pulls audio from the
// converter on its own thread while the engine reads a frame, converts it
// and waits for the next frame slot. A late frame is not made up for; the
// converter's own buffering absorbs the jitter.
//
// Render is the offline mode: there is no clock, and after every frame the
// engine pulls exactly one frame interval of audio and writes it out, which
// makes the result reproducible.
//
// Both stop when the source runs out, the context is cancelled or Stop is
// called, and both release the source.
package engine

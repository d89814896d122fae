// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrUnsupportedFormat = errors.New("only integer PCM WAV supported")
	ErrWriterClosed      = errors.New("WAV writer closed")
)

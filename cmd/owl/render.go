// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ik5/owl/config"
	"github.com/ik5/owl/convert"
	"github.com/ik5/owl/engine"
	"github.com/ik5/owl/output"
	"github.com/ik5/owl/video"
)

// render writes the whole input to the output file at the synthesis rate.
func render(ctx context.Context, cfg config.Config, src video.Source, conv convert.Converter, logger *slog.Logger) error {
	if cfg.OutputRate > 0 && cfg.OutputRate != cfg.SampleRate {
		logger.Warn("output rate ignored when rendering", "rate", cfg.SampleRate)
	}

	sink, err := output.NewFile(cfg.Output, conv.SampleRate(), nil, output.WithLogger(logger))
	if err != nil {
		return errors.Join(err, src.Release())
	}
	if err := sink.Open(); err != nil {
		return errors.Join(err, src.Release())
	}

	e, err := engine.New(src, conv, nil, engine.WithLogger(logger))
	if err != nil {
		return errors.Join(err, sink.Close())
	}
	return errors.Join(e.Render(ctx, sink), sink.Close())
}

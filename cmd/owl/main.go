// SPDX-License-Identifier: EPL-2.0

// Command owl turns a video into sound.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/owl/config"
	"github.com/ik5/owl/convert"
	"github.com/ik5/owl/engine"
	"github.com/ik5/owl/output"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "owl: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	render     bool
	preview    string
	dump       bool
}

// parseFlags loads the config file, if any, and applies the flags that were
// set on top of it.
func parseFlags(args []string, stderr io.Writer) (config.Config, flags, error) {
	var (
		f   flags
		cfg = config.Default()
		set = flag.NewFlagSet("owl", flag.ContinueOnError)
	)
	set.SetOutput(stderr)
	set.Usage = func() {
		fmt.Fprintln(stderr, "Usage: owl [flags] -i <input> [-o out.wav]")
		set.PrintDefaults()
	}

	set.StringVar(&f.configPath, "config", "", "YAML config file")
	set.BoolVar(&f.render, "render", false, "convert as fast as possible into -o instead of in real time")
	set.StringVar(&f.preview, "preview", "", "directory to write the sampled frames to as PNG")
	set.BoolVar(&f.dump, "dump-config", false, "print the effective config and exit")

	var (
		input, out, scale, conv, level, cueFile string
		fps, lo, hi                             float64
		rate, outRate                           int
	)
	set.StringVar(&input, "i", "", `video input: "file:<path>", "dir:<path>" or a path`)
	set.StringVar(&out, "o", "", "write a WAV file instead of playing")
	set.Float64Var(&fps, "fps", 0, "frame rate of image sequences")
	set.IntVar(&rate, "rate", cfg.SampleRate, "synthesis sample rate")
	set.IntVar(&outRate, "out-rate", 0, "output sample rate (default: -rate)")
	set.StringVar(&scale, "scale", cfg.Scale, "frequency scale: mel, bark, bark-asinh")
	set.Float64Var(&lo, "lo", cfg.LowestFrequency, "lowest frequency in Hz")
	set.Float64Var(&hi, "hi", cfg.HighestFrequency, "highest frequency in Hz")
	set.StringVar(&conv, "converter", cfg.Converter, "converter: curve, shifters, scan")
	set.StringVar(&level, "log-level", cfg.LogLevel, "debug, info, warn or error")
	set.StringVar(&cueFile, "cue-file", "", "audio file played before every scan")

	if err := set.Parse(args); err != nil {
		return cfg, f, err
	}
	if set.NArg() > 0 {
		return cfg, f, fmt.Errorf("unexpected argument %q", set.Arg(0))
	}

	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, f, err
		}
	}

	set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "i":
			cfg.Input = input
		case "o":
			cfg.Output = out
		case "fps":
			cfg.FPS = fps
		case "rate":
			cfg.SampleRate = rate
		case "out-rate":
			cfg.OutputRate = outRate
		case "scale":
			cfg.Scale = scale
		case "lo":
			cfg.LowestFrequency = lo
		case "hi":
			cfg.HighestFrequency = hi
		case "converter":
			cfg.Converter = conv
		case "log-level":
			cfg.LogLevel = level
		case "cue-file":
			cfg.Scan.CueFile = cueFile
			cfg.Scan.Cue = true
		}
	})

	return cfg, f, cfg.Validate()
}

func run(args []string, stderr io.Writer) error {
	cfg, f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.dump {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	if f.render && cfg.Output == "" {
		return errors.New("-render needs -o")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	keys := newKeyWatcher(stderr)
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(keys.Writer(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	src, err := config.BuildSource(cfg)
	if err != nil {
		return err
	}

	convOpts := []convert.Option{
		convert.WithLogger(logger),
		convert.WithFrameInterval(engine.FrameInterval(src.FPS())),
	}
	if f.preview != "" {
		p, err := newPreview(f.preview, logger)
		if err != nil {
			return errors.Join(err, src.Release())
		}
		convOpts = append(convOpts, convert.WithHooks(convert.Hooks{Post: p.write}))
	}

	conv, err := config.BuildConverter(cfg, convOpts...)
	if err != nil {
		return errors.Join(err, src.Release())
	}

	if f.render {
		return render(ctx, cfg, src, conv, logger)
	}

	sink, err := config.BuildSink(cfg, convert.AsSource(conv), output.WithLogger(logger))
	if err != nil {
		return errors.Join(err, src.Release())
	}
	e, err := engine.New(src, conv, sink, engine.WithLogger(logger))
	if err != nil {
		return err
	}

	if keys.Start() {
		logger.Info("press q to stop")
	}
	defer keys.Stop()
	go func() {
		select {
		case <-keys.Quit():
			e.Stop()
		case <-ctx.Done():
		}
	}()

	return e.Run(ctx)
}

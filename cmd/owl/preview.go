// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/owl/imaging"
)

// preview saves every sampled frame as a numbered PNG.
type preview struct {
	dir    string
	n      int
	logger *slog.Logger
}

func newPreview(dir string, logger *slog.Logger) (*preview, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return &preview{dir: dir, logger: logger}, nil
}

func (p *preview) write(f *imaging.Frame) {
	path := filepath.Join(p.dir, fmt.Sprintf("frame_%06d.png", p.n))
	p.n++

	if err := p.save(path, f); err != nil {
		p.logger.Warn("preview frame not saved", "path", path, "error", err)
	}
}

func (p *preview) save(path string, f *imaging.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.Image()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// keyWatcher puts an interactive stdin into raw mode and reports a press
// of q or Ctrl-C. Output written through Writer gets CRLF line endings
// while raw mode is on.
type keyWatcher struct {
	out  io.Writer
	raw  atomic.Bool
	fd   int
	old  *term.State
	quit chan struct{}
	once sync.Once
}

func newKeyWatcher(out io.Writer) *keyWatcher {
	return &keyWatcher{
		out:  out,
		fd:   int(os.Stdin.Fd()),
		quit: make(chan struct{}),
	}
}

// Start reports whether stdin is a terminal that is now being watched.
func (k *keyWatcher) Start() bool {
	if !term.IsTerminal(k.fd) {
		return false
	}
	old, err := term.MakeRaw(k.fd)
	if err != nil {
		fmt.Fprintf(k.out, "owl: raw terminal: %v\n", err)
		return false
	}
	k.old = old
	k.raw.Store(true)

	// The reader blocks in Read until a key arrives; it exits with the
	// process.
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 1 && (buf[0] == 'q' || buf[0] == 'Q' || buf[0] == 0x03) {
				k.once.Do(func() { close(k.quit) })
				return
			}
		}
	}()
	return true
}

// Quit is closed once the user asks to stop.
func (k *keyWatcher) Quit() <-chan struct{} { return k.quit }

// Stop restores the terminal.
func (k *keyWatcher) Stop() {
	if k.raw.Swap(false) {
		_ = term.Restore(k.fd, k.old)
	}
}

func (k *keyWatcher) Writer() io.Writer { return crlfWriter{k} }

type crlfWriter struct{ k *keyWatcher }

func (w crlfWriter) Write(p []byte) (int, error) {
	if !w.k.raw.Load() {
		return w.k.out.Write(p)
	}
	if _, err := w.k.out.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// SPDX-License-Identifier: MIT
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Method tells which mechanism carried the text
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
	MethodNone   Method = "none"
)

// Copier writes text to the clipboard, falling back to an OSC 52 escape
// sequence on the terminal when the system clipboard is unavailable.
type Copier struct {
	primary  func(string) error
	terminal io.Writer
}

// NewCopier returns a Copier using the system clipboard and stderr for the fallback
func NewCopier() *Copier {
	return &Copier{
		primary:  systemWrite,
		terminal: os.Stderr,
	}
}

// NewCopierWith builds a Copier with explicit mechanisms
func NewCopierWith(primary func(string) error, terminal io.Writer) *Copier {
	return &Copier{primary: primary, terminal: terminal}
}

// Copy places text on the clipboard. A failing primary is never reported;
// only when the fallback fails too is an error returned.
func (c *Copier) Copy(text string) (Method, error) {
	if c.primary != nil {
		if err := c.primary(text); err == nil {
			return MethodSystem, nil
		}
	}

	if c.terminal == nil {
		return MethodNone, fmt.Errorf("no clipboard available")
	}

	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.terminal); err != nil {
		return MethodNone, fmt.Errorf("failed to write osc52 sequence: %w", err)
	}
	return MethodOSC52, nil
}

func systemWrite(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard unsupported")
	}
	return clipboard.WriteAll(text)
}

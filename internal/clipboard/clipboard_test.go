// SPDX-License-Identifier: MIT
package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestCopyUsesPrimary(t *testing.T) {
	var copied string
	var term bytes.Buffer
	c := NewCopierWith(func(s string) error {
		copied = s
		return nil
	}, &term)

	method, err := c.Copy("background-color: #ff0000;")
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if method != MethodSystem {
		t.Errorf("Expected system method, got %s", method)
	}
	if copied != "background-color: #ff0000;" {
		t.Errorf("Unexpected copied text %q", copied)
	}
	if term.Len() != 0 {
		t.Error("Fallback should not be used when primary succeeds")
	}
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	t.Setenv("TMUX", "")
	var term bytes.Buffer
	c := NewCopierWith(func(string) error {
		return errors.New("no display")
	}, &term)

	method, err := c.Copy("#3498db")
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if method != MethodOSC52 {
		t.Errorf("Expected osc52 method, got %s", method)
	}

	encoded := base64.StdEncoding.EncodeToString([]byte("#3498db"))
	if !strings.Contains(term.String(), encoded) {
		t.Errorf("Terminal output %q does not carry the text", term.String())
	}
	if !strings.HasPrefix(term.String(), "\x1b]52;") {
		t.Errorf("Expected an OSC 52 sequence, got %q", term.String())
	}
}

func TestCopyWithoutAnyMechanism(t *testing.T) {
	c := NewCopierWith(func(string) error { return errors.New("nope") }, nil)
	if method, err := c.Copy("x"); err == nil || method != MethodNone {
		t.Errorf("Expected failure, got %s, %v", method, err)
	}
}

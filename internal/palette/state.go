// SPDX-License-Identifier: MIT
package palette

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/thatcatcamp/colorstudio/internal/colors"
)

// ErrIndexOutOfRange is returned when a removal targets a missing position
var ErrIndexOutOfRange = errors.New("index out of range")

const (
	// DefaultColor is the palette shown on a fresh start
	DefaultColor colors.Color = "#3498db"
	// FallbackColor replaces a palette that would otherwise be empty
	FallbackColor colors.Color = "#222222"
	// DefaultAngle is used when the angle input is not a number
	DefaultAngle = 90
)

// Mode controls how a palette is rendered and exported
type Mode struct {
	Gradient bool `json:"gradient"`
	Angle    int  `json:"angle"`
}

// Snapshot is a read-only copy of the state handed to renderers and exporters
type Snapshot struct {
	Colors colors.Palette `json:"colors"`
	Mode   Mode           `json:"mode"`
}

// HistoryRecorder persists committed palettes
type HistoryRecorder interface {
	PushHistory(ctx context.Context, p colors.Palette) error
}

// Renderer receives a snapshot after every change. It must not block and
// must not mutate the State it is subscribed to.
type Renderer interface {
	Render(s Snapshot)
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(s Snapshot)

// Render calls f(s)
func (f RendererFunc) Render(s Snapshot) { f(s) }

// State owns the current palette and display mode. All mutation goes through it.
type State struct {
	// opMu serialises whole mutations (including the history write) so that
	// history order matches palette order. mu guards the fields below.
	opMu      sync.Mutex
	mu        sync.Mutex
	colors    colors.Palette
	mode      Mode
	fallback  colors.Color
	history   HistoryRecorder
	renderers []Renderer
	rng       *rand.Rand
}

// Option configures a State
type Option func(*State)

// WithHistory sets where committed palettes are recorded
func WithHistory(h HistoryRecorder) Option {
	return func(s *State) { s.history = h }
}

// WithRenderer subscribes a renderer from the start
func WithRenderer(r Renderer) Option {
	return func(s *State) { s.renderers = append(s.renderers, r) }
}

// WithInitial replaces the default starting palette
func WithInitial(p colors.Palette) Option {
	return func(s *State) {
		if len(p) > 0 {
			s.colors = p.Clone()
		}
	}
}

// WithFallback replaces the color used when a palette would be empty
func WithFallback(c colors.Color) Option {
	return func(s *State) { s.fallback = c }
}

// WithMode sets the starting display mode
func WithMode(m Mode) Option {
	return func(s *State) { s.mode = m }
}

// WithRand sets the random source used by Randomize
func WithRand(r *rand.Rand) Option {
	return func(s *State) { s.rng = r }
}

// New creates a State. Nothing is committed to history until the first change.
func New(opts ...Option) *State {
	s := &State{
		colors:   colors.Palette{DefaultColor},
		mode:     Mode{Angle: DefaultAngle},
		fallback: FallbackColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Subscribe adds a renderer that is notified on every change
func (s *State) Subscribe(r Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderers = append(s.renderers, r)
}

type setOptions struct {
	skipHistory bool
}

// SetOption tweaks a single SetColors call
type SetOption func(*setOptions)

// WithoutHistory suppresses the history commit for one update
func WithoutHistory() SetOption {
	return func(o *setOptions) { o.skipHistory = true }
}

// SetColors replaces the palette. Empty or invalid entries are dropped and an
// empty result becomes the fallback color.
func (s *State) SetColors(ctx context.Context, inputs []string, opts ...SetOption) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.replace(colors.FilterValid(inputs))
	snap, renderers := s.snapshotLocked(), s.renderersLocked()
	s.mu.Unlock()

	s.commit(ctx, snap, renderers, opts...)
}

// Load replaces the palette with an already validated one (history, saved
// palettes, presets). Like any palette change it is committed to history.
func (s *State) Load(ctx context.Context, p colors.Palette, opts ...SetOption) {
	s.SetColors(ctx, p.Strings(), opts...)
}

// AddColor appends one color from user text
func (s *State) AddColor(ctx context.Context, input string) error {
	c, err := colors.ParseColor(input)
	if err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	next := append(s.colors.Clone(), c)
	s.replace(next)
	snap, renderers := s.snapshotLocked(), s.renderersLocked()
	s.mu.Unlock()

	s.commit(ctx, snap, renderers)
	return nil
}

// RemoveAt deletes the color at index. Removing the last remaining color
// leaves the fallback color in its place.
func (s *State) RemoveAt(ctx context.Context, index int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	if index < 0 || index >= len(s.colors) {
		n := len(s.colors)
		s.mu.Unlock()
		return fmt.Errorf("%w: %d (palette has %d colors)", ErrIndexOutOfRange, index, n)
	}
	next := make(colors.Palette, 0, len(s.colors)-1)
	next = append(next, s.colors[:index]...)
	next = append(next, s.colors[index+1:]...)
	s.replace(next)
	snap, renderers := s.snapshotLocked(), s.renderersLocked()
	s.mu.Unlock()

	s.commit(ctx, snap, renderers)
	return nil
}

// ApplyInput sets the palette to the single color the user typed.
// Invalid text leaves the state untouched.
func (s *State) ApplyInput(ctx context.Context, input string) error {
	c, err := colors.ParseColor(input)
	if err != nil {
		return err
	}
	s.Load(ctx, colors.Palette{c})
	return nil
}

// ApplyPreset replaces the palette with a single preset color
func (s *State) ApplyPreset(ctx context.Context, c colors.Color) {
	s.Load(ctx, colors.Palette{c})
}

// Randomize generates a fresh palette: one color in solid mode, two or three
// in gradient mode.
func (s *State) Randomize(ctx context.Context) colors.Palette {
	s.mu.Lock()
	count := 1
	if s.mode.Gradient {
		count = 2
		if s.rng.Float64() > 0.6 {
			count = 3
		}
	}
	next := make(colors.Palette, count)
	for i := range next {
		next[i] = colors.RandomColorFrom(s.rng)
	}
	s.mu.Unlock()

	s.Load(ctx, next)
	return next
}

// SetMode changes gradient mode and angle. Mode changes are not palette
// content, so history is left alone.
func (s *State) SetMode(mode Mode) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.mode = mode
	snap, renderers := s.snapshotLocked(), s.renderersLocked()
	s.mu.Unlock()

	notify(renderers, snap)
}

// Mode returns the current display mode
func (s *State) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Snapshot returns a copy of the current palette and mode
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) replace(p colors.Palette) {
	if len(p) == 0 {
		p = colors.Palette{s.fallback}
	}
	s.colors = p
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{Colors: s.colors.Clone(), Mode: s.mode}
}

func (s *State) renderersLocked() []Renderer {
	out := make([]Renderer, len(s.renderers))
	copy(out, s.renderers)
	return out
}

func (s *State) commit(ctx context.Context, snap Snapshot, renderers []Renderer, opts ...SetOption) {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !o.skipHistory && s.history != nil {
		if err := s.history.PushHistory(ctx, snap.Colors); err != nil {
			log.Printf("failed to record palette history: %v", err)
		}
	}

	notify(renderers, snap)
}

func notify(renderers []Renderer, snap Snapshot) {
	for _, r := range renderers {
		r.Render(Snapshot{Colors: snap.Colors.Clone(), Mode: snap.Mode})
	}
}

// ParseAngle coerces user text to an angle in degrees. Anything that is not
// a number yields DefaultAngle; fractional input is truncated.
func ParseAngle(input string) int {
	text := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(input), "deg"))
	if text == "" {
		return DefaultAngle
	}
	if v, err := strconv.Atoi(text); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultAngle
	}
	return int(f)
}

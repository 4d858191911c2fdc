// SPDX-License-Identifier: MIT
package palette

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/thatcatcamp/colorstudio/internal/colors"
)

type recordingHistory struct {
	mu      sync.Mutex
	entries []colors.Palette
	err     error
}

func (h *recordingHistory) PushHistory(ctx context.Context, p colors.Palette) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, p.Clone())
	return h.err
}

func (h *recordingHistory) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func TestNewStateDefaults(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	if !snap.Colors.Equal(colors.Palette{DefaultColor}) {
		t.Errorf("expected default palette, got %v", snap.Colors)
	}
	if snap.Mode.Gradient || snap.Mode.Angle != DefaultAngle {
		t.Errorf("unexpected default mode %+v", snap.Mode)
	}
}

func TestSetColorsEmptyUsesFallback(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history))

	s.SetColors(context.Background(), []string{})

	snap := s.Snapshot()
	if len(snap.Colors) != 1 || snap.Colors[0] != FallbackColor {
		t.Fatalf("expected [%s], got %v", FallbackColor, snap.Colors)
	}
	if history.count() != 1 {
		t.Errorf("expected one history commit, got %d", history.count())
	}
}

func TestSetColorsFiltersInvalid(t *testing.T) {
	s := New()
	s.SetColors(context.Background(), []string{"", "F00", "bogus", "#00ff00", "#00ff00"})

	want := colors.Palette{"#ff0000", "#00ff00", "#00ff00"}
	if got := s.Snapshot().Colors; !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSetColorsWithoutHistory(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history))

	s.SetColors(context.Background(), []string{"#ff0000"}, WithoutHistory())

	if history.count() != 0 {
		t.Errorf("expected no history commit, got %d", history.count())
	}
}

func TestHistoryFailureIsNotFatal(t *testing.T) {
	history := &recordingHistory{err: errors.New("disk full")}
	s := New(WithHistory(history))

	s.SetColors(context.Background(), []string{"#ff0000"})

	if got := s.Snapshot().Colors; !got.Equal(colors.Palette{"#ff0000"}) {
		t.Errorf("palette should still change, got %v", got)
	}
}

func TestRemoveAt(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history), WithInitial(colors.Palette{"#ff0000", "#00ff00", "#0000ff"}))

	if err := s.RemoveAt(context.Background(), 1); err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}

	want := colors.Palette{"#ff0000", "#0000ff"}
	if got := s.Snapshot().Colors; !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if history.count() != 1 {
		t.Errorf("expected removal to be committed to history")
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history), WithInitial(colors.Palette{"#ff0000", "#00ff00"}))

	for _, idx := range []int{-1, 2, 100} {
		err := s.RemoveAt(context.Background(), idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveAt(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}

	if got := s.Snapshot().Colors; !got.Equal(colors.Palette{"#ff0000", "#00ff00"}) {
		t.Errorf("state changed after failed removal: %v", got)
	}
	if history.count() != 0 {
		t.Errorf("failed removal should not commit history")
	}
}

func TestRemoveLastColorLeavesFallback(t *testing.T) {
	s := New(WithInitial(colors.Palette{"#ff0000"}))

	if err := s.RemoveAt(context.Background(), 0); err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}
	if got := s.Snapshot().Colors; !got.Equal(colors.Palette{FallbackColor}) {
		t.Errorf("expected fallback, got %v", got)
	}
}

func TestAddColor(t *testing.T) {
	s := New(WithInitial(colors.Palette{"#ff0000"}))

	if err := s.AddColor(context.Background(), "rgb(0, 0, 255)"); err != nil {
		t.Fatalf("AddColor failed: %v", err)
	}
	if got := s.Snapshot().Colors; !got.Equal(colors.Palette{"#ff0000", "#0000ff"}) {
		t.Errorf("unexpected palette %v", got)
	}

	if err := s.AddColor(context.Background(), "nope"); !errors.Is(err, colors.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
	if len(s.Snapshot().Colors) != 2 {
		t.Error("invalid add should not change the palette")
	}
}

func TestApplyInput(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history), WithInitial(colors.Palette{"#ff0000", "#00ff00"}))

	if err := s.ApplyInput(context.Background(), "not-a-color"); !errors.Is(err, colors.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	if got := s.Snapshot().Colors; !got.Equal(colors.Palette{"#ff0000", "#00ff00"}) {
		t.Errorf("state changed after invalid input: %v", got)
	}
	if history.count() != 0 {
		t.Error("invalid input should not commit history")
	}

	if err := s.ApplyInput(context.Background(), "f00"); err != nil {
		t.Fatalf("ApplyInput failed: %v", err)
	}
	if got := s.Snapshot().Colors; !got.Equal(colors.Palette{"#ff0000"}) {
		t.Errorf("expected [#ff0000], got %v", got)
	}
}

func TestApplyPreset(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history), WithInitial(colors.Palette{"#ff0000", "#00ff00"}))

	s.ApplyPreset(context.Background(), "#6bcb77")

	if got := s.Snapshot().Colors; !got.Equal(colors.Palette{"#6bcb77"}) {
		t.Errorf("expected preset color, got %v", got)
	}
	if history.count() != 1 {
		t.Errorf("expected one history commit, got %d", history.count())
	}
}

func TestSetModeDoesNotCommitHistory(t *testing.T) {
	history := &recordingHistory{}
	var rendered []Snapshot
	s := New(WithHistory(history), WithRenderer(RendererFunc(func(snap Snapshot) {
		rendered = append(rendered, snap)
	})))

	s.SetMode(Mode{Gradient: true, Angle: 45})

	if history.count() != 0 {
		t.Error("mode change should not commit history")
	}
	if len(rendered) != 1 || rendered[0].Mode != (Mode{Gradient: true, Angle: 45}) {
		t.Errorf("renderer not notified with new mode: %+v", rendered)
	}
	if s.Mode().Angle != 45 {
		t.Errorf("Mode() = %+v", s.Mode())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(WithInitial(colors.Palette{"#ff0000"}))

	snap := s.Snapshot()
	snap.Colors[0] = "#000000"

	if s.Snapshot().Colors[0] != "#ff0000" {
		t.Error("mutating a snapshot changed the state")
	}
}

func TestRenderersSeeEveryChange(t *testing.T) {
	var got []colors.Palette
	s := New()
	s.Subscribe(RendererFunc(func(snap Snapshot) {
		got = append(got, snap.Colors)
	}))

	ctx := context.Background()
	s.SetColors(ctx, []string{"#111111"})
	s.SetColors(ctx, []string{"#222222"}, WithoutHistory())
	_ = s.RemoveAt(ctx, 5)

	if len(got) != 2 {
		t.Fatalf("expected 2 renders, got %d", len(got))
	}
	if got[1][0] != "#222222" {
		t.Errorf("last render = %v", got[1])
	}
}

func TestRandomize(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history), WithRand(rand.New(rand.NewPCG(3, 4))))
	ctx := context.Background()

	p := s.Randomize(ctx)
	if len(p) != 1 {
		t.Errorf("solid mode should generate 1 color, got %d", len(p))
	}

	s.SetMode(Mode{Gradient: true, Angle: 90})
	for i := 0; i < 50; i++ {
		p = s.Randomize(ctx)
		if len(p) < 2 || len(p) > 3 {
			t.Fatalf("gradient mode generated %d colors", len(p))
		}
		if !s.Snapshot().Colors.Equal(p) {
			t.Fatalf("state does not hold the generated palette")
		}
	}

	if history.count() != 51 {
		t.Errorf("expected 51 history commits, got %d", history.count())
	}
}

func TestConcurrentUpdatesKeepHistoryInOrder(t *testing.T) {
	history := &recordingHistory{}
	s := New(WithHistory(history))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Randomize(ctx)
		}()
	}
	wg.Wait()

	last := history.entries[len(history.entries)-1]
	if !s.Snapshot().Colors.Equal(last) {
		t.Errorf("latest history entry %v does not match state %v", last, s.Snapshot().Colors)
	}
}

func TestParseAngle(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"45", 45},
		{" 180 ", 180},
		{"0", 0},
		{"-30", -30},
		{"720", 720},
		{"12.9", 12},
		{"45deg", 45},
		{"", DefaultAngle},
		{"abc", DefaultAngle},
		{"NaN", DefaultAngle},
	}

	for _, tt := range tests {
		if got := ParseAngle(tt.input); got != tt.want {
			t.Errorf("ParseAngle(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

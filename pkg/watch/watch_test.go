package watch

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"aifeed/pkg/combine"
	"aifeed/pkg/config"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runLoop(t *testing.T, ctx context.Context, events chan fsnotify.Event, errs chan error, outputAbs string, rebuild func()) error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- loop(ctx, events, errs, outputAbs, rebuild, zap.NewNop())
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not return")
		return nil
	}
}

func TestLoopDebouncesEventBursts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan fsnotify.Event, 10)
	errs := make(chan error)
	dir := t.TempDir()
	for _, name := range []string{"a.go", "b.go", "c.go"} {
		events <- fsnotify.Event{Name: filepath.Join(dir, name), Op: fsnotify.Write}
	}

	rebuilds := 0
	rebuild := func() {
		rebuilds++
		cancel()
	}

	err := runLoop(t, ctx, events, errs, filepath.Join(dir, "combined.txt"), rebuild)
	require.NoError(t, err)
	assert.Equal(t, 1, rebuilds, "a burst of events collapses into one rebuild")
}

func TestLoopIgnoresArtifactAndIrrelevantEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan fsnotify.Event, 10)
	errs := make(chan error)
	dir := t.TempDir()
	outputAbs := filepath.Join(dir, "combined.txt")

	// Writing the artifact and a bare chmod must not schedule a rebuild.
	events <- fsnotify.Event{Name: outputAbs, Op: fsnotify.Write}
	events <- fsnotify.Event{Name: filepath.Join(dir, "a.go"), Op: fsnotify.Chmod}

	rebuilds := 0
	go func() {
		// Outwait the debounce window before stopping the loop.
		time.Sleep(debounceDelay + 200*time.Millisecond)
		cancel()
	}()

	err := runLoop(t, ctx, events, errs, outputAbs, func() { rebuilds++ })
	require.NoError(t, err)
	assert.Equal(t, 0, rebuilds)
}

func TestLoopReturnsWhenEventsClose(t *testing.T) {
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	close(events)

	err := runLoop(t, context.Background(), events, errs, "/tmp/combined.txt", func() {
		t.Error("unexpected rebuild")
	})
	assert.NoError(t, err)
}

func TestRelevantOp(t *testing.T) {
	tests := []struct {
		op   fsnotify.Op
		want bool
	}{
		{fsnotify.Create, true},
		{fsnotify.Write, true},
		{fsnotify.Remove, true},
		{fsnotify.Rename, true},
		{fsnotify.Chmod, false},
		{fsnotify.Write | fsnotify.Chmod, true},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, relevantOp(tt.op))
		})
	}
}

func TestRunFailsWhenInitialCombineFails(t *testing.T) {
	cfg := config.Config{
		RootDirectory: filepath.Join(t.TempDir(), "does-not-exist"),
		OutputPath:    filepath.Join(t.TempDir(), "combined.txt"),
	}
	err := Run(context.Background(), cfg, combine.Options{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to walk directory")
}

package viewer

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeongen/internal/algorithm"
	"github.com/samdwyer/dungeongen/internal/ui"
)

func testViewer(t *testing.T, a algorithm.Algorithm) *Viewer {
	t.Helper()
	scr, err := ui.WrapScreen(tcell.NewSimulationScreen(""))
	require.NoError(t, err)
	t.Cleanup(scr.Close)

	s := algorithm.NewSession()
	s.Width, s.Height = 30, 20
	if a != algorithm.None {
		s.Select(a)
	}
	return newViewer(scr, s, 42, ui.DefaultTheme(), log.New(io.Discard))
}

func TestGenerateCollectsHistory(t *testing.T) {
	s := algorithm.NewSession()
	s.Width, s.Height = 40, 30
	s.Select(algorithm.CellularAutomata)

	r := Generate(context.Background(), s, 7)
	require.NotNil(t, r.Final)
	assert.Equal(t, algorithm.CellularAutomata, r.Algorithm)
	assert.Greater(t, r.Frames.Total(), 1)
	assert.Nil(t, r.Rooms)

	last := r.Frames.frames[len(r.Frames.frames)-1]
	assert.Equal(t, r.Final.Tiles, last.Tiles)
	if r.HasExit {
		assert.GreaterOrEqual(t, r.Exit, 0)
	} else {
		assert.Equal(t, -1, r.Exit)
	}
}

func TestGenerateReportsRooms(t *testing.T) {
	s := algorithm.NewSession()
	s.Select(algorithm.Rooms)

	r := Generate(context.Background(), s, 3)
	assert.NotNil(t, r.Rooms)
	assert.False(t, r.HasExit)
	assert.Equal(t, -1, r.Exit)
}

func TestViewerReplaysToFinished(t *testing.T) {
	ctx := context.Background()
	span := trace.SpanFromContext(ctx)
	v := testViewer(t, algorithm.Random)

	v.start(ctx)
	assert.Equal(t, StateRunning, v.State())
	total := v.run.Frames.Total()

	for i := 0; i < total; i++ {
		v.tick(span)
		v.draw()
	}
	assert.Equal(t, StateRunning, v.State())
	assert.Equal(t, total, v.run.Frames.Shown())

	v.tick(span)
	assert.Equal(t, StateFinished, v.State())
	assert.Same(t, v.run.Final, v.frame)
}

func TestViewerPauseHoldsFrame(t *testing.T) {
	ctx := context.Background()
	span := trace.SpanFromContext(ctx)
	v := testViewer(t, algorithm.Random)
	v.start(ctx)

	v.tick(span)
	v.handleKey(ctx, tcell.KeyRune, ' ')
	assert.True(t, v.paused)

	shown := v.run.Frames.Shown()
	v.tick(span)
	assert.Equal(t, shown, v.run.Frames.Shown())

	v.handleKey(ctx, tcell.KeyRune, ' ')
	v.tick(span)
	assert.Equal(t, shown+1, v.run.Frames.Shown())
}

func TestViewerEnterSkipsToEnd(t *testing.T) {
	ctx := context.Background()
	span := trace.SpanFromContext(ctx)
	v := testViewer(t, algorithm.Rooms)
	v.start(ctx)

	v.handleKey(ctx, tcell.KeyEnter, 0)
	assert.True(t, v.run.Frames.Empty())
	v.tick(span)
	assert.Equal(t, StateFinished, v.State())
}

func TestViewerMenuSelectsAlgorithm(t *testing.T) {
	ctx := context.Background()
	v := testViewer(t, algorithm.None)
	assert.Equal(t, StateMenu, v.State())
	v.draw()

	v.handleKey(ctx, tcell.KeyRune, '9')
	assert.Equal(t, StateMenu, v.State())

	v.handleKey(ctx, tcell.KeyRune, '3')
	assert.Equal(t, StateRunning, v.State())
	assert.Equal(t, algorithm.BSP, v.session.Algorithm)
	assert.Len(t, v.session.Options, 1)
}

func TestViewerRegenerateAdvancesSeed(t *testing.T) {
	ctx := context.Background()
	span := trace.SpanFromContext(ctx)
	v := testViewer(t, algorithm.DrunkardsWalk)
	v.start(ctx)
	v.handleKey(ctx, tcell.KeyEnter, 0)
	v.tick(span)
	require.Equal(t, StateFinished, v.State())
	v.draw()

	v.handleKey(ctx, tcell.KeyRune, 'r')
	assert.Equal(t, StateRunning, v.State())
	assert.Equal(t, int64(43), v.seed)

	v.handleKey(ctx, tcell.KeyEnter, 0)
	v.tick(span)
	v.handleKey(ctx, tcell.KeyRune, 'm')
	assert.Equal(t, StateMenu, v.State())
	assert.Nil(t, v.frame)
}

func TestViewerQuitKeys(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := testViewer(t, algorithm.None)
			v.handleKey(ctx, tc.key, tc.r)
			assert.False(t, v.running)
		})
	}
}

func TestViewerRunStopsOnCancel(t *testing.T) {
	v := testViewer(t, algorithm.Random)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := v.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

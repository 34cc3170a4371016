package viewer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeongen/internal/algorithm"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/ui"
	"github.com/samdwyer/dungeongen/internal/world"
)

// minDelay keeps the ticker valid when the configured delay is zero.
const minDelay = time.Millisecond

// Viewer holds the replay state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *algorithm.Session
	logger   *log.Logger
	seed     int64
	state    State
	run      *Run
	frame    *world.Grid
	paused   bool
	running  bool
}

// New creates a viewer on the terminal. If the session has no algorithm
// selected the viewer opens on the menu.
func New(session *algorithm.Session, seed int64, theme ui.Theme, logger *log.Logger) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return newViewer(screen, session, seed, theme, logger), nil
}

func newViewer(screen *ui.Screen, session *algorithm.Session, seed int64, theme ui.Theme, logger *log.Logger) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		session:  session,
		logger:   logger,
		seed:     seed,
		state:    StateMenu,
		running:  true,
	}
}

// State reports the current viewer state.
func (v *Viewer) State() State { return v.state }

// Run executes the replay loop until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.run")
	defer span.End()

	done := make(chan struct{})
	defer close(done)
	events := v.pollEvents(done)

	delay := v.session.Delay
	if delay < minDelay {
		delay = minDelay
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	if v.session.Algorithm != algorithm.None {
		v.start(ctx)
	}

	for v.running {
		v.draw()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			v.handleEvent(ctx, ev)
		case <-ticker.C:
			v.tick(span)
		}
	}
	return nil
}

// pollEvents forwards terminal events until the screen is closed or done is
// closed.
func (v *Viewer) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// start generates a new map and begins replaying it.
func (v *Viewer) start(ctx context.Context) {
	v.run = Generate(ctx, v.session, v.seed)
	v.frame = nil
	v.paused = false
	v.state = StateRunning

	v.logger.Info("generated map",
		"algorithm", v.run.Algorithm.ID(),
		"width", v.session.Width,
		"height", v.session.Height,
		"seed", v.seed,
		"snapshots", v.run.Frames.Total(),
	)
}

// tick advances the replay by one snapshot.
func (v *Viewer) tick(span trace.Span) {
	if v.state != StateRunning || v.paused {
		return
	}
	g, ok := v.run.Frames.Pop()
	if !ok {
		v.finish(span)
		return
	}
	v.frame = g
}

// finish shows the final map.
func (v *Viewer) finish(span trace.Span) {
	v.state = StateFinished
	v.frame = v.run.Final
	span.AddEvent("replay.finished", trace.WithAttributes(
		attribute.String("algorithm", v.run.Algorithm.ID()),
		attribute.Int("map.snapshots", v.run.Frames.Total()),
	))
	v.logger.Debug("replay finished", "algorithm", v.run.Algorithm.ID())
}

// handleEvent processes a single input event.
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	v.handleKey(ctx, ev.Key(), ev.Rune())
}

func (v *Viewer) handleKey(ctx context.Context, key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
		return
	case tcell.KeyEnter:
		if v.state == StateRunning {
			for !v.run.Frames.Empty() {
				v.run.Frames.Pop()
			}
			v.paused = false
		}
		return
	case tcell.KeyRune:
	default:
		return
	}

	if r == 'q' || r == 'Q' {
		v.running = false
		return
	}

	switch v.state {
	case StateMenu:
		all := algorithm.All()
		if i := int(r - '1'); i >= 0 && i < len(all) {
			v.session.Select(all[i])
			v.start(ctx)
		}
	case StateRunning:
		if r == ' ' {
			v.paused = !v.paused
		}
	case StateFinished:
		switch r {
		case 'r', 'R':
			if v.seed != 0 {
				v.seed++
			}
			v.start(ctx)
		case 'm', 'M':
			v.state = StateMenu
			v.frame = nil
		}
	}
}

// draw renders the current state.
func (v *Viewer) draw() {
	f := ui.Frame{Grid: v.frame, Exit: -1}

	switch v.state {
	case StateMenu:
		f.Status = menuLines()
	case StateRunning:
		status := fmt.Sprintf("%s  snapshot %d/%d", v.run.Algorithm, v.run.Frames.Shown(), v.run.Frames.Total())
		if v.paused {
			status += "  [paused]"
		}
		f.Status = []string{status, "space pause  enter skip  q quit"}
	case StateFinished:
		f.Exit, f.HasExit = v.run.Exit, v.run.HasExit
		f.Status = []string{v.summary(), "r regenerate  m menu  q quit"}
	}

	v.renderer.Render(f)
}

func (v *Viewer) summary() string {
	s := fmt.Sprintf("%s  %d snapshots  %d floor tiles",
		v.run.Algorithm, v.run.Frames.Total(), v.run.Final.Count(world.TileFloor))
	if v.run.Rooms != nil {
		s += fmt.Sprintf("  %d rooms", len(v.run.Rooms))
	}
	return s
}

func menuLines() []string {
	lines := []string{"Choose an algorithm:", ""}
	for i, a := range algorithm.All() {
		lines = append(lines, fmt.Sprintf("%d) %-18s %s", i+1, a, a.Description()))
	}
	return append(lines, "", "q quit")
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}

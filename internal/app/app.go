package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/diegok/touchpong/internal/audio"
	"github.com/diegok/touchpong/internal/config"
	"github.com/diegok/touchpong/internal/game"
	"github.com/diegok/touchpong/internal/protocol"
	"github.com/diegok/touchpong/internal/ui"
)

// App is the host: it owns the game state, drives it at a fixed tick rate
// and forwards pointer drags into it.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	session string
	seed    int64
	game    *game.GameState

	screen   *ui.Screen
	renderer *ui.Renderer
	pointer  ui.Pointer
	trace    *protocol.Codec
	prev     protocol.Snapshot
	play     func(audio.Event)
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := uuid.NewString()

	gs := game.NewGameState(cfg.Width, cfg.Height, game.Options{
		BallSize:   game.Vector2{X: cfg.BallSize, Y: cfg.BallSize},
		PaddleSize: game.Vector2{X: cfg.PaddleWidth, Y: cfg.PaddleHeight},
		Rand:       rand.New(rand.NewPCG(uint64(seed), uint64(seed))),
	})

	return &App{
		cfg:     cfg,
		log:     log.With(zap.String("session", session)),
		session: session,
		seed:    seed,
		game:    gs,
		play:    audio.Play,
	}
}

// Snapshot returns the state after the last update
func (a *App) Snapshot() protocol.Snapshot {
	return a.prev
}

// Run serves the first ball and runs until the frame limit, a quit key or
// SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.TracePath != "" {
		f, err := os.Create(a.cfg.TracePath)
		if err != nil {
			return fmt.Errorf("failed to create trace: %w", err)
		}
		defer f.Close()
		if err := a.startTrace(protocol.NewEncoder(f)); err != nil {
			return err
		}
	}

	a.start()

	var err error
	if a.cfg.Headless {
		err = a.runHeadless(ctx)
	} else {
		// Game works without sound, so init errors are only logged
		if !a.cfg.Mute {
			if aerr := audio.Init(); aerr != nil {
				a.log.Warn("audio unavailable", zap.Error(aerr))
			}
			defer audio.Close()
		}

		screen, serr := ui.InitScreen()
		if serr != nil {
			return fmt.Errorf("failed to initialize screen: %w", serr)
		}
		err = a.runInteractive(ctx, screen)
	}

	a.log.Info("session finished",
		zap.Int("ticks", a.prev.Tick),
		zap.Int("player1", a.prev.Player1.Score),
		zap.Int("player2", a.prev.Player2.Score),
		zap.Error(err),
	)
	return err
}

// start serves the opening ball
func (a *App) start() {
	a.game.ServeBall()
	a.prev = a.game.Snapshot()
	a.log.Info("session started",
		zap.Int64("seed", a.seed),
		zap.Float64("width", a.cfg.Width),
		zap.Float64("height", a.cfg.Height),
		zap.Int("tick_rate", a.cfg.TickRate),
		zap.Bool("headless", a.cfg.Headless),
	)
}

func (a *App) startTrace(codec *protocol.Codec) error {
	a.trace = codec
	err := codec.WriteHeader(protocol.TraceHeader{
		Session:     a.session,
		Seed:        a.seed,
		ArenaWidth:  a.cfg.Width,
		ArenaHeight: a.cfg.Height,
		TickRate:    a.cfg.TickRate,
	})
	if err != nil {
		return fmt.Errorf("failed to write trace header: %w", err)
	}
	return nil
}

// step advances the game once and reacts to what changed
func (a *App) step(dt time.Duration) error {
	a.game.Update(dt)
	snap := a.game.Snapshot()

	for _, ev := range DetectEvents(a.prev, snap) {
		a.play(ev)
		if ev == audio.Score {
			a.log.Info("point scored",
				zap.Int("tick", snap.Tick),
				zap.Int("player1", snap.Player1.Score),
				zap.Int("player2", snap.Player2.Score),
			)
		}
	}
	a.prev = snap

	if a.trace != nil {
		if err := a.trace.WriteSnapshot(snap); err != nil {
			return fmt.Errorf("failed to write trace frame %d: %w", snap.Tick, err)
		}
	}
	return nil
}

// runHeadless simulates cfg.Frames updates back to back, without pacing
func (a *App) runHeadless(ctx context.Context) error {
	dt := time.Second / time.Duration(a.cfg.TickRate)
	for i := 0; i < a.cfg.Frames; i++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := a.step(dt); err != nil {
			return err
		}
	}
	return nil
}

// runInteractive pumps terminal events and ticks the game until quit. The
// loop goroutine is the only one touching game state.
func (a *App) runInteractive(ctx context.Context, screen *ui.Screen) error {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)

	g.Go(func() error {
		a.pumpEvents(ctx, events)
		return nil
	})
	g.Go(func() error {
		// Finalizing the screen unblocks PollEvent in the pump
		defer a.screen.Fini()
		defer cancel()
		return a.mainLoop(ctx, events)
	})

	return g.Wait()
}

func (a *App) pumpEvents(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// mainLoop is the fixed-timestep loop: one update per tick, input applied
// between ticks.
func (a *App) mainLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	last := time.Now()
	a.renderer.RenderGame(a.prev)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := a.step(dt); err != nil {
				return err
			}
			a.renderer.RenderGame(a.prev)

			if a.cfg.Frames > 0 && a.prev.Tick >= a.cfg.Frames {
				return nil
			}
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ui.IsQuitKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		vp := a.renderer.Viewport(a.game.Width, a.game.Height)
		if x, y, ok := a.pointer.Drag(ev, vp); ok {
			a.game.OnPointerMove(x, y)
		}

	case *tcell.EventResize:
		a.screen.Clear()
		a.renderer.RenderGame(a.prev)
	}

	return false
}

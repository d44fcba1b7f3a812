// Package bootstrap is the hosting runtime: it constructs the shell once per
// process, wires the router into it and attaches the result to the terminal.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/camunda-angular/client/core"
	"github.com/camunda-angular/client/internal/config"
	"github.com/camunda-angular/client/internal/logging"
	"github.com/camunda-angular/client/router"
	"github.com/camunda-angular/client/views"
)

var ErrAlreadyBootstrapped = errors.New("shell already bootstrapped")

type Option func(*Runtime)

func WithLogger(l *zap.Logger) Option {
	return func(rt *Runtime) {
		if l != nil {
			rt.log = l
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(rt *Runtime) { rt.clock = c }
}

func WithIO(in io.Reader, out io.Writer) Option {
	return func(rt *Runtime) {
		rt.in = in
		rt.out = out
	}
}

// WithRoutes replaces the default route table.
func WithRoutes(fn func(views.Info, *core.KeyRegistry) []router.Route) Option {
	return func(rt *Runtime) { rt.routes = fn }
}

type Runtime struct {
	cfg     config.Config
	log     *zap.Logger
	clock   clock.Clock
	session uuid.UUID
	in      io.Reader
	out     io.Writer
	routes  func(views.Info, *core.KeyRegistry) []router.Route

	mu     sync.Mutex
	calls  int
	shell  *core.Shell
	router *router.Router
	model  core.Model
}

func New(cfg config.Config, opts ...Option) *Runtime {
	rt := &Runtime{
		cfg:     cfg,
		log:     logging.L(),
		clock:   clock.New(),
		session: uuid.New(),
		in:      os.Stdin,
		out:     os.Stdout,
		routes:  views.DefaultRoutes,
	}
	for _, opt := range opts {
		opt(rt)
	}
	rt.log = rt.log.With(zap.String("session", rt.session.String()))
	return rt
}

func (rt *Runtime) Session() uuid.UUID {
	return rt.session
}

// Bootstraps reports how many times Bootstrap was invoked, successful or not.
func (rt *Runtime) Bootstraps() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.calls
}

// Bootstrap constructs the shell and everything it is composed with. It
// succeeds once; later calls return ErrAlreadyBootstrapped and leave the
// existing shell untouched.
func (rt *Runtime) Bootstrap() (*core.Shell, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.calls++
	if rt.shell != nil {
		return nil, ErrAlreadyBootstrapped
	}
	if err := rt.cfg.Validate(); err != nil {
		return nil, err
	}

	bindings, err := core.ApplyActionKeybindings(core.DefaultKeyBindings(), rt.cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("%w: keys: %w", config.ErrInvalidConfig, err)
	}
	keys := core.NewKeyRegistry(bindings)

	shell := core.New()
	info := views.Info{Title: shell.Title(), Session: rt.session.String()}
	r, err := router.New(rt.routes(info, keys),
		router.WithClock(rt.clock),
		router.WithLogger(rt.log),
		router.WithMaxHistory(rt.cfg.Router.MaxHistory),
		router.WithObserver(rt.observe),
	)
	if err != nil {
		return nil, fmt.Errorf("route table: %w", err)
	}

	rt.shell = shell
	rt.router = r
	rt.model = core.NewModel(shell, r, keys, rt.cfg.Router.InitialRoute)
	rt.log.Info("shell bootstrapped", zap.String("title", shell.Title()))
	return shell, nil
}

func (rt *Runtime) observe(e router.Event) {
	if ne, ok := e.(router.NavigationError); ok {
		rt.log.Info("navigation error surfaced", zap.Int("nav_id", ne.ID), zap.Error(ne.Err))
	}
}

func (rt *Runtime) Router() *router.Router {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.router
}

// Frame navigates to the initial route and paints one frame at the configured
// size. A failed initial navigation is returned rather than painted.
func (rt *Runtime) Frame() (string, error) {
	if err := rt.ensureBootstrapped(); err != nil {
		return "", err
	}
	m := rt.model
	if err := rt.router.Navigate(rt.cfg.Router.InitialRoute); err != nil {
		return "", fmt.Errorf("initial navigation: %w", err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: rt.cfg.UI.Width, Height: rt.cfg.UI.Height})
	next, _ = next.Update(core.StatusMsg{Text: "Navigated to " + rt.router.Location()})
	return next.View(), nil
}

// Run attaches the shell to the terminal until the user quits or ctx is done.
// When output is not a terminal, or headless mode is configured, it writes a
// single frame instead.
func (rt *Runtime) Run(ctx context.Context) error {
	if err := rt.ensureBootstrapped(); err != nil {
		return err
	}
	defer rt.Teardown()

	if rt.cfg.UI.Headless || !isTerminal(rt.out) {
		frame, err := rt.Frame()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(rt.out, frame)
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithInput(rt.in), tea.WithOutput(rt.out)}
	if rt.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(rt.model, opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// Teardown ends the runtime's hold on the root view and flushes the log.
// The shell itself has no teardown step.
func (rt *Runtime) Teardown() {
	rt.log.Info("runtime teardown", zap.Int("bootstraps", rt.Bootstraps()))
	_ = rt.log.Sync()
}

func (rt *Runtime) ensureBootstrapped() error {
	rt.mu.Lock()
	booted := rt.shell != nil
	rt.mu.Unlock()
	if booted {
		return nil
	}
	_, err := rt.Bootstrap()
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

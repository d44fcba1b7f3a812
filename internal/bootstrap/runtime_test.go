package bootstrap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/camunda-angular/client/core"
	"github.com/camunda-angular/client/internal/config"
	"github.com/camunda-angular/client/internal/logging"
	"github.com/camunda-angular/client/router"
	"github.com/camunda-angular/client/views"
)

func testConfig() config.Config {
	return config.Config{
		UI:     config.UIConfig{Width: 60, Height: 12, Headless: true},
		Router: config.RouterConfig{InitialRoute: "/", MaxHistory: 10},
		Log:    config.LogConfig{Level: "info"},
	}
}

func TestBootstrapSucceedsOnce(t *testing.T) {
	rt := New(testConfig())

	shell, err := rt.Bootstrap()
	require.NoError(t, err)
	require.True(t, shell.Mounted())
	assert.Equal(t, "camunda-angular", shell.Title())
	assert.NotNil(t, rt.Router())

	again, err := rt.Bootstrap()
	assert.ErrorIs(t, err, ErrAlreadyBootstrapped)
	assert.Nil(t, again)
	assert.Equal(t, 2, rt.Bootstraps())
}

func TestBootstrapFailsFastOnInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Router.InitialRoute = "home"
	_, err := New(cfg).Bootstrap()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = testConfig()
	cfg.Keys = map[string][]string{"fly": {"f"}}
	rt := New(cfg)
	_, err = rt.Bootstrap()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `unknown key action "fly"`)
	assert.Nil(t, rt.Router())
}

func TestBootstrapReportsBadRouteTable(t *testing.T) {
	rt := New(testConfig(), WithRoutes(func(views.Info, *core.KeyRegistry) []router.Route {
		return []router.Route{{Path: "/home"}}
	}))
	_, err := rt.Bootstrap()
	assert.ErrorIs(t, err, router.ErrInvalidRoute)
}

func TestRunHeadlessPaintsSingleFrame(t *testing.T) {
	var out bytes.Buffer
	rt := New(testConfig(), WithIO(strings.NewReader(""), &out))

	require.NoError(t, rt.Run(t.Context()))
	frame := ansi.Strip(out.String())
	assert.Contains(t, frame, "camunda-angular")
	assert.Contains(t, frame, "/home")
	assert.Contains(t, frame, "Navigated to /home")
	assert.Equal(t, 12, len(strings.Split(strings.TrimSuffix(frame, "\n"), "\n")))
	assert.Equal(t, 1, rt.Bootstraps())
}

func TestRunUsesHeadlessWhenOutputIsNotATerminal(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig()
	cfg.UI.Headless = false
	rt := New(cfg, WithIO(strings.NewReader(""), &out))

	require.NoError(t, rt.Run(t.Context()))
	assert.Contains(t, ansi.Strip(out.String()), "camunda-angular")
}

func TestFrameFailsWhenInitialRouteCannotResolve(t *testing.T) {
	cfg := testConfig()
	cfg.Router.InitialRoute = "/missing"
	rt := New(cfg, WithRoutes(func(info views.Info, keys *core.KeyRegistry) []router.Route {
		return []router.Route{{Path: "home", View: func(router.Snapshot) router.View { return views.NewAbout(info) }}}
	}))

	_, err := rt.Frame()
	assert.ErrorIs(t, err, router.ErrNoRoute)
}

func TestNavigationErrorsAreLogged(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	rt := New(testConfig(), WithLogger(zap.New(obs)), WithRoutes(func(info views.Info, keys *core.KeyRegistry) []router.Route {
		return []router.Route{{Path: "home", View: func(router.Snapshot) router.View { return views.NewAbout(info) }}}
	}))
	_, err := rt.Bootstrap()
	require.NoError(t, err)

	require.Error(t, rt.Router().Navigate("/elsewhere"))
	entries := logs.FilterMessage("navigation error surfaced").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rt.Session().String(), entries[0].ContextMap()["session"])
}

func TestSessionsAreDistinct(t *testing.T) {
	assert.NotEqual(t, New(testConfig()).Session(), New(testConfig()).Session())
}

func TestRuntimeDefaultsToProcessLogger(t *testing.T) {
	prev := logging.L()
	t.Cleanup(func() { logging.SetLogger(prev) })
	obs, logs := observer.New(zap.InfoLevel)
	logging.SetLogger(zap.New(obs))

	rt := New(testConfig())
	_, err := rt.Bootstrap()
	require.NoError(t, err)

	entries := logs.FilterMessage("shell bootstrapped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rt.Session().String(), entries[0].ContextMap()["session"])
}

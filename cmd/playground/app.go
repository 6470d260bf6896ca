package main

import (
	"context"
	"log/slog"

	"github.com/leighmacdonald/playground/internal/config"
	"github.com/leighmacdonald/playground/internal/ui"
	"golang.org/x/sync/errgroup"
)

// App is the main application container.
type App struct {
	ui            *ui.UI
	config        config.Config
	configUpdates <-chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call Start().
func NewApp(conf config.Config, configUpdates <-chan config.Config) *App {
	return &App{
		config:        conf,
		configUpdates: configUpdates,
	}
}

// Start runs the UI until the user quits, forwarding config reloads into it meanwhile.
func (app *App) Start(ctx context.Context, build ui.BuildInfo, configPath string, logPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.ui = ui.New(ctx, app.config, build, configPath, logPath)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		// Leaving the ui stops the config forwarder.
		defer cancel()

		return app.ui.Run()
	})
	group.Go(func() error {
		app.configSender(groupCtx)

		return nil
	})

	return group.Wait()
}

// configSender forwards every reloaded config to the UI.
func (app *App) configSender(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Applying reloaded config")
			app.config = conf
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

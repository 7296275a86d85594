// Command docusign-login is a minimal host for the DocuSign strategy. It
// redirects to DocuSign on /auth/docusign and prints the authenticated
// profile as JSON on /auth/docusign/callback.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/docusign-oauth/pkg/config"
	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
	"github.com/dmitrymomot/docusign-oauth/pkg/httpserver"
	"github.com/dmitrymomot/docusign-oauth/pkg/logger"
	"github.com/dmitrymomot/docusign-oauth/pkg/oauthstate"
	"github.com/dmitrymomot/docusign-oauth/pkg/requestid"
)

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	ConfigFile   string `env:"DOCUSIGN_CONFIG_FILE"`
	StateBackend string `env:"STATE_BACKEND" envDefault:"memory"`
	HTTP         httpserver.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "docusign-login: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var app appConfig
	if err := config.Load(&app); err != nil {
		return fmt.Errorf("load app config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, "docusign-login"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	dsCfg, err := loadStrategyConfig(app)
	if err != nil {
		return err
	}

	backend, err := newStateBackend(ctx, app.StateBackend)
	if err != nil {
		return err
	}

	strategy, err := docusign.New(dsCfg,
		docusign.WithLogger(log),
		docusign.WithStateStore(backend.store),
	)
	if err != nil {
		backend.close()
		return fmt.Errorf("create strategy: %w", err)
	}

	srv := httpserver.NewFromConfig(app.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("docusign login host starting",
				slog.String("state_backend", app.StateBackend),
				slog.String("docusign_host", strategy.Config().Host),
			)
		}),
		httpserver.WithStopHook(func(*slog.Logger) { backend.close() }),
	)
	return srv.Run(ctx, newRouter(strategy, log, backend.checks...))
}

// loadStrategyConfig reads the DocuSign client settings from a YAML file when
// DOCUSIGN_CONFIG_FILE is set, from the environment otherwise.
func loadStrategyConfig(app appConfig) (docusign.Config, error) {
	var cfg docusign.Config
	if app.ConfigFile != "" {
		if err := config.LoadFile(app.ConfigFile, &cfg); err != nil {
			return cfg, fmt.Errorf("load docusign config file: %w", err)
		}
		return cfg, nil
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, fmt.Errorf("load docusign config: %w", err)
	}
	return cfg, nil
}

// stateBackend is the state store together with its readiness checks and
// cleanup.
type stateBackend struct {
	store  docusign.StateStore
	checks []func(context.Context) error
	close  func()
}

func newStateBackend(ctx context.Context, name string) (stateBackend, error) {
	switch name {
	case "redis":
		var rc oauthstate.RedisConfig
		if err := config.Load(&rc); err != nil {
			return stateBackend{}, fmt.Errorf("load redis config: %w", err)
		}
		client, err := oauthstate.Connect(ctx, rc)
		if err != nil {
			return stateBackend{}, err
		}
		return stateBackend{
			store:  oauthstate.NewRedisStore(client, rc.KeyPrefix),
			checks: []func(context.Context) error{oauthstate.Healthcheck(client)},
			close:  func() { _ = client.Close() },
		}, nil
	case "memory", "":
		return stateBackend{
			store: oauthstate.NewMemoryStore(time.Minute),
			close: func() {},
		}, nil
	default:
		return stateBackend{}, fmt.Errorf("unknown state backend %q", name)
	}
}

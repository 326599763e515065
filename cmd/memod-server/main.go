package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/memod/internal/core/service"
	"github.com/yndnr/memod/internal/infra/buildinfo"
	"github.com/yndnr/memod/internal/infra/confloader"
	"github.com/yndnr/memod/internal/infra/shutdown"
	"github.com/yndnr/memod/internal/server/config"
	"github.com/yndnr/memod/internal/server/httpserver"
	"github.com/yndnr/memod/internal/storage/memory"
	"github.com/yndnr/memod/internal/telemetry/logger"
	"github.com/yndnr/memod/internal/telemetry/metric"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "memod-server",
		Usage:   "In-memory memo store over HTTP",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				EnvVars: []string{"MEMOD_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address, overrides server.http.addr",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"), c.String("addr"))
		},
	}
}

func run(configFile, addr string) error {
	cfg, err := loadConfig(configFile, addr)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	info := buildinfo.Get()
	log.Info("starting memod-server",
		"version", info.Version,
		"commit", info.Commit,
		"config", configFile)

	store := memory.New()

	var (
		registry *metric.Registry
		svcOpts  []service.MemoServiceOption
	)
	if cfg.Metrics.Enabled {
		registry = metric.NewRegistry()
		registry.MustRegister(metric.NewMemoCollector(store))
		svcOpts = append(svcOpts, service.WithRecorder(registry))
	}
	memoSvc := service.NewMemoService(store, svcOpts...)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		MemoService:        memoSvc,
		Logger:             log,
		Metrics:            registry,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		GlobalRateLimit:    cfg.Server.RateLimit,
		TrustProxyHeaders:  cfg.Server.TrustProxyHeaders,
		EnableAudit:        cfg.Server.EnableAudit,
	})

	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router, httpserver.Options{
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
	})

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout)

	// Hooks run in reverse order of registration.
	shutdownHandler.OnShutdown("http server", func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	if configFile != "" {
		watcher, err := watchConfig(configFile, log)
		if err != nil {
			log.Warn("config hot reload disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown("config watcher", func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening",
			"addr", cfg.Server.HTTP.Addr,
			"tls", cfg.Server.HTTP.TLSEnabled(),
			"metrics", registry != nil)

		var err error
		if cfg.Server.HTTP.TLSEnabled() {
			err = httpServer.ListenAndServeTLS(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile)
		} else {
			err = httpServer.ListenAndServe()
		}

		if err != nil {
			log.Error("HTTP server error", "error", err)
			shutdownHandler.Trigger()
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(context.Background()); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig layers defaults, the config file, environment variables and
// flag overrides, then validates the result.
func loadConfig(configFile, addr string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{confloader.WithConfigFile(configFile)}
	if addr != "" {
		opts = append(opts, confloader.WithOverrides(map[string]any{"server.http.addr": addr}))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// watchConfig applies log level changes from the config file at runtime.
// Other settings are read once at startup.
func watchConfig(path string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(logger.Slog(log)))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(path); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(changed string) {
		cfg := config.Default()
		if err := confloader.NewLoader(confloader.WithConfigFile(changed)).Load(cfg); err != nil {
			log.Warn("config reload failed", "path", changed, "error", err)
			return
		}
		if err := config.Verify(cfg); err != nil {
			log.Warn("config reload rejected", "path", changed, "error", err)
			return
		}

		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})
	watcher.StartAsync()

	return watcher, nil
}

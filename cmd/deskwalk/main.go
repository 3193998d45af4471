package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/deskwalk/internal/config"
	"github.com/mmynk/deskwalk/internal/metrics"
	"github.com/mmynk/deskwalk/internal/middleware"
	"github.com/mmynk/deskwalk/internal/service"
	"github.com/mmynk/deskwalk/internal/storage"
	"github.com/mmynk/deskwalk/internal/storage/cache"
	"github.com/mmynk/deskwalk/internal/storage/memory"
	"github.com/mmynk/deskwalk/internal/storage/redis"
	"github.com/mmynk/deskwalk/internal/storage/sqlite"
	"github.com/mmynk/deskwalk/pkg/logging"
)

const usage = `Usage: deskwalk [flags] <command> [args]

Commands:
  profile set|show
  weight log|list|delete
  walk log|list|delete
  milestone add|list|delete
  dashboard

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("deskwalk", flag.ContinueOnError)
	configPath := fs.String("config", "./deskwalk.toml", "path for the TOML config file")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file on exit")
	jsonOut := fs.Bool("json", false, "print results as JSON")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	// Console logging from LOG_LEVEL until the config is known.
	logging.Setup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "path", *configPath, "error", err)
		return 1
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}

	logCloser := logging.SetupWithParams(logging.Params{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logCloser.Close()

	ctx := context.Background()
	reg := prometheus.NewRegistry()
	mgr := metrics.NewManager("deskwalk", "store", reg)

	store, err := openStore(ctx, cfg, mgr)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return 1
	}
	defer store.Close()
	slog.Debug("Storage initialized", "backend", cfg.Backend, "policy", store.Policy().String())

	out := &printer{w: stdout, json: *jsonOut}
	tracker := service.NewTracker(store)

	code := dispatch(ctx, tracker, out, fs.Args())

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			slog.Error("Failed to write metrics", "error", err)
		}
	}
	return code
}

// openStore builds the backend chain named by cfg. Under the best-effort
// policy a backend that cannot be opened is replaced by storage.Unavailable.
func openStore(ctx context.Context, cfg *config.Config, mgr *metrics.Manager) (*storage.LocalStore, error) {
	policy := storage.BestEffort
	if cfg.StrictStorage {
		policy = storage.Strict
	}

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		if policy == storage.Strict {
			return nil, err
		}
		slog.Warn("Storage backend unavailable, changes will not be saved",
			"backend", cfg.Backend,
			"error", err,
		)
		backend = storage.Unavailable()
	}

	if cfg.CacheSizeMB > 0 {
		backend = cache.New(backend, cfg.CacheSizeMB*1024*1024)
	}
	backend = middleware.Chain(backend,
		middleware.Logging(),
		middleware.Instrument(mgr),
	)

	return storage.NewLocalStore(backend,
		storage.WithPolicy(policy),
		storage.WithObserver(mgr),
	), nil
}

func openBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(cfg.DBPath)
	case config.BackendRedis:
		return redis.Dial(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// exitCode maps an operation error to a process exit code, reporting it on stderr.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(os.Stderr, verr.Error())
		return 2
	case errors.Is(err, service.ErrNoProfile):
		fmt.Fprintln(os.Stderr, err.Error())
		return 3
	default:
		slog.Error("Command failed", "error", err)
		return 1
	}
}

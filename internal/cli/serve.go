package cli

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/internal/metrics"
	"github.com/matzehuels/pathfinder/pkg/cache"
	"github.com/matzehuels/pathfinder/pkg/config"
	"github.com/matzehuels/pathfinder/pkg/server"
	"github.com/matzehuels/pathfinder/pkg/solver"
)

const shutdownTimeout = 10 * time.Second

// serveOpts holds the flags for the serve command. Flags override the
// config file and environment when set.
type serveOpts struct {
	configPath string
	addr       string
	cache      string
	redisURL   string
	noMetrics  bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Settings come from the built-in defaults, then the --config file, then
PATHFINDER_* environment variables, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runServe(cmd, cfg, !opts.noMetrics)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&opts.cache, "cache", "", "cache backend: none, file, redis")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for the redis cache backend")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "disable the /metrics endpoint")

	return cmd
}

// loadServeConfig merges defaults, the config file, the environment and
// flags, in that order.
func loadServeConfig(cmd *cobra.Command, opts *serveOpts) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend = opts.cache
	}
	if flags.Changed("redis-url") {
		cfg.Cache.RedisURL = opts.redisURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *CLI) runServe(cmd *cobra.Command, cfg *config.Config, withMetrics bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	// --verbose wins over the configured level.
	if logger.GetLevel() != LogDebug {
		level, err := parseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
	}

	dir, _ := cacheDir()
	cc, err := cache.Open(ctx, cfg.CacheOptions(dir))
	if err != nil {
		return err
	}

	var keyer cache.Keyer
	if cfg.Cache.KeyPrefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.KeyPrefix)
	}
	runner := solver.NewRunner(cc, keyer, logger)
	defer runner.Close()
	runner.Limits = cfg.Limits()
	runner.TTL = cfg.Cache.TTL.Duration

	opts := server.Options{
		Runner:         runner,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout.Duration,
	}
	if withMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics.New(reg).Register()
		opts.Gatherer = reg
	}

	logger.Info("starting server",
		"addr", cfg.Addr,
		"cache", cfg.Cache.Backend,
		"max_nodes", cfg.MaxNodes,
		"max_edges", cfg.MaxEdges)

	return server.New(opts).ListenAndServe(ctx, cfg.Addr, shutdownTimeout)
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mveltman/gridlock/internal/server"
	"github.com/mveltman/gridlock/pkg/cache"
	griderrors "github.com/mveltman/gridlock/pkg/errors"
	"github.com/mveltman/gridlock/pkg/pipeline"
	"github.com/mveltman/gridlock/pkg/session"
)

// serveCommand creates the serve command. Backend selection (file or Redis
// cache, memory or Mongo sessions) comes from the TOML config file, with the
// address overridable by flag.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configFile string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gesture engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := loadFileConfig(configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				fc.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), fc)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (TOML), defaults to ~/.config/gridlock/config.toml")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, fc fileConfig) error {
	store, err := newSessionStore(ctx, fc)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	cch, err := newServeCache(ctx, fc)
	if err != nil {
		return err
	}

	// Shared Redis deployments get a namespaced keyer so gridlock entries
	// don't collide with other tenants of the same instance.
	var keyer cache.Keyer
	if fc.Cache.Backend == backendRedis {
		keyer = cache.NewScopedKeyer(nil, "gridlock:")
	}

	runner := pipeline.NewRunner(cch, keyer, c.Logger)
	defer runner.Close()

	printInfo("Starting server")
	printKeyValue("Address", fc.Server.Addr)
	printKeyValue("Cache", fc.Cache.Backend)
	printKeyValue("Sessions", fc.Session.Backend)

	srv := server.New(server.Options{
		Addr:       fc.Server.Addr,
		Store:      store,
		Runner:     runner,
		SessionTTL: fc.sessionTTL(session.DefaultTTL),
		Logger:     c.Logger,
	})
	return srv.ListenAndServe(ctx)
}

// newSessionStore builds the configured session store backend.
func newSessionStore(ctx context.Context, fc fileConfig) (session.Store, error) {
	switch fc.Session.Backend {
	case backendMemory, "":
		return session.NewMemoryStore(), nil
	case backendMongo:
		return session.NewMongoStore(ctx, session.MongoConfig{URI: fc.Session.MongoURI})
	default:
		return nil, griderrors.New(griderrors.ErrCodeInvalidConfig,
			"unknown session backend: %q (must be memory or mongo)", fc.Session.Backend)
	}
}

// newServeCache builds the configured cache backend.
func newServeCache(ctx context.Context, fc fileConfig) (cache.Cache, error) {
	switch fc.Cache.Backend {
	case backendFile, "":
		dir := fc.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr: fc.Cache.RedisAddr,
			DB:   fc.Cache.RedisDB,
		})
	case backendNull:
		return cache.NewNullCache(), nil
	default:
		return nil, griderrors.New(griderrors.ErrCodeInvalidConfig,
			"unknown cache backend: %q (must be file, redis, or null)", fc.Cache.Backend)
	}
}

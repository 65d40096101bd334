package nakama

import (
	"context"
	"database/sql"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/prometheus/client_golang/prometheus"

	"lundao/internal/bot"
	"lundao/internal/config"
	"lundao/internal/decision"
)

var (
	metricsOnce sync.Once
	metrics     *decision.Metrics
)

// InitModule loads the config, builds every strategy and registers the RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	path := ""
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		path = env[EnvConfigPath]
	}
	if err := config.LoadGameConfig(path); err != nil {
		logger.Error("Failed to load config %q: %v", path, err)
		return err
	}
	cfg := config.GetGameConfig()

	h, err := newHandlers(cfg, logger)
	if err != nil {
		return err
	}
	if err := RegisterRPCs(initializer, h); err != nil {
		return err
	}

	logger.Info("LunDao Go module loaded. Default strategy: %s", cfg.Strategy)
	return nil
}

func newHandlers(cfg config.Config, logger runtime.Logger) (*handlers, error) {
	strategies, err := bot.NewAll(cfg.StrategyOptions())
	if err != nil {
		return nil, err
	}

	// The default registerer rejects a second registration of the same names.
	metricsOnce.Do(func() {
		metrics = decision.NewMetrics(prometheus.DefaultRegisterer)
	})

	svc := decision.NewService(decision.NewRegistry(strategies...), metrics, logger)
	return &handlers{service: svc, defaultStrategy: cfg.Strategy, options: cfg.StrategyOptions()}, nil
}

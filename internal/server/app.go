package server

import (
	"context"
	"fmt"

	"cardcompare/internal/assistant"
	"cardcompare/internal/cards"
	"cardcompare/internal/chat"
	"cardcompare/pkg/catalog"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/utils"
)

// App holds the services shared by the HTTP and gRPC transports.
type App struct {
	Catalog   *catalog.Catalog
	Cards     *cards.Repo
	Assistant *assistant.Service
	Chat      *chat.Service

	closers []func() error
}

// Bootstrap loads the catalog and wires the generation stack. A catalog that
// fails to load is the only fatal condition; a missing credential or an
// unreachable cache only disables that piece.
func Bootstrap(ctx context.Context, source string, log *logger.Logger) (*App, error) {
	log = logger.OrNop(log)

	cat, err := catalog.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Info("catalog loaded", "source", sourceLabel(source), "cards", cat.Len())

	genCfg := utils.LoadGenerationConfig()
	gen, err := assistant.NewGenerator(ctx, genCfg, log)
	if err != nil {
		return nil, fmt.Errorf("text generation: %w", err)
	}
	log.Info("text generation", "provider", gen.Name(), "timeout", genCfg.Timeout.String())

	app := &App{Catalog: cat, Cards: cards.NewRepo(cat)}

	var cache assistant.Cache
	if cacheCfg := utils.LoadCacheConfig(); cacheCfg.RedisAddr != "" {
		rc, err := assistant.NewRedisCache(ctx, cacheCfg.RedisAddr, cacheCfg.TTL)
		if err != nil {
			log.Warn("summary cache disabled", "addr", cacheCfg.RedisAddr, "error", err)
		} else {
			log.Info("summary cache enabled", "addr", cacheCfg.RedisAddr, "ttl", cacheCfg.TTL.String())
			cache = rc
			app.closers = append(app.closers, rc.Close)
		}
	}

	app.Assistant = assistant.NewService(gen, cache, genCfg.Timeout, log)
	app.Chat = chat.NewService(app.Cards, app.Assistant, log)
	return app, nil
}

// Close releases the cache connection, if any.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func sourceLabel(source string) string {
	if source == "" {
		return "embedded"
	}
	return source
}

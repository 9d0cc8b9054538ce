package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-loadout/internal/catalog"
	"github.com/KirkDiggler/rpg-loadout/internal/clients/catalogfeed"
	"github.com/KirkDiggler/rpg-loadout/internal/config"
	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/generator"
	"github.com/KirkDiggler/rpg-loadout/internal/items"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/roll"
	"github.com/KirkDiggler/rpg-loadout/internal/orchestrators/selection"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-loadout/internal/presenter"
	"github.com/KirkDiggler/rpg-loadout/internal/redis"
	selectionrepo "github.com/KirkDiggler/rpg-loadout/internal/repositories/selection"
	"github.com/KirkDiggler/rpg-loadout/internal/rules"
)

// app is the wired object graph for one command invocation
type app struct {
	store     *catalog.Store
	filter    *items.Filter
	selection selection.Service
	roll      roll.Service
	presenter presenter.Presenter

	redisClient redis.Client
}

func newApp(ctx context.Context, cfg *config.Config, format presenter.Format) (*app, error) {
	store, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rulesCfg, err := rules.LoadConfig(cfg.RulesPath)
	if err != nil {
		return nil, err
	}
	engine, err := rules.New(rulesCfg, store)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rules engine")
	}

	filter, err := items.NewFilter(items.DefaultConfig(), store)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item filter")
	}

	gen, err := generator.New(&generator.Config{Catalog: store, Rules: engine, Items: filter})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}

	a := &app{store: store, filter: filter}

	repo, err := a.selectionRepository(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.selection, err = selection.NewOrchestrator(&selection.Config{
		Catalog:       store,
		SelectionRepo: repo,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.roll, err = roll.NewOrchestrator(&roll.Config{
		Selection:   a.selection,
		Generator:   gen,
		IDGenerator: idgen.NewUUID("build"),
		Clock:       clock.New(),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	a.presenter, err = presenter.New(format, &presenter.Options{ImageBaseURL: cfg.ImageBaseURL})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, error) {
	var provider catalogfeed.Provider = catalogfeed.EmbeddedProvider{}
	if cfg.CatalogPath != "" {
		provider = &catalogfeed.FileProvider{
			Path:   cfg.CatalogPath,
			Format: catalogfeed.Format(cfg.CatalogFormat),
		}
	}

	data, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	store, err := catalog.New(data)
	if err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	slog.Debug("Catalog loaded",
		"path", cfg.CatalogPath,
		"characters", len(store.Characters()),
		"items", len(store.Items()))

	return store, nil
}

// selectionRepository uses Redis when an address is configured and the local
// state directory otherwise
func (a *app) selectionRepository(ctx context.Context, cfg *config.Config) (selectionrepo.Repository, error) {
	if cfg.RedisAddr == "" {
		dir, err := cfg.SelectionDir()
		if err != nil {
			return nil, err
		}
		slog.Debug("Using file selections", "dir", dir)
		return selectionrepo.NewFileRepository(&selectionrepo.FileConfig{
			Dir:   dir,
			Clock: clock.New(),
		})
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, err
	}
	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	a.redisClient = client

	return selectionrepo.NewRedisRepository(&selectionrepo.Config{
		Client: client,
		Clock:  clock.New(),
	})
}

// Close releases the Redis connection, if any
func (a *app) Close() {
	if a.redisClient == nil {
		return
	}
	if err := a.redisClient.Close(); err != nil {
		slog.Warn("Failed to close redis client", "error", err)
	}
}

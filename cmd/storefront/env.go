package main

import (
	"fmt"

	"storefront/internal/api"
	"storefront/internal/app"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/metrics"
)

// env is everything a client command needs, built from the loaded config.
type env struct {
	cfg     config.Config
	store   db.Store
	metrics *metrics.Metrics
	client  *api.Client
	ctrl    *app.Controller
}

func openEnv() (*env, error) {
	cfg := config.Get()
	store, err := db.NewStore(db.StoreConfig{Type: cfg.StoreType, ConnectionString: cfg.StoreDSN})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	m := metrics.NewMetrics(nil)
	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, m)
	ctrl := app.New(store, cfg.StoreNamespace, client, m)
	ctrl.Start()

	return &env{cfg: cfg, store: store, metrics: m, client: client, ctrl: ctrl}, nil
}

func (e *env) Close() {
	_ = e.store.Close()
}

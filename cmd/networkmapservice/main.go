/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package main implements the Network Map Service server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gridsuite/network-map-go/internal/common"
	"github.com/gridsuite/network-map-go/internal/common/model"
	"github.com/gridsuite/network-map-go/internal/networkmap"
	"github.com/gridsuite/network-map-go/internal/networkmap/api"
	"github.com/gridsuite/network-map-go/internal/networkmap/logger"
	"github.com/gridsuite/network-map-go/internal/networkmap/metrics"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/inmemory"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/mongodb"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/postgres"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/s3"
	openapi "github.com/gridsuite/network-map-go/pkg/networkmapapi"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

// backend is an opened network store. writer is nil for read-only backends.
type backend struct {
	store  persistence.NetworkStore
	writer persistence.Writer
	close  func()
}

func openBackend(ctx context.Context, cfg *common.Config) (*backend, error) {
	switch cfg.Store.Backend {
	case "", "inmemory":
		store := inmemory.NewInMemoryNetworkStore()
		return &backend{store: store, writer: store, close: func() {}}, nil

	case "postgres":
		log.Printf("🗄️  Connecting to Postgres with DSN: postgres://%s:****@%s:%d/%s?sslmode=%s",
			cfg.Postgres.User, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName, cfg.Postgres.SSLMode)
		loader, err := postgres.NewPostgreSQLNetworkLoader(
			cfg.Postgres.DSN(),
			cfg.Postgres.MaxOpenConnections,
			cfg.Postgres.MaxIdleConnections,
			cfg.Postgres.ConnMaxLifetimeMinutes,
			cfg.Postgres.SchemaFile,
		)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Postgres connection established")
		return &backend{
			store:  persistence.NewLoaderStore(loader),
			writer: loader,
			close: func() {
				if err := loader.Close(); err != nil {
					logger.LogError("NMMAIN-CLOSE-POSTGRES", err)
				}
			},
		}, nil

	case "mongodb":
		timeout := time.Duration(cfg.MongoDB.ConnectTimeoutSeconds) * time.Second
		loader, err := mongodb.NewMongoNetworkLoader(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, timeout)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ MongoDB connection established (database=%s)", cfg.MongoDB.Database)
		return &backend{
			store:  persistence.NewLoaderStore(loader),
			writer: loader,
			close: func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := loader.Close(closeCtx); err != nil {
					logger.LogError("NMMAIN-CLOSE-MONGODB", err)
				}
			},
		}, nil

	case "s3":
		store, err := s3.NewS3NetworkStore(ctx, s3.Options{
			Bucket:          cfg.S3.Bucket,
			Prefix:          cfg.S3.Prefix,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			UsePathStyle:    cfg.S3.UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		log.Printf("✅ S3 store ready (bucket=%s)", cfg.S3.Bucket)
		return &backend{store: store, writer: store, close: func() {}}, nil
	}
	return nil, fmt.Errorf("NMMAIN-OPENBACKEND-UNKNOWN unknown store backend %q", cfg.Store.Backend)
}

// newRouter wires health, metrics, Swagger UI and the network map routes.
func newRouter(cfg *common.Config, store persistence.NetworkStore, recorder *metrics.Recorder) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	common.AddCors(r, cfg)

	// --- Health Endpoint (public) ---
	common.AddHealthEndpoint(r, cfg)

	base := common.NormalizeBasePath(cfg.Server.ContextPath)
	prefix := base
	if prefix == "/" {
		prefix = ""
	}

	if cfg.Metrics.Enabled && recorder != nil {
		r.Method(http.MethodGet, prefix+cfg.Metrics.Path, recorder.Handler())
	}

	queries := networkmap.NewQueryService(store)
	svc := api.NewNetworkMapAPIService(queries, recorder)
	ctrl := openapi.NewNetworkMapAPIController(svc)

	r.Mount(base, model.NewRouter(ctrl))

	if cfg.Swagger.Enabled {
		if err := common.AddSwaggerUIFromFS(r, openapi.OpenAPI, openapi.OpenAPIFile, "/swagger", "/api-docs/openapi.yaml", cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.Tracing.Enabled {
		return r, nil
	}
	return otelhttp.NewHandler(r, cfg.Tracing.ServiceName), nil
}

func runServer(ctx context.Context, configPath string) error {
	log.Default().Println("Loading Network Map Service...")
	log.Default().Println("Config Path:", configPath)

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Development); err != nil {
		return err
	}
	defer logger.Sync()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		log.Printf("❌ Store setup failed: %v", err)
		return err
	}
	defer b.close()

	if cfg.Store.SnapshotDir != "" && b.writer != nil {
		n, err := persistence.SeedFromDirectory(ctx, b.writer, cfg.Store.SnapshotDir)
		if err != nil {
			return err
		}
		log.Printf("📦 Seeded %d network(s) from %s", n, cfg.Store.SnapshotDir)
	}

	handler, err := newRouter(cfg, b.store, metrics.NewRecorder())
	if err != nil {
		return err
	}

	// === Start Server ===
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	}
	log.Printf("▶️ Network Map Service listening on %s (contextPath=%q, store=%s)\n", addr, cfg.Server.ContextPath, cfg.Store.Backend)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()
	common.PrintSplash()
	if err := runServer(ctx, configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
